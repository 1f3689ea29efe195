package models

import "time"

// ProductStatus represents the availability of a product on the menu
type ProductStatus string

const (
	ProductAvailable  ProductStatus = "available"
	ProductOutOfStock ProductStatus = "out_of_stock"
	ProductComingSoon ProductStatus = "coming_soon"
)

// ValidProductStatus reports whether s is a known product status.
func ValidProductStatus(s ProductStatus) bool {
	switch s {
	case ProductAvailable, ProductOutOfStock, ProductComingSoon:
		return true
	}
	return false
}

// Product prices and discounts are integer minor currency units (cents).
type Product struct {
	ID           uint          `json:"id" gorm:"primaryKey"`
	Name         string        `json:"name" gorm:"uniqueIndex;not null"`
	Description  string        `json:"description"`
	Price        int64         `json:"price" gorm:"not null"`
	Status       ProductStatus `json:"status" gorm:"not null;default:'available'"`
	Discount     *int64        `json:"discount"`
	Image        string        `json:"image"`
	Visible      bool          `json:"visible" gorm:"not null;default:true"`
	RestaurantID uint          `json:"restaurant_id" gorm:"not null"`
	Restaurant   *Restaurant   `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
