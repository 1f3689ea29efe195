package models

import "time"

// RestaurantStatus represents the publication state of a restaurant
type RestaurantStatus string

const (
	RestaurantOpen        RestaurantStatus = "open"
	RestaurantClosed      RestaurantStatus = "closed"
	RestaurantUnderReview RestaurantStatus = "under_review"
)

// ValidRestaurantStatus reports whether s is a known restaurant status.
func ValidRestaurantStatus(s RestaurantStatus) bool {
	switch s {
	case RestaurantOpen, RestaurantClosed, RestaurantUnderReview:
		return true
	}
	return false
}

type Restaurant struct {
	ID          uint             `json:"id" gorm:"primaryKey"`
	Name        string           `json:"name" gorm:"uniqueIndex;not null"`
	Address     string           `json:"address" gorm:"not null"`
	City        string           `json:"city" gorm:"not null"`
	Country     string           `json:"country" gorm:"not null"`
	PostalCode  string           `json:"postal_code"`
	Status      RestaurantStatus `json:"status" gorm:"not null;default:'under_review'"`
	OwnerID     uint             `json:"owner_id" gorm:"not null"`
	Owner       *User            `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	PhoneNumber string           `json:"phone_number"`
	Email       string           `json:"email" gorm:"uniqueIndex;not null"`
	Website     string           `json:"website"`
	Description string           `json:"description"`
	Image       string           `json:"image"`
	Products    []Product        `json:"products,omitempty" gorm:"foreignKey:RestaurantID"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}
