package repository

import (
	"restaurant-order-api/models"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) List(page Page) ([]models.Product, int64, error) {
	page = page.Normalize()

	var total int64
	if err := r.DB.Model(&models.Product{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []models.Product
	err := r.DB.Offset(page.Skip).Limit(page.Limit).Find(&products).Error
	return products, total, err
}

func (r *ProductRepository) ListByRestaurant(restaurantID uint, page Page) ([]models.Product, int64, error) {
	page = page.Normalize()

	var total int64
	if err := r.DB.Model(&models.Product{}).
		Where("restaurant_id = ?", restaurantID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []models.Product
	err := r.DB.
		Where("restaurant_id = ?", restaurantID).
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&products).Error
	return products, total, err
}

func (r *ProductRepository) FindByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.DB.First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// NameTaken reports whether another product already uses the name.
func (r *ProductRepository) NameTaken(name string, excludeID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&models.Product{}).
		Where("name = ? AND id <> ?", name, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *ProductRepository) Create(product *models.Product) error {
	return r.DB.Create(product).Error
}

func (r *ProductRepository) Save(product *models.Product) error {
	return r.DB.Save(product).Error
}

func (r *ProductRepository) Delete(id uint) error {
	result := r.DB.Delete(&models.Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
