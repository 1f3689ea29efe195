package repository

import (
	"restaurant-order-api/models"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) List(page Page) ([]models.Restaurant, int64, error) {
	page = page.Normalize()

	var total int64
	if err := r.DB.Model(&models.Restaurant{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var restaurants []models.Restaurant
	err := r.DB.
		Preload("Owner").
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&restaurants).Error
	return restaurants, total, err
}

func (r *RestaurantRepository) FindByID(id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := r.DB.Preload("Owner").First(&restaurant, id).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *RestaurantRepository) FindByOwner(ownerID uint) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	err := r.DB.Where("owner_id = ?", ownerID).Find(&restaurants).Error
	return restaurants, err
}

// OwnedRestaurantIDs implements policy.OwnershipResolver. It is queried
// on every authorization so ownership changes take effect immediately.
func (r *RestaurantRepository) OwnedRestaurantIDs(ownerID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&models.Restaurant{}).
		Where("owner_id = ?", ownerID).
		Pluck("id", &ids).Error
	return ids, err
}

// NameOrEmailTaken reports whether another restaurant already uses the
// name or email. Checked before every create/update so violations come
// back as a clean conflict instead of a raw constraint error.
func (r *RestaurantRepository) NameOrEmailTaken(name, email string, excludeID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&models.Restaurant{}).
		Where("(name = ? OR email = ?) AND id <> ?", name, email, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *RestaurantRepository) Create(restaurant *models.Restaurant) error {
	return r.DB.Create(restaurant).Error
}

func (r *RestaurantRepository) Save(restaurant *models.Restaurant) error {
	return r.DB.Save(restaurant).Error
}

func (r *RestaurantRepository) Delete(id uint) error {
	result := r.DB.Delete(&models.Restaurant{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
