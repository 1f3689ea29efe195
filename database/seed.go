package database

import (
	"log"

	"restaurant-order-api/auth"
	"restaurant-order-api/models"

	"gorm.io/gorm"
)

// Seed creates the admin account and, on an empty database, a small demo
// data set so the API is usable right after first start.
func Seed(db *gorm.DB, adminEmail, adminPassword string) error {
	if err := seedAdmin(db, adminEmail, adminPassword); err != nil {
		return err
	}
	return seedDemoData(db)
}

func seedAdmin(db *gorm.DB, email, password string) error {
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	admin := models.User{
		Name:         "Admin",
		Surname:      "Admin",
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("seeded admin user:", email)
	return nil
}

func seedDemoData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Restaurant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	userHash, err := auth.HashPassword("password")
	if err != nil {
		return err
	}
	customer := models.User{
		Name:         "Demo",
		Surname:      "Customer",
		Email:        "user@example.com",
		PasswordHash: userHash,
		Role:         models.RoleUser,
	}
	if err := db.Create(&customer).Error; err != nil {
		return err
	}

	owner := models.User{
		Name:         "Demo",
		Surname:      "Owner",
		Email:        "owner@example.com",
		PasswordHash: userHash,
		Role:         models.RoleOwner,
	}
	if err := db.Create(&owner).Error; err != nil {
		return err
	}

	restaurant := models.Restaurant{
		Name:    "Demo Bistro",
		Address: "1 Demo Street",
		City:    "Demo City",
		Country: "Demoland",
		Status:  models.RestaurantOpen,
		OwnerID: owner.ID,
		Email:   "bistro@example.com",
	}
	if err := db.Create(&restaurant).Error; err != nil {
		return err
	}

	products := []models.Product{
		{Name: "Margherita Pizza", Price: 500, Status: models.ProductAvailable, Visible: true, RestaurantID: restaurant.ID},
		{Name: "House Salad", Price: 300, Status: models.ProductAvailable, Visible: true, RestaurantID: restaurant.ID},
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}

	log.Println("seeded demo data")
	return nil
}
