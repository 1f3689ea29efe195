package repository

import (
	"errors"
	"fmt"

	"restaurant-order-api/models"

	"gorm.io/gorm"
)

var (
	// ErrProductNotFound aborts order creation when a referenced product
	// does not exist.
	ErrProductNotFound = errors.New("product not found")
	// ErrRestaurantMismatch aborts order creation when a line references a
	// product from a different restaurant than the order's.
	ErrRestaurantMismatch = errors.New("product does not belong to this restaurant")
	// ErrLineMismatch is returned when the products and quantities lists
	// have different lengths.
	ErrLineMismatch = errors.New("products and quantities must have the same length")
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// CreateWithLines resolves each (product, quantity) pair, snapshots the
// product price into the line and accumulates the order total. The whole
// creation runs in one transaction: if any product is missing or belongs
// to another restaurant, nothing is persisted.
func (r *OrderRepository) CreateWithLines(order *models.Order, productIDs []uint, quantities []int) error {
	if len(productIDs) != len(quantities) {
		return ErrLineMismatch
	}

	return r.DB.Transaction(func(tx *gorm.DB) error {
		var items []models.OrderItem
		var total int64

		for i, productID := range productIDs {
			var product models.Product
			if err := tx.First(&product, productID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: id %d", ErrProductNotFound, productID)
				}
				return err
			}
			if product.RestaurantID != order.RestaurantID {
				return fmt.Errorf("%w: product %d", ErrRestaurantMismatch, productID)
			}

			quantity := quantities[i]
			total += product.Price * int64(quantity)
			items = append(items, models.OrderItem{
				ProductID: product.ID,
				Quantity:  quantity,
				Price:     product.Price,
			})
		}

		order.TotalPrice = total
		order.Items = items
		return tx.Create(order).Error
	})
}

func (r *OrderRepository) List(page Page) ([]models.Order, int64, error) {
	page = page.Normalize()

	var total int64
	if err := r.DB.Model(&models.Order{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	err := r.DB.
		Preload("Items.Product").
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&orders).Error
	return orders, total, err
}

func (r *OrderRepository) ListByRestaurant(restaurantID uint, page Page) ([]models.Order, int64, error) {
	page = page.Normalize()

	var total int64
	if err := r.DB.Model(&models.Order{}).
		Where("restaurant_id = ?", restaurantID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	err := r.DB.
		Preload("Items.Product").
		Where("restaurant_id = ?", restaurantID).
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&orders).Error
	return orders, total, err
}

// ListByCustomerAndRestaurant returns the caller's own orders at a
// restaurant, newest first.
func (r *OrderRepository) ListByCustomerAndRestaurant(customerID, restaurantID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.
		Preload("Items.Product").
		Where("customer_id = ? AND restaurant_id = ?", customerID, restaurantID).
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) FindByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.DB.Preload("Items.Product").First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) UpdateStatus(id uint, status models.OrderStatus) error {
	return r.DB.Model(&models.Order{}).Where("id = ?", id).
		Update("status", status).Error
}

// Delete removes an order and its lines in one transaction.
func (r *OrderRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Order{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
