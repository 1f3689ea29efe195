package handlers

import (
	"errors"
	"net/http"

	"restaurant-order-api/middleware"
	"restaurant-order-api/models"
	"restaurant-order-api/policy"
	"restaurant-order-api/repository"
	"restaurant-order-api/statemachine"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct {
	Orders      *repository.OrderRepository
	Restaurants *repository.RestaurantRepository
	Policy      *policy.Engine
}

func NewOrderController(orders *repository.OrderRepository, restaurants *repository.RestaurantRepository, engine *policy.Engine) *OrderController {
	return &OrderController{Orders: orders, Restaurants: restaurants, Policy: engine}
}

type OrderCreateRequest struct {
	RestaurantID uint   `json:"restaurant_id" binding:"required"`
	Products     []uint `json:"products" binding:"required,min=1"`
	Quantities   []int  `json:"quantities" binding:"required,min=1,dive,min=1"`
}

type OrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// Create places an order for the authenticated caller. The products and
// quantities lists are paired element-wise; the whole order is persisted
// atomically or not at all.
func (ctl *OrderController) Create(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req OrderCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := ctl.Restaurants.FindByID(req.RestaurantID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	order := models.Order{
		CustomerID:   claims.ID,
		RestaurantID: req.RestaurantID,
		Status:       models.StatusPending,
	}
	if err := ctl.Orders.CreateWithLines(&order, req.Products, req.Quantities); err != nil {
		switch {
		case errors.Is(err, repository.ErrLineMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, repository.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, repository.ErrRestaurantMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      order.ID,
		"message": "Order created successfully",
		"order":   order,
	})
}

// List returns every order in the system (admin only).
func (ctl *OrderController) List(c *gin.Context) {
	if d := ctl.Policy.RequireAdmin(middleware.GetClaims(c)); !d.Allowed {
		deny(c, d)
		return
	}

	page := pageFromQuery(c)
	orders, total, err := ctl.Orders.List(page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total":  total,
		"skip":   page.Skip,
		"limit":  page.Limit,
		"orders": orders,
	})
}

// ListByRestaurant returns a restaurant's incoming orders, scoped to the
// caller's owned restaurants with admin bypass.
func (ctl *OrderController) ListByRestaurant(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if d := ctl.Policy.RequireOwnerOrAdmin(claims); !d.Allowed {
		deny(c, d)
		return
	}

	scope, d := ctl.Policy.ScopeFor(claims)
	if !d.Allowed {
		deny(c, d)
		return
	}

	restaurantID, ok := parseID(c, "id")
	if !ok {
		return
	}
	if _, err := ctl.Restaurants.FindByID(restaurantID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	if d := scope.Contains(restaurantID); !d.Allowed {
		deny(c, d)
		return
	}

	page := pageFromQuery(c)
	orders, total, err := ctl.Orders.ListByRestaurant(restaurantID, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total":  total,
		"skip":   page.Skip,
		"limit":  page.Limit,
		"orders": orders,
	})
}

// Get returns one order. Two disjoint predicates feed this endpoint:
// owners are authorized by restaurant ownership, plain users by being
// the order's customer. Admins see everything.
func (ctl *OrderController) Get(c *gin.Context) {
	claims := middleware.GetClaims(c)

	switch claims.Role {
	case models.RoleAdmin:
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		order, err := ctl.Orders.FindByID(id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, order)

	case models.RoleOwner:
		scope, d := ctl.Policy.ScopeFor(claims)
		if !d.Allowed {
			deny(c, d)
			return
		}
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		order, err := ctl.Orders.FindByID(id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		if d := scope.Contains(order.RestaurantID); !d.Allowed {
			deny(c, policy.Deny(http.StatusForbidden, "You are not authorized to view this order"))
			return
		}
		c.JSON(http.StatusOK, order)

	default:
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		order, err := ctl.Orders.FindByID(id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		if d := policy.AuthorizeCustomer(claims, order.CustomerID); !d.Allowed {
			deny(c, d)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// UpdateStatus moves an order through its lifecycle, scoped to the
// caller's owned restaurants with admin bypass.
func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if d := ctl.Policy.RequireOwnerOrAdmin(claims); !d.Allowed {
		deny(c, d)
		return
	}

	scope, d := ctl.Policy.ScopeFor(claims)
	if !d.Allowed {
		deny(c, d)
		return
	}

	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := ctl.Orders.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if d := scope.Contains(order.RestaurantID); !d.Allowed {
		deny(c, policy.Deny(http.StatusForbidden, "You are not authorized to update this order"))
		return
	}

	if err := statemachine.CanTransition(order.Status, req.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ctl.Orders.UpdateStatus(order.ID, req.Status); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order updated successfully"})
}

// Delete removes an order, same scoping as UpdateStatus.
func (ctl *OrderController) Delete(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if d := ctl.Policy.RequireOwnerOrAdmin(claims); !d.Allowed {
		deny(c, d)
		return
	}

	scope, d := ctl.Policy.ScopeFor(claims)
	if !d.Allowed {
		deny(c, d)
		return
	}

	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	order, err := ctl.Orders.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if d := scope.Contains(order.RestaurantID); !d.Allowed {
		deny(c, policy.Deny(http.StatusForbidden, "You are not authorized to delete this order"))
		return
	}

	if err := ctl.Orders.Delete(order.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}

// Mine returns the caller's own orders at a restaurant.
func (ctl *OrderController) Mine(c *gin.Context) {
	claims := middleware.GetClaims(c)

	restaurantID, ok := parseID(c, "restaurantId")
	if !ok {
		return
	}
	orders, err := ctl.Orders.ListByCustomerAndRestaurant(claims.ID, restaurantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}
