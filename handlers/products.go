package handlers

import (
	"errors"
	"net/http"

	"restaurant-order-api/middleware"
	"restaurant-order-api/models"
	"restaurant-order-api/policy"
	"restaurant-order-api/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProductController struct {
	Products    *repository.ProductRepository
	Restaurants *repository.RestaurantRepository
	Policy      *policy.Engine
}

func NewProductController(products *repository.ProductRepository, restaurants *repository.RestaurantRepository, engine *policy.Engine) *ProductController {
	return &ProductController{Products: products, Restaurants: restaurants, Policy: engine}
}

type ProductRequest struct {
	Name         string               `json:"name" binding:"required"`
	Description  string               `json:"description"`
	Price        int64                `json:"price" binding:"required,min=0"`
	Status       models.ProductStatus `json:"status"`
	Discount     *int64               `json:"discount"`
	Image        string               `json:"image"`
	Visible      *bool                `json:"visible"`
	RestaurantID uint                 `json:"restaurant_id" binding:"required"`
}

// Create adds a product to a restaurant. Owners may only stock
// restaurants they own; admins may stock any.
func (ctl *ProductController) Create(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if d := ctl.Policy.RequireOwnerOrAdmin(claims); !d.Allowed {
		deny(c, d)
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := req.Status
	if status == "" {
		status = models.ProductAvailable
	}
	if !models.ValidProductStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	scope, d := ctl.Policy.ScopeFor(claims)
	if !d.Allowed {
		deny(c, d)
		return
	}
	if _, err := ctl.Restaurants.FindByID(req.RestaurantID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	if d := scope.Contains(req.RestaurantID); !d.Allowed {
		deny(c, d)
		return
	}

	if taken, err := ctl.Products.NameTaken(req.Name, 0); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	} else if taken {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product with this name already exists"})
		return
	}

	visible := true
	if req.Visible != nil {
		visible = *req.Visible
	}
	product := models.Product{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Status:       status,
		Discount:     req.Discount,
		Image:        req.Image,
		Visible:      visible,
		RestaurantID: req.RestaurantID,
	}
	if err := ctl.Products.Create(&product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// List returns every product in the system (admin only).
func (ctl *ProductController) List(c *gin.Context) {
	if d := ctl.Policy.RequireAdmin(middleware.GetClaims(c)); !d.Allowed {
		deny(c, d)
		return
	}

	page := pageFromQuery(c)
	products, total, err := ctl.Products.List(page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total":    total,
		"skip":     page.Skip,
		"limit":    page.Limit,
		"products": products,
	})
}

// ListByRestaurant returns a restaurant's menu (any authenticated caller).
func (ctl *ProductController) ListByRestaurant(c *gin.Context) {
	restaurantID, ok := parseID(c, "id")
	if !ok {
		return
	}

	page := pageFromQuery(c)
	products, total, err := ctl.Products.ListByRestaurant(restaurantID, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total":    total,
		"skip":     page.Skip,
		"limit":    page.Limit,
		"products": products,
	})
}

// Get returns one product (any authenticated caller).
func (ctl *ProductController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	product, err := ctl.Products.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// Update modifies a product. The caller's ownership scope is re-derived
// on every call and checked against the product's restaurant.
func (ctl *ProductController) Update(c *gin.Context) {
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
	product, err := ctl.Products.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if d := scope.Contains(product.RestaurantID); !d.Allowed {
		deny(c, policy.Deny(http.StatusForbidden, "You are not the owner of this product"))
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := req.Status
	if status == "" {
		status = product.Status
	}
	if !models.ValidProductStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	// A product cannot be moved to a restaurant outside the caller's scope.
	if req.RestaurantID != product.RestaurantID {
		if _, err := ctl.Restaurants.FindByID(req.RestaurantID); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
			return
		}
		if d := scope.Contains(req.RestaurantID); !d.Allowed {
			deny(c, d)
			return
		}
	}

	if taken, err := ctl.Products.NameTaken(req.Name, product.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	} else if taken {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product with this name already exists"})
		return
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.Status = status
	product.Discount = req.Discount
	product.Image = req.Image
	if req.Visible != nil {
		product.Visible = *req.Visible
	}
	product.RestaurantID = req.RestaurantID

	if err := ctl.Products.Save(product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// Delete removes a product, same scoping as Update.
func (ctl *ProductController) Delete(c *gin.Context) {
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
	product, err := ctl.Products.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if d := scope.Contains(product.RestaurantID); !d.Allowed {
		deny(c, policy.Deny(http.StatusForbidden, "You are not the owner of this product"))
		return
	}

	if err := ctl.Products.Delete(product.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
