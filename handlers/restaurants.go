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

type RestaurantController struct {
	Restaurants *repository.RestaurantRepository
	Policy      *policy.Engine
}

func NewRestaurantController(restaurants *repository.RestaurantRepository, engine *policy.Engine) *RestaurantController {
	return &RestaurantController{Restaurants: restaurants, Policy: engine}
}

type RestaurantCreateRequest struct {
	Name        string                  `json:"name" binding:"required"`
	Address     string                  `json:"address" binding:"required"`
	City        string                  `json:"city" binding:"required"`
	Country     string                  `json:"country" binding:"required"`
	PostalCode  string                  `json:"postal_code"`
	PhoneNumber string                  `json:"phone_number"`
	Email       string                  `json:"email" binding:"required,email"`
	Website     string                  `json:"website"`
	Description string                  `json:"description"`
	Status      models.RestaurantStatus `json:"status"`
	Image       string                  `json:"image"`
	OwnerID     uint                    `json:"owner_id"` // honored for admins only
}

// List returns all restaurants; browsing is public.
func (ctl *RestaurantController) List(c *gin.Context) {
	page := pageFromQuery(c)
	restaurants, total, err := ctl.Restaurants.List(page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list restaurants"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total":       total,
		"skip":        page.Skip,
		"limit":       page.Limit,
		"restaurants": restaurants,
	})
}

// Mine returns the restaurants owned by the caller (owner only).
func (ctl *RestaurantController) Mine(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if d := ctl.Policy.RequireOwner(claims); !d.Allowed {
		deny(c, d)
		return
	}

	restaurants, err := ctl.Restaurants.FindByOwner(claims.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list restaurants"})
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

// Get returns one restaurant; public.
func (ctl *RestaurantController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	restaurant, err := ctl.Restaurants.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// Create adds a restaurant for the calling owner; admins may create on
// behalf of another owner via owner_id.
func (ctl *RestaurantController) Create(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if d := ctl.Policy.RequireOwnerOrAdmin(claims); !d.Allowed {
		deny(c, d)
		return
	}

	var req RestaurantCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := req.Status
	if status == "" {
		status = models.RestaurantUnderReview
	}
	if !models.ValidRestaurantStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	if taken, err := ctl.Restaurants.NameOrEmailTaken(req.Name, req.Email, 0); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create restaurant"})
		return
	} else if taken {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Restaurant with this email or name already exists"})
		return
	}

	ownerID := claims.ID
	if claims.Role == models.RoleAdmin && req.OwnerID != 0 {
		ownerID = req.OwnerID
	}

	restaurant := models.Restaurant{
		Name:        req.Name,
		Address:     req.Address,
		City:        req.City,
		Country:     req.Country,
		PostalCode:  req.PostalCode,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Website:     req.Website,
		Description: req.Description,
		Status:      status,
		Image:       req.Image,
		OwnerID:     ownerID,
	}
	if err := ctl.Restaurants.Create(&restaurant); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create restaurant"})
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// Update modifies a restaurant. Owners are confined to their own
// restaurants; admins bypass ownership entirely.
func (ctl *RestaurantController) Update(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if d := ctl.Policy.RequireOwnerOrAdmin(claims); !d.Allowed {
		deny(c, d)
		return
	}

	// Scope before fetch: an owner with no restaurants learns nothing
	// about whether the target exists.
	scope, d := ctl.Policy.ScopeFor(claims)
	if !d.Allowed {
		deny(c, d)
		return
	}

	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	restaurant, err := ctl.Restaurants.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	if d := scope.Contains(restaurant.ID); !d.Allowed {
		deny(c, d)
		return
	}

	var req RestaurantCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := req.Status
	if status == "" {
		status = restaurant.Status
	}
	if !models.ValidRestaurantStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	if taken, err := ctl.Restaurants.NameOrEmailTaken(req.Name, req.Email, restaurant.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update restaurant"})
		return
	} else if taken {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Restaurant with this email or name already exists"})
		return
	}

	restaurant.Name = req.Name
	restaurant.Address = req.Address
	restaurant.City = req.City
	restaurant.Country = req.Country
	restaurant.PostalCode = req.PostalCode
	restaurant.PhoneNumber = req.PhoneNumber
	restaurant.Email = req.Email
	restaurant.Website = req.Website
	restaurant.Description = req.Description
	restaurant.Status = status
	restaurant.Image = req.Image

	if err := ctl.Restaurants.Save(restaurant); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update restaurant"})
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// Delete removes a restaurant, same scoping as Update.
func (ctl *RestaurantController) Delete(c *gin.Context) {
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
	restaurant, err := ctl.Restaurants.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	if d := scope.Contains(restaurant.ID); !d.Allowed {
		deny(c, d)
		return
	}

	if err := ctl.Restaurants.Delete(restaurant.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete restaurant"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant deleted successfully"})
}
