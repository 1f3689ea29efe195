package handlers

import (
	"errors"
	"net/http"
	"time"

	"restaurant-order-api/auth"
	"restaurant-order-api/middleware"
	"restaurant-order-api/models"
	"restaurant-order-api/policy"
	"restaurant-order-api/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserController struct {
	Users  *repository.UserRepository
	Policy *policy.Engine
}

func NewUserController(users *repository.UserRepository, engine *policy.Engine) *UserController {
	return &UserController{Users: users, Policy: engine}
}

type UserCreateRequest struct {
	Name           string          `json:"name" binding:"required"`
	Surname        string          `json:"surname" binding:"required"`
	Email          string          `json:"email" binding:"required,email"`
	Password       string          `json:"password" binding:"required"`
	Role           models.UserRole `json:"role" binding:"required"`
	PhoneNumber    string          `json:"phone_number"`
	Address        string          `json:"address"`
	DateOfBirth    *time.Time      `json:"date_of_birth"`
	ProfilePicture string          `json:"profile_picture"`
}

type UserUpdateRequest struct {
	Name           *string          `json:"name"`
	Surname        *string          `json:"surname"`
	Email          *string          `json:"email"`
	Role           *models.UserRole `json:"role"`
	PhoneNumber    *string          `json:"phone_number"`
	Address        *string          `json:"address"`
	DateOfBirth    *time.Time       `json:"date_of_birth"`
	ProfilePicture *string          `json:"profile_picture"`
}

// fields collects the set fields into a partial-update map. Role is only
// included when allowRole is set: users must not promote themselves.
func (r *UserUpdateRequest) fields(allowRole bool) map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Surname != nil {
		fields["surname"] = *r.Surname
	}
	if r.Email != nil {
		fields["email"] = *r.Email
	}
	if r.Role != nil && allowRole {
		fields["role"] = *r.Role
	}
	if r.PhoneNumber != nil {
		fields["phone_number"] = *r.PhoneNumber
	}
	if r.Address != nil {
		fields["address"] = *r.Address
	}
	if r.DateOfBirth != nil {
		fields["date_of_birth"] = *r.DateOfBirth
	}
	if r.ProfilePicture != nil {
		fields["profile_picture"] = *r.ProfilePicture
	}
	return fields
}

// List returns all users (admin only).
func (ctl *UserController) List(c *gin.Context) {
	if d := ctl.Policy.RequireAdmin(middleware.GetClaims(c)); !d.Allowed {
		deny(c, d)
		return
	}

	page := pageFromQuery(c)
	users, total, err := ctl.Users.List(page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total": total,
		"skip":  page.Skip,
		"limit": page.Limit,
		"users": users,
	})
}

// Get returns a single user (admin only).
func (ctl *UserController) Get(c *gin.Context) {
	if d := ctl.Policy.RequireAdmin(middleware.GetClaims(c)); !d.Allowed {
		deny(c, d)
		return
	}

	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, err := ctl.Users.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// Create adds a user with an arbitrary role (admin only).
func (ctl *UserController) Create(c *gin.Context) {
	if d := ctl.Policy.RequireAdmin(middleware.GetClaims(c)); !d.Allowed {
		deny(c, d)
		return
	}

	var req UserCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role. Must be: user, owner or admin"})
		return
	}

	if taken, err := ctl.Users.EmailTaken(req.Email, 0); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	} else if taken {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Name:           req.Name,
		Surname:        req.Surname,
		Email:          req.Email,
		PasswordHash:   hash,
		Role:           req.Role,
		PhoneNumber:    req.PhoneNumber,
		Address:        req.Address,
		DateOfBirth:    req.DateOfBirth,
		ProfilePicture: req.ProfilePicture,
	}
	if err := ctl.Users.Create(&user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": user.ID})
}

// Update modifies any field of any user (admin only).
func (ctl *UserController) Update(c *gin.Context) {
	if d := ctl.Policy.RequireAdmin(middleware.GetClaims(c)); !d.Allowed {
		deny(c, d)
		return
	}

	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Role != nil && !models.ValidRole(*req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role. Must be: user, owner or admin"})
		return
	}

	ctl.applyUpdate(c, id, &req, true)
}

// UpdateMe lets any authenticated user edit their own profile. The role
// field is ignored here even if supplied.
func (ctl *UserController) UpdateMe(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctl.applyUpdate(c, claims.ID, &req, false)
}

func (ctl *UserController) applyUpdate(c *gin.Context, id uint, req *UserUpdateRequest, allowRole bool) {
	if _, err := ctl.Users.FindByID(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	fields := req.fields(allowRole)
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No valid fields to update"})
		return
	}

	if req.Email != nil {
		if taken, err := ctl.Users.EmailTaken(*req.Email, id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
			return
		} else if taken {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
			return
		}
	}

	user, err := ctl.Users.UpdateFields(id, fields)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// Delete removes a user (admin only).
func (ctl *UserController) Delete(c *gin.Context) {
	if d := ctl.Policy.RequireAdmin(middleware.GetClaims(c)); !d.Allowed {
		deny(c, d)
		return
	}

	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctl.Users.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
