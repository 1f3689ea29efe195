package models

import (
	"time"
)

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleOwner UserRole = "owner"
	RoleAdmin UserRole = "admin"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r UserRole) bool {
	switch r {
	case RoleUser, RoleOwner, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID             uint         `json:"id" gorm:"primaryKey"`
	Name           string       `json:"name" gorm:"not null"`
	Surname        string       `json:"surname" gorm:"not null"`
	Email          string       `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash   string       `json:"-" gorm:"not null"`
	Role           UserRole     `json:"role" gorm:"not null;default:'user'"`
	PhoneNumber    string       `json:"phone_number"`
	Address        string       `json:"address"`
	DateOfBirth    *time.Time   `json:"date_of_birth"`
	ProfilePicture string       `json:"profile_picture"`
	Restaurants    []Restaurant `json:"restaurants,omitempty" gorm:"foreignKey:OwnerID"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}
