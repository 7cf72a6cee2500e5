package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Username     string         `json:"username" gorm:"unique;not null"`
	Email        string         `json:"email" gorm:"unique;not null"`
	PasswordHash string         `json:"-" gorm:"not null"`
	FullName     string         `json:"full_name"`
	PhoneNumber  string         `json:"phone_number"`
	Role         string         `json:"role" gorm:"default:'agent'"` // contractor, agent, site_incharge, sales_manager, admin
	IsActive     bool           `json:"is_active"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type UserRole string

const (
	RoleContractor   UserRole = "contractor"
	RoleAgent        UserRole = "agent"
	RoleSiteIncharge UserRole = "site_incharge"
	RoleSalesManager UserRole = "sales_manager"
	RoleAdmin        UserRole = "admin"
)

// ValidRole reports whether role is one of the five CRM roles.
func ValidRole(role string) bool {
	switch UserRole(role) {
	case RoleContractor, RoleAgent, RoleSiteIncharge, RoleSalesManager, RoleAdmin:
		return true
	}
	return false
}
