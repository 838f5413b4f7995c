package models

import (
	"strings"

	"gorm.io/gorm"
)

// Roles recognised by the access policy.
const (
	RoleAdmin    = "ADMIN"
	RoleUser     = "USER"
	RoleFreeUser = "FREE_USER"
)

// User represents an application account that can authenticate with the
// builder. The session only ever consumes the role and display name.
type User struct {
	gorm.Model
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Name         string
	Role         string `gorm:"type:varchar(16);not null;default:USER"`
	Phone        string
}

// ValidRole reports whether the value names a known role.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleUser, RoleFreeUser:
		return true
	}
	return false
}

// NormalizeRole maps unknown or empty role values to the free tier, the
// least privileged role.
func NormalizeRole(role string) string {
	role = strings.ToUpper(strings.TrimSpace(role))
	if ValidRole(role) {
		return role
	}
	return RoleFreeUser
}
