// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role names known to the system.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the core account entity. The profile phone is optional and, when
// present, serves as the fallback recipient number for subscriptions that do
// not carry their own phone.
type User struct {
	ID        uuid.UUID `json:"id"`         // The unique identifier for the user.
	Username  string    `json:"username"`   // Login name, unique across the system.
	Email     string    `json:"email"`      // Contact email, unique across the system.
	Phone     string    `json:"phone"`      // Optional profile phone (digits only, international format).
	Role      string    `json:"role"`       // Either RoleUser or RoleAdmin.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this account was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
