// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"bookz/internal/domain/entity"
	"bookz/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when a username or email is already taken.
	ErrDuplicateUser = errors.New("user already exists")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// Create persists a new user. The PasswordHash argument is stored as-is.
	Create(ctx context.Context, user *entity.User, passwordHash string) error

	// FindByID retrieves a user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a user by their login name.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// PasswordHashByUsername returns the stored password hash for a login name.
	PasswordHashByUsername(ctx context.Context, username string) (string, error)

	// UpdatePhone updates the user's profile phone number.
	UpdatePhone(ctx context.Context, id uuid.UUID, phone string) error
}
