// Package usecase defines the application's use case interfaces and their
// input/output types. Implementations live in the impl subpackage.
package usecase

import (
	"context"

	"bookz/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterInput carries validated registration data into the user use case.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Phone    string // Optional; digits only when present.
}

// TokenPair bundles the credentials returned by a successful login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// UserUsecase defines the interface for account management use cases.
type UserUsecase interface {
	// Register creates a new account with the "user" role.
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)

	// Login verifies credentials and issues a token pair.
	Login(ctx context.Context, username, password string) (*entity.User, *TokenPair, error)

	// GetProfile retrieves the account for the given user ID.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdatePhone sets or clears the profile phone number.
	UpdatePhone(ctx context.Context, userID uuid.UUID, phone string) error
}
