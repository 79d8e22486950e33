// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"bookz/internal/domain/entity"
	"bookz/internal/errors"

	"github.com/google/uuid"
)

// ErrAuthorNotFound is returned when an author is not found.
var ErrAuthorNotFound = errors.New("author not found")

// AuthorRepository defines the interface for author-related database operations.
type AuthorRepository interface {
	// Create persists a new author.
	Create(ctx context.Context, author *entity.Author) error

	// FindByID retrieves an author by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Author, error)

	// FindByIDs retrieves the authors for the given IDs. Missing IDs are not
	// an error; the result simply omits them.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Author, error)

	// FindAll retrieves all authors ordered by name.
	FindAll(ctx context.Context) ([]*entity.Author, error)

	// Update persists changes to an existing author.
	Update(ctx context.Context, author *entity.Author) error

	// Delete removes an author. Subscriptions and book associations cascade.
	Delete(ctx context.Context, id uuid.UUID) error

	// TopAuthorsByYear returns authors ranked by the number of books they
	// published in the given year, busiest first.
	TopAuthorsByYear(ctx context.Context, year int, limit int) ([]*entity.TopAuthor, error)
}
