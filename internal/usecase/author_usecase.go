package usecase

import (
	"context"

	"bookz/internal/domain/entity"

	"github.com/google/uuid"
)

// AuthorInput carries author create/update data.
type AuthorInput struct {
	FullName  string
	Biography string
}

// AuthorUsecase defines the interface for author management use cases.
type AuthorUsecase interface {
	// CreateAuthor adds a new author to the catalog.
	CreateAuthor(ctx context.Context, input AuthorInput) (*entity.Author, error)

	// GetAuthor retrieves one author by ID.
	GetAuthor(ctx context.Context, id uuid.UUID) (*entity.Author, error)

	// ListAuthors retrieves all authors ordered by name.
	ListAuthors(ctx context.Context) ([]*entity.Author, error)

	// UpdateAuthor modifies an existing author.
	UpdateAuthor(ctx context.Context, id uuid.UUID, input AuthorInput) (*entity.Author, error)

	// DeleteAuthor removes an author; subscriptions and book links cascade.
	DeleteAuthor(ctx context.Context, id uuid.UUID) error

	// TopAuthorsByYear ranks authors by books published in the given year.
	TopAuthorsByYear(ctx context.Context, year int, limit int) ([]*entity.TopAuthor, error)
}
