package usecase

import (
	"context"

	"bookz/internal/domain/entity"
	"bookz/internal/domain/repository"

	"github.com/google/uuid"
)

// BookInput carries book create/update data. AuthorIDs is the complete
// association set; on update it replaces the previous one.
type BookInput struct {
	Title         string
	YearPublished int
	Description   string
	ISBN          string
	CoverImage    string
	AuthorIDs     []uuid.UUID
}

// BookUsecase defines the interface for book management use cases.
type BookUsecase interface {
	// CreateBook persists a book with its author associations atomically and
	// then triggers the new-book notification fan-out exactly once. The
	// notification result is returned for display; notification failures
	// never fail the creation itself.
	CreateBook(ctx context.Context, actor *entity.User, input BookInput) (*entity.Book, *entity.NotificationResult, error)

	// GetBook retrieves one book with its authors.
	GetBook(ctx context.Context, id uuid.UUID) (*entity.Book, error)

	// ListBooks retrieves books matching the filter, newest first.
	ListBooks(ctx context.Context, filter repository.BookFilter) ([]*entity.Book, error)

	// UpdateBook modifies a book and replaces its author associations.
	// Only the creator or an admin may update.
	UpdateBook(ctx context.Context, actor *entity.User, id uuid.UUID, input BookInput) (*entity.Book, error)

	// DeleteBook removes a book. Only the creator or an admin may delete.
	DeleteBook(ctx context.Context, actor *entity.User, id uuid.UUID) error
}
