// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"bookz/internal/domain/entity"
	"bookz/internal/errors"

	"github.com/google/uuid"
)

// ErrBookNotFound is returned when a book is not found.
var ErrBookNotFound = errors.New("book not found")

// BookFilter narrows down book listings. Zero values mean "no filter".
type BookFilter struct {
	AuthorID    *uuid.UUID // Only books associated with this author.
	Year        int        // Only books published in this year.
	TitleSearch string     // Case-insensitive substring match on the title.
	Limit       int
	Offset      int
}

// BookRepository defines the interface for book-related database operations.
// Books are always returned with their author associations populated, so the
// notification core never triggers hidden lookups through attribute access.
type BookRepository interface {
	// Create persists a new book together with its author associations.
	Create(ctx context.Context, book *entity.Book, authorIDs []uuid.UUID) error

	// FindByID retrieves a book with its authors by unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error)

	// FindAll retrieves books matching the filter, newest first.
	FindAll(ctx context.Context, filter BookFilter) ([]*entity.Book, error)

	// FindCreatedSince retrieves books created at or after the given time,
	// newest first. Used by the recent-books notification batch.
	FindCreatedSince(ctx context.Context, since time.Time) ([]*entity.Book, error)

	// Update persists changes to a book's own fields.
	Update(ctx context.Context, book *entity.Book) error

	// ReplaceAuthors replaces the book's author association set.
	ReplaceAuthors(ctx context.Context, bookID uuid.UUID, authorIDs []uuid.UUID) error

	// Delete removes a book and its author associations.
	Delete(ctx context.Context, id uuid.UUID) error
}
