// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Book represents a catalog book together with its author associations.
type Book struct {
	ID            uuid.UUID `json:"id"`             // The unique identifier for the book.
	Title         string    `json:"title"`          // Book title, required.
	YearPublished int       `json:"year_published"` // Publication year.
	Description   string    `json:"description"`    // Free-form description.
	ISBN          string    `json:"isbn"`           // Optional ISBN; included in notifications when present.
	CoverImage    string    `json:"cover_image"`    // Optional path/URL of the cover image.
	CreatedBy     uuid.UUID `json:"created_by"`     // The user who created the book record.
	CreatedAt     time.Time `json:"created_at"`     // Timestamp of when this book was created.
	UpdatedAt     time.Time `json:"updated_at"`     // Timestamp of the last modification.

	Authors []*Author `json:"authors,omitempty"` // Associated authors, populated by the repository.
}

// AuthorNames returns the display names of the book's authors in association order.
func (b *Book) AuthorNames() []string {
	names := make([]string, 0, len(b.Authors))
	for _, author := range b.Authors {
		names = append(names, author.FullName)
	}

	return names
}

// AuthorIDs returns the identifiers of the book's authors in association order.
func (b *Book) AuthorIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(b.Authors))
	for _, author := range b.Authors {
		ids = append(ids, author.ID)
	}

	return ids
}

// CanModify reports whether the given user may update or delete the book.
// The creator and admins are allowed.
func (b *Book) CanModify(user *User) bool {
	if user == nil {
		return false
	}

	return user.IsAdmin() || b.CreatedBy == user.ID
}
