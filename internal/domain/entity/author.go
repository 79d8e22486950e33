// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Author represents a catalog author, distinct from a system user.
// Authors have books and subscribers; for notification purposes an author is
// immutable and only ever looked up by identifier.
type Author struct {
	ID        uuid.UUID `json:"id"`         // The unique identifier for the author.
	FullName  string    `json:"full_name"`  // Display name used in notification messages.
	Biography string    `json:"biography"`  // Free-form biography text.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this author was created.
}

// TopAuthor is a report row: an author ranked by the number of books
// published in a given year.
type TopAuthor struct {
	AuthorID  uuid.UUID `json:"author_id"`
	FullName  string    `json:"full_name"`
	BookCount int       `json:"book_count"`
}
