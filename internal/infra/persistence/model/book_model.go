package model

import (
	"time"

	"github.com/google/uuid"
)

// BookModel mirrors the 'books' table. Author associations live in the
// 'book_authors' join table; association order follows insertion order.
type BookModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title         string    `gorm:"type:varchar(255);not null"`
	YearPublished int       `gorm:"not null;index"`
	Description   string    `gorm:"type:text"`
	ISBN          string    `gorm:"column:isbn;type:varchar(20)"`
	CoverImage    string    `gorm:"type:varchar(255)"`
	CreatedBy     uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time

	Authors []*AuthorModel `gorm:"many2many:book_authors;"`
}

// TableName explicitly sets the table name for GORM.
func (BookModel) TableName() string {
	return "books"
}

// BookAuthorModel mirrors the 'book_authors' join table. It exists as a
// named model so ReplaceAuthors can manage join rows directly.
type BookAuthorModel struct {
	BookModelID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	AuthorModelID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (BookAuthorModel) TableName() string {
	return "book_authors"
}
