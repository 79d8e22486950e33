package model

import (
	"time"

	"github.com/google/uuid"
)

// AuthorModel mirrors the 'authors' table.
type AuthorModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FullName  string    `gorm:"type:varchar(255);not null"`
	Biography string    `gorm:"type:text"`
	CreatedAt time.Time

	Books []*BookModel `gorm:"many2many:book_authors;"`
}

// TableName explicitly sets the table name for GORM.
func (AuthorModel) TableName() string {
	return "authors"
}
