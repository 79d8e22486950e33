// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"bookz/internal/domain/entity"
	domainerrors "bookz/internal/domain/errors"
	"bookz/internal/domain/repository"
	"bookz/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// bookRepository implements the repository.BookRepository interface using GORM.
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository is the constructor for bookRepository.
func NewBookRepository(db *gorm.DB) repository.BookRepository {
	return &bookRepository{
		db: db,
	}
}

// Create persists a new book together with its author associations. Join
// rows are inserted explicitly so a dangling author ID surfaces as
// ErrAuthorNotFound instead of a silent partial insert.
func (repo *bookRepository) Create(ctx context.Context, book *entity.Book, authorIDs []uuid.UUID) error {
	bookM := fromBookDomain(book)

	if err := repo.db.WithContext(ctx).
		Omit("Authors").
		Create(bookM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid book creator reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required book information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create book")
	}

	if err := repo.insertAuthorLinks(ctx, bookM.ID, authorIDs); err != nil {
		return err
	}

	book.ID = bookM.ID
	book.CreatedAt = bookM.CreatedAt
	book.UpdatedAt = bookM.UpdatedAt

	return nil
}

// FindByID retrieves a book with its authors by unique ID.
func (repo *bookRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	var bookM model.BookModel

	if err := repo.db.WithContext(ctx).
		Preload("Authors", orderAuthorsByName).
		Where("id = ?", id).
		First(&bookM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookNotFound
		}

		return nil, errors.Wrap(err, "failed to find book by id")
	}

	return toBookDomain(&bookM), nil
}

// FindAll retrieves books matching the filter, newest first.
func (repo *bookRepository) FindAll(ctx context.Context, filter repository.BookFilter) ([]*entity.Book, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Preload("Authors", orderAuthorsByName)

	if filter.AuthorID != nil {
		query = query.
			Joins("JOIN book_authors ba ON ba.book_model_id = books.id").
			Where("ba.author_model_id = ?", *filter.AuthorID)
	}
	if filter.Year != 0 {
		query = query.Where("year_published = ?", filter.Year)
	}
	if filter.TitleSearch != "" {
		query = query.Where("title ILIKE ?", "%"+filter.TitleSearch+"%")
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var bookModels []*model.BookModel
	if err := query.
		Order("books.created_at DESC").
		Find(&bookModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list books")
	}

	return toBookDomainSlice(bookModels), nil
}

// FindCreatedSince retrieves books created at or after the given time, newest first.
func (repo *bookRepository) FindCreatedSince(ctx context.Context, since time.Time) ([]*entity.Book, error) {
	var bookModels []*model.BookModel

	if err := repo.db.WithContext(ctx).
		Preload("Authors", orderAuthorsByName).
		Where("created_at >= ?", since).
		Order("created_at DESC").
		Find(&bookModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recently created books")
	}

	return toBookDomainSlice(bookModels), nil
}

// Update persists changes to a book's own fields. Author associations are
// managed separately through ReplaceAuthors.
func (repo *bookRepository) Update(ctx context.Context, book *entity.Book) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Where("id = ?", book.ID).
		Updates(map[string]any{
			"title":          book.Title,
			"year_published": book.YearPublished,
			"description":    book.Description,
			"isbn":           book.ISBN,
			"cover_image":    book.CoverImage,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update book")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBookNotFound
	}

	return nil
}

// ReplaceAuthors replaces the book's author association set.
func (repo *bookRepository) ReplaceAuthors(ctx context.Context, bookID uuid.UUID, authorIDs []uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("book_model_id = ?", bookID).
		Delete(&model.BookAuthorModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear book authors")
	}

	return repo.insertAuthorLinks(ctx, bookID, authorIDs)
}

// Delete removes a book. Join rows cascade via the schema constraints.
func (repo *bookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BookModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete book")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBookNotFound
	}

	return nil
}

func (repo *bookRepository) insertAuthorLinks(ctx context.Context, bookID uuid.UUID, authorIDs []uuid.UUID) error {
	if len(authorIDs) == 0 {
		return nil
	}

	links := make([]model.BookAuthorModel, 0, len(authorIDs))
	for _, authorID := range authorIDs {
		links = append(links, model.BookAuthorModel{
			BookModelID:   bookID,
			AuthorModelID: authorID,
		})
	}

	if err := repo.db.WithContext(ctx).Create(&links).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAuthorNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to link book authors")
	}

	return nil
}

func orderAuthorsByName(db *gorm.DB) *gorm.DB {
	return db.Order("authors.full_name ASC")
}

// --- Mapper Functions ---

func toBookDomain(data *model.BookModel) *entity.Book {
	if data == nil {
		return nil
	}

	authors := make([]*entity.Author, 0, len(data.Authors))
	for _, authorM := range data.Authors {
		authors = append(authors, toAuthorDomain(authorM))
	}

	return &entity.Book{
		ID:            data.ID,
		Title:         data.Title,
		YearPublished: data.YearPublished,
		Description:   data.Description,
		ISBN:          data.ISBN,
		CoverImage:    data.CoverImage,
		CreatedBy:     data.CreatedBy,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
		Authors:       authors,
	}
}

func toBookDomainSlice(data []*model.BookModel) []*entity.Book {
	books := make([]*entity.Book, 0, len(data))
	for _, bookM := range data {
		books = append(books, toBookDomain(bookM))
	}

	return books
}

func fromBookDomain(data *entity.Book) *model.BookModel {
	if data == nil {
		return nil
	}

	return &model.BookModel{
		ID:            data.ID,
		Title:         data.Title,
		YearPublished: data.YearPublished,
		Description:   data.Description,
		ISBN:          data.ISBN,
		CoverImage:    data.CoverImage,
		CreatedBy:     data.CreatedBy,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
