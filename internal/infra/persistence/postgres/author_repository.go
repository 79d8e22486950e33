// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"bookz/internal/domain/entity"
	domainerrors "bookz/internal/domain/errors"
	"bookz/internal/domain/repository"
	"bookz/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// authorRepository implements the repository.AuthorRepository interface using GORM.
type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository is the constructor for authorRepository.
func NewAuthorRepository(db *gorm.DB) repository.AuthorRepository {
	return &authorRepository{
		db: db,
	}
}

// Create persists a new author.
func (repo *authorRepository) Create(ctx context.Context, author *entity.Author) error {
	authorM := fromAuthorDomain(author)

	if err := repo.db.WithContext(ctx).Create(authorM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required author information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create author")
	}

	author.ID = authorM.ID
	author.CreatedAt = authorM.CreatedAt

	return nil
}

// FindByID retrieves an author by their unique ID.
func (repo *authorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Author, error) {
	var authorM model.AuthorModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&authorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAuthorNotFound
		}

		return nil, errors.Wrap(err, "failed to find author by id")
	}

	return toAuthorDomain(&authorM), nil
}

// FindByIDs retrieves the authors for the given IDs. Missing IDs are simply
// omitted from the result.
func (repo *authorRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Author, error) {
	if len(ids) == 0 {
		return []*entity.Author{}, nil
	}

	var authorModels []*model.AuthorModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&authorModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find authors by ids")
	}

	// Preserve the order of the requested IDs.
	byID := make(map[uuid.UUID]*model.AuthorModel, len(authorModels))
	for _, authorM := range authorModels {
		byID[authorM.ID] = authorM
	}

	authors := make([]*entity.Author, 0, len(authorModels))
	for _, id := range ids {
		if authorM, ok := byID[id]; ok {
			authors = append(authors, toAuthorDomain(authorM))
		}
	}

	return authors, nil
}

// FindAll retrieves all authors ordered by name.
func (repo *authorRepository) FindAll(ctx context.Context) ([]*entity.Author, error) {
	var authorModels []*model.AuthorModel

	if err := repo.db.WithContext(ctx).
		Order("full_name ASC").
		Find(&authorModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list authors")
	}

	authors := make([]*entity.Author, 0, len(authorModels))
	for _, authorM := range authorModels {
		authors = append(authors, toAuthorDomain(authorM))
	}

	return authors, nil
}

// Update persists changes to an existing author.
func (repo *authorRepository) Update(ctx context.Context, author *entity.Author) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AuthorModel{}).
		Where("id = ?", author.ID).
		Updates(map[string]any{
			"full_name": author.FullName,
			"biography": author.Biography,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update author")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAuthorNotFound
	}

	return nil
}

// Delete removes an author. Book associations and subscriptions cascade via
// the schema's ON DELETE CASCADE constraints.
func (repo *authorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AuthorModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete author")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAuthorNotFound
	}

	return nil
}

// TopAuthorsByYear returns authors ranked by the number of books they
// published in the given year, busiest first. Ties break alphabetically so
// the ranking is stable.
func (repo *authorRepository) TopAuthorsByYear(ctx context.Context, year int, limit int) ([]*entity.TopAuthor, error) {
	var rows []*entity.TopAuthor

	query := `
		SELECT a.id AS author_id, a.full_name, COUNT(b.id) AS book_count
		FROM authors a
		JOIN book_authors ba ON ba.author_model_id = a.id
		JOIN books b ON b.id = ba.book_model_id
		WHERE b.year_published = ?
		GROUP BY a.id, a.full_name
		ORDER BY book_count DESC, a.full_name ASC
		LIMIT ?
	`

	if err := repo.db.WithContext(ctx).
		Raw(query, year, limit).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to rank authors by year")
	}

	return rows, nil
}

// --- Mapper Functions ---

func toAuthorDomain(data *model.AuthorModel) *entity.Author {
	if data == nil {
		return nil
	}

	return &entity.Author{
		ID:        data.ID,
		FullName:  data.FullName,
		Biography: data.Biography,
		CreatedAt: data.CreatedAt,
	}
}

func fromAuthorDomain(data *entity.Author) *model.AuthorModel {
	if data == nil {
		return nil
	}

	return &model.AuthorModel{
		ID:        data.ID,
		FullName:  data.FullName,
		Biography: data.Biography,
		CreatedAt: data.CreatedAt,
	}
}
