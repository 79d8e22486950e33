// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "bookz/internal/delivery/context"
	"bookz/internal/domain/entity"
	domainerrors "bookz/internal/domain/errors"
	"bookz/internal/domain/repository"
	"bookz/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultTopAuthorsLimit = 10

// authorService implements the AuthorUsecase interface.
type authorService struct {
	authorRepo repository.AuthorRepository
	logger     *slog.Logger
}

// AuthorServiceParams holds dependencies for AuthorService, injected by Fx.
type AuthorServiceParams struct {
	fx.In

	AuthorRepo repository.AuthorRepository
	Logger     *slog.Logger
}

// NewAuthorService is the constructor for authorService.
func NewAuthorService(params AuthorServiceParams) usecase.AuthorUsecase {
	return &authorService{
		authorRepo: params.AuthorRepo,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateAuthor adds a new author to the catalog.
func (srv *authorService) CreateAuthor(ctx context.Context, input usecase.AuthorInput) (*entity.Author, error) {
	if input.FullName == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("author full name is required")
	}

	author := &entity.Author{
		ID:        uuid.New(),
		FullName:  input.FullName,
		Biography: input.Biography,
		CreatedAt: time.Now(),
	}

	if err := srv.authorRepo.Create(ctx, author); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create author")
	}

	srv.log(ctx).Info("Author created",
		slog.Any("authorID", author.ID),
		slog.String("fullName", author.FullName),
	)

	return author, nil
}

// GetAuthor retrieves one author by ID.
func (srv *authorService) GetAuthor(ctx context.Context, id uuid.UUID) (*entity.Author, error) {
	author, err := srv.authorRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAuthorNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAuthorNotFound, "get author")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find author")
	}

	return author, nil
}

// ListAuthors retrieves all authors ordered by name.
func (srv *authorService) ListAuthors(ctx context.Context) ([]*entity.Author, error) {
	authors, err := srv.authorRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list authors")
	}

	return authors, nil
}

// UpdateAuthor modifies an existing author.
func (srv *authorService) UpdateAuthor(ctx context.Context, id uuid.UUID, input usecase.AuthorInput) (*entity.Author, error) {
	author, err := srv.GetAuthor(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FullName != "" {
		author.FullName = input.FullName
	}
	author.Biography = input.Biography

	if err := srv.authorRepo.Update(ctx, author); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update author")
	}

	return author, nil
}

// DeleteAuthor removes an author; subscriptions and book links cascade in
// the database.
func (srv *authorService) DeleteAuthor(ctx context.Context, id uuid.UUID) error {
	if _, err := srv.GetAuthor(ctx, id); err != nil {
		return err
	}

	if err := srv.authorRepo.Delete(ctx, id); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete author")
	}

	srv.log(ctx).Info("Author deleted", slog.Any("authorID", id))

	return nil
}

// TopAuthorsByYear ranks authors by books published in the given year.
func (srv *authorService) TopAuthorsByYear(ctx context.Context, year int, limit int) ([]*entity.TopAuthor, error) {
	if limit <= 0 {
		limit = defaultTopAuthorsLimit
	}

	top, err := srv.authorRepo.TopAuthorsByYear(ctx, year, limit)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to rank authors")
	}

	return top, nil
}
