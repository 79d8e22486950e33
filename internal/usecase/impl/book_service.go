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

// bookService implements the BookUsecase interface.
type bookService struct {
	txManager    repository.TransactionManager
	bookRepo     repository.BookRepository
	authorRepo   repository.AuthorRepository
	notification usecase.NotificationUsecase
	logger       *slog.Logger
}

// BookServiceParams holds dependencies for BookService, injected by Fx.
type BookServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	BookRepo     repository.BookRepository
	AuthorRepo   repository.AuthorRepository
	Notification usecase.NotificationUsecase
	Logger       *slog.Logger
}

// NewBookService is the constructor for bookService.
func NewBookService(params BookServiceParams) usecase.BookUsecase {
	return &bookService{
		txManager:    params.TxManager,
		bookRepo:     params.BookRepo,
		authorRepo:   params.AuthorRepo,
		notification: params.Notification,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *bookService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateBook persists the book and its author associations in one
// transaction, then fires the subscriber notification exactly once. The
// notification outcome is carried back to the caller as data; a gateway
// that is down cannot fail the creation.
func (srv *bookService) CreateBook(ctx context.Context, actor *entity.User, input usecase.BookInput) (*entity.Book, *entity.NotificationResult, error) {
	authors, err := srv.resolveAuthors(ctx, input.AuthorIDs)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	book := &entity.Book{
		ID:            uuid.New(),
		Title:         input.Title,
		YearPublished: input.YearPublished,
		Description:   input.Description,
		ISBN:          input.ISBN,
		CoverImage:    input.CoverImage,
		CreatedBy:     actor.ID,
		CreatedAt:     now,
		UpdatedAt:     now,
		Authors:       authors,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewBookRepository().Create(ctx, book, input.AuthorIDs)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute book creation transaction",
			slog.String("title", input.Title),
			slog.Any("error", err),
		)

		return nil, nil, domainerrors.NewDatabaseExecuteError(err, "failed to create book")
	}

	srv.log(ctx).Info("Book created",
		slog.Any("bookID", book.ID),
		slog.String("title", book.Title),
		slog.Int("authors", len(authors)),
	)

	result, err := srv.notification.NotifyNewBook(ctx, book.ID)
	if err != nil {
		// The book exists; a broken notification path is logged and reported
		// as an empty result, never as a creation failure.
		srv.log(ctx).Warn("New-book notification failed",
			slog.Any("bookID", book.ID),
			slog.Any("error", err),
		)
		result = &entity.NotificationResult{}
	}

	return book, result, nil
}

// GetBook retrieves one book with its authors.
func (srv *bookService) GetBook(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	book, err := srv.bookRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBookNotFound, "get book")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find book")
	}

	return book, nil
}

// ListBooks retrieves books matching the filter, newest first.
func (srv *bookService) ListBooks(ctx context.Context, filter repository.BookFilter) ([]*entity.Book, error) {
	books, err := srv.bookRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list books")
	}

	return books, nil
}

// UpdateBook modifies a book's fields and replaces its author associations.
func (srv *bookService) UpdateBook(ctx context.Context, actor *entity.User, id uuid.UUID, input usecase.BookInput) (*entity.Book, error) {
	book, err := srv.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}

	if !book.CanModify(actor) {
		return nil, errors.Wrap(domainerrors.ErrBookForbidden, "update book")
	}

	authors, err := srv.resolveAuthors(ctx, input.AuthorIDs)
	if err != nil {
		return nil, err
	}

	book.Title = input.Title
	book.YearPublished = input.YearPublished
	book.Description = input.Description
	book.ISBN = input.ISBN
	book.CoverImage = input.CoverImage
	book.UpdatedAt = time.Now()
	book.Authors = authors

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.NewBookRepository()

		if err := bookRepo.Update(ctx, book); err != nil {
			return errors.Wrap(err, "failed to update book")
		}

		return bookRepo.ReplaceAuthors(ctx, book.ID, input.AuthorIDs)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute book update transaction",
			slog.Any("bookID", id),
			slog.Any("error", err),
		)

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update book")
	}

	return book, nil
}

// DeleteBook removes a book and its author associations.
func (srv *bookService) DeleteBook(ctx context.Context, actor *entity.User, id uuid.UUID) error {
	book, err := srv.GetBook(ctx, id)
	if err != nil {
		return err
	}

	if !book.CanModify(actor) {
		return errors.Wrap(domainerrors.ErrBookForbidden, "delete book")
	}

	if err := srv.bookRepo.Delete(ctx, id); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete book")
	}

	srv.log(ctx).Info("Book deleted", slog.Any("bookID", id))

	return nil
}

// resolveAuthors loads the referenced authors and rejects the input when any
// ID does not exist. At least one author is required.
func (srv *bookService) resolveAuthors(ctx context.Context, authorIDs []uuid.UUID) ([]*entity.Author, error) {
	if len(authorIDs) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("at least one author is required")
	}

	authors, err := srv.authorRepo.FindByIDs(ctx, authorIDs)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load authors")
	}

	if len(authors) != len(authorIDs) {
		return nil, errors.Wrap(domainerrors.ErrAuthorNotFound, "one or more author IDs do not exist")
	}

	return authors, nil
}
