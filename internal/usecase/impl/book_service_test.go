package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bookz/internal/domain/entity"
	domainerrors "bookz/internal/domain/errors"
	"bookz/internal/domain/repository"
	mockRepo "bookz/internal/mocks/repository"
	mockUC "bookz/internal/mocks/usecase"
	"bookz/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bookServiceMocks struct {
	txManager    *mockRepo.MockTransactionManager
	txFactory    *mockRepo.MockRepositoryFactory
	txBookRepo   *mockRepo.MockBookRepository
	bookRepo     *mockRepo.MockBookRepository
	authorRepo   *mockRepo.MockAuthorRepository
	notification *mockUC.MockNotificationUsecase
}

func createTestBookService(t *testing.T) (usecase.BookUsecase, *bookServiceMocks) {
	m := &bookServiceMocks{
		txManager:    mockRepo.NewMockTransactionManager(t),
		txFactory:    mockRepo.NewMockRepositoryFactory(t),
		txBookRepo:   mockRepo.NewMockBookRepository(t),
		bookRepo:     mockRepo.NewMockBookRepository(t),
		authorRepo:   mockRepo.NewMockAuthorRepository(t),
		notification: mockUC.NewMockNotificationUsecase(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewBookService(BookServiceParams{
		TxManager:    m.txManager,
		BookRepo:     m.bookRepo,
		AuthorRepo:   m.authorRepo,
		Notification: m.notification,
		Logger:       logger,
	})

	return service, m
}

// expectTransaction wires the transaction manager mock to run the callback
// against the transactional factory.
func (m *bookServiceMocks) expectTransaction() {
	m.txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.txFactory)
		})
}

func testActor() *entity.User {
	return &entity.User{ID: uuid.New(), Username: "librarian", Role: entity.RoleUser}
}

func TestBookService_CreateBook_Success(t *testing.T) {
	service, m := createTestBookService(t)

	ctx := context.Background()
	actor := testActor()
	authorID := uuid.New()
	authors := []*entity.Author{{ID: authorID, FullName: "Александр Пушкин"}}

	m.authorRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{authorID}).Return(authors, nil)
	m.expectTransaction()
	m.txFactory.EXPECT().NewBookRepository().Return(m.txBookRepo)
	m.txBookRepo.EXPECT().Create(ctx, mock.Anything, []uuid.UUID{authorID}).Return(nil)
	m.notification.EXPECT().NotifyNewBook(ctx, mock.Anything).
		Return(&entity.NotificationResult{Sent: 2}, nil)

	book, result, err := service.CreateBook(ctx, actor, usecase.BookInput{
		Title:         "Евгений Онегин",
		YearPublished: 1833,
		ISBN:          "978-5-17-090000-1",
		AuthorIDs:     []uuid.UUID{authorID},
	})

	require.NoError(t, err)
	assert.Equal(t, "Евгений Онегин", book.Title)
	assert.Equal(t, actor.ID, book.CreatedBy)
	require.Len(t, book.Authors, 1)
	assert.Equal(t, 2, result.Sent)
}

func TestBookService_CreateBook_NotificationFailureDoesNotFailCreation(t *testing.T) {
	service, m := createTestBookService(t)

	ctx := context.Background()
	authorID := uuid.New()

	m.authorRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{authorID}).
		Return([]*entity.Author{{ID: authorID, FullName: "Автор"}}, nil)
	m.expectTransaction()
	m.txFactory.EXPECT().NewBookRepository().Return(m.txBookRepo)
	m.txBookRepo.EXPECT().Create(ctx, mock.Anything, []uuid.UUID{authorID}).Return(nil)
	m.notification.EXPECT().NotifyNewBook(ctx, mock.Anything).
		Return(nil, errors.New("subscriber directory unavailable"))

	book, result, err := service.CreateBook(ctx, testActor(), usecase.BookInput{
		Title:     "Книга без рассылки",
		AuthorIDs: []uuid.UUID{authorID},
	})

	require.NoError(t, err)
	require.NotNil(t, book)
	assert.Equal(t, 0, result.Sent)
	assert.Equal(t, 0, result.Failed)
}

func TestBookService_CreateBook_UnknownAuthor(t *testing.T) {
	service, m := createTestBookService(t)

	ctx := context.Background()
	known := uuid.New()
	unknown := uuid.New()

	m.authorRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{known, unknown}).
		Return([]*entity.Author{{ID: known, FullName: "Автор"}}, nil)

	_, _, err := service.CreateBook(ctx, testActor(), usecase.BookInput{
		Title:     "Неизвестный соавтор",
		AuthorIDs: []uuid.UUID{known, unknown},
	})

	require.ErrorIs(t, err, domainerrors.ErrAuthorNotFound)
}

func TestBookService_CreateBook_NoAuthors(t *testing.T) {
	service, _ := createTestBookService(t)

	_, _, err := service.CreateBook(context.Background(), testActor(), usecase.BookInput{
		Title: "Сирота",
	})

	require.Error(t, err)
}

func TestBookService_CreateBook_TransactionFailure(t *testing.T) {
	service, m := createTestBookService(t)

	ctx := context.Background()
	authorID := uuid.New()

	m.authorRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{authorID}).
		Return([]*entity.Author{{ID: authorID, FullName: "Автор"}}, nil)
	m.txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		Return(errors.New("deadlock detected"))

	_, _, err := service.CreateBook(ctx, testActor(), usecase.BookInput{
		Title:     "Не сохранилась",
		AuthorIDs: []uuid.UUID{authorID},
	})

	require.Error(t, err)
}

func TestBookService_UpdateBook_OnlyCreatorOrAdmin(t *testing.T) {
	service, m := createTestBookService(t)

	ctx := context.Background()
	bookID := uuid.New()
	creatorID := uuid.New()

	m.bookRepo.EXPECT().FindByID(ctx, bookID).Return(&entity.Book{
		ID:        bookID,
		Title:     "Чужая книга",
		CreatedBy: creatorID,
	}, nil)

	stranger := &entity.User{ID: uuid.New(), Role: entity.RoleUser}
	_, err := service.UpdateBook(ctx, stranger, bookID, usecase.BookInput{
		Title:     "Перехват",
		AuthorIDs: []uuid.UUID{uuid.New()},
	})

	require.ErrorIs(t, err, domainerrors.ErrBookForbidden)
}

func TestBookService_UpdateBook_AdminAllowed(t *testing.T) {
	service, m := createTestBookService(t)

	ctx := context.Background()
	bookID := uuid.New()
	authorID := uuid.New()

	m.bookRepo.EXPECT().FindByID(ctx, bookID).Return(&entity.Book{
		ID:        bookID,
		Title:     "Старое название",
		CreatedBy: uuid.New(),
	}, nil)
	m.authorRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{authorID}).
		Return([]*entity.Author{{ID: authorID, FullName: "Автор"}}, nil)
	m.expectTransaction()
	m.txFactory.EXPECT().NewBookRepository().Return(m.txBookRepo)
	m.txBookRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)
	m.txBookRepo.EXPECT().ReplaceAuthors(ctx, bookID, []uuid.UUID{authorID}).Return(nil)

	admin := &entity.User{ID: uuid.New(), Role: entity.RoleAdmin}
	book, err := service.UpdateBook(ctx, admin, bookID, usecase.BookInput{
		Title:     "Новое название",
		AuthorIDs: []uuid.UUID{authorID},
	})

	require.NoError(t, err)
	assert.Equal(t, "Новое название", book.Title)
}

func TestBookService_DeleteBook_Creator(t *testing.T) {
	service, m := createTestBookService(t)

	ctx := context.Background()
	bookID := uuid.New()
	creator := testActor()

	m.bookRepo.EXPECT().FindByID(ctx, bookID).Return(&entity.Book{
		ID:        bookID,
		CreatedBy: creator.ID,
	}, nil)
	m.bookRepo.EXPECT().Delete(ctx, bookID).Return(nil)

	require.NoError(t, service.DeleteBook(ctx, creator, bookID))
}

func TestBookService_GetBook_NotFound(t *testing.T) {
	service, m := createTestBookService(t)

	ctx := context.Background()
	bookID := uuid.New()

	m.bookRepo.EXPECT().FindByID(ctx, bookID).Return(nil, repository.ErrBookNotFound)

	_, err := service.GetBook(ctx, bookID)

	require.ErrorIs(t, err, domainerrors.ErrBookNotFound)
}

func TestBookService_ListBooks_PassesFilter(t *testing.T) {
	service, m := createTestBookService(t)

	ctx := context.Background()
	authorID := uuid.New()
	filter := repository.BookFilter{AuthorID: &authorID, Year: 1833, Limit: 20}

	m.bookRepo.EXPECT().FindAll(ctx, filter).Return([]*entity.Book{{Title: "Найдена"}}, nil)

	books, err := service.ListBooks(ctx, filter)

	require.NoError(t, err)
	require.Len(t, books, 1)
}
