package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bookz/internal/domain/entity"
	domainservice "bookz/internal/domain/service"
	mockRepo "bookz/internal/mocks/repository"
	mockSvc "bookz/internal/mocks/service"
	"bookz/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (
	usecase.NotificationUsecase,
	*mockRepo.MockBookRepository,
	*mockRepo.MockSubscriptionRepository,
	*mockSvc.MockSMSGateway,
) {
	bookRepo := mockRepo.NewMockBookRepository(t)
	subscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	gateway := mockSvc.NewMockSMSGateway(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewNotificationService(NotificationServiceParams{
		Logger:           logger,
		BookRepo:         bookRepo,
		SubscriptionRepo: subscriptionRepo,
		Gateway:          gateway,
	})

	return service, bookRepo, subscriptionRepo, gateway
}

func testReceipt() *domainservice.SMSReceipt {
	return &domainservice.SMSReceipt{MessageIDs: []string{"1001"}, Cost: 1.5, Balance: 98.5}
}

func TestFormatNewBookMessage(t *testing.T) {
	msg := FormatNewBookMessage([]string{"Александр Пушкин"}, "Евгений Онегин", "978-5-17-090000-1")
	assert.Equal(t, `Новая книга от Александр Пушкин: "Евгений Онегин" (ISBN: 978-5-17-090000-1)`, msg)

	msg = FormatNewBookMessage([]string{"Илья Ильф", "Евгений Петров"}, "Двенадцать стульев", "")
	assert.Equal(t, `Новая книга от Илья Ильф, Евгений Петров: "Двенадцать стульев"`, msg)
}

func TestNotificationService_NotifyNewBook_ResolvesOwnAndProfilePhones(t *testing.T) {
	service, bookRepo, subscriptionRepo, gateway := createTestNotificationService(t)

	ctx := context.Background()
	authorID := uuid.New()
	bookID := uuid.New()
	userID := uuid.New()

	book := &entity.Book{
		ID:    bookID,
		Title: "Евгений Онегин",
		ISBN:  "978-5-17-090000-1",
		Authors: []*entity.Author{
			{ID: authorID, FullName: "Александр Пушкин"},
		},
	}
	bookRepo.EXPECT().FindByID(ctx, bookID).Return(book, nil)

	// One guest subscription with its own phone, one account subscription
	// falling back to the profile phone.
	subscriptionRepo.EXPECT().FindSubscribersByAuthor(ctx, authorID).Return([]*entity.AuthorSubscriber{
		{SubscriptionID: uuid.New(), AuthorID: authorID, PhoneNumber: "79001234567"},
		{SubscriptionID: uuid.New(), AuthorID: authorID, UserID: &userID, UserPhone: "79007654321"},
	}, nil)

	wantMessage := `Новая книга от Александр Пушкин: "Евгений Онегин" (ISBN: 978-5-17-090000-1)`
	gateway.EXPECT().Send(ctx, "79001234567", wantMessage, "").Return(testReceipt(), nil).Once()
	gateway.EXPECT().Send(ctx, "79007654321", wantMessage, "").Return(testReceipt(), nil).Once()

	result, err := service.NotifyNewBook(ctx, bookID)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Sent)
	assert.Equal(t, 0, result.Failed)
	assert.Empty(t, result.Errors)
}

func TestNotificationService_NotifyNewBook_DeduplicatesAcrossAuthors(t *testing.T) {
	service, bookRepo, subscriptionRepo, gateway := createTestNotificationService(t)

	ctx := context.Background()
	authorA := uuid.New()
	authorB := uuid.New()
	bookID := uuid.New()

	book := &entity.Book{
		ID:    bookID,
		Title: "Двенадцать стульев",
		Authors: []*entity.Author{
			{ID: authorA, FullName: "Илья Ильф"},
			{ID: authorB, FullName: "Евгений Петров"},
		},
	}
	bookRepo.EXPECT().FindByID(ctx, bookID).Return(book, nil)

	// The same phone is subscribed to both authors and must receive one SMS.
	subscriptionRepo.EXPECT().FindSubscribersByAuthor(ctx, authorA).Return([]*entity.AuthorSubscriber{
		{SubscriptionID: uuid.New(), AuthorID: authorA, PhoneNumber: "79001234567"},
	}, nil)
	subscriptionRepo.EXPECT().FindSubscribersByAuthor(ctx, authorB).Return([]*entity.AuthorSubscriber{
		{SubscriptionID: uuid.New(), AuthorID: authorB, PhoneNumber: "79001234567"},
		{SubscriptionID: uuid.New(), AuthorID: authorB, PhoneNumber: "79009999999"},
	}, nil)

	gateway.EXPECT().Send(ctx, "79001234567", mock.Anything, "").Return(testReceipt(), nil).Once()
	gateway.EXPECT().Send(ctx, "79009999999", mock.Anything, "").Return(testReceipt(), nil).Once()

	result, err := service.NotifyNewBook(ctx, bookID)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Sent)
}

func TestNotificationService_NotifyNewBook_SkipsDeadSubscriptions(t *testing.T) {
	service, bookRepo, subscriptionRepo, _ := createTestNotificationService(t)

	ctx := context.Background()
	authorID := uuid.New()
	bookID := uuid.New()
	userID := uuid.New()

	book := &entity.Book{
		ID:      bookID,
		Title:   "Без подписчиков",
		Authors: []*entity.Author{{ID: authorID, FullName: "Никто"}},
	}
	bookRepo.EXPECT().FindByID(ctx, bookID).Return(book, nil)

	// Account subscription whose user cleared their profile phone: no
	// resolvable number, skipped without error.
	subscriptionRepo.EXPECT().FindSubscribersByAuthor(ctx, authorID).Return([]*entity.AuthorSubscriber{
		{SubscriptionID: uuid.New(), AuthorID: authorID, UserID: &userID},
	}, nil)

	result, err := service.NotifyNewBook(ctx, bookID)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Sent)
	assert.Equal(t, 0, result.Failed)
	assert.Empty(t, result.Errors)
}

func TestNotificationService_NotifyNewBook_NoSubscribersShortCircuits(t *testing.T) {
	service, bookRepo, subscriptionRepo, _ := createTestNotificationService(t)

	ctx := context.Background()
	authorID := uuid.New()
	bookID := uuid.New()

	book := &entity.Book{
		ID:      bookID,
		Title:   "Тишина",
		Authors: []*entity.Author{{ID: authorID, FullName: "Автор"}},
	}
	bookRepo.EXPECT().FindByID(ctx, bookID).Return(book, nil)
	subscriptionRepo.EXPECT().FindSubscribersByAuthor(ctx, authorID).Return([]*entity.AuthorSubscriber{}, nil)

	// No gateway expectations: zero recipients must mean zero gateway calls.
	result, err := service.NotifyNewBook(ctx, bookID)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Sent)
	assert.Equal(t, 0, result.Failed)
}

func TestNotificationService_NotifyNewBook_NoAuthors(t *testing.T) {
	service, bookRepo, _, _ := createTestNotificationService(t)

	ctx := context.Background()
	bookID := uuid.New()

	bookRepo.EXPECT().FindByID(ctx, bookID).Return(&entity.Book{ID: bookID, Title: "Сирота"}, nil)

	result, err := service.NotifyNewBook(ctx, bookID)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Sent)
	assert.Equal(t, 0, result.Failed)
}

func TestNotificationService_NotifyNewBook_PartialFailure(t *testing.T) {
	service, bookRepo, subscriptionRepo, gateway := createTestNotificationService(t)

	ctx := context.Background()
	authorID := uuid.New()
	bookID := uuid.New()

	book := &entity.Book{
		ID:      bookID,
		Title:   "Наполовину",
		Authors: []*entity.Author{{ID: authorID, FullName: "Автор"}},
	}
	bookRepo.EXPECT().FindByID(ctx, bookID).Return(book, nil)
	subscriptionRepo.EXPECT().FindSubscribersByAuthor(ctx, authorID).Return([]*entity.AuthorSubscriber{
		{SubscriptionID: uuid.New(), AuthorID: authorID, PhoneNumber: "79001234567"},
		{SubscriptionID: uuid.New(), AuthorID: authorID, PhoneNumber: "79007654321"},
	}, nil)

	gateway.EXPECT().Send(ctx, "79001234567", mock.Anything, "").Return(testReceipt(), nil).Once()
	gateway.EXPECT().Send(ctx, "79007654321", mock.Anything, "").
		Return(nil, errors.New("invalid recipient")).Once()

	result, err := service.NotifyNewBook(ctx, bookID)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "79007654321", result.Errors[0].Phone)
	assert.Contains(t, result.Errors[0].Detail, "invalid recipient")
}

func TestNotificationService_NotifyNewBook_TotalGatewayFailure(t *testing.T) {
	service, bookRepo, subscriptionRepo, gateway := createTestNotificationService(t)

	ctx := context.Background()
	authorID := uuid.New()
	bookID := uuid.New()

	book := &entity.Book{
		ID:      bookID,
		Title:   "Все мимо",
		Authors: []*entity.Author{{ID: authorID, FullName: "Автор"}},
	}
	bookRepo.EXPECT().FindByID(ctx, bookID).Return(book, nil)
	subscriptionRepo.EXPECT().FindSubscribersByAuthor(ctx, authorID).Return([]*entity.AuthorSubscriber{
		{SubscriptionID: uuid.New(), AuthorID: authorID, PhoneNumber: "79001234567"},
		{SubscriptionID: uuid.New(), AuthorID: authorID, PhoneNumber: "79007654321"},
	}, nil)

	gateway.EXPECT().Send(ctx, mock.Anything, mock.Anything, "").
		Return(nil, errors.New("gateway unreachable")).Times(2)

	result, err := service.NotifyNewBook(ctx, bookID)

	// A dead gateway is data, not an error.
	require.NoError(t, err)
	assert.Equal(t, 0, result.Sent)
	assert.Equal(t, 2, result.Failed)
	assert.Len(t, result.Errors, 2)
}

func TestNotificationService_NotifyNewBook_SecondTriggerSendsAgain(t *testing.T) {
	service, bookRepo, subscriptionRepo, gateway := createTestNotificationService(t)

	ctx := context.Background()
	authorID := uuid.New()
	bookID := uuid.New()

	book := &entity.Book{
		ID:      bookID,
		Title:   "Дважды",
		Authors: []*entity.Author{{ID: authorID, FullName: "Автор"}},
	}
	bookRepo.EXPECT().FindByID(ctx, bookID).Return(book, nil).Times(2)
	subscriptionRepo.EXPECT().FindSubscribersByAuthor(ctx, authorID).Return([]*entity.AuthorSubscriber{
		{SubscriptionID: uuid.New(), AuthorID: authorID, PhoneNumber: "79001234567"},
	}, nil).Times(2)

	// There is no dispatch ledger: triggering twice sends twice.
	gateway.EXPECT().Send(ctx, "79001234567", mock.Anything, "").Return(testReceipt(), nil).Times(2)

	first, err := service.NotifyNewBook(ctx, bookID)
	require.NoError(t, err)
	second, err := service.NotifyNewBook(ctx, bookID)
	require.NoError(t, err)

	assert.Equal(t, 1, first.Sent)
	assert.Equal(t, 1, second.Sent)
}

func TestNotificationService_NotifyNewBook_BookNotFound(t *testing.T) {
	service, bookRepo, _, _ := createTestNotificationService(t)

	ctx := context.Background()
	bookID := uuid.New()

	bookRepo.EXPECT().FindByID(ctx, bookID).Return(nil, errors.New("record not found"))

	result, err := service.NotifyNewBook(ctx, bookID)

	require.Error(t, err)
	assert.Nil(t, result)
}

func TestNotificationService_NotifyNewBook_SubscriberLookupFailure(t *testing.T) {
	service, bookRepo, subscriptionRepo, _ := createTestNotificationService(t)

	ctx := context.Background()
	authorID := uuid.New()
	bookID := uuid.New()

	book := &entity.Book{
		ID:      bookID,
		Title:   "Сломанный справочник",
		Authors: []*entity.Author{{ID: authorID, FullName: "Автор"}},
	}
	bookRepo.EXPECT().FindByID(ctx, bookID).Return(book, nil)
	subscriptionRepo.EXPECT().FindSubscribersByAuthor(ctx, authorID).
		Return(nil, errors.New("connection refused"))

	result, err := service.NotifyNewBook(ctx, bookID)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Sent)
	require.Len(t, result.Errors, 1)
	assert.Empty(t, result.Errors[0].Phone)
}

func TestNotificationService_NotifyRecent_MergesResults(t *testing.T) {
	service, bookRepo, subscriptionRepo, gateway := createTestNotificationService(t)

	ctx := context.Background()
	authorA := uuid.New()
	authorB := uuid.New()

	books := []*entity.Book{
		{ID: uuid.New(), Title: "Первая", Authors: []*entity.Author{{ID: authorA, FullName: "А"}}},
		{ID: uuid.New(), Title: "Вторая", Authors: []*entity.Author{{ID: authorB, FullName: "Б"}}},
	}
	bookRepo.EXPECT().FindCreatedSince(ctx, mock.Anything).Return(books, nil)

	subscriptionRepo.EXPECT().FindSubscribersByAuthor(ctx, authorA).Return([]*entity.AuthorSubscriber{
		{SubscriptionID: uuid.New(), AuthorID: authorA, PhoneNumber: "79001111111"},
	}, nil)
	subscriptionRepo.EXPECT().FindSubscribersByAuthor(ctx, authorB).Return([]*entity.AuthorSubscriber{
		{SubscriptionID: uuid.New(), AuthorID: authorB, PhoneNumber: "79002222222"},
	}, nil)

	gateway.EXPECT().Send(ctx, "79001111111", mock.Anything, "").Return(testReceipt(), nil).Once()
	gateway.EXPECT().Send(ctx, "79002222222", mock.Anything, "").
		Return(nil, errors.New("rejected")).Once()

	result, err := service.NotifyRecent(ctx, 24*time.Hour)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 1, result.Failed)
	assert.Len(t, result.Errors, 1)
}

func TestNotificationService_NotifyRecent_InvalidWindow(t *testing.T) {
	service, _, _, _ := createTestNotificationService(t)

	_, err := service.NotifyRecent(context.Background(), 0)

	require.ErrorIs(t, err, ErrInvalidWindow)
}

func TestNotificationService_SendTest(t *testing.T) {
	service, _, _, gateway := createTestNotificationService(t)

	ctx := context.Background()
	gateway.EXPECT().Send(ctx, "79001234567", mock.Anything, "").Return(testReceipt(), nil)

	require.NoError(t, service.SendTest(ctx, "79001234567"))
}

func TestNotificationService_SendTest_Failure(t *testing.T) {
	service, _, _, gateway := createTestNotificationService(t)

	ctx := context.Background()
	gateway.EXPECT().Send(ctx, "79001234567", mock.Anything, "").
		Return(nil, errors.New("no credit"))

	err := service.SendTest(ctx, "79001234567")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no credit")
}

func TestNotificationService_Balance(t *testing.T) {
	service, _, _, gateway := createTestNotificationService(t)

	ctx := context.Background()
	gateway.EXPECT().Balance(ctx).Return(42.5, nil)

	balance, err := service.Balance(ctx)

	require.NoError(t, err)
	assert.InDelta(t, 42.5, balance, 0.0001)
}
