package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bookz/internal/domain/entity"
	domainerrors "bookz/internal/domain/errors"
	"bookz/internal/domain/repository"
	mockRepo "bookz/internal/mocks/repository"
	mockSvc "bookz/internal/mocks/service"
	"bookz/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestSubscriptionService(t *testing.T) (
	usecase.SubscriptionUsecase,
	*mockRepo.MockSubscriptionRepository,
	*mockRepo.MockAuthorRepository,
	*mockSvc.MockQRCodeService,
) {
	subscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	authorRepo := mockRepo.NewMockAuthorRepository(t)
	qrcodeService := mockSvc.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewSubscriptionService(SubscriptionServiceParams{
		SubscriptionRepo: subscriptionRepo,
		AuthorRepo:       authorRepo,
		QRCodeService:    qrcodeService,
		Logger:           logger,
	})

	return service, subscriptionRepo, authorRepo, qrcodeService
}

func testAuthor(id uuid.UUID) *entity.Author {
	return &entity.Author{ID: id, FullName: "Александр Пушкин", CreatedAt: time.Now()}
}

func TestSubscriptionService_SubscribeGuest_Success(t *testing.T) {
	service, subscriptionRepo, authorRepo, _ := createTestSubscriptionService(t)

	ctx := context.Background()
	authorID := uuid.New()

	authorRepo.EXPECT().FindByID(ctx, authorID).Return(testAuthor(authorID), nil)
	subscriptionRepo.EXPECT().FindByPhoneAndAuthor(ctx, "79001234567", authorID).
		Return(nil, repository.ErrSubscriptionNotFound)
	subscriptionRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	subscription, err := service.SubscribeGuest(ctx, "79001234567", authorID)

	require.NoError(t, err)
	assert.True(t, subscription.IsGuest())
	assert.Equal(t, "79001234567", subscription.PhoneNumber)
	assert.Equal(t, authorID, subscription.AuthorID)
}

func TestSubscriptionService_SubscribeGuest_InvalidPhone(t *testing.T) {
	service, _, _, _ := createTestSubscriptionService(t)

	cases := []string{"123", "abc1234567890", "+79001234567", "1234567890123456", ""}
	for _, phone := range cases {
		_, err := service.SubscribeGuest(context.Background(), phone, uuid.New())
		require.Error(t, err, "phone %q must be rejected", phone)
	}
}

func TestSubscriptionService_SubscribeGuest_DuplicateReturnsExisting(t *testing.T) {
	service, subscriptionRepo, authorRepo, _ := createTestSubscriptionService(t)

	ctx := context.Background()
	authorID := uuid.New()
	existing := &entity.Subscription{
		ID:          uuid.New(),
		AuthorID:    authorID,
		PhoneNumber: "79001234567",
	}

	authorRepo.EXPECT().FindByID(ctx, authorID).Return(testAuthor(authorID), nil)
	subscriptionRepo.EXPECT().FindByPhoneAndAuthor(ctx, "79001234567", authorID).Return(existing, nil)

	subscription, err := service.SubscribeGuest(ctx, "79001234567", authorID)

	require.NoError(t, err)
	assert.Equal(t, existing.ID, subscription.ID)
}

func TestSubscriptionService_SubscribeGuest_AuthorNotFound(t *testing.T) {
	service, _, authorRepo, _ := createTestSubscriptionService(t)

	ctx := context.Background()
	authorID := uuid.New()

	authorRepo.EXPECT().FindByID(ctx, authorID).Return(nil, repository.ErrAuthorNotFound)

	_, err := service.SubscribeGuest(ctx, "79001234567", authorID)

	require.ErrorIs(t, err, domainerrors.ErrAuthorNotFound)
}

func TestSubscriptionService_SubscribeUser_WithoutPhone(t *testing.T) {
	service, subscriptionRepo, authorRepo, _ := createTestSubscriptionService(t)

	ctx := context.Background()
	authorID := uuid.New()
	userID := uuid.New()

	authorRepo.EXPECT().FindByID(ctx, authorID).Return(testAuthor(authorID), nil)
	subscriptionRepo.EXPECT().FindByUserAndAuthor(ctx, userID, authorID).
		Return(nil, repository.ErrSubscriptionNotFound)
	subscriptionRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	subscription, err := service.SubscribeUser(ctx, userID, authorID, "")

	require.NoError(t, err)
	require.NotNil(t, subscription.UserID)
	assert.Equal(t, userID, *subscription.UserID)
	assert.Empty(t, subscription.PhoneNumber)
}

func TestSubscriptionService_SubscribeUser_InvalidPhone(t *testing.T) {
	service, _, _, _ := createTestSubscriptionService(t)

	_, err := service.SubscribeUser(context.Background(), uuid.New(), uuid.New(), "not-a-phone")

	require.ErrorIs(t, err, domainerrors.ErrInvalidPhoneNumber)
}

func TestSubscriptionService_SubscribeUser_DuplicateReturnsExisting(t *testing.T) {
	service, subscriptionRepo, authorRepo, _ := createTestSubscriptionService(t)

	ctx := context.Background()
	authorID := uuid.New()
	userID := uuid.New()
	existing := &entity.Subscription{ID: uuid.New(), UserID: &userID, AuthorID: authorID}

	authorRepo.EXPECT().FindByID(ctx, authorID).Return(testAuthor(authorID), nil)
	subscriptionRepo.EXPECT().FindByUserAndAuthor(ctx, userID, authorID).Return(existing, nil)

	subscription, err := service.SubscribeUser(ctx, userID, authorID, "")

	require.NoError(t, err)
	assert.Equal(t, existing.ID, subscription.ID)
}

func TestSubscriptionService_SubscribeUser_CreateRaceReturnsWinner(t *testing.T) {
	service, subscriptionRepo, authorRepo, _ := createTestSubscriptionService(t)

	ctx := context.Background()
	authorID := uuid.New()
	userID := uuid.New()
	winner := &entity.Subscription{ID: uuid.New(), UserID: &userID, AuthorID: authorID}

	authorRepo.EXPECT().FindByID(ctx, authorID).Return(testAuthor(authorID), nil)
	subscriptionRepo.EXPECT().FindByUserAndAuthor(ctx, userID, authorID).
		Return(nil, repository.ErrSubscriptionNotFound).Once()
	subscriptionRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateSubscription)
	subscriptionRepo.EXPECT().FindByUserAndAuthor(ctx, userID, authorID).Return(winner, nil).Once()

	subscription, err := service.SubscribeUser(ctx, userID, authorID, "")

	require.NoError(t, err)
	assert.Equal(t, winner.ID, subscription.ID)
}

func TestSubscriptionService_Unsubscribe_Owner(t *testing.T) {
	service, subscriptionRepo, _, _ := createTestSubscriptionService(t)

	ctx := context.Background()
	userID := uuid.New()
	subscriptionID := uuid.New()

	subscriptionRepo.EXPECT().FindByID(ctx, subscriptionID).Return(&entity.Subscription{
		ID:     subscriptionID,
		UserID: &userID,
	}, nil)
	subscriptionRepo.EXPECT().Delete(ctx, subscriptionID).Return(nil)

	require.NoError(t, service.Unsubscribe(ctx, subscriptionID, userID))
}

func TestSubscriptionService_Unsubscribe_NotOwner(t *testing.T) {
	service, subscriptionRepo, _, _ := createTestSubscriptionService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	subscriptionID := uuid.New()

	subscriptionRepo.EXPECT().FindByID(ctx, subscriptionID).Return(&entity.Subscription{
		ID:     subscriptionID,
		UserID: &ownerID,
	}, nil)

	err := service.Unsubscribe(ctx, subscriptionID, uuid.New())

	require.ErrorIs(t, err, domainerrors.ErrSubscriptionForbidden)
}

func TestSubscriptionService_Unsubscribe_GuestSubscriptionForbidden(t *testing.T) {
	service, subscriptionRepo, _, _ := createTestSubscriptionService(t)

	ctx := context.Background()
	subscriptionID := uuid.New()

	subscriptionRepo.EXPECT().FindByID(ctx, subscriptionID).Return(&entity.Subscription{
		ID:          subscriptionID,
		PhoneNumber: "79001234567",
	}, nil)

	err := service.Unsubscribe(ctx, subscriptionID, uuid.New())

	require.ErrorIs(t, err, domainerrors.ErrSubscriptionForbidden)
}

func TestSubscriptionService_Unsubscribe_NotFound(t *testing.T) {
	service, subscriptionRepo, _, _ := createTestSubscriptionService(t)

	ctx := context.Background()
	subscriptionID := uuid.New()

	subscriptionRepo.EXPECT().FindByID(ctx, subscriptionID).
		Return(nil, repository.ErrSubscriptionNotFound)

	err := service.Unsubscribe(ctx, subscriptionID, uuid.New())

	require.ErrorIs(t, err, domainerrors.ErrSubscriptionNotFound)
}

func TestSubscriptionService_GetStatus(t *testing.T) {
	service, subscriptionRepo, _, _ := createTestSubscriptionService(t)

	ctx := context.Background()
	authorID := uuid.New()
	userID := uuid.New()
	existing := &entity.Subscription{ID: uuid.New(), UserID: &userID, AuthorID: authorID}

	subscriptionRepo.EXPECT().FindByUserAndAuthor(ctx, userID, authorID).Return(existing, nil).Once()

	status, err := service.GetStatus(ctx, authorID, &userID, "")
	require.NoError(t, err)
	assert.True(t, status.IsSubscribed)
	assert.Equal(t, existing.ID, status.Subscription.ID)

	subscriptionRepo.EXPECT().FindByPhoneAndAuthor(ctx, "79001234567", authorID).
		Return(nil, repository.ErrSubscriptionNotFound).Once()

	status, err = service.GetStatus(ctx, authorID, nil, "79001234567")
	require.NoError(t, err)
	assert.False(t, status.IsSubscribed)
	assert.Nil(t, status.Subscription)
}

func TestSubscriptionService_GetStatus_NoIdentity(t *testing.T) {
	service, _, _, _ := createTestSubscriptionService(t)

	_, err := service.GetStatus(context.Background(), uuid.New(), nil, "")

	require.ErrorIs(t, err, domainerrors.ErrContactRequired)
}

func TestSubscriptionService_GenerateSubscriptionQR(t *testing.T) {
	service, _, authorRepo, qrcodeService := createTestSubscriptionService(t)

	ctx := context.Background()
	authorID := uuid.New()

	authorRepo.EXPECT().FindByID(ctx, authorID).Return(testAuthor(authorID), nil)
	qrcodeService.EXPECT().GenerateSubscriptionQR(authorID).Return([]byte("png-bytes"), nil)

	png, err := service.GenerateSubscriptionQR(ctx, authorID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}

func TestSubscriptionService_ProcessQRSubscription(t *testing.T) {
	service, subscriptionRepo, authorRepo, qrcodeService := createTestSubscriptionService(t)

	ctx := context.Background()
	authorID := uuid.New()
	userID := uuid.New()

	qrcodeService.EXPECT().ParseSubscriptionQR("bookz://subscribe/author/" + authorID.String()).
		Return(authorID, nil)
	authorRepo.EXPECT().FindByID(ctx, authorID).Return(testAuthor(authorID), nil)
	subscriptionRepo.EXPECT().FindByUserAndAuthor(ctx, userID, authorID).
		Return(nil, repository.ErrSubscriptionNotFound)
	subscriptionRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	subscription, err := service.ProcessQRSubscription(ctx, userID, "bookz://subscribe/author/"+authorID.String(), "")

	require.NoError(t, err)
	assert.Equal(t, authorID, subscription.AuthorID)
}

func TestSubscriptionService_ProcessQRSubscription_BadPayload(t *testing.T) {
	service, _, _, qrcodeService := createTestSubscriptionService(t)

	qrcodeService.EXPECT().ParseSubscriptionQR("garbage").
		Return(uuid.Nil, errors.New("invalid QR payload"))

	_, err := service.ProcessQRSubscription(context.Background(), uuid.New(), "garbage", "")

	require.Error(t, err)
}
