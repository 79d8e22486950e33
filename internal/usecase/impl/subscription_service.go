// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"regexp"
	"time"

	deliverycontext "bookz/internal/delivery/context"
	"bookz/internal/domain/entity"
	domainerrors "bookz/internal/domain/errors"
	"bookz/internal/domain/repository"
	"bookz/internal/domain/service"
	"bookz/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// phonePattern matches digits-only phones in international format without a
// leading plus. Enforced at the subscription boundary so notification-time
// resolution never has to re-validate.
var phonePattern = regexp.MustCompile(`^\d{10,15}$`)

// subscriptionService implements the SubscriptionUsecase interface.
type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	authorRepo       repository.AuthorRepository
	qrcodeService    service.QRCodeService
	logger           *slog.Logger
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	SubscriptionRepo repository.SubscriptionRepository
	AuthorRepo       repository.AuthorRepository
	QRCodeService    service.QRCodeService
	Logger           *slog.Logger
}

// NewSubscriptionService is the constructor for subscriptionService.
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		subscriptionRepo: params.SubscriptionRepo,
		authorRepo:       params.AuthorRepo,
		qrcodeService:    params.QRCodeService,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *subscriptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubscribeUser subscribes an authenticated user to an author. An explicit
// phone, when given, must pass the format check; an empty phone defers to the
// user's profile phone at notification time. Subscribing twice is not an
// error and returns the existing row.
func (srv *subscriptionService) SubscribeUser(ctx context.Context, userID, authorID uuid.UUID, phone string) (*entity.Subscription, error) {
	if phone != "" && !phonePattern.MatchString(phone) {
		return nil, errors.Wrap(domainerrors.ErrInvalidPhoneNumber, "subscribe user")
	}

	if err := srv.ensureAuthorExists(ctx, authorID); err != nil {
		return nil, err
	}

	existing, err := srv.subscriptionRepo.FindByUserAndAuthor(ctx, userID, authorID)
	if err == nil {
		srv.log(ctx).Debug("User already subscribed to author",
			slog.Any("userID", userID),
			slog.Any("authorID", authorID),
		)

		return existing, nil
	}
	if !errors.Is(err, repository.ErrSubscriptionNotFound) {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to check existing subscription")
	}

	subscription := &entity.Subscription{
		ID:           uuid.New(),
		UserID:       &userID,
		AuthorID:     authorID,
		PhoneNumber:  phone,
		SubscribedAt: time.Now(),
	}

	return srv.create(ctx, subscription)
}

// SubscribeGuest subscribes a recipient identified only by phone number.
func (srv *subscriptionService) SubscribeGuest(ctx context.Context, phone string, authorID uuid.UUID) (*entity.Subscription, error) {
	if phone == "" {
		return nil, errors.Wrap(domainerrors.ErrContactRequired, "subscribe guest")
	}
	if !phonePattern.MatchString(phone) {
		return nil, errors.Wrap(domainerrors.ErrInvalidPhoneNumber, "subscribe guest")
	}

	if err := srv.ensureAuthorExists(ctx, authorID); err != nil {
		return nil, err
	}

	existing, err := srv.subscriptionRepo.FindByPhoneAndAuthor(ctx, phone, authorID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrSubscriptionNotFound) {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to check existing subscription")
	}

	subscription := &entity.Subscription{
		ID:           uuid.New(),
		AuthorID:     authorID,
		PhoneNumber:  phone,
		SubscribedAt: time.Now(),
	}

	return srv.create(ctx, subscription)
}

// create persists the subscription, resolving a unique-constraint race by
// returning the row that won.
func (srv *subscriptionService) create(ctx context.Context, subscription *entity.Subscription) (*entity.Subscription, error) {
	err := srv.subscriptionRepo.Create(ctx, subscription)
	if err == nil {
		srv.log(ctx).Info("Subscription created",
			slog.Any("subscriptionID", subscription.ID),
			slog.Any("authorID", subscription.AuthorID),
			slog.Bool("guest", subscription.IsGuest()),
		)

		return subscription, nil
	}

	if errors.Is(err, repository.ErrDuplicateSubscription) {
		if subscription.UserID != nil {
			return srv.subscriptionRepo.FindByUserAndAuthor(ctx, *subscription.UserID, subscription.AuthorID)
		}

		return srv.subscriptionRepo.FindByPhoneAndAuthor(ctx, subscription.PhoneNumber, subscription.AuthorID)
	}

	return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create subscription")
}

// Unsubscribe removes a subscription. Account-backed subscriptions may only
// be removed by their owner.
func (srv *subscriptionService) Unsubscribe(ctx context.Context, subscriptionID, userID uuid.UUID) error {
	subscription, err := srv.subscriptionRepo.FindByID(ctx, subscriptionID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return errors.Wrap(domainerrors.ErrSubscriptionNotFound, "unsubscribe")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to find subscription")
	}

	if subscription.UserID == nil || *subscription.UserID != userID {
		return errors.Wrap(domainerrors.ErrSubscriptionForbidden, "unsubscribe")
	}

	if err := srv.subscriptionRepo.Delete(ctx, subscriptionID); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete subscription")
	}

	srv.log(ctx).Info("Subscription removed",
		slog.Any("subscriptionID", subscriptionID),
		slog.Any("userID", userID),
	)

	return nil
}

// GetUserSubscriptions retrieves all subscriptions for a user, newest first.
func (srv *subscriptionService) GetUserSubscriptions(ctx context.Context, userID uuid.UUID) ([]*entity.Subscription, error) {
	subscriptions, err := srv.subscriptionRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list subscriptions")
	}

	return subscriptions, nil
}

// GetStatus checks whether the given identity is subscribed to the author.
// Exactly one of userID and phone identifies the caller; userID wins when
// both are present.
func (srv *subscriptionService) GetStatus(ctx context.Context, authorID uuid.UUID, userID *uuid.UUID, phone string) (*usecase.SubscriptionStatus, error) {
	var (
		subscription *entity.Subscription
		err          error
	)

	switch {
	case userID != nil:
		subscription, err = srv.subscriptionRepo.FindByUserAndAuthor(ctx, *userID, authorID)
	case phone != "":
		subscription, err = srv.subscriptionRepo.FindByPhoneAndAuthor(ctx, phone, authorID)
	default:
		return nil, errors.Wrap(domainerrors.ErrContactRequired, "subscription status")
	}

	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return &usecase.SubscriptionStatus{IsSubscribed: false}, nil
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to check subscription status")
	}

	return &usecase.SubscriptionStatus{
		IsSubscribed: true,
		Subscription: subscription,
	}, nil
}

// GenerateSubscriptionQR renders a PNG QR code for subscribing to an author.
func (srv *subscriptionService) GenerateSubscriptionQR(ctx context.Context, authorID uuid.UUID) ([]byte, error) {
	if err := srv.ensureAuthorExists(ctx, authorID); err != nil {
		return nil, err
	}

	png, err := srv.qrcodeService.GenerateSubscriptionQR(authorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate subscription QR code")
	}

	return png, nil
}

// ProcessQRSubscription decodes a scanned QR payload and subscribes the user
// to the encoded author.
func (srv *subscriptionService) ProcessQRSubscription(ctx context.Context, userID uuid.UUID, qrData string, phone string) (*entity.Subscription, error) {
	authorID, err := srv.qrcodeService.ParseSubscriptionQR(qrData)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse subscription QR code")
	}

	return srv.SubscribeUser(ctx, userID, authorID, phone)
}

func (srv *subscriptionService) ensureAuthorExists(ctx context.Context, authorID uuid.UUID) error {
	if _, err := srv.authorRepo.FindByID(ctx, authorID); err != nil {
		if errors.Is(err, repository.ErrAuthorNotFound) {
			return errors.Wrap(domainerrors.ErrAuthorNotFound, "author lookup")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to find author")
	}

	return nil
}
