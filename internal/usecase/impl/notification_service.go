// Package impl contains the concrete implementations of the use case interfaces.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "bookz/internal/delivery/context"
	"bookz/internal/domain/entity"
	"bookz/internal/domain/repository"
	"bookz/internal/domain/service"
	"bookz/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ErrInvalidWindow is returned when NotifyRecent is called with a non-positive window.
var ErrInvalidWindow = errors.New("window must be positive")

type notificationService struct {
	logger           *slog.Logger
	bookRepo         repository.BookRepository
	subscriptionRepo repository.SubscriptionRepository
	gateway          service.SMSGateway
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	Logger           *slog.Logger
	BookRepo         repository.BookRepository
	SubscriptionRepo repository.SubscriptionRepository
	Gateway          service.SMSGateway
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		logger:           params.Logger,
		bookRepo:         params.BookRepo,
		subscriptionRepo: params.SubscriptionRepo,
		gateway:          params.Gateway,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// FormatNewBookMessage builds the fixed-template announcement text. The ISBN
// suffix appears only when isbn is non-empty.
func FormatNewBookMessage(authorNames []string, title, isbn string) string {
	message := fmt.Sprintf("Новая книга от %s: %q", strings.Join(authorNames, ", "), title)
	if isbn != "" {
		message += fmt.Sprintf(" (ISBN: %s)", isbn)
	}

	return message
}

// NotifyNewBook sends the new-book announcement to all subscribers of the
// book's authors, one send attempt per distinct phone.
func (s *notificationService) NotifyNewBook(ctx context.Context, bookID uuid.UUID) (*entity.NotificationResult, error) {
	book, err := s.bookRepo.FindByID(ctx, bookID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load book for notification")
	}

	result := s.notifyBook(ctx, book)
	s.logResult(ctx, book.Title, result)

	return result, nil
}

// NotifyRecent dispatches notifications for every book created within the
// window and merges the per-book outcomes into one result.
func (s *notificationService) NotifyRecent(ctx context.Context, window time.Duration) (*entity.NotificationResult, error) {
	if window <= 0 {
		return nil, ErrInvalidWindow
	}

	books, err := s.bookRepo.FindCreatedSince(ctx, time.Now().Add(-window))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load recent books")
	}

	total := &entity.NotificationResult{}
	for _, book := range books {
		result := s.notifyBook(ctx, book)
		s.logResult(ctx, book.Title, result)
		total.Merge(result)
	}

	return total, nil
}

// SendTest sends a single test message to one phone.
func (s *notificationService) SendTest(ctx context.Context, phone string) error {
	message := "Test SMS from the book catalog. Sent at " + time.Now().Format(time.DateTime)

	receipt, err := s.gateway.Send(ctx, phone, message, "")
	if err != nil {
		return errors.Wrap(err, "test send failed")
	}

	s.log(ctx).Info("Test SMS sent",
		slog.String("phone", phone),
		slog.Float64("cost", receipt.Cost),
		slog.Float64("balance", receipt.Balance),
	)

	return nil
}

// Balance returns the SMS account balance.
func (s *notificationService) Balance(ctx context.Context) (float64, error) {
	return s.gateway.Balance(ctx)
}

// AccountInfo returns SMS account metadata.
func (s *notificationService) AccountInfo(ctx context.Context) (map[string]string, error) {
	return s.gateway.AccountInfo(ctx)
}

// notifyBook runs the full pipeline for one book: resolve subscriber phones,
// format the message, fan out. It always returns a well-formed result; lookup
// problems along the way are folded into it rather than propagated, so the
// triggering workflow keeps going.
func (s *notificationService) notifyBook(ctx context.Context, book *entity.Book) *entity.NotificationResult {
	if len(book.Authors) == 0 {
		s.log(ctx).Info("No authors found for book, skipping SMS notifications",
			slog.String("book_id", book.ID.String()),
		)

		return &entity.NotificationResult{}
	}

	phones, err := s.resolvePhones(ctx, book.AuthorIDs())
	if err != nil {
		// Subscriber lookup failed entirely; report it as a batch-level
		// failure instead of aborting the caller.
		return &entity.NotificationResult{
			Errors: []entity.SendError{{Detail: err.Error()}},
		}
	}

	if len(phones) == 0 {
		s.log(ctx).Info("No subscribers found for book's authors, skipping SMS notifications",
			slog.String("book_id", book.ID.String()),
		)

		return &entity.NotificationResult{}
	}

	message := FormatNewBookMessage(book.AuthorNames(), book.Title, book.ISBN)

	return s.fanOut(ctx, phones, message)
}

// resolvePhones returns the deduplicated recipient phones for the given
// authors. A subscription resolves through its own phone first, then the
// linked user's profile phone; subscriptions with neither are skipped
// silently. Read-only, no side effects.
func (s *notificationService) resolvePhones(ctx context.Context, authorIDs []uuid.UUID) ([]string, error) {
	seen := make(map[string]struct{})
	var phones []string

	for _, authorID := range authorIDs {
		subscribers, err := s.subscriptionRepo.FindSubscribersByAuthor(ctx, authorID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find subscribers by author")
		}

		for _, subscriber := range subscribers {
			phone := subscriber.ResolvePhone()
			if phone == "" {
				continue
			}
			if _, ok := seen[phone]; ok {
				continue
			}
			seen[phone] = struct{}{}
			phones = append(phones, phone)
		}
	}

	return phones, nil
}

// fanOut sends the message to each phone, one gateway call per recipient.
// Sends are sequential and independent; a failure for one recipient never
// stops the rest. There are no retries and no duplicate-dispatch protection:
// calling fanOut twice with the same set produces two attempts per phone.
func (s *notificationService) fanOut(ctx context.Context, phones []string, message string) *entity.NotificationResult {
	result := &entity.NotificationResult{}
	if len(phones) == 0 {
		return result
	}

	for _, phone := range phones {
		if _, err := s.gateway.Send(ctx, phone, message, ""); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, entity.SendError{
				Phone:  phone,
				Detail: err.Error(),
			})

			continue
		}

		result.Sent++
	}

	return result
}

func (s *notificationService) logResult(ctx context.Context, bookTitle string, result *entity.NotificationResult) {
	if result.Sent > 0 || result.Failed > 0 {
		s.log(ctx).Info("SMS notifications dispatched for new book",
			slog.String("book_title", bookTitle),
			slog.Int("sent", result.Sent),
			slog.Int("failed", result.Failed),
		)
	}

	for _, sendErr := range result.Errors {
		s.log(ctx).Warn("SMS notification error",
			slog.String("phone", sendErr.Phone),
			slog.String("error", sendErr.Detail),
		)
	}
}
