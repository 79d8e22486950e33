package usecase

import (
	"context"
	"time"

	"bookz/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase defines the interface for the SMS notification core:
// resolving subscriber phones for a book's authors, formatting the message
// and fanning the send out to each recipient.
//
// Gateway failures are data, not errors: every method that dispatches returns
// a well-formed NotificationResult even when all sends fail, so the
// triggering workflow (book creation, cron batch) never aborts because of
// the notification side-channel. Errors are reserved for lookup failures
// (book not found, repository unavailable).
type NotificationUsecase interface {
	// NotifyNewBook resolves the book's subscriber phones and sends the
	// new-book message to each distinct number, at most once per trigger.
	// Zero authors, zero subscribers or zero resolvable phones all produce a
	// success-shaped empty result.
	NotifyNewBook(ctx context.Context, bookID uuid.UUID) (*entity.NotificationResult, error)

	// NotifyRecent runs NotifyNewBook for every book created within the given
	// window and merges the per-book results.
	NotifyRecent(ctx context.Context, window time.Duration) (*entity.NotificationResult, error)

	// SendTest sends a single test message to one phone.
	SendTest(ctx context.Context, phone string) error

	// Balance returns the SMS account balance.
	Balance(ctx context.Context) (float64, error)

	// AccountInfo returns SMS account metadata.
	AccountInfo(ctx context.Context) (map[string]string, error)
}
