// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"bookz/internal/domain/entity"
	"bookz/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for subscription persistence.
var (
	// ErrSubscriptionNotFound is returned when a subscription is not found.
	ErrSubscriptionNotFound = errors.New("subscription not found")
	// ErrDuplicateSubscription is returned when trying to create a subscription that already exists.
	ErrDuplicateSubscription = errors.New("subscription already exists")
)

// SubscriptionRepository defines the interface for subscription-related database operations.
type SubscriptionRepository interface {
	// Create persists a new subscription.
	Create(ctx context.Context, subscription *entity.Subscription) error

	// FindByID retrieves a subscription by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error)

	// FindByUserAndAuthor retrieves a subscription by user and author IDs.
	FindByUserAndAuthor(ctx context.Context, userID, authorID uuid.UUID) (*entity.Subscription, error)

	// FindByPhoneAndAuthor retrieves a guest subscription by phone and author.
	FindByPhoneAndAuthor(ctx context.Context, phone string, authorID uuid.UUID) (*entity.Subscription, error)

	// FindByUser retrieves all subscriptions for a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Subscription, error)

	// FindSubscribersByAuthor returns every subscription for the author joined
	// with the linked user's profile phone. Rows with no resolvable phone are
	// included; phone resolution is the caller's concern.
	FindSubscribersByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.AuthorSubscriber, error)

	// CountByAuthor returns the number of subscriptions for an author.
	CountByAuthor(ctx context.Context, authorID uuid.UUID) (int64, error)

	// Delete removes a subscription by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
