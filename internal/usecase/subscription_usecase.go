package usecase

import (
	"context"

	"bookz/internal/domain/entity"

	"github.com/google/uuid"
)

// SubscriptionStatus reports whether an identity is subscribed to an author.
type SubscriptionStatus struct {
	IsSubscribed bool                 `json:"is_subscribed"`
	Subscription *entity.Subscription `json:"subscription,omitempty"`
}

// SubscriptionUsecase defines the interface for subscription management use cases.
type SubscriptionUsecase interface {
	// SubscribeUser subscribes an authenticated user to an author. Phone is
	// optional; when empty the user's profile phone serves as the recipient
	// number at notification time. Subscribing twice returns the existing
	// subscription.
	SubscribeUser(ctx context.Context, userID, authorID uuid.UUID, phone string) (*entity.Subscription, error)

	// SubscribeGuest subscribes a guest identified only by phone number.
	// Subscribing twice returns the existing subscription.
	SubscribeGuest(ctx context.Context, phone string, authorID uuid.UUID) (*entity.Subscription, error)

	// Unsubscribe removes a subscription. Only the owning user may remove an
	// account-backed subscription.
	Unsubscribe(ctx context.Context, subscriptionID, userID uuid.UUID) error

	// GetUserSubscriptions retrieves all subscriptions for a user.
	GetUserSubscriptions(ctx context.Context, userID uuid.UUID) ([]*entity.Subscription, error)

	// GetStatus checks whether the given identity (user ID or phone) is
	// subscribed to the author.
	GetStatus(ctx context.Context, authorID uuid.UUID, userID *uuid.UUID, phone string) (*SubscriptionStatus, error)

	// GenerateSubscriptionQR renders a PNG QR code for subscribing to an author.
	GenerateSubscriptionQR(ctx context.Context, authorID uuid.UUID) ([]byte, error)

	// ProcessQRSubscription decodes a scanned QR payload and subscribes the user.
	ProcessQRSubscription(ctx context.Context, userID uuid.UUID, qrData string, phone string) (*entity.Subscription, error)
}
