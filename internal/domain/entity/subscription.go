// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Subscription represents one recipient's interest in one author's new
// releases. UserID is nil for guest subscriptions, which are identified by
// phone number alone. PhoneNumber may be empty for authenticated
// subscriptions; the recipient number then resolves from the user's profile.
type Subscription struct {
	ID           uuid.UUID  `json:"id"`                     // The unique identifier for the subscription.
	UserID       *uuid.UUID `json:"user_id,omitempty"`      // Subscribing user; nil for guests.
	AuthorID     uuid.UUID  `json:"author_id"`              // The author being subscribed to.
	PhoneNumber  string     `json:"phone_number,omitempty"` // Explicit recipient phone; required for guests.
	SubscribedAt time.Time  `json:"subscribed_at"`          // Timestamp of when the subscription was created.
}

// IsGuest reports whether the subscription is not tied to an account.
func (s *Subscription) IsGuest() bool {
	return s.UserID == nil
}

// AuthorSubscriber is a read model for notification fan-out: one subscription
// row joined with the linked user's profile phone. Either phone field may be
// empty; resolution order is PhoneNumber first, then UserPhone, then skip.
type AuthorSubscriber struct {
	SubscriptionID uuid.UUID
	AuthorID       uuid.UUID
	UserID         *uuid.UUID
	PhoneNumber    string
	UserPhone      string
}

// ResolvePhone returns the recipient phone for this subscriber, or "" when
// the subscription is notification-dead and must be skipped silently.
func (s *AuthorSubscriber) ResolvePhone() string {
	if s.PhoneNumber != "" {
		return s.PhoneNumber
	}

	return s.UserPhone
}
