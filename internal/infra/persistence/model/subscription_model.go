package model

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionModel mirrors the 'author_subscriptions' table. UserID is NULL
// for guest subscriptions. The two partial unique indexes (user_id, author_id)
// and (phone_number, author_id) are created by migration; GORM only declares
// the plain indexes here.
type SubscriptionModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       *uuid.UUID `gorm:"type:uuid;index"`
	AuthorID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	PhoneNumber  string     `gorm:"type:varchar(20)"`
	SubscribedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionModel) TableName() string {
	return "author_subscriptions"
}
