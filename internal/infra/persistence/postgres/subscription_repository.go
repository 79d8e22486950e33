// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"bookz/internal/domain/entity"
	domainerrors "bookz/internal/domain/errors"
	"bookz/internal/domain/repository"
	"bookz/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface using GORM.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// Create persists a new subscription. A unique constraint hit maps to
// ErrDuplicateSubscription so the use case can resolve the race winner.
func (repo *subscriptionRepository) Create(ctx context.Context, subscription *entity.Subscription) error {
	subscriptionM := fromSubscriptionDomain(subscription)

	if err := repo.db.WithContext(ctx).Create(subscriptionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSubscription
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAuthorNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required subscription information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create subscription")
	}

	subscription.ID = subscriptionM.ID
	subscription.SubscribedAt = subscriptionM.SubscribedAt

	return nil
}

// FindByID retrieves a subscription by its unique ID.
func (repo *subscriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error) {
	var subscriptionM model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&subscriptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription by id")
	}

	return toSubscriptionDomain(&subscriptionM), nil
}

// FindByUserAndAuthor retrieves a subscription by user and author IDs.
func (repo *subscriptionRepository) FindByUserAndAuthor(ctx context.Context, userID, authorID uuid.UUID) (*entity.Subscription, error) {
	var subscriptionM model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		First(&subscriptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription by user and author")
	}

	return toSubscriptionDomain(&subscriptionM), nil
}

// FindByPhoneAndAuthor retrieves a guest subscription by phone and author.
func (repo *subscriptionRepository) FindByPhoneAndAuthor(ctx context.Context, phone string, authorID uuid.UUID) (*entity.Subscription, error) {
	var subscriptionM model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("phone_number = ? AND author_id = ? AND user_id IS NULL", phone, authorID).
		First(&subscriptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription by phone and author")
	}

	return toSubscriptionDomain(&subscriptionM), nil
}

// FindByUser retrieves all subscriptions for a user, newest first.
func (repo *subscriptionRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Subscription, error) {
	var subscriptionModels []*model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("subscribed_at DESC").
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find subscriptions by user")
	}

	subscriptions := make([]*entity.Subscription, 0, len(subscriptionModels))
	for _, subscriptionM := range subscriptionModels {
		subscriptions = append(subscriptions, toSubscriptionDomain(subscriptionM))
	}

	return subscriptions, nil
}

// FindSubscribersByAuthor returns every subscription for the author joined
// with the linked user's profile phone. Oldest first, so notification order
// follows subscription order.
func (repo *subscriptionRepository) FindSubscribersByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.AuthorSubscriber, error) {
	var rows []*entity.AuthorSubscriber

	query := `
		SELECT s.id AS subscription_id,
		       s.author_id,
		       s.user_id,
		       s.phone_number,
		       COALESCE(u.phone, '') AS user_phone
		FROM author_subscriptions s
		LEFT JOIN users u ON u.id = s.user_id
		WHERE s.author_id = ?
		ORDER BY s.subscribed_at ASC
	`

	if err := repo.db.WithContext(ctx).
		Raw(query, authorID).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find subscribers by author")
	}

	return rows, nil
}

// CountByAuthor returns the number of subscriptions for an author.
func (repo *subscriptionRepository) CountByAuthor(ctx context.Context, authorID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("author_id = ?", authorID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count subscriptions by author")
	}

	return count, nil
}

// Delete removes a subscription by its ID.
func (repo *subscriptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SubscriptionModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete subscription")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toSubscriptionDomain(data *model.SubscriptionModel) *entity.Subscription {
	if data == nil {
		return nil
	}

	return &entity.Subscription{
		ID:           data.ID,
		UserID:       data.UserID,
		AuthorID:     data.AuthorID,
		PhoneNumber:  data.PhoneNumber,
		SubscribedAt: data.SubscribedAt,
	}
}

func fromSubscriptionDomain(data *entity.Subscription) *model.SubscriptionModel {
	if data == nil {
		return nil
	}

	return &model.SubscriptionModel{
		ID:           data.ID,
		UserID:       data.UserID,
		AuthorID:     data.AuthorID,
		PhoneNumber:  data.PhoneNumber,
		SubscribedAt: data.SubscribedAt,
	}
}
