package repository

import (
	"errors"

	"lifetube/internal/user/domain"

	"gorm.io/gorm"
)

// SubscriptionRepo definition subscription relation CRUD
type SubscriptionRepo interface {
	AutoMigrate() error
	Find(subscriberID, channelID string) (*domain.Subscription, error)
	Create(sub *domain.Subscription) error
	Delete(id uint) error
	CountByChannel(channelID string) (int64, error)
	ListBySubscriber(subscriberID string) ([]domain.Subscription, error)
	ChannelIDs(subscriberID string) ([]string, error)
}

type subscriptionRepo struct {
	db *gorm.DB
}

// NewSubscriptionRepo create SubscriptionRepo
func NewSubscriptionRepo(db *gorm.DB) SubscriptionRepo {
	return &subscriptionRepo{db: db}
}

func (r *subscriptionRepo) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Subscription{})
}

// Find the existing row for (subscriber, channel), nil when absent
func (r *subscriptionRepo) Find(subscriberID, channelID string) (*domain.Subscription, error) {
	var sub domain.Subscription
	err := r.db.Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionRepo) Create(sub *domain.Subscription) error {
	return r.db.Create(sub).Error
}

func (r *subscriptionRepo) Delete(id uint) error {
	return r.db.Delete(&domain.Subscription{}, id).Error
}

// CountByChannel subscriber count is computed at read time
func (r *subscriptionRepo) CountByChannel(channelID string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Subscription{}).
		Where("channel_id = ?", channelID).Count(&count).Error
	return count, err
}

func (r *subscriptionRepo) ListBySubscriber(subscriberID string) ([]domain.Subscription, error) {
	var subs []domain.Subscription
	err := r.db.Preload("Channel").
		Where("subscriber_id = ?", subscriberID).Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *subscriptionRepo) ChannelIDs(subscriberID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&domain.Subscription{}).
		Where("subscriber_id = ?", subscriberID).Pluck("channel_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
