package domain

import "time"

// Subscription definition one row per (subscriber, channel) pair,
// self-subscription is rejected before this row is ever written
type Subscription struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SubscriberID string    `gorm:"type:uuid;not null;uniqueIndex:uq_subscriber_channel;index" json:"subscriber_id"`
	ChannelID    string    `gorm:"type:uuid;not null;uniqueIndex:uq_subscriber_channel;index" json:"channel_id"`
	CreatedAt    time.Time `json:"created_at"`
	Channel      User      `gorm:"foreignKey:ChannelID;references:ID" json:"users"`
}
