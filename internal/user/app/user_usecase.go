package app

import (
	"errors"

	"lifetube/internal/user/domain"
	"lifetube/internal/user/repository"
	videodomain "lifetube/internal/video/domain"
	videorepo "lifetube/internal/video/repository"
	errprocess "lifetube/pkg/err"
	"lifetube/pkg/lock"

	"gorm.io/gorm"
)

// FeedLimit recent videos returned by the subscription feed
const FeedLimit = 30

// ProfileRes user row plus read-time aggregates
type ProfileRes struct {
	domain.User
	SubscriberCount int64               `json:"subscriberCount"`
	Videos          []videodomain.Video `json:"videos"`
}

// SubscribeRes toggle outcome
type SubscribeRes struct {
	Message    string `json:"message"`
	Subscribed bool   `json:"subscribed"`
}

// UserUseCase application service for the user context
type UserUseCase interface {
	GetProfile(userID string) (*ProfileRes, error)
	ToggleSubscription(subscriberID, channelID string) (*SubscribeRes, error)
	ListSubscriptions(subscriberID string) ([]domain.Subscription, error)
	SubscriptionFeed(subscriberID string) ([]videodomain.Video, error)
	CheckSubscription(subscriberID, channelID string) (bool, error)
}

type userUseCase struct {
	userRepo  repository.UserRepo
	subRepo   repository.SubscriptionRepo
	videoRepo videorepo.VideoRepo
	locks     *lock.KeyedLock
}

// NewUserUseCase create a new UserUseCase
func NewUserUseCase(userRepo repository.UserRepo,
	subRepo repository.SubscriptionRepo,
	videoRepo videorepo.VideoRepo,
) UserUseCase {
	return &userUseCase{
		userRepo:  userRepo,
		subRepo:   subRepo,
		videoRepo: videoRepo,
		locks:     lock.New(),
	}
}

// GetProfile user row, subscriber count and owned videos
func (u *userUseCase) GetProfile(userID string) (*ProfileRes, error) {
	user, err := u.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errprocess.New(errprocess.NotFound, "User not found")
		}
		return nil, errprocess.Wrap(errprocess.Internal, "Server error", err)
	}

	subscriberCount, err := u.subRepo.CountByChannel(userID)
	if err != nil {
		return nil, errprocess.Wrap(errprocess.Internal, "Server error", err)
	}

	videos, err := u.videoRepo.ByOwner(userID)
	if err != nil {
		return nil, errprocess.Wrap(errprocess.Internal, "Server error", err)
	}

	return &ProfileRes{
		User:            *user,
		SubscriberCount: subscriberCount,
		Videos:          videos,
	}, nil
}

// ToggleSubscription flip the (subscriber, channel) relation
func (u *userUseCase) ToggleSubscription(subscriberID, channelID string) (*SubscribeRes, error) {
	if channelID == "" {
		return nil, errprocess.New(errprocess.Validation, "Channel ID is required")
	}
	if channelID == subscriberID {
		return nil, errprocess.New(errprocess.Validation, "Cannot subscribe to yourself")
	}

	if _, err := u.userRepo.GetByID(channelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errprocess.New(errprocess.NotFound, "Channel not found")
		}
		return nil, errprocess.Wrap(errprocess.Internal, "Server error", err)
	}

	unlock := u.locks.Lock("sub:" + subscriberID + ":" + channelID)
	defer unlock()

	existing, err := u.subRepo.Find(subscriberID, channelID)
	if err != nil {
		return nil, errprocess.Wrap(errprocess.Internal, "Server error", err)
	}

	if existing != nil {
		if err := u.subRepo.Delete(existing.ID); err != nil {
			return nil, errprocess.Wrap(errprocess.Internal, "Server error", err)
		}
		return &SubscribeRes{Message: "Unsubscribed successfully", Subscribed: false}, nil
	}

	sub := &domain.Subscription{SubscriberID: subscriberID, ChannelID: channelID}
	if err := u.subRepo.Create(sub); err != nil {
		return nil, errprocess.Wrap(errprocess.Internal, "Server error", err)
	}
	return &SubscribeRes{Message: "Subscribed successfully", Subscribed: true}, nil
}

// ListSubscriptions channels the caller subscribes to
func (u *userUseCase) ListSubscriptions(subscriberID string) ([]domain.Subscription, error) {
	subs, err := u.subRepo.ListBySubscriber(subscriberID)
	if err != nil {
		return nil, errprocess.Wrap(errprocess.Internal, "Server error", err)
	}
	return subs, nil
}

// SubscriptionFeed recent videos from subscribed channels, newest first.
// An empty subscription set short-circuits without touching videos.
func (u *userUseCase) SubscriptionFeed(subscriberID string) ([]videodomain.Video, error) {
	channelIDs, err := u.subRepo.ChannelIDs(subscriberID)
	if err != nil {
		return nil, errprocess.Wrap(errprocess.Internal, "Server error", err)
	}
	if len(channelIDs) == 0 {
		return []videodomain.Video{}, nil
	}

	videos, err := u.videoRepo.ByOwners(channelIDs, FeedLimit)
	if err != nil {
		return nil, errprocess.Wrap(errprocess.Internal, "Server error", err)
	}
	return videos, nil
}

// CheckSubscription boolean lookup, failures read as "not subscribed"
func (u *userUseCase) CheckSubscription(subscriberID, channelID string) (bool, error) {
	sub, err := u.subRepo.Find(subscriberID, channelID)
	if err != nil {
		return false, errprocess.Wrap(errprocess.Internal, "Server error", err)
	}
	return sub != nil, nil
}
