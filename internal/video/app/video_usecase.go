package app

import (
	"context"
	"errors"
	"fmt"

	commentrepo "lifetube/internal/comment/repository"
	"lifetube/internal/video/domain"
	"lifetube/internal/video/repository"
	errprocess "lifetube/pkg/err"
	"lifetube/pkg/lock"
	"lifetube/pkg/logger"
	"lifetube/pkg/storage"

	"gorm.io/gorm"
)

const (
	// DefaultListLimit page size when the client sends none
	DefaultListLimit = 20
	// TrendingLimit top videos by view count
	TrendingLimit = 20
)

// VideoUseCase application service for the video context
type VideoUseCase interface {
	Upload(ctx context.Context, up domain.UploadVideoReq) (*domain.Video, error)
	List(q domain.ListVideosQuery) ([]domain.Video, error)
	Trending() ([]domain.Video, error)
	GetDetail(videoID uint) (*domain.VideoDetail, error)
	IncrementViews(videoID uint) error
	ToggleLike(userID string, videoID uint, kind string) (string, error)
	Delete(ctx context.Context, userID string, videoID uint) error
}

type videoUseCase struct {
	videoRepo   repository.VideoRepo
	likeRepo    repository.LikeRepo
	commentRepo commentrepo.CommentRepo
	store       storage.AssetStore

	placeholderThumb string
	locks            *lock.KeyedLock
}

// NewVideoUseCase create a new VideoUseCase
func NewVideoUseCase(videoRepo repository.VideoRepo,
	likeRepo repository.LikeRepo,
	commentRepo commentrepo.CommentRepo,
	store storage.AssetStore,
	placeholderThumb string,
) VideoUseCase {
	return &videoUseCase{
		videoRepo:        videoRepo,
		likeRepo:         likeRepo,
		commentRepo:      commentRepo,
		store:            store,
		placeholderThumb: placeholderThumb,
		locks:            lock.New(),
	}
}

// List browse videos, optional category filter and keyword search
func (u *videoUseCase) List(q domain.ListVideosQuery) ([]domain.Video, error) {
	if q.Limit <= 0 {
		q.Limit = DefaultListLimit
	}
	videos, err := u.videoRepo.List(q)
	if err != nil {
		return nil, errprocess.Wrap(errprocess.Internal, "Server error", err)
	}
	return videos, nil
}

// Trending top videos by view count
func (u *videoUseCase) Trending() ([]domain.Video, error) {
	videos, err := u.videoRepo.Trending(TrendingLimit)
	if err != nil {
		return nil, errprocess.Wrap(errprocess.Internal, "Server error", err)
	}
	return videos, nil
}

// GetDetail video row plus like aggregates, counted from the marks at read time
func (u *videoUseCase) GetDetail(videoID uint) (*domain.VideoDetail, error) {
	video, err := u.videoRepo.GetByID(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errprocess.New(errprocess.NotFound, "Video not found")
		}
		return nil, errprocess.Wrap(errprocess.Internal, "Server error", err)
	}

	likeCount, err := u.likeRepo.CountByKind(videoID, domain.LikeKindLike)
	if err != nil {
		return nil, errprocess.Wrap(errprocess.Internal, "Server error", err)
	}
	dislikeCount, err := u.likeRepo.CountByKind(videoID, domain.LikeKindDislike)
	if err != nil {
		return nil, errprocess.Wrap(errprocess.Internal, "Server error", err)
	}

	return &domain.VideoDetail{
		Video:        *video,
		LikeCount:    likeCount,
		DislikeCount: dislikeCount,
	}, nil
}

// IncrementViews one atomic UPDATE, no read-modify-write
func (u *videoUseCase) IncrementViews(videoID uint) error {
	if err := u.videoRepo.IncrementViews(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errprocess.New(errprocess.NotFound, "Video not found")
		}
		return errprocess.Wrap(errprocess.Internal, "Server error", err)
	}
	return nil
}

// ToggleLike flip the (user, video) mark through the transition table
func (u *videoUseCase) ToggleLike(userID string, videoID uint, kind string) (string, error) {
	if !domain.ValidLikeKind(kind) {
		return "", errprocess.New(errprocess.Validation, "Invalid type")
	}

	unlock := u.locks.Lock(fmt.Sprintf("like:%s:%d", userID, videoID))
	defer unlock()

	existing, err := u.likeRepo.Find(userID, videoID)
	if err != nil {
		return "", errprocess.Wrap(errprocess.Internal, "Server error", err)
	}

	current := ""
	if existing != nil {
		current = existing.Type
	}

	action, label := domain.NextLikeState(current, kind)
	switch action {
	case domain.LikeInsert:
		err = u.likeRepo.Create(&domain.Like{UserID: userID, VideoID: videoID, Type: kind})
	case domain.LikeDelete:
		err = u.likeRepo.Delete(existing.ID)
	case domain.LikeUpdate:
		err = u.likeRepo.UpdateType(existing.ID, kind)
	}
	if err != nil {
		return "", errprocess.Wrap(errprocess.Internal, "Server error", err)
	}

	return label, nil
}

// Delete owner-only; binary assets are removed best-effort, an orphaned blob
// never blocks deleting the metadata row
func (u *videoUseCase) Delete(ctx context.Context, userID string, videoID uint) error {
	video, err := u.videoRepo.GetByID(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errprocess.New(errprocess.Unauthorized, "Unauthorized")
		}
		return errprocess.Wrap(errprocess.Internal, "Server error", err)
	}
	if video.UserID != userID {
		return errprocess.New(errprocess.Unauthorized, "Unauthorized")
	}

	u.removeAsset(ctx, video.VideoURL)
	u.removeAsset(ctx, video.ThumbnailURL)

	if err := u.likeRepo.DeleteByVideo(videoID); err != nil {
		return errprocess.Wrap(errprocess.Internal, "Server error", err)
	}
	if err := u.commentRepo.DeleteByVideo(videoID); err != nil {
		return errprocess.Wrap(errprocess.Internal, "Server error", err)
	}
	if err := u.videoRepo.Delete(videoID); err != nil {
		return errprocess.Wrap(errprocess.Internal, "Server error", err)
	}
	return nil
}

// removeAsset best-effort delete of a stored object resolved from its URL;
// foreign URLs (the placeholder thumbnail) are skipped
func (u *videoUseCase) removeAsset(ctx context.Context, url string) {
	objectName, ok := u.store.ObjectName(url)
	if !ok {
		return
	}
	if err := u.store.Remove(ctx, objectName); err != nil {
		logger.Log.Errorf(fmt.Sprintf("remove asset [%s] failed :", objectName), err)
	}
}
