package repository

import (
	"errors"

	"lifetube/internal/video/domain"

	"gorm.io/gorm"
)

// LikeRepo definition like mark CRUD
type LikeRepo interface {
	AutoMigrate() error
	Find(userID string, videoID uint) (*domain.Like, error)
	Create(like *domain.Like) error
	UpdateType(id uint, kind string) error
	Delete(id uint) error
	CountByKind(videoID uint, kind string) (int64, error)
	DeleteByVideo(videoID uint) error
}

type likeRepo struct {
	db *gorm.DB
}

// NewLikeRepo create LikeRepo
func NewLikeRepo(db *gorm.DB) LikeRepo {
	return &likeRepo{db: db}
}

func (r *likeRepo) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Like{})
}

// Find the existing mark for (user, video), nil when absent
func (r *likeRepo) Find(userID string, videoID uint) (*domain.Like, error) {
	var like domain.Like
	err := r.db.Where("user_id = ? AND video_id = ?", userID, videoID).First(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &like, nil
}

func (r *likeRepo) Create(like *domain.Like) error {
	return r.db.Create(like).Error
}

func (r *likeRepo) UpdateType(id uint, kind string) error {
	return r.db.Model(&domain.Like{}).Where("id = ?", id).Update("type", kind).Error
}

func (r *likeRepo) Delete(id uint) error {
	return r.db.Delete(&domain.Like{}, id).Error
}

// CountByKind aggregate counts are computed at read time, never maintained
func (r *likeRepo) CountByKind(videoID uint, kind string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Like{}).
		Where("video_id = ? AND type = ?", videoID, kind).Count(&count).Error
	return count, err
}

func (r *likeRepo) DeleteByVideo(videoID uint) error {
	return r.db.Where("video_id = ?", videoID).Delete(&domain.Like{}).Error
}
