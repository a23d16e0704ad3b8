package repository

import (
	"lifetube/internal/comment/domain"

	"gorm.io/gorm"
)

// CommentRepo definition comment CRUD
type CommentRepo interface {
	AutoMigrate() error
	Create(comment *domain.Comment) error
	GetByID(id uint) (*domain.Comment, error)
	TopLevelByVideo(videoID uint) ([]domain.Comment, error)
	RepliesByVideo(videoID uint) ([]domain.Comment, error)
	Delete(id uint) error
	DeleteByVideo(videoID uint) error
}

type commentRepo struct {
	db *gorm.DB
}

// NewCommentRepo create CommentRepo
func NewCommentRepo(db *gorm.DB) CommentRepo {
	return &commentRepo{db: db}
}

func (r *commentRepo) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Comment{})
}

func (r *commentRepo) Create(comment *domain.Comment) error {
	return r.db.Create(comment).Error
}

func (r *commentRepo) GetByID(id uint) (*domain.Comment, error) {
	var c domain.Comment
	if err := r.db.Preload("User").First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// TopLevelByVideo newest top-level comments first
func (r *commentRepo) TopLevelByVideo(videoID uint) ([]domain.Comment, error) {
	var comments []domain.Comment
	err := r.db.Preload("User").
		Where("video_id = ? AND parent_id IS NULL", videoID).
		Order("created_at DESC").Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// RepliesByVideo every reply for the video in one query, oldest first
func (r *commentRepo) RepliesByVideo(videoID uint) ([]domain.Comment, error) {
	var replies []domain.Comment
	err := r.db.Preload("User").
		Where("video_id = ? AND parent_id IS NOT NULL", videoID).
		Order("created_at ASC").Find(&replies).Error
	if err != nil {
		return nil, err
	}
	return replies, nil
}

func (r *commentRepo) Delete(id uint) error {
	// take the replies with it, a reply without its parent is unreachable
	if err := r.db.Where("parent_id = ?", id).Delete(&domain.Comment{}).Error; err != nil {
		return err
	}
	return r.db.Delete(&domain.Comment{}, id).Error
}

func (r *commentRepo) DeleteByVideo(videoID uint) error {
	return r.db.Where("video_id = ?", videoID).Delete(&domain.Comment{}).Error
}
