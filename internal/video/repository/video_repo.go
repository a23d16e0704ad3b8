package repository

import (
	"lifetube/internal/video/domain"

	"gorm.io/gorm"
)

// VideoRepo definition get video info
type VideoRepo interface {
	AutoMigrate() error
	Create(video *domain.Video) error
	GetByID(id uint) (*domain.Video, error)
	List(q domain.ListVideosQuery) ([]domain.Video, error)
	Trending(limit int) ([]domain.Video, error)
	ByOwner(userID string) ([]domain.Video, error)
	ByOwners(userIDs []string, limit int) ([]domain.Video, error)
	IncrementViews(id uint) error
	Delete(id uint) error
}

type videoRepo struct {
	db *gorm.DB
}

// NewVideoRepo create VideoRepo
func NewVideoRepo(db *gorm.DB) VideoRepo {
	return &videoRepo{db: db}
}

func (r *videoRepo) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Video{})
}

func (r *videoRepo) Create(video *domain.Video) error {
	return r.db.Create(video).Error
}

// GetByID get Video by id with the owner joined
func (r *videoRepo) GetByID(id uint) (*domain.Video, error) {
	var v domain.Video
	if err := r.db.Preload("User").First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// List newest first with optional category filter and ILIKE search over
// title or description
func (r *videoRepo) List(q domain.ListVideosQuery) ([]domain.Video, error) {
	var videos []domain.Video

	tx := r.db.Preload("User").Order("created_at DESC")
	if q.Category != "" && q.Category != "All" {
		tx = tx.Where("category = ?", q.Category)
	}
	if q.Search != "" {
		like := "%" + q.Search + "%"
		tx = tx.Where("title ILIKE ? OR description ILIKE ?", like, like)
	}
	if err := tx.Limit(q.Limit).Offset(q.Offset).Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

// Trending most viewed videos first
func (r *videoRepo) Trending(limit int) ([]domain.Video, error) {
	var videos []domain.Video
	if err := r.db.Preload("User").Order("views DESC").Limit(limit).Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *videoRepo) ByOwner(userID string) ([]domain.Video, error) {
	var videos []domain.Video
	if err := r.db.Preload("User").Where("user_id = ?", userID).Order("created_at DESC").Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *videoRepo) ByOwners(userIDs []string, limit int) ([]domain.Video, error) {
	var videos []domain.Video
	if err := r.db.Preload("User").Where("user_id IN ?", userIDs).
		Order("created_at DESC").Limit(limit).Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

// IncrementViews single UPDATE, concurrent increments never lose updates
func (r *videoRepo) IncrementViews(id uint) error {
	tx := r.db.Model(&domain.Video{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1"))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *videoRepo) Delete(id uint) error {
	return r.db.Delete(&domain.Video{}, id).Error
}
