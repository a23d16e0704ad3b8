package repository

import (
	"lifetube/internal/user/domain"

	"gorm.io/gorm"
)

// UserRepo definition read access to user rows, the auth collaborator owns writes
type UserRepo interface {
	GetByID(id string) (*domain.User, error)
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepo create UserRepo
func NewUserRepo(db *gorm.DB) UserRepo {
	return &userRepo{db: db}
}

func (r *userRepo) GetByID(id string) (*domain.User, error) {
	var u domain.User
	if err := r.db.First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
