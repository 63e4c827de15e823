package repository

import (
	"gorm.io/gorm"

	"github.com/josiaholayin-ops/ShareMoment-backend/internal/model"
)

type UserRepository interface {
	Create(user *model.User) error
	// FindByEmail expects an already-lowercased email.
	FindByEmail(email string) (*model.User, error)
	UpdateRole(userID uint64, role string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var result model.User
	err := r.db.Where("email = ?", email).First(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *userRepository) UpdateRole(userID uint64, role string) error {
	return r.db.Model(&model.User{}).Where("id = ?", userID).Update("role", role).Error
}
