package repository

import (
	"gorm.io/gorm"

	"github.com/josiaholayin-ops/ShareMoment-backend/internal/model"
)

type CommentRepository interface {
	Create(comment *model.Comment) error
	// FindByID preloads the commenting user for response building.
	FindByID(commentID uint64) (*model.Comment, error)
	// FindByVideoID returns all comments for a video, newest first,
	// with their authors preloaded.
	FindByVideoID(videoID uint64) ([]model.Comment, error)

	WithTx(tx *gorm.DB) CommentRepository
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) WithTx(tx *gorm.DB) CommentRepository {
	return &commentRepository{db: tx}
}

func (r *commentRepository) Create(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

func (r *commentRepository) FindByID(commentID uint64) (*model.Comment, error) {
	var result model.Comment
	err := r.db.Preload("User").First(&result, commentID).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *commentRepository) FindByVideoID(videoID uint64) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.
		Preload("User").
		Where("video_id = ?", videoID).
		Order("created_at DESC, id DESC").
		Find(&comments).Error
	return comments, err
}
