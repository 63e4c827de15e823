package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/josiaholayin-ops/ShareMoment-backend/internal/model"
)

type LikeRepository interface {
	// Upsert inserts the like, or does nothing if this (user, video)
	// pair already exists. A concurrent duplicate hitting the unique
	// index lands on the same DO NOTHING path.
	Upsert(like *model.Like) error
	Delete(userID, videoID uint64) error
	CountByVideo(videoID uint64) (int64, error)

	WithTx(tx *gorm.DB) LikeRepository
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) WithTx(tx *gorm.DB) LikeRepository {
	return &likeRepository{db: tx}
}

func (r *likeRepository) Upsert(like *model.Like) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
		DoNothing: true,
	}).Create(like).Error
}

func (r *likeRepository) Delete(userID, videoID uint64) error {
	// Deleting a like that does not exist is a no-op, not an error.
	return r.db.Where("user_id = ? AND video_id = ?", userID, videoID).
		Delete(&model.Like{}).Error
}

func (r *likeRepository) CountByVideo(videoID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Like{}).Where("video_id = ?", videoID).Count(&count).Error
	return count, err
}
