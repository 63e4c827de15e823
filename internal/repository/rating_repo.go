package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/josiaholayin-ops/ShareMoment-backend/internal/model"
)

type RatingRepository interface {
	// Upsert inserts the rating or, when this user already rated this
	// video, overwrites stars and the update timestamp.
	Upsert(rating *model.Rating) error
	// AverageByVideo returns the mean stars rounded to one decimal,
	// 0 when the video has no ratings.
	AverageByVideo(videoID uint64) (float64, error)

	WithTx(tx *gorm.DB) RatingRepository
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) WithTx(tx *gorm.DB) RatingRepository {
	return &ratingRepository{db: tx}
}

func (r *ratingRepository) Upsert(rating *model.Rating) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"stars", "updated_at"}),
	}).Create(rating).Error
}

func (r *ratingRepository) AverageByVideo(videoID uint64) (float64, error) {
	var avg float64
	err := r.db.Model(&model.Rating{}).
		Select("IFNULL(ROUND(AVG(stars), 1), 0)").
		Where("video_id = ?", videoID).
		Scan(&avg).Error
	return avg, err
}
