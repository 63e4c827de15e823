package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/josiaholayin-ops/ShareMoment-backend/internal/model"
)

// VideoStats is a video row enriched with creator name and engagement
// aggregates, scanned straight from the feed/detail query.
type VideoStats struct {
	ID           uint64    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Title        string    `json:"title"`
	Publisher    string    `json:"publisher"`
	Producer     string    `json:"producer"`
	Genre        string    `json:"genre"`
	AgeRating    string    `json:"age_rating"`
	Filepath     string    `json:"filepath"`
	UserID       uint64    `json:"user_id"`
	CreatorName  string    `json:"creator_name"`
	LikeCount    int64     `json:"like_count"`
	AvgRating    float64   `json:"avg_rating"`
	CommentCount int64     `json:"comment_count"`
}

type VideoRepository interface {
	Create(video *model.Video) error
	// FindPage returns enriched rows, newest first.
	FindPage(offset, limit int, search string) ([]VideoStats, error)
	FindStatsByID(videoID uint64) (*VideoStats, error)
	Exists(videoID uint64) (bool, error)
	ExistsByFilepath(filepath string) (bool, error)

	WithTx(tx *gorm.DB) VideoRepository
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) WithTx(tx *gorm.DB) VideoRepository {
	return &videoRepository{db: tx}
}

func (r *videoRepository) Create(video *model.Video) error {
	return r.db.Create(video).Error
}

// statsSelect builds the enriched feed row: the aggregates come from
// correlated subqueries so one statement yields a fully enriched page.
const statsSelect = `videos.id, videos.created_at, videos.title, videos.publisher,
	videos.producer, videos.genre, videos.age_rating, videos.filepath, videos.user_id,
	users.display_name AS creator_name,
	(SELECT COUNT(*) FROM likes l WHERE l.video_id = videos.id) AS like_count,
	(SELECT IFNULL(ROUND(AVG(r.stars), 1), 0) FROM ratings r WHERE r.video_id = videos.id) AS avg_rating,
	(SELECT COUNT(*) FROM comments c WHERE c.video_id = videos.id) AS comment_count`

func (r *videoRepository) statsQuery() *gorm.DB {
	return r.db.Table("videos").
		Select(statsSelect).
		Joins("JOIN users ON users.id = videos.user_id")
}

func (r *videoRepository) FindPage(offset, limit int, search string) ([]VideoStats, error) {
	q := r.statsQuery()
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("videos.title LIKE ? OR videos.genre LIKE ?", like, like)
	}
	var rows []VideoStats
	err := q.
		Order("videos.created_at DESC, videos.id DESC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	return rows, err
}

func (r *videoRepository) FindStatsByID(videoID uint64) (*VideoStats, error) {
	var row VideoStats
	res := r.statsQuery().Where("videos.id = ?", videoID).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *videoRepository) Exists(videoID uint64) (bool, error) {
	var count int64
	err := r.db.Model(&model.Video{}).Where("id = ?", videoID).Count(&count).Error
	return count > 0, err
}

func (r *videoRepository) ExistsByFilepath(filepath string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Video{}).Where("filepath = ?", filepath).Count(&count).Error
	return count > 0, err
}
