package dto

import (
	"time"

	"github.com/josiaholayin-ops/ShareMoment-backend/internal/model"
	"github.com/josiaholayin-ops/ShareMoment-backend/internal/repository"
)

// FeedItem is one enriched row of the video feed.
type FeedItem struct {
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

// VideoDetail is the single-video view: same stats as the feed minus
// comment_count, since the full comment list rides alongside.
type VideoDetail struct {
	ID          uint64    `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Title       string    `json:"title"`
	Publisher   string    `json:"publisher"`
	Producer    string    `json:"producer"`
	Genre       string    `json:"genre"`
	AgeRating   string    `json:"age_rating"`
	Filepath    string    `json:"filepath"`
	UserID      uint64    `json:"user_id"`
	CreatorName string    `json:"creator_name"`
	LikeCount   int64     `json:"like_count"`
	AvgRating   float64   `json:"avg_rating"`
}

func ToFeedItem(row *repository.VideoStats) FeedItem {
	return FeedItem{
		ID:           row.ID,
		CreatedAt:    row.CreatedAt,
		Title:        row.Title,
		Publisher:    row.Publisher,
		Producer:     row.Producer,
		Genre:        row.Genre,
		AgeRating:    row.AgeRating,
		Filepath:     row.Filepath,
		UserID:       row.UserID,
		CreatorName:  row.CreatorName,
		LikeCount:    row.LikeCount,
		AvgRating:    row.AvgRating,
		CommentCount: row.CommentCount,
	}
}

func ToFeedItems(rows []repository.VideoStats) []FeedItem {
	items := make([]FeedItem, 0, len(rows))
	for i := range rows {
		items = append(items, ToFeedItem(&rows[i]))
	}
	return items
}

func ToVideoDetail(row *repository.VideoStats) VideoDetail {
	return VideoDetail{
		ID:          row.ID,
		CreatedAt:   row.CreatedAt,
		Title:       row.Title,
		Publisher:   row.Publisher,
		Producer:    row.Producer,
		Genre:       row.Genre,
		AgeRating:   row.AgeRating,
		Filepath:    row.Filepath,
		UserID:      row.UserID,
		CreatorName: row.CreatorName,
		LikeCount:   row.LikeCount,
		AvgRating:   row.AvgRating,
	}
}

// UploadedVideo is the response to a fresh upload; no stats yet, they
// are all zero by definition.
type UploadedVideo struct {
	ID        uint64    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Title     string    `json:"title"`
	Publisher string    `json:"publisher"`
	Producer  string    `json:"producer"`
	Genre     string    `json:"genre"`
	AgeRating string    `json:"age_rating"`
	Filepath  string    `json:"filepath"`
	UserID    uint64    `json:"user_id"`
}

func ToUploadedVideo(video *model.Video) UploadedVideo {
	return UploadedVideo{
		ID:        video.ID,
		CreatedAt: video.CreatedAt,
		Title:     video.Title,
		Publisher: video.Publisher,
		Producer:  video.Producer,
		Genre:     video.Genre,
		AgeRating: video.AgeRating,
		Filepath:  video.Filepath,
		UserID:    video.UserID,
	}
}
