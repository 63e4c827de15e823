package service

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"path/filepath"
	"time"

	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	"github.com/josiaholayin-ops/ShareMoment-backend/internal/model"
	"github.com/josiaholayin-ops/ShareMoment-backend/internal/repository"
	"github.com/josiaholayin-ops/ShareMoment-backend/internal/storage"
)

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

type UploadInput struct {
	Title     string
	Publisher string
	Producer  string
	Genre     string
	AgeRating string
	// Filename is the client-supplied name; only its extension is kept.
	Filename string
	File     io.Reader
}

// VideoDetail is a single video with its full comment list.
type VideoDetail struct {
	Video    *repository.VideoStats
	Comments []model.Comment
}

type VideoService interface {
	// Upload persists the binary first, then the metadata row; a failed
	// file write leaves no row behind.
	Upload(creatorID uint64, in UploadInput) (*model.Video, error)
	// Feed returns one enriched page, newest first. Page and pageSize
	// are clamped, search filters on title or genre.
	Feed(page, pageSize int, search string) ([]repository.VideoStats, error)
	GetVideo(videoID uint64) (*VideoDetail, error)
}

type videoService struct {
	sf singleflight.Group

	videoRepo   repository.VideoRepository
	commentRepo repository.CommentRepository
	store       storage.Store
}

func NewVideoService(videoRepo repository.VideoRepository, commentRepo repository.CommentRepository, store storage.Store) VideoService {
	return &videoService{
		videoRepo:   videoRepo,
		commentRepo: commentRepo,
		store:       store,
	}
}

// storageName builds a collision-resistant filename: millisecond prefix
// plus a random suffix, keeping the original extension (.mp4 fallback).
func storageName(original string) string {
	ext := filepath.Ext(original)
	if ext == "" {
		ext = ".mp4"
	}
	return fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), rand.Int63n(1_000_000_000), ext)
}

func (s *videoService) Upload(creatorID uint64, in UploadInput) (*model.Video, error) {
	if in.Title == "" || in.File == nil {
		return nil, ErrInvalidInput
	}

	name := storageName(in.Filename)
	if err := s.store.Save(name, in.File); err != nil {
		return nil, err
	}

	video := &model.Video{
		Title:     in.Title,
		Publisher: in.Publisher,
		Producer:  in.Producer,
		Genre:     in.Genre,
		AgeRating: in.AgeRating,
		Filepath:  s.store.PublicPath(name),
		UserID:    creatorID,
	}
	if err := s.videoRepo.Create(video); err != nil {
		return nil, err
	}
	return video, nil
}

func (s *videoService) Feed(page, pageSize int, search string) ([]repository.VideoStats, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	offset := (page - 1) * pageSize

	rows, err := s.videoRepo.FindPage(offset, pageSize, search)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetVideo collapses concurrent lookups of the same video into one
// database round trip.
func (s *videoService) GetVideo(videoID uint64) (*VideoDetail, error) {
	key := fmt.Sprintf("video_detail_%d", videoID)
	result, err, _ := s.sf.Do(key, func() (interface{}, error) {
		stats, err := s.videoRepo.FindStatsByID(videoID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrVideoNotFound
			}
			return nil, err
		}
		comments, err := s.commentRepo.FindByVideoID(videoID)
		if err != nil {
			return nil, err
		}
		return &VideoDetail{Video: stats, Comments: comments}, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*VideoDetail), nil
}
