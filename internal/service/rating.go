package service

import (
	"github.com/josiaholayin-ops/ShareMoment-backend/internal/model"
	"github.com/josiaholayin-ops/ShareMoment-backend/internal/repository"
)

type RatingService interface {
	// Rate upserts this user's rating and returns the video's new
	// average (1 decimal, 0 when unrated).
	Rate(userID, videoID uint64, stars int) (float64, error)
}

type ratingService struct {
	ratingRepo repository.RatingRepository
	videoRepo  repository.VideoRepository
}

func NewRatingService(ratingRepo repository.RatingRepository, videoRepo repository.VideoRepository) RatingService {
	return &ratingService{
		ratingRepo: ratingRepo,
		videoRepo:  videoRepo,
	}
}

func (s *ratingService) Rate(userID, videoID uint64, stars int) (float64, error) {
	if stars < 1 || stars > 5 {
		return 0, ErrInvalidInput
	}
	exists, err := s.videoRepo.Exists(videoID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, ErrVideoNotFound
	}

	rating := &model.Rating{UserID: userID, VideoID: videoID, Stars: stars}
	if err := s.ratingRepo.Upsert(rating); err != nil {
		return 0, err
	}
	return s.ratingRepo.AverageByVideo(videoID)
}
