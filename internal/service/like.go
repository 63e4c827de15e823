package service

import (
	"github.com/josiaholayin-ops/ShareMoment-backend/internal/model"
	"github.com/josiaholayin-ops/ShareMoment-backend/internal/repository"
)

type LikeService interface {
	// Like is idempotent: a duplicate like keeps the count unchanged.
	// Returns the video's like count after the operation.
	Like(userID, videoID uint64) (int64, error)
	// Unlike is idempotent: removing a like that was never set is a
	// no-op. Returns the updated like count.
	Unlike(userID, videoID uint64) (int64, error)
}

type likeService struct {
	likeRepo  repository.LikeRepository
	videoRepo repository.VideoRepository
}

func NewLikeService(likeRepo repository.LikeRepository, videoRepo repository.VideoRepository) LikeService {
	return &likeService{
		likeRepo:  likeRepo,
		videoRepo: videoRepo,
	}
}

func (s *likeService) Like(userID, videoID uint64) (int64, error) {
	exists, err := s.videoRepo.Exists(videoID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, ErrVideoNotFound
	}
	if err := s.likeRepo.Upsert(&model.Like{UserID: userID, VideoID: videoID}); err != nil {
		return 0, err
	}
	return s.likeRepo.CountByVideo(videoID)
}

func (s *likeService) Unlike(userID, videoID uint64) (int64, error) {
	exists, err := s.videoRepo.Exists(videoID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, ErrVideoNotFound
	}
	if err := s.likeRepo.Delete(userID, videoID); err != nil {
		return 0, err
	}
	return s.likeRepo.CountByVideo(videoID)
}
