package service

import (
	"strings"

	"github.com/josiaholayin-ops/ShareMoment-backend/internal/model"
	"github.com/josiaholayin-ops/ShareMoment-backend/internal/repository"
)

type CommentService interface {
	// Create appends a comment and returns it with the author preloaded.
	Create(userID, videoID uint64, text string) (*model.Comment, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	videoRepo   repository.VideoRepository
}

func NewCommentService(commentRepo repository.CommentRepository, videoRepo repository.VideoRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		videoRepo:   videoRepo,
	}
}

func (s *commentService) Create(userID, videoID uint64, text string) (*model.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrInvalidInput
	}
	exists, err := s.videoRepo.Exists(videoID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrVideoNotFound
	}

	comment := &model.Comment{
		UserID:  userID,
		VideoID: videoID,
		Text:    text,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	// Re-read so the response carries the commenter's display name.
	return s.commentRepo.FindByID(comment.ID)
}
