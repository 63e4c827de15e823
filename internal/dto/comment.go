package dto

import (
	"time"

	"github.com/josiaholayin-ops/ShareMoment-backend/internal/model"
)

type CommentResponse struct {
	ID        uint64    `json:"id"`
	VideoID   uint64    `json:"video_id"`
	UserID    uint64    `json:"user_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UserName  string    `json:"user_name"`
}

func ToCommentResponse(comment *model.Comment) CommentResponse {
	resp := CommentResponse{
		ID:        comment.ID,
		VideoID:   comment.VideoID,
		UserID:    comment.UserID,
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt,
	}
	// Only filled when the author was preloaded.
	if comment.User.ID != 0 {
		resp.UserName = comment.User.DisplayName
	}
	return resp
}

func ToCommentResponses(comments []model.Comment) []CommentResponse {
	response := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		response = append(response, ToCommentResponse(&comments[i]))
	}
	return response
}
