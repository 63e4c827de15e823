package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/josiaholayin-ops/ShareMoment-backend/internal/dto"
	"github.com/josiaholayin-ops/ShareMoment-backend/internal/service"
	"github.com/josiaholayin-ops/ShareMoment-backend/pkg/logger"
)

type CommentHandler interface {
	Create(c *gin.Context)
}

type commentHandler struct {
	CommentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) CommentHandler {
	return &commentHandler{CommentService: commentService}
}

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

func (h *commentHandler) Create(c *gin.Context) {
	identity, videoID, ok := identityAndVideoID(c)
	if !ok {
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Missing text")
		return
	}

	comment, err := h.CommentService.Create(identity.UserID, videoID, req.Text)
	if err != nil {
		logger.Log.WithError(err).WithField("video_id", videoID).Error("comment failed")
		sendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"comment": dto.ToCommentResponse(comment),
	})
}
