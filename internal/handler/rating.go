package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/josiaholayin-ops/ShareMoment-backend/internal/service"
	"github.com/josiaholayin-ops/ShareMoment-backend/pkg/logger"
)

type RatingHandler interface {
	Rate(c *gin.Context)
}

type ratingHandler struct {
	RatingService service.RatingService
}

func NewRatingHandler(ratingService service.RatingService) RatingHandler {
	return &ratingHandler{RatingService: ratingService}
}

type RateRequest struct {
	Stars int `json:"stars"`
}

func (h *ratingHandler) Rate(c *gin.Context) {
	identity, videoID, ok := identityAndVideoID(c)
	if !ok {
		return
	}

	var req RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Stars 1-5")
		return
	}

	avg, err := h.RatingService.Rate(identity.UserID, videoID, req.Stars)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			sendError(c, http.StatusBadRequest, "Stars 1-5")
			return
		}
		logger.Log.WithError(err).WithField("video_id", videoID).Error("rating failed")
		sendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "avgRating": avg})
}
