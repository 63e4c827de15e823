package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/josiaholayin-ops/ShareMoment-backend/internal/auth"
	"github.com/josiaholayin-ops/ShareMoment-backend/internal/middleware"
	"github.com/josiaholayin-ops/ShareMoment-backend/internal/service"
	"github.com/josiaholayin-ops/ShareMoment-backend/pkg/logger"
)

type LikeHandler interface {
	Like(c *gin.Context)
	Unlike(c *gin.Context)
}

type likeHandler struct {
	LikeService service.LikeService
}

func NewLikeHandler(likeService service.LikeService) LikeHandler {
	return &likeHandler{LikeService: likeService}
}

func (h *likeHandler) Like(c *gin.Context) {
	identity, videoID, ok := identityAndVideoID(c)
	if !ok {
		return
	}

	count, err := h.LikeService.Like(identity.UserID, videoID)
	if err != nil {
		logger.Log.WithError(err).WithField("video_id", videoID).Error("like failed")
		sendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "likeCount": count})
}

func (h *likeHandler) Unlike(c *gin.Context) {
	identity, videoID, ok := identityAndVideoID(c)
	if !ok {
		return
	}

	count, err := h.LikeService.Unlike(identity.UserID, videoID)
	if err != nil {
		logger.Log.WithError(err).WithField("video_id", videoID).Error("unlike failed")
		sendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "likeCount": count})
}

// identityAndVideoID extracts the verified identity and the :id path
// parameter; it writes the error response itself when either is bad.
func identityAndVideoID(c *gin.Context) (identity *auth.Claims, videoID uint64, ok bool) {
	claims, found := middleware.Identity(c)
	if !found {
		sendError(c, http.StatusUnauthorized, "Unauthorized")
		return nil, 0, false
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		sendError(c, http.StatusNotFound, "Video not found")
		return nil, 0, false
	}
	return claims, id, true
}
