package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/josiaholayin-ops/ShareMoment-backend/internal/dto"
	"github.com/josiaholayin-ops/ShareMoment-backend/internal/middleware"
	"github.com/josiaholayin-ops/ShareMoment-backend/internal/service"
	"github.com/josiaholayin-ops/ShareMoment-backend/pkg/logger"
)

type VideoHandler interface {
	Upload(c *gin.Context)
	Feed(c *gin.Context)
	GetVideo(c *gin.Context)
}

type videoHandler struct {
	VideoService service.VideoService
}

func NewVideoHandler(videoService service.VideoService) VideoHandler {
	return &videoHandler{VideoService: videoService}
}

// Upload registers a new video: binary in the multipart field "video",
// metadata in the remaining form fields. Creator role is enforced by
// the route middleware.
func (h *videoHandler) Upload(c *gin.Context) {
	identity, ok := middleware.Identity(c)
	if !ok {
		sendError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	fileHeader, err := c.FormFile("video")
	if err != nil {
		sendError(c, http.StatusBadRequest, "Missing video file")
		return
	}
	title := c.PostForm("title")
	if title == "" {
		sendError(c, http.StatusBadRequest, "Missing title")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Upload failed")
		return
	}
	defer file.Close()

	logCtx := logger.Log.WithField("user_id", identity.UserID).WithField("title", title)

	video, err := h.VideoService.Upload(identity.UserID, service.UploadInput{
		Title:     title,
		Publisher: c.PostForm("publisher"),
		Producer:  c.PostForm("producer"),
		Genre:     c.PostForm("genre"),
		AgeRating: c.PostForm("ageRating"),
		Filename:  fileHeader.Filename,
		File:      file,
	})
	if err != nil {
		logCtx.WithError(err).Error("upload failed")
		sendServiceError(c, err)
		return
	}

	logCtx.WithField("video_id", video.ID).Info("video uploaded")
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"video":   dto.ToUploadedVideo(video),
	})
}

func (h *videoHandler) Feed(c *gin.Context) {
	// Bad numbers fall back to defaults; the service clamps the rest.
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	search := c.Query("search")

	rows, err := h.VideoService.Feed(page, pageSize, search)
	if err != nil {
		logger.Log.WithError(err).Error("feed query failed")
		sendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"items":   dto.ToFeedItems(rows),
	})
}

func (h *videoHandler) GetVideo(c *gin.Context) {
	videoID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		sendError(c, http.StatusNotFound, "Video not found")
		return
	}

	detail, err := h.VideoService.GetVideo(videoID)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"video":    dto.ToVideoDetail(detail.Video),
		"comments": dto.ToCommentResponses(detail.Comments),
	})
}
