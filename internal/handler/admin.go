package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/josiaholayin-ops/ShareMoment-backend/internal/service"
	"github.com/josiaholayin-ops/ShareMoment-backend/pkg/logger"
)

// AdminHandler serves the shared-secret operations; the secret check
// itself lives in the AdminSecret middleware.
type AdminHandler interface {
	PromoteCreator(c *gin.Context)
	SeedDefaults(c *gin.Context)
}

type adminHandler struct {
	UserService service.UserService
	SeedService service.SeedService
}

func NewAdminHandler(userService service.UserService, seedService service.SeedService) AdminHandler {
	return &adminHandler{
		UserService: userService,
		SeedService: seedService,
	}
}

type PromoteCreatorRequest struct {
	Email string `json:"email" binding:"required"`
}

func (h *adminHandler) PromoteCreator(c *gin.Context) {
	var req PromoteCreatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Missing email")
		return
	}

	if err := h.UserService.PromoteToCreator(req.Email); err != nil {
		sendServiceError(c, err)
		return
	}

	logger.Log.WithField("email", req.Email).Info("user promoted to creator")
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User promoted to creator"})
}

func (h *adminHandler) SeedDefaults(c *gin.Context) {
	count, err := h.SeedService.Run()
	if err != nil {
		logger.Log.WithError(err).Error("seed run failed")
		sendError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	logger.Log.WithField("seeded", count).Info("seed run finished")
	c.JSON(http.StatusOK, gin.H{"success": true, "seeded": count})
}
