package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/josiaholayin-ops/ShareMoment-backend/internal/dto"
	"github.com/josiaholayin-ops/ShareMoment-backend/internal/service"
	"github.com/josiaholayin-ops/ShareMoment-backend/pkg/logger"
)

type UserHandler interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
}

type userHandler struct {
	UserService service.UserService
}

func NewUserHandler(userService service.UserService) UserHandler {
	return &userHandler{UserService: userService}
}

type RegisterRequest struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	DisplayName string `json:"displayName" binding:"required"`
	AsCreator   bool   `json:"asCreator"`
	CreatorCode string `json:"creatorCode"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *userHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Missing fields")
		return
	}

	user, token, err := h.UserService.Register(service.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
		AsCreator:   req.AsCreator,
		CreatorCode: req.CreatorCode,
	})
	if err != nil {
		logger.Log.WithError(err).WithField("email", req.Email).Warn("registration failed")
		sendServiceError(c, err)
		return
	}

	logger.Log.WithField("user_id", user.ID).WithField("role", user.Role).Info("user registered")
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    dto.ToUserResponse(user),
		"token":   token,
	})
}

func (h *userHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Missing fields")
		return
	}

	user, token, err := h.UserService.Login(req.Email, req.Password)
	if err != nil {
		logger.Log.WithError(err).WithField("email", req.Email).Warn("login failed")
		sendServiceError(c, err)
		return
	}

	logger.Log.WithField("user_id", user.ID).Info("user logged in")
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    dto.ToUserResponse(user),
		"token":   token,
	})
}
