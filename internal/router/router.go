package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/josiaholayin-ops/ShareMoment-backend/internal/config"
	"github.com/josiaholayin-ops/ShareMoment-backend/internal/handler"
	"github.com/josiaholayin-ops/ShareMoment-backend/internal/middleware"
	"github.com/josiaholayin-ops/ShareMoment-backend/internal/model"
)

// Setup wires every route. Media files are served read-only straight
// from the upload directory under the public prefix.
func Setup(
	cfg *config.Config,
	userHandler handler.UserHandler,
	videoHandler handler.VideoHandler,
	likeHandler handler.LikeHandler,
	commentHandler handler.CommentHandler,
	ratingHandler handler.RatingHandler,
	adminHandler handler.AdminHandler,
) *gin.Engine {
	r := gin.Default()

	r.Static(cfg.PublicPrefix, cfg.UploadDir)
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ShareMoment backend ok"})
	})

	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", userHandler.Register)
		authGroup.POST("/login", userHandler.Login)
	}

	videos := r.Group("/api/videos")
	{
		videos.GET("", videoHandler.Feed)
		videos.GET("/:id", videoHandler.GetVideo)

		videos.POST("", middleware.Auth(cfg.JWTSecret), middleware.RequireRole(model.RoleCreator), videoHandler.Upload)

		engaged := videos.Group("/:id", middleware.Auth(cfg.JWTSecret))
		{
			engaged.POST("/like", likeHandler.Like)
			engaged.DELETE("/like", likeHandler.Unlike)
			engaged.POST("/comment", commentHandler.Create)
			engaged.POST("/rate", ratingHandler.Rate)
		}
	}

	admin := r.Group("/api/admin", middleware.AdminSecret(cfg.AdminSecret))
	{
		admin.POST("/promote-creator", adminHandler.PromoteCreator)
		admin.POST("/seed-defaults", adminHandler.SeedDefaults)
	}

	return r
}
