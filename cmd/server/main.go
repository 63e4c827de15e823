package main

import (
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/josiaholayin-ops/ShareMoment-backend/internal/config"
	"github.com/josiaholayin-ops/ShareMoment-backend/internal/data"
	"github.com/josiaholayin-ops/ShareMoment-backend/internal/handler"
	"github.com/josiaholayin-ops/ShareMoment-backend/internal/model"
	"github.com/josiaholayin-ops/ShareMoment-backend/internal/repository"
	"github.com/josiaholayin-ops/ShareMoment-backend/internal/router"
	"github.com/josiaholayin-ops/ShareMoment-backend/internal/service"
	"github.com/josiaholayin-ops/ShareMoment-backend/internal/storage"
	"github.com/josiaholayin-ops/ShareMoment-backend/pkg/logger"
)

func main() {
	logger.Init()
	cfg := config.Load(logger.Log)

	if err := os.MkdirAll(filepath.Dir(cfg.DBFile), 0755); err != nil {
		logger.Log.Fatalf("cannot create data dir: %v", err)
	}
	db, err := gorm.Open(sqlite.Open(cfg.DBFile), &gorm.Config{})
	if err != nil {
		logger.Log.Fatalf("cannot open database: %v", err)
	}
	if err := db.AutoMigrate(
		&model.User{}, &model.Video{}, &model.Like{}, &model.Comment{}, &model.Rating{},
	); err != nil {
		logger.Log.Fatalf("database migration failed: %v", err)
	}

	store, err := storage.NewLocalStore(cfg.UploadDir, cfg.PublicPrefix)
	if err != nil {
		logger.Log.Fatalf("cannot init media storage: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	ratingRepo := repository.NewRatingRepository(db)

	uow := data.NewUnitOfWork(db, videoRepo, likeRepo, commentRepo, ratingRepo)

	userService := service.NewUserService(userRepo, cfg.JWTSecret, cfg.CreatorSignupCode)
	videoService := service.NewVideoService(videoRepo, commentRepo, store)
	likeService := service.NewLikeService(likeRepo, videoRepo)
	commentService := service.NewCommentService(commentRepo, videoRepo)
	ratingService := service.NewRatingService(ratingRepo, videoRepo)
	seedService := service.NewSeedService(userRepo, uow, store)

	// Seed at startup; a failed seed must not stop the server.
	if count, err := seedService.Run(); err != nil {
		logger.Log.WithError(err).Warn("startup seed failed")
	} else if count > 0 {
		logger.Log.WithField("seeded", count).Info("startup seed inserted videos")
	}

	r := router.Setup(
		cfg,
		handler.NewUserHandler(userService),
		handler.NewVideoHandler(videoService),
		handler.NewLikeHandler(likeService),
		handler.NewCommentHandler(commentService),
		handler.NewRatingHandler(ratingService),
		handler.NewAdminHandler(userService, seedService),
	)

	logger.Log.WithField("port", cfg.Port).Info("API starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Log.Fatalf("server failed: %v", err)
	}
}
