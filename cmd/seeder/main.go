// Standalone seed run: populates demo users and registers any media
// files already sitting in the upload directory, without starting the
// HTTP server. Safe to run repeatedly.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/josiaholayin-ops/ShareMoment-backend/internal/config"
	"github.com/josiaholayin-ops/ShareMoment-backend/internal/data"
	"github.com/josiaholayin-ops/ShareMoment-backend/internal/model"
	"github.com/josiaholayin-ops/ShareMoment-backend/internal/repository"
	"github.com/josiaholayin-ops/ShareMoment-backend/internal/service"
	"github.com/josiaholayin-ops/ShareMoment-backend/internal/storage"
	"github.com/josiaholayin-ops/ShareMoment-backend/pkg/logger"
)

func main() {
	cfg := config.Load(logger.Log)

	if err := os.MkdirAll(filepath.Dir(cfg.DBFile), 0755); err != nil {
		log.Fatalf("cannot create data dir: %v", err)
	}
	db, err := gorm.Open(sqlite.Open(cfg.DBFile), &gorm.Config{})
	if err != nil {
		log.Fatalf("cannot open database: %v", err)
	}
	if err := db.AutoMigrate(
		&model.User{}, &model.Video{}, &model.Like{}, &model.Comment{}, &model.Rating{},
	); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}

	store, err := storage.NewLocalStore(cfg.UploadDir, cfg.PublicPrefix)
	if err != nil {
		log.Fatalf("cannot init media storage: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	uow := data.NewUnitOfWork(db, videoRepo, likeRepo, commentRepo, ratingRepo)

	seedService := service.NewSeedService(userRepo, uow, store)
	count, err := seedService.Run()
	if err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	if count > 0 {
		fmt.Printf("Seed: inserted %d video(s).\n", count)
	} else {
		fmt.Println("Seed: no new videos found (drop .mp4 files into the upload dir).")
	}
}
