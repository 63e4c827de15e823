package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/josiaholayin-ops/ShareMoment-backend/internal/model"
)

const testJWTSecret = "test_jwt_secret"

// setupTestDB opens an isolated in-memory database. One connection max,
// so the memory store lives for the whole test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.Video{}, &model.Like{}, &model.Comment{}, &model.Rating{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email, role string) *model.User {
	t.Helper()
	user := &model.User{
		Email:        email,
		PasswordHash: "x",
		DisplayName:  "User " + email,
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestVideo(t *testing.T, db *gorm.DB, userID uint64, title, genre string) *model.Video {
	t.Helper()
	video := &model.Video{
		Title:    title,
		Genre:    genre,
		Filepath: "/uploads/videos/" + title + ".mp4",
		UserID:   userID,
	}
	require.NoError(t, db.Create(video).Error)
	return video
}
