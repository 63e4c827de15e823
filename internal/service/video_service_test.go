package service

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/josiaholayin-ops/ShareMoment-backend/internal/model"
	"github.com/josiaholayin-ops/ShareMoment-backend/internal/repository"
	"github.com/josiaholayin-ops/ShareMoment-backend/internal/storage"
)

func newVideoService(t *testing.T) (VideoService, *gorm.DB, storage.Store) {
	t.Helper()
	db := setupTestDB(t)
	store, err := storage.NewLocalStore(t.TempDir(), "/uploads/videos")
	require.NoError(t, err)
	svc := NewVideoService(
		repository.NewVideoRepository(db),
		repository.NewCommentRepository(db),
		store,
	)
	return svc, db, store
}

func TestUploadCreatesFileThenRow(t *testing.T) {
	svc, db, store := newVideoService(t)
	creator := createTestUser(t, db, "creator@example.com", model.RoleCreator)

	video, err := svc.Upload(creator.ID, UploadInput{
		Title:    "Sunset",
		Genre:    "Nature",
		Filename: "clip.webm",
		File:     strings.NewReader("binary-bytes"),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(video.Filepath, "/uploads/videos/"))
	assert.True(t, strings.HasSuffix(video.Filepath, ".webm"))

	names, err := store.List()
	require.NoError(t, err)
	require.Len(t, names, 1)
	assert.Equal(t, store.PublicPath(names[0]), video.Filepath)
}

func TestUploadDefaultsExtension(t *testing.T) {
	svc, db, _ := newVideoService(t)
	creator := createTestUser(t, db, "creator@example.com", model.RoleCreator)

	video, err := svc.Upload(creator.ID, UploadInput{
		Title:    "No Extension",
		Filename: "rawupload",
		File:     strings.NewReader("x"),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(video.Filepath, ".mp4"))
}

func TestUploadRejectsMissingTitleOrFile(t *testing.T) {
	svc, db, _ := newVideoService(t)
	creator := createTestUser(t, db, "creator@example.com", model.RoleCreator)

	_, err := svc.Upload(creator.ID, UploadInput{Title: "", File: strings.NewReader("x")})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.Upload(creator.ID, UploadInput{Title: "T", File: nil})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

type failingStore struct{}

func (failingStore) Save(string, io.Reader) error { return errors.New("disk full") }
func (failingStore) PublicPath(name string) string {
	return "/uploads/videos/" + name
}
func (failingStore) List() ([]string, error) { return nil, nil }

func TestUploadWriteFailureLeavesNoRow(t *testing.T) {
	db := setupTestDB(t)
	creator := createTestUser(t, db, "creator@example.com", model.RoleCreator)
	svc := NewVideoService(
		repository.NewVideoRepository(db),
		repository.NewCommentRepository(db),
		failingStore{},
	)

	_, err := svc.Upload(creator.ID, UploadInput{Title: "T", File: strings.NewReader("x")})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&model.Video{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestFeedPaginationAndClamping(t *testing.T) {
	svc, db, _ := newVideoService(t)
	creator := createTestUser(t, db, "creator@example.com", model.RoleCreator)

	for _, title := range []string{"First", "Second", "Third"} {
		createTestVideo(t, db, creator.ID, title, "Misc")
	}

	// Newest first.
	rows, err := svc.Feed(1, 10, "")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Third", rows[0].Title)
	assert.Equal(t, "First", rows[2].Title)

	// page < 1 clamps to 1, pageSize > 50 clamps to 50.
	rows, err = svc.Feed(0, 1000, "")
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	// Second page of size 2 holds only the oldest row.
	rows, err = svc.Feed(2, 2, "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "First", rows[0].Title)
}

func TestFeedSearchMatchesTitleOrGenre(t *testing.T) {
	svc, db, _ := newVideoService(t)
	creator := createTestUser(t, db, "creator@example.com", model.RoleCreator)

	createTestVideo(t, db, creator.ID, "Demo Reel", "Misc")
	createTestVideo(t, db, creator.ID, "Holiday", "Demo")
	createTestVideo(t, db, creator.ID, "Unrelated", "Sports")

	rows, err := svc.Feed(1, 10, "Demo")
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	rows, err = svc.Feed(1, 10, "nothing-matches")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestFeedEnrichment(t *testing.T) {
	svc, db, _ := newVideoService(t)
	creator := createTestUser(t, db, "creator@example.com", model.RoleCreator)
	alice := createTestUser(t, db, "alice@example.com", model.RoleConsumer)
	bob := createTestUser(t, db, "bob@example.com", model.RoleConsumer)
	video := createTestVideo(t, db, creator.ID, "Stats", "Misc")

	require.NoError(t, db.Create(&model.Like{UserID: alice.ID, VideoID: video.ID}).Error)
	require.NoError(t, db.Create(&model.Rating{UserID: alice.ID, VideoID: video.ID, Stars: 5}).Error)
	require.NoError(t, db.Create(&model.Rating{UserID: bob.ID, VideoID: video.ID, Stars: 4}).Error)
	require.NoError(t, db.Create(&model.Comment{UserID: bob.ID, VideoID: video.ID, Text: "hi"}).Error)

	rows, err := svc.Feed(1, 10, "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, creator.DisplayName, row.CreatorName)
	assert.Equal(t, int64(1), row.LikeCount)
	assert.Equal(t, 4.5, row.AvgRating)
	assert.Equal(t, int64(1), row.CommentCount)
}

func TestGetVideoDetailAndNotFound(t *testing.T) {
	svc, db, _ := newVideoService(t)
	creator := createTestUser(t, db, "creator@example.com", model.RoleCreator)
	viewer := createTestUser(t, db, "viewer@example.com", model.RoleConsumer)
	video := createTestVideo(t, db, creator.ID, "Detail", "Misc")

	require.NoError(t, db.Create(&model.Comment{UserID: viewer.ID, VideoID: video.ID, Text: "older"}).Error)
	require.NoError(t, db.Create(&model.Comment{UserID: viewer.ID, VideoID: video.ID, Text: "newer"}).Error)

	detail, err := svc.GetVideo(video.ID)
	require.NoError(t, err)
	assert.Equal(t, "Detail", detail.Video.Title)
	require.Len(t, detail.Comments, 2)
	// Newest first, authors preloaded.
	assert.Equal(t, "newer", detail.Comments[0].Text)
	assert.Equal(t, viewer.DisplayName, detail.Comments[0].User.DisplayName)

	_, err = svc.GetVideo(99999)
	assert.ErrorIs(t, err, ErrVideoNotFound)
}
