package service

import (
	"errors"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/josiaholayin-ops/ShareMoment-backend/internal/data"
	"github.com/josiaholayin-ops/ShareMoment-backend/internal/model"
	"github.com/josiaholayin-ops/ShareMoment-backend/internal/repository"
	"github.com/josiaholayin-ops/ShareMoment-backend/internal/storage"
	"github.com/josiaholayin-ops/ShareMoment-backend/pkg/logger"
)

const seedPassword = "SeedPass!234"

var seedExtensions = map[string]bool{
	".mp4":  true,
	".webm": true,
	".ogg":  true,
}

// SeedService populates demo users and registers every media file in
// the storage directory as a demo video. Running it again is a no-op
// for content that already exists.
type SeedService interface {
	// Run returns how many videos were newly seeded. Per-file failures
	// are logged and skipped, never fatal.
	Run() (int, error)
}

type seedService struct {
	userRepo repository.UserRepository
	uow      data.UnitOfWork
	store    storage.Store
}

func NewSeedService(userRepo repository.UserRepository, uow data.UnitOfWork, store storage.Store) SeedService {
	return &seedService{
		userRepo: userRepo,
		uow:      uow,
		store:    store,
	}
}

// ensureUser finds or creates a demo user; idempotent by email.
func (s *seedService) ensureUser(email, displayName, role string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user = &model.User{
		Email:        email,
		PasswordHash: string(hashed),
		DisplayName:  displayName,
		Role:         role,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// titleFromFilename turns "my_demo-clip.mp4" into "my demo clip".
func titleFromFilename(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	base = strings.NewReplacer("_", " ", "-", " ").Replace(base)
	return strings.Join(strings.Fields(base), " ")
}

func (s *seedService) Run() (int, error) {
	creator, err := s.ensureUser("creator@sharemoment.local", "Demo Creator", model.RoleCreator)
	if err != nil {
		return 0, err
	}
	alice, err := s.ensureUser("alice@sharemoment.local", "Alice", model.RoleConsumer)
	if err != nil {
		return 0, err
	}
	bob, err := s.ensureUser("bob@sharemoment.local", "Bob", model.RoleConsumer)
	if err != nil {
		return 0, err
	}

	files, err := s.store.List()
	if err != nil {
		return 0, err
	}

	inserted := 0
	for _, f := range files {
		if !seedExtensions[strings.ToLower(filepath.Ext(f))] {
			continue
		}
		webPath := s.store.PublicPath(f)
		seeded, err := s.seedVideo(f, webPath, creator, alice, bob)
		if err != nil {
			// One bad file must not sink the whole run.
			logger.Log.WithError(err).WithField("file", f).Warn("seed: skipping file")
			continue
		}
		if seeded {
			inserted++
		}
	}
	return inserted, nil
}

var errAlreadySeeded = errors.New("already seeded")

// seedVideo inserts one demo video with its canned likes, ratings and
// comments in a single transaction. Returns whether a new row was made.
func (s *seedService) seedVideo(file, webPath string, creator, alice, bob *model.User) (bool, error) {
	err := s.uow.Execute(func(repos *data.TransactionalRepositories) error {
		exists, err := repos.VideoRepo.ExistsByFilepath(webPath)
		if err != nil {
			return err
		}
		if exists {
			return errAlreadySeeded
		}

		video := &model.Video{
			Title:     titleFromFilename(file),
			Publisher: "ShareMoment Demos",
			Producer:  "Seed Bot",
			Genre:     "Demo",
			AgeRating: "PG",
			Filepath:  webPath,
			UserID:    creator.ID,
		}
		if err := repos.VideoRepo.Create(video); err != nil {
			return err
		}

		for _, u := range []*model.User{alice, bob} {
			if err := repos.LikeRepo.Upsert(&model.Like{UserID: u.ID, VideoID: video.ID}); err != nil {
				return err
			}
		}
		if err := repos.RatingRepo.Upsert(&model.Rating{UserID: alice.ID, VideoID: video.ID, Stars: 5}); err != nil {
			return err
		}
		if err := repos.RatingRepo.Upsert(&model.Rating{UserID: bob.ID, VideoID: video.ID, Stars: 4}); err != nil {
			return err
		}
		if err := repos.CommentRepo.Create(&model.Comment{UserID: alice.ID, VideoID: video.ID, Text: "Love this demo!"}); err != nil {
			return err
		}
		if err := repos.CommentRepo.Create(&model.Comment{UserID: bob.ID, VideoID: video.ID, Text: "Smooth playback 👍"}); err != nil {
			return err
		}
		return nil
	})
	if errors.Is(err, errAlreadySeeded) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
