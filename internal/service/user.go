package service

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/josiaholayin-ops/ShareMoment-backend/internal/auth"
	"github.com/josiaholayin-ops/ShareMoment-backend/internal/model"
	"github.com/josiaholayin-ops/ShareMoment-backend/internal/repository"
)

type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
	AsCreator   bool
	CreatorCode string
}

type UserService interface {
	// Register creates the user and returns it with a fresh token.
	Register(in RegisterInput) (*model.User, string, error)
	Login(email, password string) (*model.User, string, error)
	// PromoteToCreator is the admin path for upgrading a consumer.
	PromoteToCreator(email string) error
}

type userService struct {
	userRepo    repository.UserRepository
	jwtSecret   string
	creatorCode string
}

func NewUserService(userRepo repository.UserRepository, jwtSecret, creatorCode string) UserService {
	return &userService{
		userRepo:    userRepo,
		jwtSecret:   jwtSecret,
		creatorCode: creatorCode,
	}
}

// foldEmail normalizes an email for storage and lookup so uniqueness is
// case-insensitive.
func foldEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *userService) Register(in RegisterInput) (*model.User, string, error) {
	if in.Email == "" || in.Password == "" || in.DisplayName == "" {
		return nil, "", ErrInvalidInput
	}
	email := foldEmail(in.Email)

	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	// Creator role only with the configured signup code; anything else
	// silently falls back to consumer.
	role := model.RoleConsumer
	if in.AsCreator && in.CreatorCode == s.creatorCode {
		role = model.RoleCreator
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(hashed),
		DisplayName:  in.DisplayName,
		Role:         role,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, "", err
	}

	token, err := auth.Sign(user, s.jwtSecret)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *userService) Login(email, password string) (*model.User, string, error) {
	if email == "" || password == "" {
		return nil, "", ErrInvalidInput
	}

	user, err := s.userRepo.FindByEmail(foldEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same error as a password mismatch: do not reveal whether
			// the email is registered.
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := auth.Sign(user, s.jwtSecret)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *userService) PromoteToCreator(email string) error {
	if email == "" {
		return ErrInvalidInput
	}
	user, err := s.userRepo.FindByEmail(foldEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return s.userRepo.UpdateRole(user.ID, model.RoleCreator)
}
