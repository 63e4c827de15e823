package data

import (
	"gorm.io/gorm"

	"github.com/josiaholayin-ops/ShareMoment-backend/internal/repository"
)

// UnitOfWork runs a function against repositories bound to one database
// transaction. The seed loader uses it so a video and its seeded likes,
// ratings and comments land (or fail) together.
type UnitOfWork interface {
	Execute(fn func(repos *TransactionalRepositories) error) error
}

// TransactionalRepositories holds the repositories that take part in a
// single transaction.
type TransactionalRepositories struct {
	VideoRepo   repository.VideoRepository
	LikeRepo    repository.LikeRepository
	CommentRepo repository.CommentRepository
	RatingRepo  repository.RatingRepository
}

type gormUnitOfWork struct {
	db          *gorm.DB
	videoRepo   repository.VideoRepository
	likeRepo    repository.LikeRepository
	commentRepo repository.CommentRepository
	ratingRepo  repository.RatingRepository
}

func NewUnitOfWork(
	db *gorm.DB,
	videoRepo repository.VideoRepository,
	likeRepo repository.LikeRepository,
	commentRepo repository.CommentRepository,
	ratingRepo repository.RatingRepository,
) UnitOfWork {
	return &gormUnitOfWork{
		db:          db,
		videoRepo:   videoRepo,
		likeRepo:    likeRepo,
		commentRepo: commentRepo,
		ratingRepo:  ratingRepo,
	}
}

func (u *gormUnitOfWork) Execute(fn func(repos *TransactionalRepositories) error) error {
	return u.db.Transaction(func(tx *gorm.DB) error {
		return fn(&TransactionalRepositories{
			VideoRepo:   u.videoRepo.WithTx(tx),
			LikeRepo:    u.likeRepo.WithTx(tx),
			CommentRepo: u.commentRepo.WithTx(tx),
			RatingRepo:  u.ratingRepo.WithTx(tx),
		})
	})
}
