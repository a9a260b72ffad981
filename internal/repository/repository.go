package repository

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"blogfeed/internal/models"
)

var (
	// ErrConstraint is returned when a required column is missing.
	ErrConstraint = errors.New("post constraint violated")
	// ErrUnavailable is returned when the store cannot be reached or is locked.
	ErrUnavailable = errors.New("post store unavailable")
)

type PostRepository interface {
	Insert(ctx context.Context, content, user string, avatarPath, thumbnailPath *string) (*models.Post, error)
	ListAll(ctx context.Context) ([]models.Post, error)
}

type Repository struct {
	Post PostRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Post: NewPostRepository(db),
	}
}
