package service

import (
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"blogfeed/internal/remote"
	"blogfeed/internal/repository"
	"blogfeed/internal/storage"
)

type Service struct {
	Post PostService
}

func NewService(rep *repository.Repository, store storage.Storage, fetcher *remote.Fetcher, log *zap.Logger) *Service {
	return &Service{
		Post: NewPostService(rep.Post, store, fetcher, NewSlugGenerator(), validator.New(), time.Now, log),
	}
}
