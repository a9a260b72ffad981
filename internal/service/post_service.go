package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"blogfeed/internal/models"
	"blogfeed/internal/remote"
	"blogfeed/internal/repository"
	"blogfeed/internal/storage"
)

var (
	// ErrValidation marks bad client input. Nothing has been written when it is returned.
	ErrValidation = errors.New("invalid post")
	// ErrPersist marks a failure to store the uploaded thumbnail.
	ErrPersist = errors.New("failed to persist thumbnail")
)

const (
	thumbnailsPrefix = "thumbnails"
	avatarsPrefix    = "avatars"
)

// AvatarFetcher downloads a remote image and stores it under key.
type AvatarFetcher interface {
	DownloadAndStore(ctx context.Context, rawURL, key string) error
}

type PostService interface {
	CreatePost(ctx context.Context, req models.CreatePostRequest) (*models.Post, error)
	ListPosts(ctx context.Context) ([]models.Post, error)
}

type postService struct {
	postRepo repository.PostRepository
	storage  storage.Storage
	fetcher  AvatarFetcher
	slugs    SlugGenerator
	validate *validator.Validate
	now      func() time.Time
	log      *zap.Logger
}

func NewPostService(
	postRepo repository.PostRepository,
	store storage.Storage,
	fetcher AvatarFetcher,
	slugs SlugGenerator,
	validate *validator.Validate,
	now func() time.Time,
	log *zap.Logger,
) PostService {
	return &postService{
		postRepo: postRepo,
		storage:  store,
		fetcher:  fetcher,
		slugs:    slugs,
		validate: validate,
		now:      now,
		log:      log,
	}
}

func (p *postService) CreatePost(ctx context.Context, req models.CreatePostRequest) (*models.Post, error) {
	if err := p.Validate(req); err != nil {
		return nil, err
	}

	base := p.slugs.Generate(p.now())
	thumbnailKey := imageKey(thumbnailsPrefix, base)
	avatarKey := imageKey(avatarsPrefix, base)

	var thumbnailPath, avatarPath *string

	if req.Thumbnail != nil {
		if err := p.persistThumbnail(ctx, req, thumbnailKey); err != nil {
			p.cleanup(thumbnailKey, avatarKey)
			return nil, fmt.Errorf("%w: %v", ErrPersist, err)
		}
		thumbnailPath = ptr(p.storage.Location(thumbnailKey))
	}

	if req.AvatarURL != "" {
		if err := p.fetcher.DownloadAndStore(ctx, req.AvatarURL, avatarKey); err != nil {
			p.cleanup(thumbnailKey, avatarKey)
			return nil, fmt.Errorf("failed to fetch avatar: %w", err)
		}
		avatarPath = ptr(p.storage.Location(avatarKey))
	}

	post, err := p.postRepo.Insert(ctx, req.Content, req.User, avatarPath, thumbnailPath)
	if err != nil {
		p.cleanup(thumbnailKey, avatarKey)
		return nil, fmt.Errorf("failed to save post: %w", err)
	}

	p.log.Info("post created",
		zap.Int64("id", post.ID),
		zap.String("user", post.User),
		zap.Bool("thumbnail", thumbnailPath != nil),
		zap.Bool("avatar", avatarPath != nil),
	)

	return post, nil
}

func (p *postService) ListPosts(ctx context.Context) ([]models.Post, error) {
	posts, err := p.postRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

// Validate checks req without touching storage. An uploaded thumbnail must
// carry the PNG signature.
func (p *postService) Validate(req models.CreatePostRequest) error {
	if err := p.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if req.Thumbnail != nil {
		ok, err := thumbnailIsPNG(req)
		if err != nil {
			return fmt.Errorf("%w: unreadable thumbnail: %v", ErrValidation, err)
		}
		if !ok {
			return fmt.Errorf("%w: thumbnail is not a png image", ErrValidation)
		}
	}

	return nil
}

func (p *postService) persistThumbnail(ctx context.Context, req models.CreatePostRequest, key string) error {
	file, err := req.Thumbnail.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	return p.storage.Save(ctx, key, file, req.Thumbnail.Size)
}

// cleanup removes both candidate images for one attempt. Missing files are
// fine and removal errors never replace the error being reported.
func (p *postService) cleanup(keys ...string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, key := range keys {
		if err := p.storage.Remove(ctx, key); err != nil {
			p.log.Debug("cleanup failed", zap.String("key", key), zap.Error(err))
		}
	}
}

func thumbnailIsPNG(req models.CreatePostRequest) (bool, error) {
	file, err := req.Thumbnail.Open()
	if err != nil {
		return false, err
	}
	defer file.Close()

	head := make([]byte, 8)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return false, err
	}

	return remote.IsValidPNG(head[:n]), nil
}

func imageKey(prefix, base string) string {
	return prefix + "/" + base + ".png"
}

func ptr(s string) *string {
	return &s
}
