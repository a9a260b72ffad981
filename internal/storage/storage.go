package storage

import (
	"context"
	"fmt"
	"io"

	"blogfeed/internal/config"
)

// Storage keeps post images under slash-separated keys such as
// "thumbnails/brave-otter-1700000000.png".
type Storage interface {
	// Save creates or truncates the object at key.
	Save(ctx context.Context, key string, r io.Reader, size int64) error
	// Remove deletes the object at key. A missing object is not an error.
	Remove(ctx context.Context, key string) error
	// Location is the path recorded on the post for key.
	Location(key string) string
}

func New(ctx context.Context, cfg config.Storage) (Storage, error) {
	switch cfg.Backend {
	case config.StorageLocal, "":
		return NewLocalStorage(cfg.ImagesDir), nil
	case config.StorageMinIO:
		return NewMinIOClient(ctx, cfg.MinIO)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
