package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"

	"blogfeed/internal/models"
)

const postColumns = `id, content, "user", avatar_url, thumbnail_url, created_at`

// PostRepositoryImpl serializes every access through mu: inserts take it
// exclusively, listings share it.
type PostRepositoryImpl struct {
	DB *sqlx.DB
	mu sync.RWMutex
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{DB: db}
}

func (r *PostRepositoryImpl) Insert(ctx context.Context, content, user string, avatarPath, thumbnailPath *string) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, classify("failed to begin insert", err)
	}
	defer tx.Rollback()

	insertQuery := r.DB.Rebind(`
		INSERT INTO posts (content, "user", avatar_url, thumbnail_url)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`)

	var id int64
	err = tx.QueryRowxContext(ctx, insertQuery,
		nullIfEmpty(content),
		nullIfEmpty(user),
		avatarPath,
		thumbnailPath,
	).Scan(&id)
	if err != nil {
		return nil, classify("failed to insert post", err)
	}

	var post models.Post
	selectQuery := r.DB.Rebind(`SELECT ` + postColumns + ` FROM posts WHERE id = ?`)
	if err := tx.GetContext(ctx, &post, selectQuery, id); err != nil {
		return nil, classify("failed to load inserted post", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, classify("failed to commit post", err)
	}

	return &post, nil
}

func (r *PostRepositoryImpl) ListAll(ctx context.Context) ([]models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query := `SELECT ` + postColumns + ` FROM posts ORDER BY created_at DESC, id DESC`

	posts := []models.Post{}
	if err := r.DB.SelectContext(ctx, &posts, query); err != nil {
		return nil, classify("failed to list posts", err)
	}

	return posts, nil
}

// nullIfEmpty sends NULL for empty text so the NOT NULL columns reject it.
func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func classify(msg string, err error) error {
	if isConstraint(err) {
		return fmt.Errorf("%s: %w: %v", msg, ErrConstraint, err)
	}
	return fmt.Errorf("%s: %w: %v", msg, ErrUnavailable, err)
}

func isConstraint(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Class() == "23"
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code == sqlite3.ErrConstraint
	}

	return false
}
