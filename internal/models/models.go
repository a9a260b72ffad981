package models

import (
	"mime/multipart"
	"time"
)

type Post struct {
	ID           int64     `json:"id" db:"id"`
	Content      string    `json:"content" db:"content"`
	User         string    `json:"user" db:"user"`
	AvatarURL    *string   `json:"avatarUrl" db:"avatar_url"`
	ThumbnailURL *string   `json:"thumbnailUrl" db:"thumbnail_url"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// CreatePostRequest is the decoded multipart body of POST /api/posts.
// AvatarURL is the remote source to fetch, not the stored path.
type CreatePostRequest struct {
	Content   string                `validate:"required,max=4096"`
	User      string                `validate:"required,max=64"`
	AvatarURL string                `validate:"omitempty,url"`
	Thumbnail *multipart.FileHeader `validate:"-"`
}
