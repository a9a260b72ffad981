package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"blogfeed/internal/feed"
	"blogfeed/internal/models"
	"blogfeed/internal/service"
)

// multipart parts above this size spill to temporary files
const multipartMemory = 1 << 20

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.ListPosts(r.Context())
	if err != nil {
		h.serverError(w, r, "failed to list posts", err)
		return
	}

	body, err := feed.Render(posts)
	if err != nil {
		h.serverError(w, r, "failed to render posts", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	// setting the size limit from the config
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteError(w, fmt.Sprintf("Request too large (max %d bytes)", h.Cfg.MaxUploadSize), http.StatusBadRequest)
		} else {
			WriteError(w, "Invalid multipart body", http.StatusBadRequest)
		}
		return
	}
	// temporary upload files belong to this layer whatever the outcome
	defer r.MultipartForm.RemoveAll()

	req := decodeCreatePost(r.MultipartForm)

	post, err := h.PostService.CreatePost(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			h.Log.Debug("rejected post", zap.Error(err))
			WriteError(w, "Invalid post", http.StatusBadRequest)
			return
		}
		h.serverError(w, r, "failed to create post", err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusCreated)
	w.Write([]byte(strconv.FormatInt(post.ID, 10)))
}

func decodeCreatePost(form *multipart.Form) models.CreatePostRequest {
	value := func(key string) string {
		if values := form.Value[key]; len(values) > 0 {
			return values[0]
		}
		return ""
	}

	req := models.CreatePostRequest{
		Content:   value("content"),
		User:      value("user"),
		AvatarURL: value("avatar_url"),
	}

	if files := form.File["thumbnail"]; len(files) > 0 {
		req.Thumbnail = files[0]
	}

	return req
}

func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.HealthCheck(); err != nil {
		h.serverError(w, r, "health check failed", err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
