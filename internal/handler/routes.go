package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"

	"blogfeed/internal/config"
)

func NewRouter(h *Handlers) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/posts", h.GetPosts).Methods(http.MethodGet)
	r.HandleFunc("/api/posts", h.CreatePost).Methods(http.MethodPost)
	r.HandleFunc("/health", h.HealthHandler).Methods(http.MethodGet)

	blogPage := filepath.Join(h.Cfg.StaticDir, "blog.html")
	r.HandleFunc("/blog", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, blogPage)
	}).Methods(http.MethodGet)

	// MinIO serves its own objects
	if h.Cfg.Storage.Backend != config.StorageMinIO {
		images := http.FileServer(http.Dir(h.Cfg.Storage.ImagesDir))
		r.PathPrefix("/images/").Handler(http.StripPrefix("/images/", images)).Methods(http.MethodGet)
	}

	return r
}
