package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"blogfeed/internal/config"
	"blogfeed/internal/middleware"
)

func TestNew(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		DB:            config.DB{Driver: config.DriverSQLite, Path: filepath.Join(dir, "blog.db")},
		Storage:       config.Storage{Backend: config.StorageLocal, ImagesDir: filepath.Join(dir, "images")},
		StaticDir:     filepath.Join(dir, "static"),
		MaxUploadSize: 1 << 20,
	}

	a, err := New(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer a.Close()

	rr := httptest.NewRecorder()
	a.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/posts", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestNew_BadStorage(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		DB:      config.DB{Driver: config.DriverSQLite, Path: filepath.Join(dir, "blog.db")},
		Storage: config.Storage{Backend: "tape"},
	}

	_, err := New(context.Background(), cfg, zap.NewNop())
	assert.Error(t, err)
}
