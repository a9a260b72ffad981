package app

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"blogfeed/internal/config"
	"blogfeed/internal/database"
	handlers "blogfeed/internal/handler"
	"blogfeed/internal/middleware"
	"blogfeed/internal/remote"
	"blogfeed/internal/repository"
	"blogfeed/internal/service"
	"blogfeed/internal/storage"
)

type App struct {
	DB      *database.DB
	Service *service.Service
	Handler http.Handler
}

func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*App, error) {
	// connection DB
	db, err := database.ConnectDB(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	// image storage
	store, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		db.CloseDB()
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)
	fetcher := remote.NewFetcher(store, cfg.FetchTimeout, cfg.MaxUploadSize, log)
	services := service.NewService(repo, store, fetcher, log)

	h := handlers.NewHandlers(services, db, cfg, log)

	handlerChain := middleware.Chain(
		handlers.NewRouter(h),
		middleware.CORSMiddleware,
		middleware.RecoveryMiddleware(log),
		middleware.LoggingMiddleware(log),
	)

	return &App{DB: db, Service: services, Handler: handlerChain}, nil
}

func (a *App) Close() error {
	return a.DB.CloseDB()
}
