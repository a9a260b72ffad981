package handlers

import (
	"go.uber.org/zap"

	"blogfeed/internal/config"
	"blogfeed/internal/service"
)

// HealthChecker reports whether the post store is reachable.
type HealthChecker interface {
	HealthCheck() error
}

type Handlers struct {
	PostService service.PostService
	DB          HealthChecker
	Cfg         *config.Config
	Log         *zap.Logger
}

func NewHandlers(service *service.Service, db HealthChecker, config *config.Config, log *zap.Logger) *Handlers {
	return &Handlers{
		PostService: service.Post,
		DB:          db,
		Cfg:         config,
		Log:         log,
	}
}
