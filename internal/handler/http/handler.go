// Package http implements the HTTP transport layer of the application:
// the request pipeline (tracing, logging, rate limiting, authentication,
// authorization), the response envelope, the central error translator, and
// the route handlers of the REST API.
package http

import (
	"time"

	"github.com/fayrashop/api/internal/config"
	"github.com/fayrashop/api/internal/logger"
	"github.com/fayrashop/api/internal/ratelimit"
	"github.com/fayrashop/api/internal/service"
	"github.com/fayrashop/api/internal/token"
)

type Handler struct {
	services *service.Services
	codec    *token.Codec
	limiter  *ratelimit.Limiter

	// defaultRate applies to every route without a descriptor override.
	defaultRate RateConfig

	app       config.App
	startedAt time.Time

	logger *logger.Logger
}

func NewHandler(services *service.Services, codec *token.Codec, limiter *ratelimit.Limiter, cfg *config.Config, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		codec:    codec,
		limiter:  limiter,
		defaultRate: RateConfig{
			Limit:  cfg.RateLimit.Limit,
			Window: cfg.RateLimit.Window.Std(),
		},
		app:       cfg.App,
		startedAt: time.Now(),
		logger:    logger,
	}
}
