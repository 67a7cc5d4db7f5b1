package server

import (
	"context"
	"fmt"

	"github.com/Shravani253/Ai-food-menu/internal/config"
	"github.com/Shravani253/Ai-food-menu/internal/domain"
	apperrors "github.com/Shravani253/Ai-food-menu/internal/errors"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
)

// pinger is the readiness-probe view of a backing store connection.
type pinger interface {
	Ping(ctx context.Context) error
}

// RedisPinger adapts a go-redis client to the readiness probe.
type RedisPinger struct {
	Client *goredis.Client
}

func (p RedisPinger) Ping(ctx context.Context) error {
	return p.Client.Ping(ctx).Err()
}

type Server struct {
	echo   *echo.Echo
	config *config.Config
	app    domain.AppService
	db     pinger
	redis  pinger // nil when Redis is not configured
}

func NewServer(cfg *config.Config, app domain.AppService, db pinger, redis pinger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo:   e,
		config: cfg,
		app:    app,
		db:     db,
		redis:  redis,
	}

	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
