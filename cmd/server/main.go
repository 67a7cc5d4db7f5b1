package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Shravani253/Ai-food-menu/internal/app"
	"github.com/Shravani253/Ai-food-menu/internal/config"
	"github.com/Shravani253/Ai-food-menu/internal/database"
	"github.com/Shravani253/Ai-food-menu/internal/freshness"
	"github.com/Shravani253/Ai-food-menu/internal/logging"
	"github.com/Shravani253/Ai-food-menu/internal/menucontext"
	"github.com/Shravani253/Ai-food-menu/internal/redis"
	"github.com/Shravani253/Ai-food-menu/internal/server"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	goredis "github.com/redis/go-redis/v9"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupDB(cfg *config.Config) *pgxpool.Pool {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := database.RunMigrations(ctx, pool); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	return pool
}

func setupRedis(ctx context.Context, cfg *config.Config) *goredis.Client {
	client, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	return client
}

func runGracefulShutdown(srv *server.Server) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port)

	pool := setupDB(cfg)
	defer pool.Close()

	// Redis is optional: without it, decisions fall back to the no-feedback
	// default and submissions are persisted to Postgres only.
	var redisClient *goredis.Client
	var aggStore *redis.FeedbackAggStore
	var redisPing server.RedisPinger
	if cfg.RedisURL != "" {
		redisClient = setupRedis(context.Background(), cfg)
		defer func() { _ = redisClient.Close() }()
		aggStore = redis.NewFeedbackAggStore(redisClient)
		redisPing = server.RedisPinger{Client: redisClient}
	}

	menuRepo := database.NewMenuRepo(pool)
	feedbackRepo := database.NewFeedbackRepo(pool)

	aggregator := menucontext.NewAggregator(menuRepo, clock)
	scorer := freshness.NewEngine(clock)

	var appSvc *app.Service
	if aggStore != nil {
		appSvc = app.NewService(menuRepo, aggregator, scorer, feedbackRepo, aggStore, clock)
	} else {
		// Pass nil explicitly to avoid a typed-nil interface value
		appSvc = app.NewService(menuRepo, aggregator, scorer, feedbackRepo, nil, clock)
	}

	var srv *server.Server
	if redisClient != nil {
		srv = server.NewServer(cfg, appSvc, pool, redisPing)
	} else {
		srv = server.NewServer(cfg, appSvc, pool, nil)
	}

	done := runGracefulShutdown(srv)

	slog.Info("Server starting", "port", cfg.Port)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
