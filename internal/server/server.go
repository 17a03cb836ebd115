// Package server wires configuration, storage and services into an HTTP router.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"teacher-rating-api/internal/auth"
	"teacher-rating-api/internal/config"
	"teacher-rating-api/internal/handlers"
	"teacher-rating-api/internal/leaderboard"
	"teacher-rating-api/internal/rating"
	"teacher-rating-api/internal/realtime"
	"teacher-rating-api/internal/routes"
	"teacher-rating-api/internal/session"
	"teacher-rating-api/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// sessionPurgeInterval caps how long expired in-memory sessions linger.
const sessionPurgeInterval = time.Minute

// App is a fully wired router plus the resources it owns besides the database.
type App struct {
	Router *gin.Engine
	Hub    *realtime.Hub

	closers []func() error
}

// Close releases resources created by New. The database is owned by the caller.
func (a *App) Close() error {
	var firstErr error
	for _, c := range a.closers {
		if err := c(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// New builds every service on top of db according to cfg.
func New(ctx context.Context, cfg config.Config, db *gorm.DB) (*App, error) {
	app := &App{Hub: realtime.NewHub()}
	go app.Hub.Run(ctx)

	sessions, err := newSessionStore(ctx, cfg, app)
	if err != nil {
		return nil, err
	}

	hasher, err := auth.NewHasher(cfg.PasswordHasher)
	if err != nil {
		return nil, err
	}
	if cfg.SessionSecret == config.DevSessionSecret {
		slog.Warn("SESSION_SECRET not set; using the insecure development secret")
	}

	users := store.NewUsers(db)
	teachers := store.NewTeachers(db)
	ratings := store.NewRatings(db)

	authSvc := auth.NewService(users, sessions, hasher, auth.NewTokenSigner(cfg.SessionSecret), cfg.SessionTTL)
	ratingSvc := rating.NewService(teachers, ratings, rating.Options{LegacyRatingKey: cfg.LegacyRatingKey})
	board := leaderboard.NewAggregator(teachers, ratings, leaderboard.Order(cfg.LeaderboardSort), cfg.LeaderboardSize)

	h := handlers.New(authSvc, ratingSvc, board, app.Hub, handlers.Options{
		SessionTTL:   cfg.SessionTTL,
		SecureCookie: cfg.GinMode == gin.ReleaseMode,
	})

	router, err := routes.SetupRoutes(h, authSvc)
	if err != nil {
		_ = app.Close()
		return nil, err
	}
	app.Router = router
	return app, nil
}

func newSessionStore(ctx context.Context, cfg config.Config, app *App) (session.Store, error) {
	if cfg.SessionBackend != "redis" {
		sessions := session.NewMemoryStore(cfg.SessionTTL)
		if cfg.SessionTTL > 0 {
			go sessions.RunJanitor(ctx, min(cfg.SessionTTL, sessionPurgeInterval))
		}
		return sessions, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", cfg.RedisAddr, err)
	}
	app.closers = append(app.closers, client.Close)

	slog.Info("using redis session store", "addr", cfg.RedisAddr)
	return session.NewRedisStore(client, cfg.SessionTTL), nil
}
