package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"

	"github.com/spc-hr/hrms-gateway/internal/api"
	"github.com/spc-hr/hrms-gateway/internal/core/domain"
	"github.com/spc-hr/hrms-gateway/internal/core/ports"
	"github.com/spc-hr/hrms-gateway/internal/core/service"
	"github.com/spc-hr/hrms-gateway/internal/infrastructure/config"
	fileStore "github.com/spc-hr/hrms-gateway/internal/infrastructure/db/file"
	redisdb "github.com/spc-hr/hrms-gateway/internal/infrastructure/db/redis"
	"github.com/spc-hr/hrms-gateway/internal/infrastructure/poller"
	"github.com/spc-hr/hrms-gateway/internal/infrastructure/upstream"
	"github.com/spc-hr/hrms-gateway/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Session store ---
	var (
		store ports.SessionStore
		rdb   *goredis.Client
	)
	switch cfg.Session.Store {
	case "redis":
		client, err := redisdb.Connect(ctx, redisdb.Config{
			Addr: cfg.Session.Redis.Addr,
			DB:   cfg.Session.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer client.Close()
		rdb = client
		store = redisdb.NewSessionStore(client)
	default:
		store = fileStore.NewSessionStore(cfg.Session.FilePath)
	}

	// The upstream client needs the session's bearer token, and the session
	// service needs the client to authenticate. The token source closure
	// breaks the cycle; it returns "" until the service exists.
	var sessions *service.SessionService
	client := upstream.NewClient(upstream.Config{
		BaseURL:  cfg.Upstream.BaseURL,
		Timeout:  cfg.Upstream.Timeout,
		RetryMax: cfg.Upstream.RetryMax,
	}, func() string {
		if sessions == nil {
			return ""
		}
		return sessions.Token()
	}, log)

	sessions = service.NewSessionService(store, client, log)
	notifications := service.NewNotificationService(client, log)
	inboxPoller := poller.New(notifications, cfg.Notifications.PollInterval, log)

	// Polling runs exactly while a user is signed in.
	sessions.OnChange(func(user *domain.User) {
		if user != nil {
			inboxPoller.Start(ctx)
			return
		}
		inboxPoller.Stop()
		notifications.ClearAll()
	})

	sessions.Initialize(ctx)

	e := api.NewRouter(api.Deps{
		Sessions:      sessions,
		Notifications: notifications,
		Upstream:      client,
		Redis:         rdb,
		Log:           log,
	})

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		inboxPoller.Stop()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}()

	log.Info().
		Str("port", cfg.Port).
		Str("env", cfg.Env).
		Str("upstream", cfg.Upstream.BaseURL).
		Str("session_store", cfg.Session.Store).
		Msg("hrms gateway listening")

	if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server stopped unexpectedly")
	}
}
