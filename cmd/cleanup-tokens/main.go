// Command cleanup-tokens deletes expired and revoked refresh tokens. It is
// intended to be invoked by an external cron job.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/daybook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/daybook-backend/internal/adapter/postgres/authmethod"
	"github.com/heartmarshall/daybook-backend/internal/adapter/postgres/token"
	"github.com/heartmarshall/daybook-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/daybook-backend/internal/app"
	"github.com/heartmarshall/daybook-backend/internal/auth"
	"github.com/heartmarshall/daybook-backend/internal/config"
	authsvc "github.com/heartmarshall/daybook-backend/internal/service/auth"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := authsvc.NewService(logger,
		user.New(pool), token.New(pool), authmethod.New(pool),
		postgres.NewTxManager(pool), nil,
		auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		cfg.Auth,
	)

	deleted, err := svc.CleanupExpiredTokens(ctx)
	if err != nil {
		logger.Error("token cleanup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("token cleanup completed", slog.Int("deleted", deleted))
}
