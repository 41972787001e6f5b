// Command migrate applies the embedded goose migrations.
//
// Usage:
//
//	migrate [up|down|status]
//
// Only the DATABASE_* environment variables are read, so migrations can run
// before the rest of the server configuration exists. Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/heartmarshall/daybook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/daybook-backend/internal/app"
	"github.com/heartmarshall/daybook-backend/internal/config"
	"github.com/heartmarshall/daybook-backend/migrations"
)

func main() {
	var db config.DatabaseConfig
	if err := cleanenv.ReadEnv(&db); err != nil {
		log.Fatalf("read database config: %v", err)
	}

	var logCfg config.LogConfig
	if err := cleanenv.ReadEnv(&logCfg); err != nil {
		log.Fatalf("read log config: %v", err)
	}
	logger := app.NewLogger(logCfg)

	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	m, err := postgres.NewMigrator(db.DSN, migrations.FS)
	if err != nil {
		logger.Error("open migrator", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer m.Close()

	if err := run(ctx, m, cmd, logger); err != nil {
		logger.Error("migrate failed", slog.String("command", cmd), slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, m *postgres.Migrator, cmd string, logger *slog.Logger) error {
	switch cmd {
	case "up":
		n, err := m.Up(ctx)
		if err != nil {
			return err
		}
		logger.Info("migrations applied", slog.Int("count", n))
	case "down":
		if err := m.Down(ctx); err != nil {
			return err
		}
		logger.Info("rolled back one migration")
	case "status":
		status, err := m.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range status {
			applied := "pending"
			if !s.AppliedAt.IsZero() {
				applied = s.AppliedAt.Format(time.RFC3339)
			}
			fmt.Printf("%-40s %s\n", s.Source.Path, applied)
		}
	default:
		return fmt.Errorf("unknown command %q (want up, down or status)", cmd)
	}
	return nil
}
