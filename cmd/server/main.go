// Command server runs the Daybook HTTP API and the live notification feed.
//
// Configuration comes from CONFIG_PATH (default ./config.yaml) and the
// environment. SIGINT or SIGTERM starts a graceful shutdown.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/daybook-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
