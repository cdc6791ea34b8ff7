// Command migrate applies pending schema migrations to the configured
// vocabulary store. It is meant for deploy pipelines; the server can also
// migrate on start with database.auto_migrate.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/lenslearn/internal/app"
	"github.com/heartmarshall/lenslearn/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	applied, err := app.Migrate(ctx, cfg.Database)
	if err != nil {
		logger.Error("migration failed",
			slog.String("driver", cfg.Database.Driver),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	logger.Info("migrations applied",
		slog.String("driver", cfg.Database.Driver),
		slog.Int("count", applied),
	)
}
