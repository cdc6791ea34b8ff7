package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/lenslearn/internal/adapter/postgres"
	pgpronunciation "github.com/heartmarshall/lenslearn/internal/adapter/postgres/pronunciation"
	pgword "github.com/heartmarshall/lenslearn/internal/adapter/postgres/word"
	"github.com/heartmarshall/lenslearn/internal/adapter/sqlite"
	sqlitepronunciation "github.com/heartmarshall/lenslearn/internal/adapter/sqlite/pronunciation"
	sqliteword "github.com/heartmarshall/lenslearn/internal/adapter/sqlite/word"
	"github.com/heartmarshall/lenslearn/internal/config"
	"github.com/heartmarshall/lenslearn/internal/domain"
	"github.com/heartmarshall/lenslearn/internal/transport/rest"
)

type wordStore interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.SavedWord, error)
	Create(ctx context.Context, w domain.SavedWord) (*domain.SavedWord, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type clipStore interface {
	GetMany(ctx context.Context, keys []domain.ClipKey) (map[domain.ClipKey][]byte, error)
	Put(ctx context.Context, clip domain.Clip) error
}

// store is an opened vocabulary and pronunciation clip store.
type store struct {
	words wordStore
	clips clipStore
	ping  rest.PingFunc
	close func()
}

// openStore connects to the configured database and, when asked, applies
// pending migrations first.
func openStore(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if cfg.AutoMigrate {
			applied, err := postgres.Migrate(ctx, pool)
			if err != nil {
				pool.Close()
				return nil, err
			}
			logger.Info("migrations applied", slog.String("driver", cfg.Driver), slog.Int("count", applied))
		}
		return &store{
			words: pgword.New(pool),
			clips: pgpronunciation.New(pool),
			ping:  pool.Ping,
			close: pool.Close,
		}, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		// SQLite has no separate migration step in practice; a fresh file
		// must be usable right away.
		applied, err := sqlite.Migrate(ctx, db)
		if err != nil {
			db.Close()
			return nil, err
		}
		logger.Info("migrations applied", slog.String("driver", cfg.Driver), slog.Int("count", applied))
		return &store{
			words: sqliteword.New(db),
			clips: sqlitepronunciation.New(db),
			ping:  db.PingContext,
			close: func() { db.Close() },
		}, nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
}

// Migrate applies pending migrations to the configured database and reports
// how many ran.
func Migrate(ctx context.Context, cfg config.DatabaseConfig) (int, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return 0, err
		}
		defer pool.Close()
		return postgres.Migrate(ctx, pool)
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.DSN)
		if err != nil {
			return 0, err
		}
		defer db.Close()
		return sqlite.Migrate(ctx, db)
	}
	return 0, fmt.Errorf("unsupported database driver %q", cfg.Driver)
}
