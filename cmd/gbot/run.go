package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gbot/config"
	"gbot/internal/task/delivery/console"
	"gbot/internal/task/repository"
	fileRepo "gbot/internal/task/repository/file"
	sqliteRepo "gbot/internal/task/repository/sqlite"
	"gbot/internal/task/usecase"
	"gbot/pkg/datemath"
	"gbot/pkg/log"
)

func run(parent context.Context, configFile string, in io.Reader, out io.Writer) error {
	if parent == nil {
		parent = context.Background()
	}

	// 1. Configuration
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		OutputPaths:  cfg.Logger.OutputPaths,
	})

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infof(ctx, "Starting gbot %s (environment: %s)", Version, cfg.Environment.Name)

	// 3. Date/time resolver
	opts := []datemath.Option{datemath.WithCache(cfg.Resolver.CacheSize, cfg.Resolver.CacheTTL)}
	if cfg.Resolver.RelativeDates {
		opts = append(opts, datemath.WithRelativeDates(time.Now))
	}
	resolver, err := datemath.NewResolver(cfg.Resolver.Timezone, opts...)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to Local: %v", cfg.Resolver.Timezone, err)
		resolver, _ = datemath.NewResolver("Local", opts...)
	}

	// 4. Storage
	repo, closeRepo, err := newRepository(ctx, cfg.Storage, resolver.Location(), logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to open storage: %v", err)
		return err
	}
	defer closeRepo()

	// 5. Use case and console
	uc := usecase.New(logger, repo, resolver)
	h := console.New(logger, uc, in, out, console.Config{
		Name:         cfg.UI.Name,
		Tagline:      cfg.UI.Tagline,
		DividerWidth: cfg.UI.DividerWidth,
		ColorEnabled: cfg.UI.ColorEnabled,
	})

	if err := h.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info(ctx, "gbot stopped")
	return nil
}

// newRepository builds the repository for the configured driver. The
// returned func releases its resources.
func newRepository(ctx context.Context, cfg config.StorageConfig, loc *time.Location, l log.Logger) (repository.Repository, func(), error) {
	switch cfg.Driver {
	case config.StorageDriverSQLite:
		db, err := sqliteRepo.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		repo, err := sqliteRepo.New(ctx, db, loc, l)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		l.Infof(ctx, "Using SQLite storage at %s", cfg.SQLitePath)
		return repo, func() { db.Close() }, nil

	default:
		repo, err := fileRepo.New(cfg.Path, loc, l)
		if err != nil {
			return nil, nil, err
		}
		l.Infof(ctx, "Using file storage at %s", cfg.Path)
		return repo, func() {}, nil
	}
}
