package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	cartapp "github.com/dwikikusuma/kikuchan-store/internal/cart/app"
	cartadapter "github.com/dwikikusuma/kikuchan-store/internal/cart/infra/adapter"
	"github.com/dwikikusuma/kikuchan-store/internal/cart/infra/fs"
	"github.com/dwikikusuma/kikuchan-store/internal/cart/infra/memory"
	cartpg "github.com/dwikikusuma/kikuchan-store/internal/cart/infra/postgres"
	catalogapp "github.com/dwikikusuma/kikuchan-store/internal/catalog/app"
	"github.com/dwikikusuma/kikuchan-store/internal/catalog/infra/static"
	"github.com/dwikikusuma/kikuchan-store/pkg/config"
	"github.com/dwikikusuma/kikuchan-store/pkg/logger"
	"github.com/dwikikusuma/kikuchan-store/pkg/postgres"
)

func newLogger(cfg config.Config, out io.Writer) *slog.Logger {
	return logger.New(logger.Options{
		Service:   "storefront",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: true,
		Output:    out,
	})
}

// openSlot returns the configured durable slot and a func releasing it.
func openSlot(ctx context.Context, cfg config.Config, log *slog.Logger) (cartapp.Slot, func(), error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		pool, err := postgres.Open(ctx, postgres.Config{URL: cfg.DatabaseURL, MaxConns: 4})
		if err != nil {
			return nil, nil, err
		}
		slot := cartpg.NewSlot(pool, cfg.StoreKey)
		if err := slot.Migrate(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		log.Info("cart slot ready", slog.String("driver", cfg.StoreDriver), slog.String("key", cfg.StoreKey))
		return slot, pool.Close, nil
	case config.DriverMemory:
		log.Info("cart slot ready", slog.String("driver", cfg.StoreDriver))
		return memory.NewSlot(), func() {}, nil
	case config.DriverFS:
		slot := fs.NewSlot(fs.SlotConfig{BaseDir: cfg.StoreDir, Key: cfg.StoreKey})
		log.Info("cart slot ready", slog.String("driver", cfg.StoreDriver), slog.String("path", slot.Path()))
		return slot, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func newCart(ctx context.Context, catalog *catalogapp.Service, slot cartapp.Slot, log *slog.Logger) *cartapp.Service {
	cart := cartapp.NewService(cartadapter.NewCatalogServiceReader(catalog), slot, log)
	cart.Load(ctx)
	return cart
}

func newCatalog() *catalogapp.Service {
	return catalogapp.NewService(static.NewProductRepo())
}
