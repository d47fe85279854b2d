package main

import (
	"context"
	"flag"
	"github.com/ougirez/autocatalog/internal/api"
	"github.com/ougirez/autocatalog/internal/pkg/config"
	"github.com/ougirez/autocatalog/internal/pkg/logger"
	"github.com/ougirez/autocatalog/internal/pkg/store"
	"github.com/ougirez/autocatalog/internal/pkg/store/xpgx"
	"github.com/ougirez/autocatalog/internal/service/catalog"
	"github.com/ougirez/autocatalog/internal/service/modification"
	"golang.org/x/sync/errgroup"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the config file")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// bootstrap logger so config errors are visible
	if err := logger.Init("info", false); err != nil {
		panic(err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal(ctx, err)
	}
	if err := logger.Init(cfg.Log.Level, cfg.Log.Development); err != nil {
		logger.Fatal(ctx, err)
	}
	defer logger.Sync()

	pool, err := xpgx.NewPool(ctx, cfg.Database.DSN, cfg.Database.ConnectRetries)
	if err != nil {
		logger.Fatal(ctx, err)
	}
	defer pool.Close()

	catalogService := catalog.NewCatalogService(
		store.NewStore(pool, cfg.Store.BatchSize),
		modification.NewMapper(cfg.Taxonomy),
	)

	apiService, err := api.NewAPIService(catalogService)
	if err != nil {
		logger.Fatal(ctx, err)
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Infof(gCtx, "listening on %s", cfg.Server.Address)
		return apiService.Serve(cfg.Server.Address)
	})
	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info(shutdownCtx, "shutting down")
		return apiService.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error(ctx, err)
	}
}
