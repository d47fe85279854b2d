package main

import (
	"context"
	"flag"
	"github.com/bytedance/sonic"
	"github.com/ougirez/autocatalog/internal/pkg/config"
	"github.com/ougirez/autocatalog/internal/pkg/logger"
	"github.com/ougirez/autocatalog/internal/pkg/store"
	"github.com/ougirez/autocatalog/internal/pkg/store/xpgx"
	"github.com/ougirez/autocatalog/internal/service/catalog"
	"github.com/ougirez/autocatalog/internal/service/modification"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	var (
		configPath = flag.String("config", "configs/config.yaml", "path to the config file")
		file       = flag.String("file", "", "JSON array of catalog modification records")
		dryRun     = flag.Bool("dry-run", false, "map the records without saving them")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}

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

	service := catalog.NewCatalogService(
		store.NewStore(pool, cfg.Store.BatchSize),
		modification.NewMapper(cfg.Taxonomy),
	)

	_, summary, err := service.ImportFile(ctx, *file, catalog.SyncOpts{DryRun: *dryRun})
	if err != nil {
		logger.Fatal(ctx, err)
	}

	enc := sonic.ConfigDefault.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		logger.Fatal(ctx, err)
	}
}
