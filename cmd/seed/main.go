package main

import (
	"context"
	"flag"
	"time"

	"github.com/sitedeck/internal/app"
	"github.com/sitedeck/internal/config"
	"github.com/sitedeck/internal/logging"
	"github.com/sitedeck/internal/seed"
	"go.uber.org/zap"
)

func main() {
	file := flag.String("file", "", "YAML seed file (defaults to the built-in sample content)")
	reset := flag.Bool("reset", false, "delete existing documents before seeding")
	flag.Parse()

	cfg := config.Load()
	logger := logging.New(cfg.AppEnv)
	defer logger.Sync()

	content := seed.Default()
	if *file != "" {
		loaded, err := seed.LoadFile(*file)
		if err != nil {
			logger.Fatal("failed to load seed file", zap.String("file", *file), zap.Error(err))
		}
		content = loaded
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	deps, err := app.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to open stores", zap.Error(err))
	}
	defer deps.Close()

	report, err := seed.Apply(ctx, content, deps.SeedServices(), *reset, logger)
	if err != nil {
		logger.Fatal("seeding failed", zap.Error(err))
	}
	logger.Info("seeding finished", zap.Any("created", report.Created), zap.Strings("skipped", report.Skipped))
}
