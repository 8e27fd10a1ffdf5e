package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sitedeck/internal/app"
	"github.com/sitedeck/internal/config"
	"github.com/sitedeck/internal/logging"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	logger := logging.New(cfg.AppEnv)
	defer logger.Sync()

	startCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	deps, err := app.Open(startCtx, cfg, logger)
	if err != nil {
		cancel()
		logger.Fatal("failed to initialize stores", zap.Error(err))
	}
	uploader, uploadDir, err := app.NewUploader(startCtx, cfg)
	cancel()
	if err != nil {
		deps.Close()
		logger.Fatal("failed to initialize media storage", zap.Error(err))
	}
	defer deps.Close()

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: deps.Router(cfg, uploader, uploadDir),
	}

	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr), zap.String("store", cfg.StoreDriver), zap.String("media", cfg.MediaDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	ctx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}
	logger.Info("server exited")
}
