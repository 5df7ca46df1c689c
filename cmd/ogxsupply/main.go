package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ogxlabs/ogxsupply/config"
	"github.com/ogxlabs/ogxsupply/internal/app"
	"github.com/ogxlabs/ogxsupply/internal/webapi"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	application := app.NewApplication(cfg)
	application.Init()

	server := webapi.NewServer(cfg, application.Store())

	go func() {
		zap.L().Info("http server starting", zap.String("listen", cfg.Listen()))
		if err := server.Start(cfg.Listen()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		zap.L().Error("http server shutdown failed", zap.Error(err))
	}
	application.Shutdown(ctx)
}
