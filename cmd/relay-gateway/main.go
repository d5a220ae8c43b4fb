package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/passkeyhq/delegate-relay/internal/config"
	"github.com/passkeyhq/delegate-relay/internal/logger"
	"github.com/passkeyhq/delegate-relay/internal/relay"
	"github.com/passkeyhq/delegate-relay/internal/server"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger.InitLogger(cfg.Stage)
	defer func() { _ = logger.Sync() }()

	submitter := relay.NewSubmitter(relay.Config{
		RelayerURL: cfg.RelayerURL,
		Timeout:    cfg.RelayerTimeout,
		Logger:     logger.Log,
	})

	gateway := server.New(cfg, submitter)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: gateway.Handler(),
	}

	go func() {
		logger.Info("relay gateway listening",
			zap.String("port", cfg.Port),
			zap.String("relayer_url", cfg.RelayerURL))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down relay gateway")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
}
