package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"sublimation-calc/internal/api"
	"sublimation-calc/internal/bot"
	"sublimation-calc/internal/config"
	"sublimation-calc/internal/session"
	"sublimation-calc/internal/storage"
	"sublimation-calc/pkg/logger"
	"sublimation-calc/pkg/redis"
)

// ENTRY POINT

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	zapLogger, err := logger.New(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer zapLogger.Sync()

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	redisClient := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.CacheTTL)
	defer redisClient.Close()

	if err := redisClient.Ping(ctx); err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	store, err := storage.Open(ctx, cfg.Database, redisClient, cfg.Redis.CacheTTL, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to init storage", zap.Error(err))
	}
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		zapLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	errCh := make(chan error, 2)

	var httpServer *http.Server
	if cfg.HTTP.Enabled {
		apiServer := api.NewServer(store, api.Options{
			Defaults:           cfg.DefaultInputs(),
			SensitivityPercent: &cfg.SensitivityPercent,
			CurvePoints:        cfg.CurvePoints,
			RequestTimeout:     cfg.HTTP.RequestTimeout,
			Token:              cfg.HTTP.Token,
		}, zapLogger, store, redisClient)

		httpServer = &http.Server{
			Addr:         cfg.HTTP.Addr,
			Handler:      apiServer.Routes(),
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
		}

		go func() {
			zapLogger.Info("Starting HTTP server", zap.String("addr", cfg.HTTP.Addr))
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("http server: %w", err)
			}
		}()
	}

	if cfg.Telegram.Enabled {
		sessions := session.New(redisClient, session.Defaults{
			Inputs:             cfg.DefaultInputs(),
			Language:           cfg.DefaultLanguage,
			SensitivityPercent: cfg.SensitivityPercent,
		}, cfg.Redis.SessionTTL)
		limiter := session.NewLimiter(redisClient, cfg.Telegram.ExportLimit, cfg.Telegram.ExportWindow)

		tgBot, err := bot.New(cfg.Telegram, sessions, store, limiter, zapLogger)
		if err != nil {
			zapLogger.Fatal("Failed to create bot", zap.Error(err))
		}

		go func() {
			if err := tgBot.Start(ctx); err != nil {
				errCh <- fmt.Errorf("bot: %w", err)
			}
		}()
	}

	select {
	case <-ctx.Done():
	case err := <-errCh:
		zapLogger.Error("Service stopped with error", zap.Error(err))
		cancel()
	}

	if httpServer != nil {
		shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer stop()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			zapLogger.Error("HTTP server shutdown failed", zap.Error(err))
		}
	}

	zapLogger.Info("Service shutdown gracefully")
}
