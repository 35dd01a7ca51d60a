package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/santigl/NBAStats/internal/bot"
	"github.com/santigl/NBAStats/internal/cache"
	"github.com/santigl/NBAStats/internal/config"
	"github.com/santigl/NBAStats/internal/format"
	"github.com/santigl/NBAStats/internal/handler"
	"github.com/santigl/NBAStats/internal/nba"
)

func main() {
	fmt.Println("=== NBAStats Bot Service ===")

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("❌ Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)

	httpClient, rdb, err := newCachedHTTPClient(cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("cache setup failed")
	}
	if rdb != nil {
		defer rdb.Close()
	}

	client := nba.NewClient(cfg.APIBaseURL, httpClient, logger)
	service := nba.NewService(client, logger)

	style := format.Plain
	if cfg.Colors {
		style = format.IRC
	}
	formatter := format.New(style)

	statsBot := bot.New(service, formatter, logger)
	botHandler := handler.NewBotHandler(statsBot, logger)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// Routes
	r.Get("/health", botHandler.HealthCheck)
	r.Get("/v1/commands", botHandler.ListCommands)
	r.Post("/v1/command", botHandler.HandleCommand)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.WithFields(logrus.Fields{
			"port":   cfg.Port,
			"cache":  cfg.CacheBackend,
			"api":    cfg.APIBaseURL,
			"colors": cfg.Colors,
		}).Info("nbastats bot listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("server error")
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("shutdown error")
	}

	logger.Info("nbastats bot stopped")
}

// newLogger builds the service logger; an unknown level falls back to info.
func newLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// newCachedHTTPClient builds the caching HTTP client the stats client
// fetches through, connecting to Redis when that backend is selected.
func newCachedHTTPClient(cfg config.Config, logger *logrus.Logger) (*http.Client, *redis.Client, error) {
	if cfg.CacheBackend != "redis" {
		return cache.NewMemoryClient(cfg.HTTPTimeout), nil, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing redis url: %w", err)
	}
	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		return nil, nil, fmt.Errorf("connecting to redis: %w", err)
	}
	logger.Info("connected to redis")

	return cache.NewRedisClient(rdb, cfg.RedisTTL, cfg.HTTPTimeout), rdb, nil
}
