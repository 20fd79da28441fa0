package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"auction-marketplace/internal/config"
	marketplace "auction-marketplace/internal/marketplaceService"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
	"auction-marketplace/internal/server"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		utils.Warn("failed to load .env file", map[string]any{"error": err.Error()})
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		utils.Fatal("failed to load configuration", map[string]any{"error": err.Error()})
	}
	if err := cfg.Validate(); err != nil {
		utils.Fatal("invalid configuration", map[string]any{"error": err.Error()})
	}
	if err := utils.ConfigureLogger(cfg.Logging.Level, cfg.Logging.Format); err != nil {
		utils.Fatal("invalid logging configuration", map[string]any{"error": err.Error()})
	}
	gin.SetMode(cfg.Server.GinMode)

	// run returns only after its connections are closed
	if err := run(cfg); err != nil {
		utils.Fatal("server stopped", map[string]any{"error": err.Error()})
	}
	utils.Info("server exiting", nil)
}

// run wires the server from cfg and serves until a shutdown signal or a listen failure
func run(cfg *config.Config) error {
	rdb, err := openRedis(cfg)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
	}

	store, closeStore, err := openStore(cfg.Database)
	if err != nil {
		return err
	}
	defer closeStore()

	opts := server.Options{
		BasePath:  cfg.Server.BasePath,
		JWTSecret: cfg.Auth.JWTSecret,
	}
	if rdb != nil {
		opts.Redis = rdb
		opts.RateLimitRequests = cfg.RateLimit.Requests
		opts.RateLimitWindow = cfg.RateLimit.Window
	}

	marketplaceSvc := marketplace.NewMarketplaceService(store)
	router := server.SetupRouter(marketplaceSvc, opts)

	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router}
	serverErr := make(chan error, 1)
	go func() {
		utils.Info("starting auction marketplace server", map[string]any{
			"addr":         srv.Addr,
			"base_path":    cfg.Server.BasePath,
			"store":        cfg.Database.Driver,
			"rate_limited": cfg.RateLimit.Enabled,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}
	utils.Info("shutdown signal received, shutting down server gracefully", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}

// openRedis connects the rate limiter's Redis client, or returns nil when rate limiting is off
func openRedis(cfg *config.Config) (*redis.Client, error) {
	if !cfg.RateLimit.Enabled {
		return nil, nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Addr, err)
	}
	return rdb, nil
}

// openStore builds the configured repository and returns its cleanup function
func openStore(cfg config.DatabaseConfig) (repository.Store, func(), error) {
	if cfg.Driver == config.DriverPostgres {
		db, err := repository.OpenPostgres(cfg.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		repo := repository.NewGormRepo(db)
		closeRepo := func() {
			if err := repo.Close(); err != nil {
				utils.Warn("failed to close database", map[string]any{"error": err.Error()})
			}
		}
		if cfg.AutoMigrate {
			if err := repo.AutoMigrate(); err != nil {
				closeRepo()
				return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
			}
		}
		return repo, closeRepo, nil
	}

	repo := repository.NewMemoryRepo()
	prepopulateCategories(repo)
	return repo, func() {}, nil
}

// prepopulateCategories adds sample categories to the in-memory repo
func prepopulateCategories(repo *repository.MemoryRepo) {
	for _, name := range []string{"Electronics", "Books", "Collectibles"} {
		category := model.Category{Name: name}
		if err := repo.CreateCategory(context.Background(), &category); err != nil {
			utils.Warn("failed to seed category", map[string]any{"name": name, "error": err.Error()})
		}
	}
}
