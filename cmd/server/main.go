package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nexus-inventory/inventory-system/internal/api"
	"github.com/nexus-inventory/inventory-system/internal/infrastructure/config"
	mongodb "github.com/nexus-inventory/inventory-system/internal/infrastructure/db/mongo"
	redisdb "github.com/nexus-inventory/inventory-system/internal/infrastructure/db/redis"
	"github.com/nexus-inventory/inventory-system/pkg/logger"
)

// @title           Nexus Inventory API
// @version         1.0
// @description     Inventory tracking service with areas, audit log, exports and role-gated user management.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	userRepo := mongodb.NewUserRepository(db)
	areaRepo := mongodb.NewAreaRepository(db)
	itemRepo := mongodb.NewItemRepository(db)

	if err := mongodb.Seed(ctx, userRepo, areaRepo, log); err != nil {
		log.Fatal().Err(err).Msg("failed to seed initial data")
	}
	if err := itemRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to ensure item indexes")
	}

	e := api.NewRouter(db, rdb, cfg.JWTSecret)

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Str("port", cfg.Port).Msg("inventory API listening")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
