package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/PrandiF/gevp-back/internal/api"
	"github.com/PrandiF/gevp-back/internal/core/service"
	mongodb "github.com/PrandiF/gevp-back/internal/infrastructure/db/mongo"
	redisdb "github.com/PrandiF/gevp-back/internal/infrastructure/db/redis"
	"github.com/PrandiF/gevp-back/internal/infrastructure/queue"
	"github.com/PrandiF/gevp-back/internal/pkg/config"
	"github.com/PrandiF/gevp-back/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	eventRepo := mongodb.NewEventRepository(db)
	if err := eventRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("event index creation failed")
	}
	scheduleRepo := mongodb.NewScheduleRepository(db)
	if err := scheduleRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("schedule index creation failed")
	}

	userRepo := mongodb.NewUserRepository(db)
	seeds := mongodb.DefaultSeedUsers(cfg.SeedMemberPassword, cfg.SeedStaffPassword)
	if err := userRepo.Seed(ctx, seeds); err != nil {
		log.Fatal().Err(err).Msg("user seeding failed")
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()

	// --- Activity audit pipeline ---
	activityRepo := mongodb.NewActivityRepository(db)
	activityService := service.NewActivityService(activityRepo, log)
	dispatcher := queue.NewDispatcher(0, activityService, log)
	dispatcher.Start(ctx)

	// --- HTTP server ---
	e := api.NewRouter(cfg, db, rdb, dispatcher, log)

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		if err := e.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Info().Err(err).Msg("server stopped")
	}
}
