package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/runpro9ja/admin-gateway/internal/api"
	"github.com/runpro9ja/admin-gateway/internal/core/domain"
	"github.com/runpro9ja/admin-gateway/internal/core/service"
	"github.com/runpro9ja/admin-gateway/internal/infrastructure/config"
	mongodb "github.com/runpro9ja/admin-gateway/internal/infrastructure/db/mongo"
	redisdb "github.com/runpro9ja/admin-gateway/internal/infrastructure/db/redis"
	"github.com/runpro9ja/admin-gateway/internal/infrastructure/poller"
	"github.com/runpro9ja/admin-gateway/internal/infrastructure/seal"
	"github.com/runpro9ja/admin-gateway/internal/infrastructure/upstream"
	"github.com/runpro9ja/admin-gateway/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Init is once-only, so config is loaded with a plain bootstrap logger
	// and the singleton is built a single time from the configured options.
	cfg := config.Load(zerolog.New(os.Stdout).With().Timestamp().Logger())
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.Env == "development"})

	mongoClient, mongoDB, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := mongoClient.Disconnect(disconnectCtx); err != nil {
			log.Error().Err(err).Msg("failed to disconnect MongoDB")
		}
	}()

	redisClient, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close Redis client")
		}
	}()

	sealer, err := seal.New(cfg.SealSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialise credential sealer")
	}

	sessionStore := redisdb.NewSessionStore(redisClient, sealer, cfg.SessionTTL)
	flightLock := redisdb.NewFlightLock(redisClient)
	auditLog := mongodb.NewAuditRepository(mongoDB)

	upstreamClient := upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, log)

	sessions := service.NewSessionService(sessionStore, upstreamClient, flightLock, auditLog, cfg.JWTSecret, cfg.SessionTTL, log)
	feeds := service.NewFeedService(upstreamClient, log)

	pol := poller.New(func(ctx context.Context) domain.Feed[[]domain.ActiveDelivery] {
		return feeds.ActiveDeliveries(ctx, cfg.Upstream.ServiceToken)
	}, cfg.Poll.Interval, log)
	go pol.Run(ctx)

	e := api.NewRouter(api.Dependencies{
		Sessions:  sessions,
		Feeds:     feeds,
		Upstream:  upstreamClient,
		Poller:    pol,
		Mongo:     mongoDB,
		Redis:     redisClient,
		JWTSecret: cfg.JWTSecret,
		Log:       log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting admin gateway")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
