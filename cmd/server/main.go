package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gamevault/review-system/internal/api"
	"github.com/gamevault/review-system/internal/core/service"
	"github.com/gamevault/review-system/internal/core/token"
	"github.com/gamevault/review-system/internal/infrastructure/config"
	mongodb "github.com/gamevault/review-system/internal/infrastructure/db/mongo"
	redisdb "github.com/gamevault/review-system/internal/infrastructure/db/redis"
	"github.com/gamevault/review-system/internal/infrastructure/queue"
	"github.com/gamevault/review-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not up yet; a missing JWT_SECRET lands here.
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Stores ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	accountRepo := mongodb.NewAccountRepository(db)
	if err := accountRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("account index creation failed")
	}
	gameRepo := mongodb.NewGameRepository(db)
	reviewRepo := mongodb.NewReviewRepository(db)
	gameCache := redisdb.NewGameCache(rdb)

	// --- Core ---
	hashPool := queue.NewHashPool(cfg.HashWorkers, log)
	hashPool.Start(ctx)

	codec := token.NewCodec(cfg.JWTSecret, token.DefaultTTL)

	e := api.NewRouter(api.Deps{
		Logger:        log,
		AuthService:   service.NewAuthService(accountRepo, hashPool, codec, log),
		GameService:   service.NewGameService(gameRepo, gameCache, log),
		ReviewService: service.NewReviewService(reviewRepo, gameRepo, log),
		TokenCodec:    codec,
		Mongo:         db,
		Redis:         rdb,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
