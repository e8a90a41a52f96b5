package main

import (
	"askgate/internal/cache"
	"askgate/internal/config"
	"askgate/internal/repository"
	"askgate/internal/service"
	"askgate/internal/transport/rest"
	"askgate/internal/transport/ws"
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultConfigPath = "askgate.toml"

func main() {
	ctx := context.Background()

	configPath := os.Getenv("ASKGATE_CONFIG")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		config.NewLogger(config.LoggingConfig{Level: "info"}).Fatal().Str("path", configPath).Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Logging)

	// Log AI settings
	logger.Info().
		Str("provider", cfg.AI.Provider).
		Str("guidance_model", cfg.AI.Models.Guidance).
		Str("answer_model", cfg.AI.Models.Answer).
		Str("scorer", cfg.Scorer.Strategy).
		Msg("AI config")
	if cfg.AI.IsEnabled() {
		logger.Info().Str("api_key", cfg.AI.MaskedKey()).Msg("API key configured")
	} else {
		logger.Warn().Msg("API key NOT SET, questions will fail with a generation error")
	}

	generator, err := service.NewGenerator(ctx, &cfg.AI, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create generation client")
		os.Exit(1)
	}

	scorer, err := service.NewScorer(cfg.Scorer.Strategy, generator, &cfg.AI, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create scorer")
		os.Exit(1)
	}
	gateway := service.NewQuestionGateway(scorer, generator, &cfg.AI, logger)

	recorder := service.NewMultiRecorder(logger)
	container := &rest.Container{
		Gateway:   gateway,
		CORS:      cfg.CORS,
		StaticDir: cfg.Server.StaticDir,
		Logger:    logger,
	}

	// MongoDB event log
	if cfg.Mongo.URI != "" {
		mongoClient, err := connectMongo(ctx, cfg.Mongo.URI)
		if err != nil {
			logger.Warn().Err(err).Msg("MongoDB unavailable, ask event log disabled")
		} else {
			defer mongoClient.Disconnect(context.Background())

			eventRepo := repository.NewAskEventRepo(mongoClient.Database(cfg.Mongo.Database))
			if err := eventRepo.EnsureIndexes(ctx); err != nil {
				logger.Warn().Err(err).Msg("Failed to create ask event indexes")
			}
			recorder.Add("mongo", eventRepo)
			container.Events = eventRepo
			logger.Info().Str("database", cfg.Mongo.Database).Msg("Connected to MongoDB")
		}
	}

	// Redis counters
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr: cfg.Redis.Addr,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis unavailable, ask counters disabled")
			rdb.Close()
		} else {
			defer rdb.Close()

			stats := cache.NewStatsCache(rdb)
			recorder.Add("redis", stats)
			container.Stats = stats
			logger.Info().Str("addr", cfg.Redis.Addr).Msg("Connected to Redis")
		}
	}

	// WebSocket live feed
	if cfg.WebSocket.Enabled {
		wsHub := ws.NewHub(logger)
		defer wsHub.Close()

		recorder.Add("websocket", wsHub)
		container.WSHub = wsHub
		logger.Info().Msg("WebSocket hub started")
	}

	if recorder.Len() > 0 {
		gateway.SetRecorder(recorder)
	}

	router := rest.NewRouter(container)

	port := strconv.Itoa(cfg.Server.Port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("Server starting")
		logger.Info().Msg("Endpoints: POST /ask, GET /health, GET /stats, GET /events, WS /ws/events")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("ListenAndServe failed")
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
}

func connectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, err
	}
	return client, nil
}
