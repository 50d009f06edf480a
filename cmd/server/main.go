package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ecolearn/internal/cache"
	"ecolearn/internal/config"
	"ecolearn/internal/logging"
	"ecolearn/internal/metrics"
	"ecolearn/internal/repository"
	"ecolearn/internal/service"
	"ecolearn/internal/transport/rest"
	"ecolearn/internal/transport/ws"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.New(cfg)

	ctx := context.Background()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		logger.Fatal().Err(err).Msg("failed to ping MongoDB")
	}
	logger.Info().Str("db", cfg.MongoDB).Msg("connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		logger.Fatal().Err(err).Msg("failed to ping Redis")
	}
	logger.Info().Str("addr", cfg.RedisAddr).Msg("connected to Redis")

	// Initialize repositories
	codespaceRepo := repository.NewCodespaceRepo(db)
	gameSessionRepo := repository.NewGameSessionRepo(db)
	userRepo := repository.NewUserRepo(db)
	postRepo := repository.NewPostRepo(db)

	if err := codespaceRepo.EnsureIndexes(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to ensure indexes")
	}

	// Initialize caches
	codespaceCache := cache.NewCodespaceCache(rdb, cfg.CodespaceTTL)
	leaderboard := cache.NewLeaderboardCache(rdb)
	adminSessions := cache.NewAdminSessionCache(rdb, cfg.AdminSessionTTL)

	// Metrics registry
	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	codespaceSvc := service.NewCodespaceService(codespaceRepo, codespaceCache)
	gameSvc := service.NewGameService(gameSessionRepo, userRepo, leaderboard)
	postSvc := service.NewPostService(postRepo)
	adminGate := service.NewAdminGate(userRepo, adminSessions, logger)

	// WebSocket hub (implements service.Notifier)
	wsHub := ws.NewHub(logger)
	codespaceSvc.SetNotifier(wsHub)

	router := rest.NewRouter(&rest.Container{
		AuthService:      authSvc,
		CodespaceService: codespaceSvc,
		GameService:      gameSvc,
		PostService:      postSvc,
		AdminGate:        adminGate,
		Collector:        collector,
		Gatherer:         reg,
		WSHub:            wsHub,
		Logger:           logger,
		CodespaceTTL:     cfg.CodespaceTTL,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		logger.Info().Str("port", cfg.HTTPPort).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen and serve failed")
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("server exited")
}
