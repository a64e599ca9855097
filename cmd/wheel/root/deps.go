package root

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/couplewheel/couplewheel/internal/common/clock"
	"github.com/couplewheel/couplewheel/internal/common/uuid"
	missionRepo "github.com/couplewheel/couplewheel/internal/repositories/mission"
	sessionRepo "github.com/couplewheel/couplewheel/internal/repositories/session"
	missionService "github.com/couplewheel/couplewheel/internal/services/mission"
	sessionService "github.com/couplewheel/couplewheel/internal/services/session"
)

// app bundles the wired stores every command works against
type app struct {
	logger   *zap.Logger
	session  sessionService.Service
	missions missionService.Service
}

// newApp loads the environment, connects the snapshot repositories and
// restores both stores. When Redis is unreachable the game still runs,
// in-memory only, with a warning.
func newApp(ctx context.Context) (*app, error) {
	// A missing .env file is fine; env vars may be set directly
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}

	sRepo, mRepo := buildRepositories(ctx, logger)

	clk := &clock.DefaultClock{}
	uuider := uuid.New()

	sessionStore, err := sessionService.New(ctx, &sessionService.Config{
		Repo:          sRepo,
		Clock:         clk,
		UUIDGenerator: uuider,
		Logger:        logger,
	})
	if err != nil {
		return nil, err
	}

	missionStore, err := missionService.New(ctx, &missionService.Config{
		Repo:          mRepo,
		Clock:         clk,
		UUIDGenerator: uuider,
		Logger:        logger,
	})
	if err != nil {
		return nil, err
	}

	return &app{
		logger:   logger,
		session:  sessionStore,
		missions: missionStore,
	}, nil
}

// buildRepositories returns Redis-backed repositories when Redis answers a
// ping, otherwise the in-memory fallbacks
func buildRepositories(ctx context.Context, logger *zap.Logger) (sessionRepo.Repository, missionRepo.Repository) {
	client := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("redis unavailable, progress will not survive this run", zap.Error(err))
		return sessionRepo.NewMemory(), missionRepo.NewMemory()
	}

	sRepo, err := sessionRepo.NewRedis(&sessionRepo.Config{RedisClient: client})
	if err != nil {
		logger.Warn("failed to create session repository, continuing in-memory", zap.Error(err))
		return sessionRepo.NewMemory(), missionRepo.NewMemory()
	}

	mRepo, err := missionRepo.NewRedis(&missionRepo.Config{RedisClient: client})
	if err != nil {
		logger.Warn("failed to create mission repository, continuing in-memory", zap.Error(err))
		return sessionRepo.NewMemory(), missionRepo.NewMemory()
	}

	return sRepo, mRepo
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvDuration reads a millisecond value or returns a default duration
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	ms, err := strconv.Atoi(value)
	if err != nil || ms <= 0 {
		return defaultValue
	}
	return time.Duration(ms) * time.Millisecond
}
