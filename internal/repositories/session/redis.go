package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/couplewheel/couplewheel/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key for the session snapshot namespace
	sessionSnapshotKey = "wheel:session"
)

// ErrSnapshotNotFound is returned when no snapshot has been persisted yet
var ErrSnapshotNotFound = errors.New("session snapshot not found")

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed session repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveSnapshot persists the full session snapshot to Redis
func (r *redisRepository) SaveSnapshot(ctx context.Context, input *SaveSnapshotInput) error {
	if input == nil || input.Snapshot == nil {
		return errors.New("input and snapshot cannot be nil")
	}

	snapshotJSON, err := json.Marshal(input.Snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal session snapshot: %w", err)
	}

	// Whole-snapshot write, no expiration
	if err := r.client.Set(ctx, sessionSnapshotKey, snapshotJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save session snapshot: %w", err)
	}

	return nil
}

// LoadSnapshot retrieves the session snapshot from Redis
func (r *redisRepository) LoadSnapshot(ctx context.Context, input *LoadSnapshotInput) (*models.SessionSnapshot, error) {
	snapshotJSON, err := r.client.Get(ctx, sessionSnapshotKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to load session snapshot: %w", err)
	}

	var snapshot models.SessionSnapshot
	if err := json.Unmarshal([]byte(snapshotJSON), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session snapshot: %w", err)
	}

	return &snapshot, nil
}
