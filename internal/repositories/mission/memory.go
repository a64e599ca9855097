package mission

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/couplewheel/couplewheel/internal/models"
)

// memoryRepository implements the Repository interface in process memory,
// mirroring the Redis repository's serialize-on-save semantics
type memoryRepository struct {
	mu       sync.RWMutex
	snapshot []byte
}

// NewMemory creates a new in-memory mission repository
func NewMemory() *memoryRepository {
	return &memoryRepository{}
}

// SaveSnapshot stores the serialized snapshot
func (r *memoryRepository) SaveSnapshot(ctx context.Context, input *SaveSnapshotInput) error {
	if input == nil || input.Snapshot == nil {
		return errors.New("input and snapshot cannot be nil")
	}

	snapshotJSON, err := json.Marshal(input.Snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal mission snapshot: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshot = snapshotJSON

	return nil
}

// LoadSnapshot returns the last stored snapshot
func (r *memoryRepository) LoadSnapshot(ctx context.Context, input *LoadSnapshotInput) (*models.MissionSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.snapshot == nil {
		return nil, ErrSnapshotNotFound
	}

	var snapshot models.MissionSnapshot
	if err := json.Unmarshal(r.snapshot, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal mission snapshot: %w", err)
	}

	return &snapshot, nil
}
