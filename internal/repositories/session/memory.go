package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/couplewheel/couplewheel/internal/models"
)

// memoryRepository implements the Repository interface in process memory.
// It backs the fallback mode when no Redis is reachable, and tests. The
// snapshot is stored serialized so loads see the same shape a Redis restore
// would.
type memoryRepository struct {
	mu       sync.RWMutex
	snapshot []byte
}

// NewMemory creates a new in-memory session repository
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
		return fmt.Errorf("failed to marshal session snapshot: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshot = snapshotJSON

	return nil
}

// LoadSnapshot returns the last stored snapshot
func (r *memoryRepository) LoadSnapshot(ctx context.Context, input *LoadSnapshotInput) (*models.SessionSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.snapshot == nil {
		return nil, ErrSnapshotNotFound
	}

	var snapshot models.SessionSnapshot
	if err := json.Unmarshal(r.snapshot, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session snapshot: %w", err)
	}

	return &snapshot, nil
}
