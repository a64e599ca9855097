package session

import (
	"context"

	"github.com/couplewheel/couplewheel/internal/models"
)

// Repository defines the interface for session snapshot persistence. The
// snapshot is always written and read whole; there are no incremental
// updates and no versioning.
type Repository interface {
	// SaveSnapshot persists the full session snapshot
	SaveSnapshot(ctx context.Context, input *SaveSnapshotInput) error

	// LoadSnapshot retrieves the last persisted session snapshot
	LoadSnapshot(ctx context.Context, input *LoadSnapshotInput) (*models.SessionSnapshot, error)
}
