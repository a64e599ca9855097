package mission

import (
	"context"

	"github.com/couplewheel/couplewheel/internal/models"
)

// Repository defines the interface for mission snapshot persistence
type Repository interface {
	// SaveSnapshot persists the full mission snapshot
	SaveSnapshot(ctx context.Context, input *SaveSnapshotInput) error

	// LoadSnapshot retrieves the last persisted mission snapshot
	LoadSnapshot(ctx context.Context, input *LoadSnapshotInput) (*models.MissionSnapshot, error)
}
