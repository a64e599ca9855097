package mission

import (
	"context"

	"github.com/couplewheel/couplewheel/internal/models"
)

// Service is the mission/progress store: a ledger of daily and weekly
// missions with a points balance separate from any player score. It is
// deliberately not wired to the turn controller; integrators drive progress
// explicitly.
type Service interface {
	// AddMission creates a mission with zero progress and returns its ID
	AddMission(ctx context.Context, input *AddMissionInput) (*AddMissionOutput, error)

	// UpdateProgress adds to a mission's progress, clamped at its
	// requirement. Completed flips exactly when the clamp triggers. An
	// unknown ID is a silent no-op.
	UpdateProgress(ctx context.Context, input *UpdateProgressInput) error

	// CompleteMission marks a mission's reward as claimed and credits it to
	// the points balance. Claiming twice is a no-op.
	CompleteMission(ctx context.Context, input *CompleteMissionInput) error

	// AddPoints credits the points balance directly
	AddPoints(ctx context.Context, input *AddPointsInput) error

	// ResetDailyMissions replaces all daily missions with fresh
	// zero-progress templates, discarding any unexpired progress
	ResetDailyMissions(ctx context.Context) error

	// ResetWeeklyMissions replaces all weekly missions with fresh
	// zero-progress templates
	ResetWeeklyMissions(ctx context.Context) error

	// ActiveMissions lists missions whose expiry has not passed. Expired
	// missions are hidden, not deleted.
	ActiveMissions(ctx context.Context) []*models.Mission

	// Snapshot returns a read-only copy of the full store state
	Snapshot(ctx context.Context) *models.MissionSnapshot

	// Subscribe registers a listener invoked after every mutation
	Subscribe(fn func())
}
