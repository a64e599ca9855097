package mission

import (
	"time"

	"github.com/couplewheel/couplewheel/internal/common/clock"
	"github.com/couplewheel/couplewheel/internal/common/uuid"
	"github.com/couplewheel/couplewheel/internal/models"
	missionRepo "github.com/couplewheel/couplewheel/internal/repositories/mission"
	"go.uber.org/zap"
)

// Config holds dependencies for the mission store
type Config struct {
	// Repo persists the full mission snapshot after every mutation
	Repo missionRepo.Repository

	// Clock provides expiry evaluation and template expiry instants
	Clock clock.Clock

	// UUIDGenerator provides mission IDs
	UUIDGenerator uuid.UUID

	// Logger is optional; a nop logger is used when nil
	Logger *zap.Logger
}

type AddMissionInput struct {
	Title       string
	Description string
	Type        models.MissionType
	Requirement int
	Reward      int
	Multiplier  float64
	ExpiresAt   time.Time
}

type AddMissionOutput struct {
	MissionID string
}

type UpdateProgressInput struct {
	MissionID string

	// Delta is the bounded-addition amount; non-positive deltas are ignored
	Delta int
}

type CompleteMissionInput struct {
	MissionID string
}

type AddPointsInput struct {
	Points int
}
