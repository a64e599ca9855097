package session

import (
	"github.com/couplewheel/couplewheel/internal/common/clock"
	"github.com/couplewheel/couplewheel/internal/common/uuid"
	"github.com/couplewheel/couplewheel/internal/models"
	sessionRepo "github.com/couplewheel/couplewheel/internal/repositories/session"
	"go.uber.org/zap"
)

// Config holds dependencies for the session store
type Config struct {
	// Repo persists the full session snapshot after every mutation
	Repo sessionRepo.Repository

	// Clock provides timestamps for history entries and feedback
	Clock clock.Clock

	// UUIDGenerator provides spin IDs
	UUIDGenerator uuid.UUID

	// Logger is optional; a nop logger is used when nil
	Logger *zap.Logger
}

type RegisterPlayerInput struct {
	Name string
	Role models.Role
}

type SetActivePlayerInput struct {
	Name string
}

type RecordSpinInput struct {
	Player       string
	Activity     models.Activity
	PointsEarned int
}

type RecordSpinOutput struct {
	// SpinID is the generated history entry ID, used for feedback attachment
	SpinID string
}

type AttachFeedbackInput struct {
	SpinID     string
	IsPositive bool
}

type AddActivityInput struct {
	Role     models.Role
	Activity models.Activity
}

type AddActivityOutput struct {
	// Activity is the normalized entry that was stored
	Activity models.Activity
}

type CreditScoreInput struct {
	Name   string
	Points int
}

type AdvanceTurnInput struct {
}

type AdvanceTurnOutput struct {
	// CurrentPlayer is the active player after the turn switch, empty when
	// no opposing-role player was found
	CurrentPlayer string
}
