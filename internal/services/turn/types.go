package turn

import (
	"time"

	"github.com/couplewheel/couplewheel/internal/common/sched"
	"github.com/couplewheel/couplewheel/internal/models"
	sessionService "github.com/couplewheel/couplewheel/internal/services/session"
	"github.com/couplewheel/couplewheel/internal/spin"
	"go.uber.org/zap"
)

// Phase is one stop in the turn-resolution sequence
type Phase string

const (
	// PhaseRoleSelect waits for the player to pick an archetype
	PhaseRoleSelect Phase = "role_select"

	// PhaseNameEntry waits for a non-blank player name
	PhaseNameEntry Phase = "name_entry"

	// PhaseWheelReady accepts a spin request
	PhaseWheelReady Phase = "wheel_ready"

	// PhaseSpinning runs the fixed settle delay; spins are ignored here
	PhaseSpinning Phase = "spinning"

	// PhaseDeciding waits for the keep-or-pass choice
	PhaseDeciding Phase = "deciding"

	// PhaseTimerRunning counts the activity duration down to zero
	PhaseTimerRunning Phase = "timer_running"

	// PhaseFeedback waits for the reaction to the completed spin
	PhaseFeedback Phase = "feedback"
)

// RejectReason says why an intent was not acted on
type RejectReason string

const (
	// ReasonWrongPhase means the intent is not valid in the current phase
	ReasonWrongPhase RejectReason = "wrong_phase"

	// ReasonAlreadySpinning means a spin arrived while one was in flight
	ReasonAlreadySpinning RejectReason = "already_spinning"

	// ReasonNoActivePlayer means a spin arrived with no current player
	ReasonNoActivePlayer RejectReason = "no_active_player"

	// ReasonBlankName means the submitted name was empty after trimming
	ReasonBlankName RejectReason = "blank_name"

	// ReasonInvalidRole means the chosen role is not a known archetype
	ReasonInvalidRole RejectReason = "invalid_role"

	// ReasonEmptyCatalog means the active player's catalog has no entries
	ReasonEmptyCatalog RejectReason = "empty_catalog"
)

// Result is the outcome of an intent. Guard failures reject the intent
// explicitly instead of failing silently; nothing here is an error and
// nothing panics.
type Result struct {
	Accepted bool
	Reason   RejectReason
}

// Accepted is the successful intent result
func Accepted() Result {
	return Result{Accepted: true}
}

// Rejected is an ignored-intent result carrying the guard that fired
func Rejected(reason RejectReason) Result {
	return Result{Reason: reason}
}

// Presenter receives the controller's render trigger points. Rendering,
// animation and audio live behind this interface and hold no state the
// controller depends on.
type Presenter interface {
	// PhaseChanged fires after every transition
	PhaseChanged(phase Phase)

	// SpinStarted fires when a spin is accepted, before the settle delay
	SpinStarted()

	// SelectionLanded fires when the spin settles on an activity
	SelectionLanded(activity models.Activity, pointsOnOffer int)

	// CountdownTick fires once per second while the activity timer runs
	CountdownTick(secondsLeft int)
}

// NopPresenter ignores every trigger
type NopPresenter struct{}

func (NopPresenter) PhaseChanged(Phase)                   {}
func (NopPresenter) SpinStarted()                         {}
func (NopPresenter) SelectionLanded(models.Activity, int) {}
func (NopPresenter) CountdownTick(int)                    {}

// Config holds dependencies for the turn controller
type Config struct {
	// Session is the session store the controller reads from and writes to
	Session sessionService.Service

	// Picker selects the wheel index on each spin
	Picker spin.Picker

	// Scheduler owns the controller's cancellable delays and ticks
	Scheduler sched.Scheduler

	// Presenter receives render triggers; nil means no rendering
	Presenter Presenter

	// Logger is optional; a nop logger is used when nil
	Logger *zap.Logger

	// SettleDelay is how long a spin stays in PhaseSpinning. Zero means
	// the default of four seconds.
	SettleDelay time.Duration

	// FeedbackDelay is how long the feedback display lingers before the
	// wheel is ready again. Zero means the default of two seconds.
	FeedbackDelay time.Duration
}

// Snapshot is a read-only view of the controller for presentation
type Snapshot struct {
	// Phase is the current state machine position
	Phase Phase

	// PendingRole is set between role choice and name submission
	PendingRole models.Role

	// Spinner is the player the in-flight turn belongs to
	Spinner string

	// Selected is the activity the wheel landed on, nil before settle
	Selected *models.Activity

	// SelectedIndex is the wheel index of the selected activity
	SelectedIndex int

	// PointsOnOffer is the pending amount awaiting the keep-or-pass call
	PointsOnOffer int

	// SpinID is the history entry awaiting feedback
	SpinID string

	// SecondsLeft is the countdown remainder while the timer runs
	SecondsLeft int
}
