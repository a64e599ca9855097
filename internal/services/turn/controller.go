package turn

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/couplewheel/couplewheel/internal/common/sched"
	"github.com/couplewheel/couplewheel/internal/models"
	sessionService "github.com/couplewheel/couplewheel/internal/services/session"
	"github.com/couplewheel/couplewheel/internal/spin"
	"go.uber.org/zap"
)

const (
	// DefaultSettleDelay is how long the wheel spins before settling
	DefaultSettleDelay = 4 * time.Second

	// DefaultFeedbackDelay is how long the feedback display lingers
	DefaultFeedbackDelay = 2 * time.Second
)

// Controller drives one full turn: role and name intake, spin, decision,
// countdown, feedback, handoff to the next player. All work happens in
// response to intents and scheduled callbacks; every intent returns a Result
// and guard failures never panic or error.
type Controller struct {
	session       sessionService.Service
	picker        spin.Picker
	scheduler     sched.Scheduler
	presenter     Presenter
	logger        *zap.Logger
	settleDelay   time.Duration
	feedbackDelay time.Duration

	mu            sync.Mutex
	phase         Phase
	pendingRole   models.Role
	spinner       string
	selected      *models.Activity
	selectedIndex int
	pendingPoints int
	spinID        string
	secondsLeft   int
	task          sched.Task
	closed        bool
}

// New creates a turn controller in PhaseRoleSelect
func New(cfg *Config) (*Controller, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Session == nil {
		return nil, ErrNilSession
	}
	if cfg.Picker == nil {
		return nil, ErrNilPicker
	}
	if cfg.Scheduler == nil {
		return nil, ErrNilScheduler
	}

	presenter := cfg.Presenter
	if presenter == nil {
		presenter = NopPresenter{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	settleDelay := cfg.SettleDelay
	if settleDelay == 0 {
		settleDelay = DefaultSettleDelay
	}

	feedbackDelay := cfg.FeedbackDelay
	if feedbackDelay == 0 {
		feedbackDelay = DefaultFeedbackDelay
	}

	return &Controller{
		session:       cfg.Session,
		picker:        cfg.Picker,
		scheduler:     cfg.Scheduler,
		presenter:     presenter,
		logger:        logger,
		settleDelay:   settleDelay,
		feedbackDelay: feedbackDelay,
		phase:         PhaseRoleSelect,
	}, nil
}

// ChooseRole stores the chosen archetype and moves to name entry
func (c *Controller) ChooseRole(role models.Role) Result {
	if !role.IsValid() {
		return Rejected(ReasonInvalidRole)
	}

	c.mu.Lock()
	if c.phase != PhaseRoleSelect {
		c.mu.Unlock()
		return Rejected(ReasonWrongPhase)
	}
	c.pendingRole = role
	c.phase = PhaseNameEntry
	c.mu.Unlock()

	c.presenter.PhaseChanged(PhaseNameEntry)
	return Accepted()
}

// SubmitName registers and activates the player. A blank name after
// trimming leaves the state unchanged.
func (c *Controller) SubmitName(ctx context.Context, name string) Result {
	trimmed := strings.TrimSpace(name)

	c.mu.Lock()
	if c.phase != PhaseNameEntry {
		c.mu.Unlock()
		return Rejected(ReasonWrongPhase)
	}
	if trimmed == "" {
		c.mu.Unlock()
		return Rejected(ReasonBlankName)
	}
	role := c.pendingRole
	c.pendingRole = ""
	c.phase = PhaseWheelReady
	c.mu.Unlock()

	if err := c.session.RegisterPlayer(ctx, &sessionService.RegisterPlayerInput{Name: trimmed, Role: role}); err != nil {
		c.logger.Error("failed to register player", zap.Error(err))
	}
	if err := c.session.SetActivePlayer(ctx, &sessionService.SetActivePlayerInput{Name: trimmed}); err != nil {
		c.logger.Error("failed to set active player", zap.Error(err))
	}

	c.presenter.PhaseChanged(PhaseWheelReady)
	return Accepted()
}

// Spin picks a random index over the active player's catalog and starts the
// settle delay. Rejected while already spinning, with no active player, or
// outside PhaseWheelReady.
func (c *Controller) Spin(ctx context.Context) Result {
	c.mu.Lock()
	if c.phase == PhaseSpinning {
		c.mu.Unlock()
		return Rejected(ReasonAlreadySpinning)
	}
	if c.phase != PhaseWheelReady {
		c.mu.Unlock()
		return Rejected(ReasonWrongPhase)
	}
	c.mu.Unlock()

	snapshot := c.session.Snapshot(ctx)
	if snapshot.CurrentPlayer == "" {
		return Rejected(ReasonNoActivePlayer)
	}
	player := snapshot.Players[snapshot.CurrentPlayer]
	if player == nil {
		return Rejected(ReasonNoActivePlayer)
	}

	activities := snapshot.SubActivities
	if player.Role == models.RoleMaster {
		activities = snapshot.MasterActivities
	}
	if len(activities) == 0 {
		return Rejected(ReasonEmptyCatalog)
	}

	index := c.picker.Pick(len(activities))
	activity := activities[index]

	c.mu.Lock()
	if c.phase != PhaseWheelReady {
		c.mu.Unlock()
		return Rejected(ReasonWrongPhase)
	}
	c.phase = PhaseSpinning
	c.spinner = snapshot.CurrentPlayer
	c.selected = &activity
	c.selectedIndex = index
	c.scheduleLocked(c.settleDelay, func() {
		c.settle(context.Background())
	})
	c.mu.Unlock()

	c.presenter.PhaseChanged(PhaseSpinning)
	c.presenter.SpinStarted()
	return Accepted()
}

// settle fires when the spin delay elapses: the chosen activity becomes the
// points on offer and the spin is recorded in history
func (c *Controller) settle(ctx context.Context) {
	c.mu.Lock()
	if c.closed || c.phase != PhaseSpinning || c.selected == nil {
		c.mu.Unlock()
		return
	}
	activity := *c.selected
	spinner := c.spinner
	c.pendingPoints = activity.Points
	c.phase = PhaseDeciding
	c.mu.Unlock()

	out, err := c.session.RecordSpin(ctx, &sessionService.RecordSpinInput{
		Player:       spinner,
		Activity:     activity,
		PointsEarned: activity.Points,
	})
	if err != nil {
		c.logger.Error("failed to record spin", zap.Error(err))
	} else {
		c.mu.Lock()
		c.spinID = out.SpinID
		c.mu.Unlock()
	}

	c.presenter.PhaseChanged(PhaseDeciding)
	c.presenter.SelectionLanded(activity, activity.Points)
}

// Keep banks the points on offer for the player who spun, then hands the
// turn to the next player
func (c *Controller) Keep(ctx context.Context) Result {
	c.mu.Lock()
	if c.phase != PhaseDeciding {
		c.mu.Unlock()
		return Rejected(ReasonWrongPhase)
	}
	points := c.pendingPoints
	spinner := c.spinner
	c.pendingPoints = 0
	c.mu.Unlock()

	if err := c.session.CreditScore(ctx, &sessionService.CreditScoreInput{Name: spinner, Points: points}); err != nil {
		c.logger.Error("failed to credit score", zap.Error(err))
	}
	if _, err := c.session.AdvanceTurn(ctx, &sessionService.AdvanceTurnInput{}); err != nil {
		c.logger.Error("failed to advance turn", zap.Error(err))
	}

	c.afterDecision()
	return Accepted()
}

// Pass forfeits the points on offer and still hands the turn over
func (c *Controller) Pass(ctx context.Context) Result {
	c.mu.Lock()
	if c.phase != PhaseDeciding {
		c.mu.Unlock()
		return Rejected(ReasonWrongPhase)
	}
	c.pendingPoints = 0
	c.mu.Unlock()

	if _, err := c.session.AdvanceTurn(ctx, &sessionService.AdvanceTurnInput{}); err != nil {
		c.logger.Error("failed to advance turn", zap.Error(err))
	}

	c.afterDecision()
	return Accepted()
}

// afterDecision enters the countdown for the chosen activity, or goes
// straight to feedback when it has no duration
func (c *Controller) afterDecision() {
	c.mu.Lock()
	duration := 0
	if c.selected != nil {
		duration = c.selected.Duration
	}

	if duration > 0 {
		c.phase = PhaseTimerRunning
		c.secondsLeft = duration * 60
		left := c.secondsLeft
		c.scheduleLocked(time.Second, func() {
			c.tick()
		})
		c.mu.Unlock()

		c.presenter.PhaseChanged(PhaseTimerRunning)
		c.presenter.CountdownTick(left)
		return
	}

	c.phase = PhaseFeedback
	c.mu.Unlock()
	c.presenter.PhaseChanged(PhaseFeedback)
}

// tick decrements the countdown once per second; zero is a single terminal
// event that opens the feedback phase
func (c *Controller) tick() {
	c.mu.Lock()
	if c.closed || c.phase != PhaseTimerRunning {
		c.mu.Unlock()
		return
	}

	c.secondsLeft--
	left := c.secondsLeft
	if left <= 0 {
		c.phase = PhaseFeedback
		c.mu.Unlock()

		c.presenter.CountdownTick(0)
		c.presenter.PhaseChanged(PhaseFeedback)
		return
	}

	c.scheduleLocked(time.Second, func() {
		c.tick()
	})
	c.mu.Unlock()

	c.presenter.CountdownTick(left)
}

// GiveFeedback attaches the reaction to the recorded spin, then returns the
// wheel after the display delay
func (c *Controller) GiveFeedback(ctx context.Context, isPositive bool) Result {
	c.mu.Lock()
	if c.phase != PhaseFeedback {
		c.mu.Unlock()
		return Rejected(ReasonWrongPhase)
	}
	spinID := c.spinID
	c.scheduleLocked(c.feedbackDelay, func() {
		c.finishFeedback()
	})
	c.mu.Unlock()

	if spinID != "" {
		if err := c.session.AttachFeedback(ctx, &sessionService.AttachFeedbackInput{SpinID: spinID, IsPositive: isPositive}); err != nil {
			c.logger.Error("failed to attach feedback", zap.Error(err))
		}
	}

	return Accepted()
}

// finishFeedback fires when the display delay elapses
func (c *Controller) finishFeedback() {
	c.mu.Lock()
	if c.closed || c.phase != PhaseFeedback {
		c.mu.Unlock()
		return
	}
	c.phase = PhaseWheelReady
	c.clearTurnLocked()
	c.mu.Unlock()

	c.presenter.PhaseChanged(PhaseWheelReady)
}

// Reset returns to role selection from any phase, cancelling whatever was
// scheduled. It is always accepted; a stuck state is never more than one
// reset away.
func (c *Controller) Reset() Result {
	c.mu.Lock()
	c.cancelTaskLocked()
	c.phase = PhaseRoleSelect
	c.pendingRole = ""
	c.clearTurnLocked()
	c.mu.Unlock()

	c.presenter.PhaseChanged(PhaseRoleSelect)
	return Accepted()
}

// Close cancels any scheduled task and stops the controller for good
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelTaskLocked()
	c.closed = true
}

// Snapshot returns a read-only view for presentation
func (c *Controller) Snapshot() *Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := &Snapshot{
		Phase:         c.phase,
		PendingRole:   c.pendingRole,
		Spinner:       c.spinner,
		SelectedIndex: c.selectedIndex,
		PointsOnOffer: c.pendingPoints,
		SpinID:        c.spinID,
		SecondsLeft:   c.secondsLeft,
	}
	if c.selected != nil {
		selected := *c.selected
		snapshot.Selected = &selected
	}
	return snapshot
}

// scheduleLocked replaces the outstanding task; re-entering a phase never
// leaves a stale timer behind. Callers hold c.mu.
func (c *Controller) scheduleLocked(d time.Duration, fn func()) {
	c.cancelTaskLocked()
	c.task = c.scheduler.After(d, fn)
}

// cancelTaskLocked cancels the outstanding task, if any; callers hold c.mu
func (c *Controller) cancelTaskLocked() {
	if c.task != nil {
		c.task.Cancel()
		c.task = nil
	}
}

// clearTurnLocked drops the per-turn transient state; callers hold c.mu
func (c *Controller) clearTurnLocked() {
	c.spinner = ""
	c.selected = nil
	c.selectedIndex = 0
	c.pendingPoints = 0
	c.spinID = ""
	c.secondsLeft = 0
}
