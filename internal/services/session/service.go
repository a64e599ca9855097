package session

import (
	"context"
	"errors"
	"sync"

	"github.com/couplewheel/couplewheel/internal/catalog"
	"github.com/couplewheel/couplewheel/internal/common/clock"
	"github.com/couplewheel/couplewheel/internal/common/uuid"
	"github.com/couplewheel/couplewheel/internal/models"
	sessionRepo "github.com/couplewheel/couplewheel/internal/repositories/session"
	"go.uber.org/zap"
)

// service implements the Service interface
type service struct {
	repo   sessionRepo.Repository
	clock  clock.Clock
	uuider uuid.UUID
	logger *zap.Logger

	mu          sync.Mutex
	players     map[string]*models.Player
	order       []string
	current     string
	catalog     *catalog.Catalog
	history     []*models.HistoryEntry
	subscribers []func()
}

// New creates a session store, restoring the persisted snapshot when one
// exists. A missing snapshot seeds the default catalogs; an unreadable one
// is logged and the store starts fresh, continuing in-memory.
func New(ctx context.Context, cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Repo == nil {
		return nil, ErrNilRepository
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &service{
		repo:    cfg.Repo,
		clock:   cfg.Clock,
		uuider:  cfg.UUIDGenerator,
		logger:  logger,
		players: make(map[string]*models.Player),
		catalog: catalog.NewWithDefaults(),
	}

	snapshot, err := cfg.Repo.LoadSnapshot(ctx, &sessionRepo.LoadSnapshotInput{})
	if err != nil {
		if !errors.Is(err, sessionRepo.ErrSnapshotNotFound) {
			logger.Warn("failed to restore session snapshot, starting fresh", zap.Error(err))
		}
		return s, nil
	}

	s.restore(snapshot)
	return s, nil
}

// restore loads a snapshot verbatim; there is no migration logic
func (s *service) restore(snapshot *models.SessionSnapshot) {
	if snapshot.Players != nil {
		s.players = snapshot.Players
	}
	s.order = snapshot.PlayerOrder
	s.current = snapshot.CurrentPlayer
	s.catalog = catalog.New(snapshot.MasterActivities, snapshot.SubActivities)
	s.history = snapshot.History
}

// RegisterPlayer creates or overwrites the player keyed by name
func (s *service) RegisterPlayer(ctx context.Context, input *RegisterPlayerInput) error {
	if input == nil {
		return ErrNilInput
	}

	s.mu.Lock()
	if _, exists := s.players[input.Name]; !exists {
		s.order = append(s.order, input.Name)
	}
	s.players[input.Name] = &models.Player{
		Name:  input.Name,
		Role:  input.Role,
		Score: 0,
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persistAndNotify(ctx, snapshot)
	return nil
}

// SetActivePlayer unconditionally sets the current player
func (s *service) SetActivePlayer(ctx context.Context, input *SetActivePlayerInput) error {
	if input == nil {
		return ErrNilInput
	}

	s.mu.Lock()
	s.current = input.Name
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persistAndNotify(ctx, snapshot)
	return nil
}

// RecordSpin appends a history entry and returns its generated ID
func (s *service) RecordSpin(ctx context.Context, input *RecordSpinInput) (*RecordSpinOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	entry := &models.HistoryEntry{
		ID:           s.uuider.NewUUID(),
		Player:       input.Player,
		Activity:     input.Activity,
		Timestamp:    s.clock.Now(),
		PointsEarned: input.PointsEarned,
	}

	s.mu.Lock()
	s.history = append(s.history, entry)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persistAndNotify(ctx, snapshot)
	return &RecordSpinOutput{SpinID: entry.ID}, nil
}

// AttachFeedback sets feedback on the entry with the given spin ID. A
// repeated call overwrites; an unknown ID is a silent no-op.
func (s *service) AttachFeedback(ctx context.Context, input *AttachFeedbackInput) error {
	if input == nil {
		return ErrNilInput
	}

	s.mu.Lock()
	var found bool
	for _, entry := range s.history {
		if entry.ID == input.SpinID {
			entry.Feedback = &models.Feedback{
				IsPositive: input.IsPositive,
				Timestamp:  s.clock.Now(),
			}
			found = true
			break
		}
	}
	if !found {
		s.mu.Unlock()
		return nil
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persistAndNotify(ctx, snapshot)
	return nil
}

// AddActivity appends to the matching role's catalog
func (s *service) AddActivity(ctx context.Context, input *AddActivityInput) (*AddActivityOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	stored, err := s.catalog.Append(input.Role, input.Activity)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persistAndNotify(ctx, snapshot)
	return &AddActivityOutput{Activity: stored}, nil
}

// CreditScore adds points to the named player's score. An unknown name
// materializes a bare record with only a name and score; callers avoid this
// by registering before crediting.
func (s *service) CreditScore(ctx context.Context, input *CreditScoreInput) error {
	if input == nil {
		return ErrNilInput
	}

	s.mu.Lock()
	player, exists := s.players[input.Name]
	if !exists {
		player = &models.Player{Name: input.Name}
		s.players[input.Name] = player
		s.order = append(s.order, input.Name)
	}
	player.Score += input.Points
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persistAndNotify(ctx, snapshot)
	return nil
}

// AdvanceTurn activates the first registered player whose role differs from
// the current player's, scanning in registration order
func (s *service) AdvanceTurn(ctx context.Context, input *AdvanceTurnInput) (*AdvanceTurnOutput, error) {
	s.mu.Lock()
	var next string
	if current, ok := s.players[s.current]; ok && s.current != "" {
		for _, name := range s.order {
			if player := s.players[name]; player != nil && player.Role != current.Role {
				next = name
				break
			}
		}
	} else if len(s.order) > 0 {
		// No usable current player: the first registered player takes over
		next = s.order[0]
	}
	s.current = next
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persistAndNotify(ctx, snapshot)
	return &AdvanceTurnOutput{CurrentPlayer: next}, nil
}

// Snapshot returns a read-only copy of the full store state
func (s *service) Snapshot(ctx context.Context) *models.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers a listener invoked after every mutation
func (s *service) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// snapshotLocked deep-copies the store state; callers hold s.mu
func (s *service) snapshotLocked() *models.SessionSnapshot {
	players := make(map[string]*models.Player, len(s.players))
	for name, player := range s.players {
		copied := *player
		players[name] = &copied
	}

	history := make([]*models.HistoryEntry, len(s.history))
	for i, entry := range s.history {
		copied := *entry
		if entry.Feedback != nil {
			feedback := *entry.Feedback
			copied.Feedback = &feedback
		}
		history[i] = &copied
	}

	return &models.SessionSnapshot{
		Players:          players,
		CurrentPlayer:    s.current,
		PlayerOrder:      append([]string(nil), s.order...),
		MasterActivities: s.catalog.ListFor(models.RoleMaster),
		SubActivities:    s.catalog.ListFor(models.RoleSub),
		History:          history,
	}
}

// persistAndNotify writes the snapshot and wakes subscribers. A persistence
// failure is a recoverable warning: the store keeps serving from memory.
func (s *service) persistAndNotify(ctx context.Context, snapshot *models.SessionSnapshot) {
	err := s.repo.SaveSnapshot(ctx, &sessionRepo.SaveSnapshotInput{Snapshot: snapshot})
	if err != nil {
		s.logger.Warn("failed to persist session snapshot, continuing in-memory", zap.Error(err))
	}

	s.mu.Lock()
	subscribers := append(([]func())(nil), s.subscribers...)
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn()
	}
}
