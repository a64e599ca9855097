package mission

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/couplewheel/couplewheel/internal/common/clock"
	"github.com/couplewheel/couplewheel/internal/common/uuid"
	"github.com/couplewheel/couplewheel/internal/models"
	missionRepo "github.com/couplewheel/couplewheel/internal/repositories/mission"
	"go.uber.org/zap"
)

// service implements the Service interface
type service struct {
	repo   missionRepo.Repository
	clock  clock.Clock
	uuider uuid.UUID
	logger *zap.Logger

	mu          sync.Mutex
	missions    []*models.Mission
	completed   []string
	points      int
	subscribers []func()
}

// New creates a mission store, restoring the persisted snapshot when one
// exists
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
		repo:   cfg.Repo,
		clock:  cfg.Clock,
		uuider: cfg.UUIDGenerator,
		logger: logger,
	}

	snapshot, err := cfg.Repo.LoadSnapshot(ctx, &missionRepo.LoadSnapshotInput{})
	if err != nil {
		if !errors.Is(err, missionRepo.ErrSnapshotNotFound) {
			logger.Warn("failed to restore mission snapshot, starting fresh", zap.Error(err))
		}
		return s, nil
	}

	s.missions = snapshot.Missions
	s.completed = snapshot.CompletedMissions
	s.points = snapshot.Points
	return s, nil
}

// AddMission creates a mission with zero progress
func (s *service) AddMission(ctx context.Context, input *AddMissionInput) (*AddMissionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if strings.TrimSpace(input.Title) == "" || input.Requirement <= 0 || input.Reward <= 0 {
		return nil, ErrInvalidMission
	}

	mission := &models.Mission{
		ID:          s.uuider.NewUUID(),
		Title:       input.Title,
		Description: input.Description,
		Type:        input.Type,
		Requirement: input.Requirement,
		Progress:    0,
		Reward:      input.Reward,
		Multiplier:  input.Multiplier,
		Completed:   false,
		ExpiresAt:   input.ExpiresAt,
	}

	s.mu.Lock()
	s.missions = append(s.missions, mission)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persistAndNotify(ctx, snapshot)
	return &AddMissionOutput{MissionID: mission.ID}, nil
}

// UpdateProgress adds to a mission's progress, clamped at its requirement
func (s *service) UpdateProgress(ctx context.Context, input *UpdateProgressInput) error {
	if input == nil {
		return ErrNilInput
	}

	// Progress only ever moves forward
	if input.Delta <= 0 {
		return nil
	}

	s.mu.Lock()
	var found bool
	for _, mission := range s.missions {
		if mission.ID != input.MissionID {
			continue
		}
		mission.Progress += input.Delta
		if mission.Progress > mission.Requirement {
			mission.Progress = mission.Requirement
		}
		mission.Completed = mission.Progress == mission.Requirement
		found = true
		break
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

// CompleteMission claims a mission's reward onto the points balance
func (s *service) CompleteMission(ctx context.Context, input *CompleteMissionInput) error {
	if input == nil {
		return ErrNilInput
	}

	s.mu.Lock()
	for _, id := range s.completed {
		if id == input.MissionID {
			s.mu.Unlock()
			return nil
		}
	}

	s.completed = append(s.completed, input.MissionID)
	for _, mission := range s.missions {
		if mission.ID == input.MissionID {
			s.points += mission.Reward
			break
		}
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persistAndNotify(ctx, snapshot)
	return nil
}

// AddPoints credits the points balance directly
func (s *service) AddPoints(ctx context.Context, input *AddPointsInput) error {
	if input == nil {
		return ErrNilInput
	}

	s.mu.Lock()
	s.points += input.Points
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persistAndNotify(ctx, snapshot)
	return nil
}

// ResetDailyMissions replaces all daily missions with fresh templates
func (s *service) ResetDailyMissions(ctx context.Context) error {
	return s.resetByType(ctx, models.MissionTypeDaily, dailyTemplates(s.clock.Now()))
}

// ResetWeeklyMissions replaces all weekly missions with fresh templates
func (s *service) ResetWeeklyMissions(ctx context.Context) error {
	return s.resetByType(ctx, models.MissionTypeWeekly, weeklyTemplates(s.clock.Now()))
}

// resetByType drops every mission of one type, unexpired progress included,
// and appends freshly generated zero-progress replacements
func (s *service) resetByType(ctx context.Context, missionType models.MissionType, templates []template) error {
	s.mu.Lock()
	kept := make([]*models.Mission, 0, len(s.missions)+len(templates))
	for _, mission := range s.missions {
		if mission.Type != missionType {
			kept = append(kept, mission)
		}
	}
	for _, t := range templates {
		kept = append(kept, &models.Mission{
			ID:          s.uuider.NewUUID(),
			Title:       t.Title,
			Description: t.Description,
			Type:        t.Type,
			Requirement: t.Requirement,
			Progress:    0,
			Reward:      t.Reward,
			Multiplier:  t.Multiplier,
			Completed:   false,
			ExpiresAt:   t.ExpiresAt,
		})
	}
	s.missions = kept
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persistAndNotify(ctx, snapshot)
	return nil
}

// ActiveMissions lists missions whose expiry has not passed
func (s *service) ActiveMissions(ctx context.Context) []*models.Mission {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	active := make([]*models.Mission, 0, len(s.missions))
	for _, mission := range s.missions {
		if !mission.Expired(now) {
			copied := *mission
			active = append(active, &copied)
		}
	}
	return active
}

// Snapshot returns a read-only copy of the full store state
func (s *service) Snapshot(ctx context.Context) *models.MissionSnapshot {
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
func (s *service) snapshotLocked() *models.MissionSnapshot {
	missions := make([]*models.Mission, len(s.missions))
	for i, mission := range s.missions {
		copied := *mission
		missions[i] = &copied
	}

	return &models.MissionSnapshot{
		Missions:          missions,
		CompletedMissions: append([]string(nil), s.completed...),
		Points:            s.points,
	}
}

// persistAndNotify writes the snapshot and wakes subscribers; a persistence
// failure downgrades to in-memory operation with a warning
func (s *service) persistAndNotify(ctx context.Context, snapshot *models.MissionSnapshot) {
	err := s.repo.SaveSnapshot(ctx, &missionRepo.SaveSnapshotInput{Snapshot: snapshot})
	if err != nil {
		s.logger.Warn("failed to persist mission snapshot, continuing in-memory", zap.Error(err))
	}

	s.mu.Lock()
	subscribers := append(([]func())(nil), s.subscribers...)
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn()
	}
}
