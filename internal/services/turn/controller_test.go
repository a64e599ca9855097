package turn

import (
	"context"
	"testing"
	"time"

	clockMocks "github.com/couplewheel/couplewheel/internal/common/clock/mocks"
	"github.com/couplewheel/couplewheel/internal/common/sched"
	uuidMocks "github.com/couplewheel/couplewheel/internal/common/uuid/mocks"
	"github.com/couplewheel/couplewheel/internal/models"
	sessionRepo "github.com/couplewheel/couplewheel/internal/repositories/session"
	sessionService "github.com/couplewheel/couplewheel/internal/services/session"
	spinMocks "github.com/couplewheel/couplewheel/internal/spin/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TurnControllerTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockClock  *clockMocks.MockClock
	mockUUID   *uuidMocks.MockUUID
	mockPicker *spinMocks.MockPicker
	scheduler  *sched.Manual
	session    sessionService.Service
	controller *Controller
	ctx        context.Context
}

func (s *TurnControllerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.mockPicker = spinMocks.NewMockPicker(s.mockCtrl)
	s.scheduler = sched.NewManual()
	s.ctx = context.Background()

	s.mockClock.EXPECT().Now().Return(time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().Return("spin-1").AnyTimes()

	session, err := sessionService.New(s.ctx, &sessionService.Config{
		Repo:          sessionRepo.NewMemory(),
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.session = session

	controller, err := New(&Config{
		Session:   s.session,
		Picker:    s.mockPicker,
		Scheduler: s.scheduler,
	})
	s.Require().NoError(err)
	s.controller = controller
}

func (s *TurnControllerTestSuite) TearDownTest() {
	s.controller.Close()
	s.mockCtrl.Finish()
}

func TestTurnControllerTestSuite(t *testing.T) {
	suite.Run(t, new(TurnControllerTestSuite))
}

// enroll walks the intake phases for one player, leaving them active
func (s *TurnControllerTestSuite) enroll(role models.Role, name string) {
	s.Require().True(s.controller.ChooseRole(role).Accepted)
	s.Require().True(s.controller.SubmitName(s.ctx, name).Accepted)
}

// spinAndSettle spins at a fixed wheel index and fires the settle delay
func (s *TurnControllerTestSuite) spinAndSettle(index int) {
	s.mockPicker.EXPECT().Pick(gomock.Any()).Return(index)
	s.Require().True(s.controller.Spin(s.ctx).Accepted)
	s.Require().True(s.scheduler.Fire())
}

func (s *TurnControllerTestSuite) TestFullTurnWithKeep() {
	s.enroll(models.RoleSub, "Bailey")
	s.Require().True(s.controller.Reset().Accepted)
	s.enroll(models.RoleMaster, "Alex")

	// Index 0 of the master wheel carries 50 points and a 2-minute
	// activity
	s.spinAndSettle(0)

	snapshot := s.controller.Snapshot()
	s.Equal(PhaseDeciding, snapshot.Phase)
	s.Equal("Alex", snapshot.Spinner)
	s.Equal(50, snapshot.PointsOnOffer)
	s.Equal("spin-1", snapshot.SpinID)

	s.Require().True(s.controller.Keep(s.ctx).Accepted)

	game := s.session.Snapshot(s.ctx)
	s.Equal(50, game.Players["Alex"].Score)
	s.Equal("Bailey", game.CurrentPlayer, "keeping still hands the turn over")
	s.Require().Len(game.History, 1)
	s.Equal(50, game.History[0].PointsEarned)
	s.Equal("Alex", game.History[0].Player)

	// Two minutes tick down at one callback per second
	snapshot = s.controller.Snapshot()
	s.Equal(PhaseTimerRunning, snapshot.Phase)
	s.Equal(120, snapshot.SecondsLeft)

	s.scheduler.FireAll()
	snapshot = s.controller.Snapshot()
	s.Equal(PhaseFeedback, snapshot.Phase)
	s.Equal(0, snapshot.SecondsLeft)

	s.Require().True(s.controller.GiveFeedback(s.ctx, true).Accepted)
	s.scheduler.FireAll()

	game = s.session.Snapshot(s.ctx)
	s.Require().NotNil(game.History[0].Feedback)
	s.True(game.History[0].Feedback.IsPositive)

	snapshot = s.controller.Snapshot()
	s.Equal(PhaseWheelReady, snapshot.Phase)
	s.Empty(snapshot.Spinner)
	s.Nil(snapshot.Selected)
	s.Empty(snapshot.SpinID)
}

func (s *TurnControllerTestSuite) TestPassForfeitsPoints() {
	s.enroll(models.RoleSub, "Bailey")
	s.Require().True(s.controller.Reset().Accepted)
	s.enroll(models.RoleMaster, "Alex")

	s.spinAndSettle(0)
	s.Require().True(s.controller.Pass(s.ctx).Accepted)

	game := s.session.Snapshot(s.ctx)
	s.Equal(0, game.Players["Alex"].Score, "passing forfeits the points on offer")
	s.Equal("Bailey", game.CurrentPlayer)
	s.Len(game.History, 1, "the spin is on the record either way")
}

func (s *TurnControllerTestSuite) TestSpinWhileSpinningIsRejected() {
	s.enroll(models.RoleMaster, "Alex")

	s.mockPicker.EXPECT().Pick(gomock.Any()).Return(0)
	s.Require().True(s.controller.Spin(s.ctx).Accepted)

	result := s.controller.Spin(s.ctx)
	s.False(result.Accepted)
	s.Equal(ReasonAlreadySpinning, result.Reason)
	s.Equal(1, s.scheduler.Pending(), "the rejected spin schedules nothing")
}

func (s *TurnControllerTestSuite) TestSpinWithNoActivePlayerIsRejected() {
	s.enroll(models.RoleMaster, "Alex")

	// With no opposite-role player the handoff leaves the seat empty
	s.spinAndSettle(0)
	s.Require().True(s.controller.Pass(s.ctx).Accepted)
	s.scheduler.FireAll()
	s.Require().True(s.controller.GiveFeedback(s.ctx, false).Accepted)
	s.scheduler.FireAll()

	s.Require().Equal(PhaseWheelReady, s.controller.Snapshot().Phase)
	s.Empty(s.session.Snapshot(s.ctx).CurrentPlayer)

	result := s.controller.Spin(s.ctx)
	s.False(result.Accepted)
	s.Equal(ReasonNoActivePlayer, result.Reason)
}

func (s *TurnControllerTestSuite) TestBlankNameIsRejected() {
	s.Require().True(s.controller.ChooseRole(models.RoleMaster).Accepted)

	result := s.controller.SubmitName(s.ctx, "   ")
	s.False(result.Accepted)
	s.Equal(ReasonBlankName, result.Reason)
	s.Equal(PhaseNameEntry, s.controller.Snapshot().Phase)
	s.Empty(s.session.Snapshot(s.ctx).Players, "no player is created for a blank name")

	// The same phase accepts a valid retry
	s.True(s.controller.SubmitName(s.ctx, "Alex").Accepted)
	s.Equal(PhaseWheelReady, s.controller.Snapshot().Phase)
}

func (s *TurnControllerTestSuite) TestInvalidRoleIsRejected() {
	result := s.controller.ChooseRole(models.Role("wizard"))
	s.False(result.Accepted)
	s.Equal(ReasonInvalidRole, result.Reason)
	s.Equal(PhaseRoleSelect, s.controller.Snapshot().Phase)
}

func (s *TurnControllerTestSuite) TestDecisionIntentsNeedDecidingPhase() {
	s.enroll(models.RoleMaster, "Alex")

	keep := s.controller.Keep(s.ctx)
	s.False(keep.Accepted)
	s.Equal(ReasonWrongPhase, keep.Reason)

	pass := s.controller.Pass(s.ctx)
	s.False(pass.Accepted)
	s.Equal(ReasonWrongPhase, pass.Reason)
}

func (s *TurnControllerTestSuite) TestResetCancelsScheduledWork() {
	s.enroll(models.RoleMaster, "Alex")

	s.mockPicker.EXPECT().Pick(gomock.Any()).Return(0)
	s.Require().True(s.controller.Spin(s.ctx).Accepted)
	s.Require().Equal(1, s.scheduler.Pending())

	s.Require().True(s.controller.Reset().Accepted)

	s.Equal(0, s.scheduler.Pending())
	s.False(s.scheduler.Fire(), "a cancelled settle never lands")

	snapshot := s.controller.Snapshot()
	s.Equal(PhaseRoleSelect, snapshot.Phase)
	s.Empty(snapshot.Spinner)
	s.Nil(snapshot.Selected)

	// The session itself outlives a controller reset
	s.NotEmpty(s.session.Snapshot(s.ctx).Players)
}

func (s *TurnControllerTestSuite) TestMidTimerResetStopsTheCountdown() {
	s.enroll(models.RoleMaster, "Alex")
	s.spinAndSettle(0)
	s.Require().True(s.controller.Keep(s.ctx).Accepted)

	s.Require().True(s.scheduler.Fire())
	s.Require().Equal(119, s.controller.Snapshot().SecondsLeft)

	s.Require().True(s.controller.Reset().Accepted)
	s.Equal(0, s.scheduler.Pending())
	s.Equal(0, s.controller.Snapshot().SecondsLeft)
}

func (s *TurnControllerTestSuite) TestConstructionValidatesDependencies() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Picker: s.mockPicker, Scheduler: s.scheduler})
	s.ErrorIs(err, ErrNilSession)

	_, err = New(&Config{Session: s.session, Scheduler: s.scheduler})
	s.ErrorIs(err, ErrNilPicker)

	_, err = New(&Config{Session: s.session, Picker: s.mockPicker})
	s.ErrorIs(err, ErrNilScheduler)
}
