package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/couplewheel/couplewheel/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndLoadSnapshot() {
	snapshot := &models.SessionSnapshot{
		Players: map[string]*models.Player{
			"Alex": {Name: "Alex", Role: models.RoleMaster, Score: 150},
			"Sam":  {Name: "Sam", Role: models.RoleSub, Score: 75},
		},
		CurrentPlayer: "Sam",
		PlayerOrder:   []string{"Alex", "Sam"},
		MasterActivities: []models.Activity{
			{Text: "Truth: test", Duration: 2, Points: 50, Type: models.ActivityTypeTruth},
		},
		SubActivities: []models.Activity{
			{Text: "Dare: test", Duration: 5, Points: 150, Type: models.ActivityTypeDare},
		},
		History: []*models.HistoryEntry{
			{
				ID:           "spin-1",
				Player:       "Alex",
				Activity:     models.Activity{Text: "Truth: test", Duration: 2, Points: 50, Type: models.ActivityTypeTruth},
				Timestamp:    s.testNow,
				PointsEarned: 50,
				Feedback:     &models.Feedback{IsPositive: true, Timestamp: s.testNow},
			},
		},
	}

	err := s.repo.SaveSnapshot(context.Background(), &SaveSnapshotInput{
		Snapshot: snapshot,
	})
	s.Require().NoError(err)

	restored, err := s.repo.LoadSnapshot(context.Background(), &LoadSnapshotInput{})
	s.Require().NoError(err)
	s.Require().NotNil(restored)

	s.Equal("Sam", restored.CurrentPlayer)
	s.Equal([]string{"Alex", "Sam"}, restored.PlayerOrder)
	s.Len(restored.Players, 2)
	s.Equal(150, restored.Players["Alex"].Score)
	s.Equal(models.RoleSub, restored.Players["Sam"].Role)
	s.Len(restored.History, 1)
	s.Equal("spin-1", restored.History[0].ID)
	s.Require().NotNil(restored.History[0].Feedback)
	s.True(restored.History[0].Feedback.IsPositive)
	s.Equal(s.testNow.Unix(), restored.History[0].Timestamp.Unix())
}

func (s *RedisRepositoryTestSuite) TestLoadSnapshotNotFound() {
	_, err := s.repo.LoadSnapshot(context.Background(), &LoadSnapshotInput{})
	s.Require().ErrorIs(err, ErrSnapshotNotFound)
}

func (s *RedisRepositoryTestSuite) TestSaveOverwritesPreviousSnapshot() {
	first := &models.SessionSnapshot{CurrentPlayer: "Alex"}
	second := &models.SessionSnapshot{CurrentPlayer: "Sam"}

	s.Require().NoError(s.repo.SaveSnapshot(context.Background(), &SaveSnapshotInput{Snapshot: first}))
	s.Require().NoError(s.repo.SaveSnapshot(context.Background(), &SaveSnapshotInput{Snapshot: second}))

	restored, err := s.repo.LoadSnapshot(context.Background(), &LoadSnapshotInput{})
	s.Require().NoError(err)
	s.Equal("Sam", restored.CurrentPlayer)
}

func (s *RedisRepositoryTestSuite) TestSaveSnapshotNilInput() {
	s.Error(s.repo.SaveSnapshot(context.Background(), nil))
	s.Error(s.repo.SaveSnapshot(context.Background(), &SaveSnapshotInput{}))
}
