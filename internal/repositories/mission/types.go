package mission

import "github.com/couplewheel/couplewheel/internal/models"

type SaveSnapshotInput struct {
	Snapshot *models.MissionSnapshot
}

type LoadSnapshotInput struct {
}
