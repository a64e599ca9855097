package session

import "github.com/couplewheel/couplewheel/internal/models"

type SaveSnapshotInput struct {
	Snapshot *models.SessionSnapshot
}

type LoadSnapshotInput struct {
}
