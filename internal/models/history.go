package models

import (
	"time"
)

// Feedback is the player's reaction to a completed spin
type Feedback struct {
	// IsPositive is the player's verdict
	IsPositive bool

	// Timestamp is when the feedback was given
	Timestamp time.Time
}

// HistoryEntry records one completed spin. Entries are appended in order and
// never reordered or deleted; the only mutation after creation is the single
// feedback attachment, which overwrites on repeat.
type HistoryEntry struct {
	// ID is the unique identifier for the spin
	ID string

	// Player is the name of the player who spun (weak reference)
	Player string

	// Activity is a copy of the activity the wheel landed on
	Activity Activity

	// Timestamp is when the spin settled
	Timestamp time.Time

	// PointsEarned is the points offered by the activity at spin time
	PointsEarned int

	// Feedback is attached at most once, strictly after creation
	Feedback *Feedback
}
