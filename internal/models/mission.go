package models

import (
	"time"
)

// MissionType determines a mission's reset cadence
type MissionType string

const (
	// MissionTypeDaily missions expire at the next local midnight
	MissionTypeDaily MissionType = "daily"

	// MissionTypeWeekly missions expire seven days after generation
	MissionTypeWeekly MissionType = "weekly"
)

// Mission is one entry in the progress-and-reward ledger. Missions are
// independent of per-player scores; rewards credit the store-level points
// balance.
type Mission struct {
	// ID is the unique identifier for the mission
	ID string

	// Title is the short display name
	Title string

	// Description explains what the mission asks for
	Description string

	// Type is the reset cadence
	Type MissionType

	// Requirement is the progress target
	Requirement int

	// Progress is the current count, always in [0, Requirement]
	Progress int

	// Reward is the points credited on completion
	Reward int

	// Multiplier scales the mission's payout tier
	Multiplier float64

	// Completed flips exactly when Progress reaches Requirement
	Completed bool

	// ExpiresAt hides the mission from the active listing once passed
	ExpiresAt time.Time
}

// Expired reports whether the mission should be hidden at the given instant
func (m *Mission) Expired(now time.Time) bool {
	return m.ExpiresAt.Before(now)
}
