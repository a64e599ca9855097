package mission

import (
	"time"

	"github.com/couplewheel/couplewheel/internal/models"
)

// template is a mission definition before it gets an ID and progress
type template struct {
	Title       string
	Description string
	Type        models.MissionType
	Requirement int
	Reward      int
	Multiplier  float64
	ExpiresAt   time.Time
}

// dailyTemplates returns the fixed daily mission set, expiring at the next
// local midnight
func dailyTemplates(now time.Time) []template {
	expiry := nextMidnight(now)

	return []template{
		{
			Title:       "Quick Spins",
			Description: "Spin the wheel 5 times",
			Type:        models.MissionTypeDaily,
			Requirement: 5,
			Reward:      100,
			Multiplier:  1,
			ExpiresAt:   expiry,
		},
		{
			Title:       "Lucky Streak",
			Description: "Land on the same color 3 times",
			Type:        models.MissionTypeDaily,
			Requirement: 3,
			Reward:      150,
			Multiplier:  1.5,
			ExpiresAt:   expiry,
		},
	}
}

// weeklyTemplates returns the fixed weekly mission set, expiring seven days
// out
func weeklyTemplates(now time.Time) []template {
	return []template{
		{
			Title:       "Master Spinner",
			Description: "Accumulate 1000 points",
			Type:        models.MissionTypeWeekly,
			Requirement: 1000,
			Reward:      500,
			Multiplier:  2,
			ExpiresAt:   now.AddDate(0, 0, 7),
		},
	}
}

// nextMidnight returns the first instant of the next day in now's location
func nextMidnight(now time.Time) time.Time {
	year, month, day := now.Date()
	return time.Date(year, month, day+1, 0, 0, 0, 0, now.Location())
}
