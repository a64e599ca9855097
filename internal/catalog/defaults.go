package catalog

import (
	"github.com/couplewheel/couplewheel/internal/models"
)

// DefaultMasterActivities returns the seed catalog for the master role
func DefaultMasterActivities() []models.Activity {
	return []models.Activity{
		{Text: "Truth: What's your deepest fantasy?", Duration: 2, Points: 50, Type: models.ActivityTypeTruth},
		{Text: "Dare: Give a sensual massage", Duration: 10, Points: 100, Type: models.ActivityTypeDare},
		{Text: "Truth: Describe your perfect scene", Duration: 3, Points: 75, Type: models.ActivityTypeTruth},
		{Text: "Dare: Blindfold play for 5 minutes", Duration: 5, Points: 150, Type: models.ActivityTypeDare},
		{Text: "Truth: Share your favorite position", Duration: 2, Points: 50, Type: models.ActivityTypeTruth},
		{Text: "Dare: Roleplay a fantasy", Duration: 10, Points: 200, Type: models.ActivityTypeDare},
		{Text: "Truth: Reveal a secret desire", Duration: 3, Points: 75, Type: models.ActivityTypeTruth},
		{Text: "Dare: Strip tease performance", Duration: 5, Points: 150, Type: models.ActivityTypeDare},
		{Text: "Truth: Most adventurous experience?", Duration: 3, Points: 75, Type: models.ActivityTypeTruth},
		{Text: "Dare: Ice play for 5 minutes", Duration: 5, Points: 150, Type: models.ActivityTypeDare},
	}
}

// DefaultSubActivities returns the seed catalog for the sub role
func DefaultSubActivities() []models.Activity {
	return []models.Activity{
		{Text: "Truth: What turns you on most?", Duration: 2, Points: 50, Type: models.ActivityTypeTruth},
		{Text: "Dare: Follow master's commands", Duration: 10, Points: 100, Type: models.ActivityTypeDare},
		{Text: "Truth: Share a submissive fantasy", Duration: 3, Points: 75, Type: models.ActivityTypeTruth},
		{Text: "Dare: Sensory deprivation play", Duration: 5, Points: 150, Type: models.ActivityTypeDare},
		{Text: "Truth: Favorite way to submit?", Duration: 2, Points: 50, Type: models.ActivityTypeTruth},
		{Text: "Dare: Pleasure demonstration", Duration: 5, Points: 150, Type: models.ActivityTypeDare},
		{Text: "Truth: Most intense experience?", Duration: 3, Points: 75, Type: models.ActivityTypeTruth},
		{Text: "Dare: Edge for 5 minutes", Duration: 5, Points: 150, Type: models.ActivityTypeDare},
		{Text: "Truth: Deepest submission desire?", Duration: 3, Points: 75, Type: models.ActivityTypeTruth},
		{Text: "Dare: Restraint challenge", Duration: 5, Points: 150, Type: models.ActivityTypeDare},
	}
}
