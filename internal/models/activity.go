package models

// ActivityType classifies an activity
type ActivityType string

const (
	// ActivityTypeTruth is a question the player answers
	ActivityTypeTruth ActivityType = "truth"

	// ActivityTypeDare is a task the player performs
	ActivityTypeDare ActivityType = "dare"
)

// Activity is one wheel segment. Activities are immutable once created;
// catalogs only grow by append.
type Activity struct {
	// Text is the prompt shown to the player
	Text string

	// Duration is how long the activity runs, in minutes
	Duration int

	// Points is the amount on offer for completing the activity
	Points int

	// Type classifies the activity
	Type ActivityType
}
