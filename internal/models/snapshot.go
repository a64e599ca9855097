package models

// SessionSnapshot is the full serialized shape of the session store. It is
// written whole on every mutation and restored verbatim on startup; there is
// no migration or versioning logic.
type SessionSnapshot struct {
	// Players maps name to player record
	Players map[string]*Player

	// CurrentPlayer is the name of the active player, empty before the
	// first role assignment
	CurrentPlayer string

	// PlayerOrder preserves registration order, which AdvanceTurn scans
	PlayerOrder []string

	// MasterActivities is the master role's catalog
	MasterActivities []Activity

	// SubActivities is the sub role's catalog
	SubActivities []Activity

	// History is the append-only spin history
	History []*HistoryEntry
}

// MissionSnapshot is the full serialized shape of the mission store.
type MissionSnapshot struct {
	// Missions holds every mission, expired ones included
	Missions []*Mission

	// CompletedMissions is the set of mission IDs whose reward was claimed
	CompletedMissions []string

	// Points is the mission points balance, distinct from player scores
	Points int
}
