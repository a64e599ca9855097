package models

// Role determines which activity catalog a player spins from
type Role string

const (
	// RoleMaster is the leading player archetype
	RoleMaster Role = "master"

	// RoleSub is the following player archetype
	RoleSub Role = "sub"
)

// IsValid reports whether the role is one of the two known archetypes
func (r Role) IsValid() bool {
	return r == RoleMaster || r == RoleSub
}

// Opposite returns the other archetype
func (r Role) Opposite() Role {
	if r == RoleMaster {
		return RoleSub
	}
	return RoleMaster
}

// Player represents a registered participant in the session.
// Names double as primary keys: registering an existing name overwrites it.
type Player struct {
	// Name is the unique identifier for the player
	Name string

	// Role is the player's chosen archetype
	Role Role

	// Score is the player's banked points
	Score int
}
