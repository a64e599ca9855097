package session

import (
	"context"

	"github.com/couplewheel/couplewheel/internal/models"
)

// Service is the session store: registered players, the active player, the
// per-role activity catalogs and the append-only spin history. Every
// successful mutation persists the full snapshot and notifies subscribers.
type Service interface {
	// RegisterPlayer creates or overwrites the player keyed by name, with a
	// zero score. Callers pre-validate names; blank names are not rejected
	// here.
	RegisterPlayer(ctx context.Context, input *RegisterPlayerInput) error

	// SetActivePlayer unconditionally sets the current player. A name not
	// yet in the player mapping is tolerated transiently.
	SetActivePlayer(ctx context.Context, input *SetActivePlayerInput) error

	// RecordSpin appends a history entry with a generated ID and returns
	// that ID so feedback can be attached later.
	RecordSpin(ctx context.Context, input *RecordSpinInput) (*RecordSpinOutput, error)

	// AttachFeedback sets the feedback on the entry with the given spin ID.
	// An unknown ID is a silent no-op; a repeated call overwrites.
	AttachFeedback(ctx context.Context, input *AttachFeedbackInput) error

	// AddActivity appends to the matching role's catalog, applying the
	// custom activity defaulting policy. No de-duplication.
	AddActivity(ctx context.Context, input *AddActivityInput) (*AddActivityOutput, error)

	// CreditScore adds points to the named player's score. An unregistered
	// name materializes a bare score-only record; callers should register
	// before crediting.
	CreditScore(ctx context.Context, input *CreditScoreInput) error

	// AdvanceTurn activates the first registered player whose role differs
	// from the current player's. With no current player it activates the
	// first registered player; with no opposing-role player it clears the
	// active player. Correct alternation is only guaranteed for two players
	// of opposing roles.
	AdvanceTurn(ctx context.Context, input *AdvanceTurnInput) (*AdvanceTurnOutput, error)

	// Snapshot returns a read-only copy of the full store state
	Snapshot(ctx context.Context) *models.SessionSnapshot

	// Subscribe registers a listener invoked after every mutation
	Subscribe(fn func())
}
