// Package decision implements the escalation chain that turns a game
// state snapshot into exactly one action. Tiers are consulted cheapest
// first and the chain stops at the first tier that produces a real
// action, so the expensive ML and LLM backends only see traffic the
// local tiers could not handle.
package decision

import (
	"context"

	"kore-engine/internal/model"
)

// Tier is one level of the escalation chain.
type Tier interface {
	// Name identifies the tier in logs.
	Name() string

	// ShouldHandle is a cheap gate checked before Decide. A tier that
	// returns false is skipped for this cycle.
	ShouldHandle(state *model.GameState) bool

	// Decide produces the tier's recommendation. A none action means
	// the tier inspected the state and passes, letting escalation
	// continue downward.
	Decide(ctx context.Context, state *model.GameState) model.Action
}
