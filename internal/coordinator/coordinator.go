// Package coordinator implements the tactical modules consulted by the
// coordinators tier and the arbitration across them. Each coordinator
// owns one domain (combat, economy, navigation, ...), activates
// independently, and competes by fixed priority plus per-decision
// confidence.
package coordinator

import "kore-engine/internal/model"

// Coordinator is one independently-activating tactical module.
// ShouldActivate is polled once per decision cycle; Decide is only
// called on activation but must stay total over any snapshot.
type Coordinator interface {
	Name() string
	Priority() model.Priority
	ShouldActivate(state *model.GameState) bool
	Decide(state *model.GameState) model.Action
}

// base carries the fixed identity every coordinator shares.
type base struct {
	name     string
	priority model.Priority
}

func (b base) Name() string             { return b.name }
func (b base) Priority() model.Priority { return b.priority }
