package coordinator

import "kore-engine/internal/model"

// placeholder reserves a registry slot for a tactical domain with no
// logic yet (companions, instances, crafting, environment, job
// rotations, PvP). It never activates and its Decide answers a fixed
// all-clear, keeping arbitration order and counts stable until a real
// implementation takes the slot over.
type placeholder struct {
	base
	reason string
}

func newPlaceholder(name string, priority model.Priority, reason string) *placeholder {
	return &placeholder{
		base:   base{name: name, priority: priority},
		reason: reason,
	}
}

func (p *placeholder) ShouldActivate(state *model.GameState) bool {
	return false
}

func (p *placeholder) Decide(state *model.GameState) model.Action {
	return model.NewAction(model.ActionNone, p.reason, 0.1)
}
