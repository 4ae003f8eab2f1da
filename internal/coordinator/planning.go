package coordinator

import "kore-engine/internal/model"

const (
	planningThreatCount = 3
	planningHPTrigger   = 0.30
)

// Planning reacts to compound threats with a short scripted sequence
// instead of a single action: heal first, then retreat. The plan
// drains one step per decision cycle and clears itself after the last
// step.
type Planning struct {
	base
	plan   []model.Action
	cursor int
	active bool
}

func NewPlanning() *Planning {
	return &Planning{base: base{name: "planning", priority: model.PriorityLow}}
}

func (p *Planning) ShouldActivate(state *model.GameState) bool {
	if p.active && p.cursor < len(p.plan) {
		return true
	}
	return p.needsPlan(state)
}

func (p *Planning) Decide(state *model.GameState) model.Action {
	// Never resynthesize over a live plan.
	if !p.active && p.needsPlan(state) {
		p.synthesize()
	}

	if p.active && p.cursor < len(p.plan) {
		step := p.plan[p.cursor]
		p.cursor++
		if p.cursor >= len(p.plan) {
			p.clear()
		}
		return step
	}

	return model.NewAction(model.ActionNone, "No plan active", 0.1)
}

func (p *Planning) needsPlan(state *model.GameState) bool {
	return len(state.Monsters) >= planningThreatCount && state.HPRatio() < planningHPTrigger
}

func (p *Planning) synthesize() {
	heal := model.NewAction(model.ActionItem, "Plan: Emergency heal", 0.95).
		WithParam("item", "White Potion")
	retreat := model.NewAction(model.ActionMove, "Plan: Retreat", 0.90).
		WithParam("direction", "retreat")

	p.plan = []model.Action{heal, retreat}
	p.cursor = 0
	p.active = true
}

func (p *Planning) clear() {
	p.plan = nil
	p.cursor = 0
	p.active = false
}
