package decision

import (
	"context"
	"fmt"

	"kore-engine/internal/model"
)

const (
	rulesHPHeal            = 0.60
	rulesSPSkill           = 0.30
	rulesMaxAttackDistance = 15
	rulesSkillRange        = 10
	rulesSafeDistance      = 8
	rulesRetreatCount      = 3
)

// Rules is the tactical fallback tier. It covers the common hunting
// loop with fixed heuristics: top up HP, pick a target, back off when
// surrounded.
type Rules struct{}

func NewRules() *Rules {
	return &Rules{}
}

func (r *Rules) Name() string { return "rules" }

// ShouldHandle fires when there is anything tactical to do: monsters on
// screen, or HP in the healing band between the reflex emergency line
// and comfortable.
func (r *Rules) ShouldHandle(state *model.GameState) bool {
	return len(state.Monsters) > 0 || r.inHealingBand(state)
}

// Decide checks healing, then combat, then positioning.
func (r *Rules) Decide(ctx context.Context, state *model.GameState) model.Action {
	if r.inHealingBand(state) {
		return model.NewAction(model.ActionItem, "HP below 60%, healing", 0.75).
			WithParam("item", "Red Potion")
	}

	if r.shouldAttack(state) {
		return r.decideCombat(state)
	}

	if n := state.AggressorsWithin(rulesSafeDistance); n > 0 {
		if n >= rulesRetreatCount {
			return model.NewAction(model.ActionMove, "Too many aggressive monsters, retreating", 0.7).
				WithParam("direction", "away")
		}
		return model.NewAction(model.ActionNone, "Position is safe", 0.7)
	}

	return model.NewAction(model.ActionNone, "No tactical action required", 0.6)
}

func (r *Rules) decideCombat(state *model.GameState) model.Action {
	target, ok := state.NearestMonster(rulesMaxAttackDistance, true)
	if !ok {
		return model.NewAction(model.ActionNone, "No valid target found", 0.8)
	}

	if state.SPRatio() > rulesSPSkill && target.Distance <= rulesSkillRange {
		return model.NewAction(model.ActionSkill, fmt.Sprintf("Using skill attack on %s", target.Name), 0.8).
			WithParam("skill", "Bash").
			WithParam("target", target.ID)
	}

	return model.NewAction(model.ActionAttack, fmt.Sprintf("Basic attack on %s", target.Name), 0.8).
		WithParam("target", target.ID)
}

func (r *Rules) shouldAttack(state *model.GameState) bool {
	if len(state.Monsters) == 0 || state.HPRatio() < reflexHPLow {
		return false
	}
	return state.MonstersWithin(rulesMaxAttackDistance) > 0
}

// inHealingBand reports HP low enough to heal but above the emergency
// line the reflex tier owns.
func (r *Rules) inHealingBand(state *model.GameState) bool {
	hp := state.HPRatio()
	return hp > reflexHPCritical && hp < rulesHPHeal
}
