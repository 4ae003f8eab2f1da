package decision

import (
	"context"

	"kore-engine/internal/model"
)

// Reflex thresholds. These mirror the in-game survival margins: below
// them the character dies faster than any deliberate tier can react.
const (
	reflexHPCritical  = 0.25
	reflexHPLow       = 0.40
	reflexSPLow       = 0.20
	reflexWeightLimit = 0.90
	reflexAttackRange = 5
)

// dangerousStatuses are effects that disable the character outright.
var dangerousStatuses = []string{
	"Stunned", "Frozen", "Stone Curse", "Sleep", "Blind", "Silence",
}

// Reflex is the first tier. It handles survival emergencies with fixed
// threshold checks and no state of its own.
type Reflex struct{}

func NewReflex() *Reflex {
	return &Reflex{}
}

func (r *Reflex) Name() string { return "reflex" }

// ShouldHandle fires on any survival emergency.
func (r *Reflex) ShouldHandle(state *model.GameState) bool {
	hp := state.HPRatio()
	switch {
	case hp < reflexHPCritical:
		return true
	case state.HasAnyStatus(dangerousStatuses...):
		return true
	case state.WeightRatio() >= reflexWeightLimit:
		return true
	case state.UnderAttack(reflexAttackRange) && hp < reflexHPLow:
		return true
	case state.SPRatio() < reflexSPLow:
		return true
	}
	return false
}

// Decide runs the emergency checks in severity order and acts on the
// first one that matches.
func (r *Reflex) Decide(ctx context.Context, state *model.GameState) model.Action {
	hp := state.HPRatio()

	if hp < reflexHPCritical && state.HasItem("White Potion") {
		return model.NewAction(model.ActionItem, "HP critical (<25%), emergency healing", 0.95).
			WithParam("item", "White Potion")
	}

	if state.HasAnyStatus(dangerousStatuses...) && state.HasItem("Green Potion") {
		return model.NewAction(model.ActionItem, "Dangerous status effect detected", 0.95).
			WithParam("item", "Green Potion")
	}

	if (hp < reflexHPCritical || (hp < reflexHPLow && state.UnderAttack(reflexAttackRange))) &&
		state.HasItem("Red Potion") {
		return model.NewAction(model.ActionItem, "Low HP while under attack", 0.95).
			WithParam("item", "Red Potion")
	}

	if state.WeightRatio() >= reflexWeightLimit {
		return model.NewAction(model.ActionCommand, "Overweight, need to store items", 0.95).
			WithParam("command", "storage")
	}

	if state.SPRatio() < reflexSPLow && state.HasItem("Blue Potion") {
		return model.NewAction(model.ActionItem, "SP critically low", 0.95).
			WithParam("item", "Blue Potion")
	}

	return model.NewAction(model.ActionNone, "No emergency detected", 0.5)
}
