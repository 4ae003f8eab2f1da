package coordinator

import "kore-engine/internal/model"

const (
	economyWeightLimit = 0.85
	economyStackLimit  = 50
)

// Economy notices when loot piles up and sends the character to town.
// It only ever proposes movement; item-level decisions belong to the
// consumables coordinator.
type Economy struct {
	base
}

func NewEconomy() *Economy {
	return &Economy{base{name: "economy", priority: model.PriorityMedium}}
}

func (e *Economy) ShouldActivate(state *model.GameState) bool {
	return e.overweight(state) || e.inventoryFull(state)
}

func (e *Economy) Decide(state *model.GameState) model.Action {
	if e.overweight(state) {
		return model.NewAction(model.ActionMove, "Overweight, returning to storage", 0.85).
			WithParam("destination", "storage")
	}
	if e.inventoryFull(state) {
		return model.NewAction(model.ActionMove, "Inventory full, going to sell items", 0.80).
			WithParam("destination", "sell")
	}
	return model.NewAction(model.ActionNone, "Economy check passed", 0.5)
}

func (e *Economy) overweight(state *model.GameState) bool {
	return state.WeightRatio() > economyWeightLimit
}

func (e *Economy) inventoryFull(state *model.GameState) bool {
	return len(state.Inventory) > economyStackLimit
}
