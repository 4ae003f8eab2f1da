package coordinator

import "kore-engine/internal/model"

const (
	consumHPEmergency = 0.25
	consumHPWarning   = 0.50
	consumSPEmergency = 0.15
	consumSPWarning   = 0.30
	consumWeightDrop  = 0.90
)

// Item preference lists, strongest first.
var (
	hpEmergencyItems = []string{"White Potion", "Yellow Potion", "Red Potion"}
	hpWarningItems   = []string{"Yellow Potion", "Red Potion"}
	spEmergencyItems = []string{"Blue Potion", "Grape Juice"}
)

// Consumables keeps potions flowing outside of true emergencies. The
// cascade is ordered HP before SP before weight: each band picks the
// first carried item from its preference list and falls through when
// nothing is in the bag.
type Consumables struct {
	base
}

func NewConsumables() *Consumables {
	return &Consumables{base{name: "consumables", priority: model.PriorityMedium}}
}

func (c *Consumables) ShouldActivate(state *model.GameState) bool {
	return state.HPRatio() < consumHPWarning ||
		state.SPRatio() < consumSPWarning ||
		state.WeightRatio() >= consumWeightDrop
}

func (c *Consumables) Decide(state *model.GameState) model.Action {
	if state.HPRatio() < consumHPEmergency {
		if item, ok := state.FirstItem(hpEmergencyItems...); ok {
			return model.NewAction(model.ActionItem, "HP emergency, using strongest potion", 0.95).
				WithParam("item", item)
		}
	}

	if state.HPRatio() < consumHPWarning {
		if item, ok := state.FirstItem(hpWarningItems...); ok {
			return model.NewAction(model.ActionItem, "HP low, topping up", 0.85).
				WithParam("item", item)
		}
	}

	if state.SPRatio() < consumSPEmergency {
		if item, ok := state.FirstItem(spEmergencyItems...); ok {
			return model.NewAction(model.ActionItem, "SP emergency, restoring", 0.90).
				WithParam("item", item)
		}
	}

	if state.SPRatio() < consumSPWarning && state.HasItem("Grape Juice") {
		return model.NewAction(model.ActionItem, "SP low, drinking juice", 0.75).
			WithParam("item", "Grape Juice")
	}

	if state.WeightRatio() >= consumWeightDrop {
		for _, item := range state.Inventory {
			if item.Type == "etc" && item.Amount > 0 {
				return model.NewAction(model.ActionDropItem, "Overweight, dropping loot", 0.70).
					WithParam("item", item.Name).
					WithParam("amount", "1")
			}
		}
	}

	return model.NewAction(model.ActionNone, "No usable consumable", 0.3)
}
