package coordinator

import (
	"fmt"

	"kore-engine/internal/model"
)

const socialInteractRange = 10

// Social keeps an eye on nearby players without ever initiating
// contact on its own. Its observations stay none-kind so arbitration
// discards them; the awareness only surfaces in debug logs.
type Social struct {
	base
}

func NewSocial() *Social {
	return &Social{base{name: "social", priority: model.PriorityLow}}
}

func (s *Social) ShouldActivate(state *model.GameState) bool {
	if len(state.NearbyPlayers) == 0 {
		return false
	}
	// Combat takes precedence over socializing.
	if len(state.Monsters) > 0 && (state.HPRatio() < 0.8 || len(state.Monsters) > 2) {
		return false
	}
	for _, p := range state.NearbyPlayers {
		if p.Distance <= socialInteractRange {
			return true
		}
	}
	return false
}

func (s *Social) Decide(state *model.GameState) model.Action {
	closest := -1
	for i, p := range state.NearbyPlayers {
		if p.Distance > socialInteractRange {
			continue
		}
		if closest < 0 || p.Distance < state.NearbyPlayers[closest].Distance {
			closest = i
		}
	}

	if closest < 0 {
		return model.NewAction(model.ActionNone, "No nearby players for social interaction", 0.1)
	}

	p := state.NearbyPlayers[closest]
	reason := fmt.Sprintf("Monitoring social interactions with %s (distance: %d cells)", p.Name, p.Distance)
	return model.NewAction(model.ActionNone, reason, 0.3)
}
