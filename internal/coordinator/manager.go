package coordinator

import (
	"context"
	"log/slog"

	"kore-engine/internal/config"
	"kore-engine/internal/logging"
	"kore-engine/internal/model"
)

// Manager holds the ordered coordinator registry and arbitrates among
// the active ones. Registration order is fixed at construction and
// doubles as the final arbitration tie-break, so it must not change
// between releases without a migration note.
type Manager struct {
	coordinators []Coordinator
}

// NewManager builds the full 14-slot registry. Placeholder slots stay
// registered even though they never activate: arbitration order and
// coordinator counts hold steady as real logic lands in them.
func NewManager(cfg config.Engine) *Manager {
	return &Manager{
		coordinators: []Coordinator{
			NewCombat(),
			NewEconomy(),
			NewNavigation(cfg.StuckThreshold),
			NewNPC(cfg.ResupplyFloor),
			NewPlanning(),
			NewSocial(),
			NewConsumables(),
			NewProgression(),
			newPlaceholder("companions", model.PriorityLow, "Companions OK"),
			newPlaceholder("instances", model.PriorityMedium, "No instances active"),
			newPlaceholder("crafting", model.PriorityLow, "No crafting opportunities"),
			newPlaceholder("environment", model.PriorityLow, "Normal conditions"),
			newPlaceholder("jobspecific", model.PriorityMedium, "No class-specific action"),
			newPlaceholder("pvp", model.PriorityHigh, "Not in PvP zone"),
		},
	}
}

// Name implements the tier contract for the escalation chain.
func (m *Manager) Name() string { return "coordinators" }

// ShouldHandle is constant true: activation is gated per coordinator
// inside Decide. Running the poll there keeps each stateful
// coordinator ticking exactly once per decision cycle.
func (m *Manager) ShouldHandle(state *model.GameState) bool { return true }

// Decide polls every coordinator once and arbitrates among the active
// recommendations: lowest priority value wins, ties go to the higher
// confidence, remaining ties to the earlier registration.
func (m *Manager) Decide(ctx context.Context, state *model.GameState) model.Action {
	var (
		winner  Coordinator
		winning model.Action
	)

	for _, c := range m.coordinators {
		if !c.ShouldActivate(state) {
			continue
		}
		action := c.Decide(state)
		if action.IsNone() {
			continue
		}
		if logging.DebugEnabled() {
			slog.Debug("coordinator recommends",
				"coordinator", c.Name(),
				"action", string(action.Kind),
				"confidence", action.Confidence)
		}
		if winner == nil || beats(c, action, winner, winning) {
			winner, winning = c, action
		}
	}

	if winner == nil {
		return model.NewAction(model.ActionNone, "No coordinator recommendations", 0.5)
	}

	if logging.DebugEnabled() {
		slog.Debug("coordinator selected",
			"coordinator", winner.Name(),
			"priority", winner.Priority().String(),
			"action", string(winning.Kind),
			"confidence", winning.Confidence)
	}
	return winning
}

// beats reports whether the candidate strictly outranks the incumbent.
// Equal priority and confidence keep the incumbent.
func beats(c Coordinator, a model.Action, inc Coordinator, incA model.Action) bool {
	if c.Priority() != inc.Priority() {
		return c.Priority() < inc.Priority()
	}
	return a.Confidence > incA.Confidence
}
