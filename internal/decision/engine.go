package decision

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"kore-engine/internal/logging"
	"kore-engine/internal/model"
)

type tierSlot struct {
	tier Tier
	id   model.DecisionTier
}

// Engine walks the fixed tier chain for one character. Decisions for a
// character are serialized, so stateful tiers see one cycle at a time.
type Engine struct {
	mu    sync.Mutex
	slots []tierSlot
	stats *Stats
}

// NewEngine assembles the chain in escalation order.
func NewEngine(reflex, coordinators, rules, ml, llm Tier) *Engine {
	return &Engine{
		slots: []tierSlot{
			{reflex, model.TierReflex},
			{coordinators, model.TierCoordinators},
			{rules, model.TierRules},
			{ml, model.TierML},
			{llm, model.TierLLM},
		},
		stats: NewStats(),
	}
}

// Decide consults tiers cheapest first and adopts the first real
// action. A tier that declines its gate or returns none passes control
// downward. When the whole chain passes, the result is an explicit
// none so the caller always gets an answer.
func (e *Engine) Decide(ctx context.Context, state *model.GameState) (model.Action, model.DecisionTier, time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()
	for _, slot := range e.slots {
		if !slot.tier.ShouldHandle(state) {
			continue
		}

		action := slot.tier.Decide(ctx, state)
		if action.IsNone() {
			if logging.DebugEnabled() {
				slog.Debug("tier passed",
					"tier", slot.tier.Name(),
					"reason", action.Reason)
			}
			continue
		}

		elapsed := time.Since(start)
		e.stats.record(slot.id, elapsed)
		if logging.DebugEnabled() {
			slog.Debug("tier adopted",
				"tier", slot.tier.Name(),
				"action", string(action.Kind),
				"confidence", action.Confidence,
				"reason", action.Reason)
		}
		return action, slot.id, elapsed
	}

	// Chain exhausted. Book the idle answer under the reflex bucket so
	// the counters still sum to the total.
	elapsed := time.Since(start)
	e.stats.record(model.TierReflex, elapsed)
	return model.NewAction(model.ActionNone, "No tier required action", 0.5), model.TierReflex, elapsed
}

// Stats reports this engine's counters.
func (e *Engine) Stats() StatsSnapshot {
	return e.stats.Snapshot()
}
