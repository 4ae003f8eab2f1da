package coordinator

import (
	"math/rand/v2"
	"strconv"

	"kore-engine/internal/model"
)

const (
	defaultStuckThreshold = 5
	navigationMaxStep     = 5
)

// Navigation watches for the character getting stuck: the same
// position across enough consecutive cycles means pathing has failed
// and an escape is due. Position tracking runs inside ShouldActivate,
// which the manager polls exactly once per decision cycle, so the
// counter update and the stuck check share one call path.
type Navigation struct {
	base
	lastPos    model.Position
	hasPos     bool
	stuckCount int
	threshold  int
}

func NewNavigation(threshold int) *Navigation {
	if threshold <= 0 {
		threshold = defaultStuckThreshold
	}
	return &Navigation{
		base:      base{name: "navigation", priority: model.PriorityLow},
		threshold: threshold,
	}
}

// ShouldActivate updates the position track, then reports whether the
// stuck threshold has been reached. The first observation only seeds.
func (n *Navigation) ShouldActivate(state *model.GameState) bool {
	pos := state.Character.Position
	switch {
	case !n.hasPos:
		n.lastPos = pos
		n.hasPos = true
	case pos.Equal(n.lastPos):
		n.stuckCount++
	default:
		n.lastPos = pos
		n.stuckCount = 0
	}
	return n.stuckCount >= n.threshold
}

// Decide escapes the stuck spot: teleport item when carried, bounded
// random walk otherwise. Either way the track resets so the escape
// gets a full threshold window to take effect.
func (n *Navigation) Decide(state *model.GameState) model.Action {
	n.stuckCount = 0
	n.hasPos = false

	if state.HasItem("Fly Wing") {
		return model.NewAction(model.ActionItem, "Stuck, teleporting away", 0.90).
			WithParam("item", "Fly Wing")
	}

	dx, dy := randomStep(), randomStep()
	for dx == 0 && dy == 0 {
		dx, dy = randomStep(), randomStep()
	}
	return model.NewAction(model.ActionMove, "Stuck, trying a random walk", 0.80).
		WithParam("direction", "random").
		WithParam("dx", strconv.Itoa(dx)).
		WithParam("dy", strconv.Itoa(dy))
}

// randomStep picks a displacement in [-navigationMaxStep, navigationMaxStep].
func randomStep() int {
	return rand.IntN(2*navigationMaxStep+1) - navigationMaxStep
}
