package integration

import (
	"kore-engine/internal/model"
	"kore-engine/internal/testutil"
)

// Multiple monsters in melee range should produce the AOE pick, and the
// coordinator decision must surface as "rules" on the wire.
func (s *EngineSuite) TestSwarmTriggersAOE() {
	state := calmState()
	state.Monsters = []model.Monster{
		testutil.Aggressor("m1", "Wolf", 2),
		testutil.Aggressor("m2", "Wolf", 3),
		testutil.Aggressor("m3", "Wolf", 4),
	}

	reply := s.decide(state)
	s.Equal("skill", reply.Action.Type)
	s.Equal("Magnum Break", reply.Action.Parameters["skill"])
	s.Equal("self", reply.Action.Parameters["target_area"])
	s.Equal("rules", reply.TierUsed)
}

// The shopping dialogue advances one state per request and lands back
// at the start after the purchase.
func (s *EngineSuite) TestDialogueWalkAcrossRequests() {
	state := testutil.State()
	state.Inventory = []model.Item{testutil.Stack("Red Potion", 3)}

	steps := []struct {
		wantType  string
		wantParam string
		wantValue string
	}{
		{"talk", "npc", "Tool Dealer"},
		{"talk_continue", "", ""},
		{"talk_response", "option", "buy"},
		{"buy", "item", "Red Potion"},
	}

	var buy decideReply
	for i, step := range steps {
		reply := s.decide(state)
		s.Equalf(step.wantType, reply.Action.Type, "step %d", i+1)
		s.Equal("rules", reply.TierUsed)
		if step.wantParam != "" {
			s.Equalf(step.wantValue, reply.Action.Parameters[step.wantParam], "step %d", i+1)
		}
		buy = reply
	}

	// Restock 3 -> 20: buy 17.
	s.Equal("17", buy.Action.Parameters["amount"])

	s.Equal("talk", s.decide(state).Action.Type, "dialogue restarts after the purchase")
}

// Standing still long enough flips the navigation coordinator into its
// escape move.
func (s *EngineSuite) TestStuckEscapeAfterRepeats() {
	state := calmState()
	state.Inventory = append(state.Inventory, testutil.Stack("Fly Wing", 5))

	// Seed plus the build-up to the stuck threshold.
	for i := range 5 {
		reply := s.decide(state)
		s.Equalf("none", reply.Action.Type, "cycle %d should still be calm", i+1)
	}

	escape := s.decide(state)
	s.Equal("item", escape.Action.Type)
	s.Equal("Fly Wing", escape.Action.Parameters["item"])
	s.Equal("rules", escape.TierUsed)
}

// Per-character sessions keep stuck counters apart.
func (s *EngineSuite) TestSessionsIsolateStuckCounters() {
	mkState := func(name string) *model.GameState {
		state := calmState()
		state.Character.Name = name
		state.Inventory = append(state.Inventory, testutil.Stack("Fly Wing", 5))
		return state
	}

	for range 5 {
		s.decide(mkState("Stucka"))
	}
	escape := s.decide(mkState("Stucka"))
	s.Equal("item", escape.Action.Type)

	fresh := s.decide(mkState("Wanderer"))
	s.Equalf("none", fresh.Action.Type, "second character inherited a stuck counter: %+v", fresh.Action)
}
