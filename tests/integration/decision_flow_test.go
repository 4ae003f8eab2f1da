package integration

import (
	"encoding/json"
	"net/http"

	"kore-engine/internal/model"
	"kore-engine/internal/server"
	"kore-engine/internal/testutil"
)

// An HP emergency must resolve in the reflex tier before anything
// tactical gets a look.
func (s *EngineSuite) TestEmergencyHealShortCircuits() {
	state := calmState()
	state.Character.HP = 18
	state.Inventory = append(state.Inventory, testutil.Stack("White Potion", 2))
	state.Monsters = []model.Monster{testutil.Aggressor("m1", "Wolf", 3)}

	reply := s.decide(state)
	s.Equal("item", reply.Action.Type)
	s.Equal("White Potion", reply.Action.Parameters["item"])
	s.Equal("reflex", reply.TierUsed)
	s.InDelta(0.95, reply.Action.Confidence, 1e-9)
}

// A calm snapshot walks the whole chain and comes back as an explicit
// pass, attributed to the reflex bucket.
func (s *EngineSuite) TestCalmSnapshotFallsThrough() {
	reply := s.decide(calmState())
	s.Equal("none", reply.Action.Type)
	s.Equal("No tier required action", reply.Action.Reason)
	s.Equal("reflex", reply.TierUsed)
}

// A level milestone escalates to the language model, and the rate limit
// swallows an immediate second consult.
func (s *EngineSuite) TestMilestoneConsultsLLMOnce() {
	state := calmState()
	state.Character.Level = 30

	first := s.decide(state)
	s.Equal("move", first.Action.Type)
	s.Equal("gef_fild10", first.Action.Parameters["destination"])
	s.Equal("llm", first.TierUsed)
	s.EqualValues(1, s.llmCalls.Load())

	second := s.decide(state)
	s.Equal("none", second.Action.Type)
	s.Equal("reflex", second.TierUsed)
	s.EqualValues(1, s.llmCalls.Load(), "rate limit must hold the second consult")
}

func (s *EngineSuite) TestMetricsTrackTierUsage() {
	emergency := calmState()
	emergency.Character.HP = 18
	emergency.Inventory = append(emergency.Inventory, testutil.Stack("White Potion", 2))
	s.decide(emergency)

	combat := calmState()
	combat.Monsters = []model.Monster{testutil.Aggressor("m1", "Wolf", 4)}
	s.decide(combat)

	s.decide(calmState())

	resp, err := http.Get(s.api.URL + "/api/v1/metrics")
	s.Require().NoError(err)
	defer resp.Body.Close()

	var metrics struct {
		RequestsTotal  uint64 `json:"requests_total"`
		RequestsByTier struct {
			Reflex       uint64 `json:"reflex"`
			Coordinators uint64 `json:"coordinators"`
			Rules        uint64 `json:"rules"`
			ML           uint64 `json:"ml"`
			LLM          uint64 `json:"llm"`
		} `json:"requests_by_tier"`
		AvgLatencyMS float64 `json:"avg_latency_ms"`
	}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&metrics))

	s.EqualValues(3, metrics.RequestsTotal)
	s.EqualValues(2, metrics.RequestsByTier.Reflex, "one emergency plus one idle fallback")
	s.EqualValues(1, metrics.RequestsByTier.Coordinators)
	s.GreaterOrEqual(metrics.AvgLatencyMS, 0.0)
}

func (s *EngineSuite) TestHealthSurface() {
	resp, err := http.Get(s.api.URL + "/api/v1/health")
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var health struct {
		Status     string          `json:"status"`
		Components map[string]bool `json:"components"`
		Version    string          `json:"version"`
	}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&health))

	s.Equal("healthy", health.Status)
	s.Equal(server.Version, health.Version)
	s.True(health.Components["coordinator_framework"])
	s.False(health.Components["ml_tier"])
}
