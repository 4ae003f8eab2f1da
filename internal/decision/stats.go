package decision

import (
	"sync"
	"time"

	"kore-engine/internal/model"
)

// Stats accumulates decision counters for one engine. Every decision
// lands in exactly one tier bucket, so the buckets always sum to the
// total.
type Stats struct {
	mu         sync.Mutex
	total      uint64
	byTier     [model.TierLLM + 1]uint64
	avgLatency float64 // milliseconds
}

func NewStats() *Stats {
	return &Stats{}
}

func (s *Stats) record(tier model.DecisionTier, elapsed time.Duration) {
	ms := float64(elapsed.Microseconds()) / 1000.0

	s.mu.Lock()
	defer s.mu.Unlock()
	s.total++
	s.byTier[tier]++
	s.avgLatency = (s.avgLatency*float64(s.total-1) + ms) / float64(s.total)
}

// TierCounts is the per-tier request breakdown exposed over the metrics
// endpoint.
type TierCounts struct {
	Reflex       uint64 `json:"reflex"`
	Coordinators uint64 `json:"coordinators"`
	Rules        uint64 `json:"rules"`
	ML           uint64 `json:"ml"`
	LLM          uint64 `json:"llm"`
}

// StatsSnapshot is a point-in-time copy of the counters, safe to hold
// and serialize after the engine moves on.
type StatsSnapshot struct {
	RequestsTotal  uint64     `json:"requests_total"`
	RequestsByTier TierCounts `json:"requests_by_tier"`
	AvgLatencyMS   float64    `json:"avg_latency_ms"`
}

// Snapshot copies the current counters.
func (s *Stats) Snapshot() StatsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return StatsSnapshot{
		RequestsTotal: s.total,
		RequestsByTier: TierCounts{
			Reflex:       s.byTier[model.TierReflex],
			Coordinators: s.byTier[model.TierCoordinators],
			Rules:        s.byTier[model.TierRules],
			ML:           s.byTier[model.TierML],
			LLM:          s.byTier[model.TierLLM],
		},
		AvgLatencyMS: s.avgLatency,
	}
}

// Merge combines two snapshots. The latency average is weighted by each
// side's request count so merging preserves the true mean.
func (s StatsSnapshot) Merge(other StatsSnapshot) StatsSnapshot {
	merged := StatsSnapshot{
		RequestsTotal: s.RequestsTotal + other.RequestsTotal,
		RequestsByTier: TierCounts{
			Reflex:       s.RequestsByTier.Reflex + other.RequestsByTier.Reflex,
			Coordinators: s.RequestsByTier.Coordinators + other.RequestsByTier.Coordinators,
			Rules:        s.RequestsByTier.Rules + other.RequestsByTier.Rules,
			ML:           s.RequestsByTier.ML + other.RequestsByTier.ML,
			LLM:          s.RequestsByTier.LLM + other.RequestsByTier.LLM,
		},
	}
	if merged.RequestsTotal > 0 {
		weighted := s.AvgLatencyMS*float64(s.RequestsTotal) + other.AvgLatencyMS*float64(other.RequestsTotal)
		merged.AvgLatencyMS = weighted / float64(merged.RequestsTotal)
	}
	return merged
}
