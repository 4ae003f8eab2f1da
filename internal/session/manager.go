// Package session tracks one decision engine per controlled character,
// so each character's stateful coordinators and rate limits never bleed
// into another's.
package session

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"kore-engine/internal/aiservice"
	"kore-engine/internal/config"
	"kore-engine/internal/coordinator"
	"kore-engine/internal/decision"
)

// DefaultCharacter keys requests that arrive without a character name.
const DefaultCharacter = "default"

// Manager hands out engines keyed by character name. Engines are built
// on first sight of a character and live for the process. The sidecar
// client is shared: it is stateless and pools connections.
type Manager struct {
	cfg     config.Engine
	client  *aiservice.Client
	engines sync.Map // character name -> *decision.Engine
	count   atomic.Int64
}

func NewManager(cfg config.Engine) *Manager {
	return &Manager{
		cfg:    cfg,
		client: aiservice.NewClient(cfg),
	}
}

// Get returns the character's engine, building it on first use.
func (m *Manager) Get(character string) *decision.Engine {
	if character == "" {
		character = DefaultCharacter
	}
	if e, ok := m.engines.Load(character); ok {
		return e.(*decision.Engine)
	}

	actual, loaded := m.engines.LoadOrStore(character, m.build())
	if !loaded {
		m.count.Add(1)
		slog.Info("session started", "character", character)
	}
	return actual.(*decision.Engine)
}

func (m *Manager) build() *decision.Engine {
	return decision.NewEngine(
		decision.NewReflex(),
		coordinator.NewManager(m.cfg),
		decision.NewRules(),
		decision.NewML(m.client),
		decision.NewLLM(m.client, m.cfg.LLMMinInterval),
	)
}

// Ping checks the sidecar over the shared client.
func (m *Manager) Ping(ctx context.Context) error {
	return m.client.Health(ctx)
}

// Count reports how many character sessions exist.
func (m *Manager) Count() int {
	return int(m.count.Load())
}

// Stats merges every session's counters into one process-wide view.
func (m *Manager) Stats() decision.StatsSnapshot {
	var merged decision.StatsSnapshot
	m.engines.Range(func(_, v any) bool {
		merged = merged.Merge(v.(*decision.Engine).Stats())
		return true
	})
	return merged
}
