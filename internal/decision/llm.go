package decision

import (
	"context"
	"log/slog"
	"time"

	"kore-engine/internal/aiservice"
	"kore-engine/internal/model"
)

// LLM is the final tier. It consults the sidecar's language model for
// strategic direction at level milestones, rate limited so repeated
// escalations cannot flood the slow backend.
type LLM struct {
	client      *aiservice.Client
	minInterval time.Duration
	lastQuery   time.Time
}

func NewLLM(client *aiservice.Client, minInterval time.Duration) *LLM {
	return &LLM{client: client, minInterval: minInterval}
}

func (l *LLM) Name() string { return "llm" }

// ShouldHandle gates on the rate limit first, then on a level
// milestone. Every tenth level from 10 up counts as one.
func (l *LLM) ShouldHandle(state *model.GameState) bool {
	if time.Since(l.lastQuery) < l.minInterval {
		return false
	}
	level := state.Character.Level
	return level%10 == 0 && level >= 10
}

// Decide queries the language model. The rate-limit clock advances on
// every attempt, failed ones included.
func (l *LLM) Decide(ctx context.Context, state *model.GameState) model.Action {
	action, err := l.client.QueryLLM(ctx, *state)
	l.lastQuery = time.Now()
	if err != nil {
		slog.Warn("llm query failed", "err", err)
		return model.NewAction(model.ActionNone, "LLM query failed, no strategic action", 0.2)
	}
	return action
}
