package decision

import (
	"context"
	"log/slog"

	"kore-engine/internal/aiservice"
	"kore-engine/internal/model"
)

// ML proxies prediction to the sidecar's ML endpoint. The tier is held
// out of the escalation path until the sidecar serves a trained model,
// but Decide is wired for when it does.
type ML struct {
	client *aiservice.Client
}

func NewML(client *aiservice.Client) *ML {
	return &ML{client: client}
}

func (m *ML) Name() string { return "ml" }

// ShouldHandle stays false until a trained model ships.
func (m *ML) ShouldHandle(state *model.GameState) bool { return false }

// Decide asks the sidecar for a prediction and degrades to none when
// the sidecar cannot answer.
func (m *ML) Decide(ctx context.Context, state *model.GameState) model.Action {
	action, err := m.client.QueryML(ctx, *state)
	if err != nil {
		slog.Debug("ml prediction failed", "err", err)
		return model.NewAction(model.ActionNone, "ML prediction unavailable", 0.1)
	}
	return action
}
