package model

// DecisionTier identifies which escalation layer produced a decision.
type DecisionTier int

const (
	TierReflex       DecisionTier = iota // immediate threshold reactions
	TierCoordinators                     // tactical coordinator arbitration
	TierRules                            // rule-based fallback
	TierML                               // machine-learning proxy
	TierLLM                              // language-model strategy
)

// String returns the tier name used in logs and metrics.
func (t DecisionTier) String() string {
	switch t {
	case TierReflex:
		return "reflex"
	case TierCoordinators:
		return "coordinators"
	case TierRules:
		return "rules"
	case TierML:
		return "ml"
	case TierLLM:
		return "llm"
	default:
		return "unknown"
	}
}

// WireName returns the tier label reported to clients. Coordinator
// decisions operate at the tactical level and are reported as "rules",
// keeping the response contract to its four tier values.
func (t DecisionTier) WireName() string {
	if t == TierCoordinators {
		return TierRules.String()
	}
	return t.String()
}
