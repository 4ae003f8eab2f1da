package model

// ActionKind tags an Action with its command type on the wire.
type ActionKind string

// The closed set of action kinds the engine can emit.
const (
	ActionNone         ActionKind = "none" // decline sentinel, never a real recommendation
	ActionAttack       ActionKind = "attack"
	ActionSkill        ActionKind = "skill"
	ActionItem         ActionKind = "item"
	ActionDropItem     ActionKind = "drop_item"
	ActionMove         ActionKind = "move"
	ActionCommand      ActionKind = "command"
	ActionTalk         ActionKind = "talk"
	ActionTalkContinue ActionKind = "talk_continue"
	ActionTalkResponse ActionKind = "talk_response"
	ActionTalkCancel   ActionKind = "talk_cancel"
	ActionBuy          ActionKind = "buy"
	ActionSell         ActionKind = "sell"
	ActionAddStat      ActionKind = "add_stat"
	ActionAddSkill     ActionKind = "add_skill"
	ActionJobChange    ActionKind = "job_change"
)

// Action is a single executable command for the game client, together
// with the reasoning and confidence of whichever decision layer produced
// it. Confidence lies in [0,1].
type Action struct {
	Kind       ActionKind        `json:"type"`
	Params     map[string]string `json:"parameters"`
	Reason     string            `json:"reason"`
	Confidence float64           `json:"confidence"`
}

// NewAction builds an action with an empty parameter map.
func NewAction(kind ActionKind, reason string, confidence float64) Action {
	return Action{
		Kind:       kind,
		Params:     make(map[string]string),
		Reason:     reason,
		Confidence: confidence,
	}
}

// WithParam sets one parameter and returns the action for chaining.
func (a Action) WithParam(key, value string) Action {
	if a.Params == nil {
		a.Params = make(map[string]string)
	}
	a.Params[key] = value
	return a
}

// IsNone reports whether this action is the decline sentinel.
func (a Action) IsNone() bool {
	return a.Kind == ActionNone
}
