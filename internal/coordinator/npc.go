package coordinator

import (
	"strconv"

	"kore-engine/internal/model"
)

// DialogueState tracks where an NPC conversation stands.
type DialogueState int

const (
	DialogueIdle DialogueState = iota
	DialogueTalking
	DialogueMenu
	DialogueBuying
	DialogueSelling
)

func (s DialogueState) String() string {
	switch s {
	case DialogueIdle:
		return "IDLE"
	case DialogueTalking:
		return "TALKING"
	case DialogueMenu:
		return "MENU"
	case DialogueBuying:
		return "BUYING"
	case DialogueSelling:
		return "SELLING"
	default:
		return "UNKNOWN"
	}
}

const defaultResupplyFloor = 10

// Restock classes for the resupply check.
var (
	hpRestockItems = []string{"Red Potion", "White Potion", "Yellow Potion"}
	spRestockItems = []string{"Blue Potion", "Grape Juice"}
)

// NPC walks shop conversations one step per decision cycle: initiate,
// continue, pick the buy option, place the order. From Idle it only
// engages when restorative stock has run below the floor.
type NPC struct {
	base
	state      DialogueState
	currentNPC string
	floor      int
}

func NewNPC(floor int) *NPC {
	if floor <= 0 {
		floor = defaultResupplyFloor
	}
	return &NPC{
		base:  base{name: "npc", priority: model.PriorityMedium},
		floor: floor,
	}
}

// ShouldActivate keeps the coordinator live for the whole dialogue;
// outside one it engages only when a restock is due.
func (n *NPC) ShouldActivate(state *model.GameState) bool {
	if n.state != DialogueIdle {
		return true
	}
	return n.needsRestock(state)
}

func (n *NPC) Decide(state *model.GameState) model.Action {
	switch n.state {
	case DialogueIdle:
		n.state = DialogueTalking
		n.currentNPC = "Tool Dealer"
		return model.NewAction(model.ActionTalk, "Low on supplies, talking to shop", 0.85).
			WithParam("npc", n.currentNPC)

	case DialogueTalking:
		n.state = DialogueMenu
		return model.NewAction(model.ActionTalkContinue, "Continuing shop dialogue", 0.90).
			WithParam("npc", n.currentNPC)

	case DialogueMenu:
		n.state = DialogueBuying
		return model.NewAction(model.ActionTalkResponse, "Choosing the buy menu", 0.90).
			WithParam("npc", n.currentNPC).
			WithParam("option", "buy")

	case DialogueBuying:
		item, amount := n.purchase(state)
		n.reset()
		return model.NewAction(model.ActionBuy, "Restocking "+item, 0.90).
			WithParam("item", item).
			WithParam("amount", strconv.Itoa(amount))

	case DialogueSelling:
		n.reset()
		return model.NewAction(model.ActionSell, "Selling off loot", 0.90)

	default:
		n.reset()
		return model.NewAction(model.ActionTalkCancel, "Lost track of dialogue, closing", 0.70)
	}
}

func (n *NPC) reset() {
	n.state = DialogueIdle
	n.currentNPC = ""
}

func (n *NPC) needsRestock(state *model.GameState) bool {
	return stock(state, hpRestockItems) < n.floor || stock(state, spRestockItems) < n.floor
}

// purchase tops the lacking class back up to twice the floor. HP
// supplies win when both run low.
func (n *NPC) purchase(state *model.GameState) (string, int) {
	item, have := "Blue Potion", stock(state, spRestockItems)
	if stock(state, hpRestockItems) < n.floor {
		item, have = "Red Potion", stock(state, hpRestockItems)
	}
	amount := 2*n.floor - have
	if amount < 1 {
		amount = 1
	}
	return item, amount
}

func stock(state *model.GameState, names []string) int {
	total := 0
	for _, name := range names {
		total += state.ItemCount(name)
	}
	return total
}
