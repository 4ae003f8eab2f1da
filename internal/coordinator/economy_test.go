package coordinator

import (
	"testing"

	"kore-engine/internal/model"
	"kore-engine/internal/testutil"
)

func TestEconomyActivation(t *testing.T) {
	e := NewEconomy()

	t.Run("light load", func(t *testing.T) {
		if e.ShouldActivate(testutil.State()) {
			t.Error("should stay inactive with a light bag")
		}
	})

	t.Run("overweight", func(t *testing.T) {
		state := testutil.State()
		state.Character.Weight = 86
		if !e.ShouldActivate(state) {
			t.Error("should activate above the weight limit")
		}
	})

	t.Run("inventory overflow", func(t *testing.T) {
		state := testutil.State()
		for range 51 {
			state.Inventory = append(state.Inventory, testutil.Loot("Jellopy", 1))
		}
		if !e.ShouldActivate(state) {
			t.Error("should activate past 50 stacks")
		}
	})
}

func TestEconomyStorageBeatsSelling(t *testing.T) {
	e := NewEconomy()
	state := testutil.State()
	state.Character.Weight = 95
	for range 60 {
		state.Inventory = append(state.Inventory, testutil.Loot("Jellopy", 1))
	}

	action := e.Decide(state)
	if action.Kind != model.ActionMove {
		t.Fatalf("Kind = %v, want move", action.Kind)
	}
	if action.Params["destination"] != "storage" {
		t.Errorf("destination = %q, overweight outranks selling", action.Params["destination"])
	}
	if action.Confidence != 0.85 {
		t.Errorf("Confidence = %v, want 0.85", action.Confidence)
	}
}

func TestEconomySellRun(t *testing.T) {
	e := NewEconomy()
	state := testutil.State()
	for range 51 {
		state.Inventory = append(state.Inventory, testutil.Loot("Jellopy", 1))
	}

	action := e.Decide(state)
	if action.Params["destination"] != "sell" {
		t.Errorf("destination = %q, want sell", action.Params["destination"])
	}
	if action.Reason != "Inventory full, going to sell items" {
		t.Errorf("Reason = %q", action.Reason)
	}
}

func TestEconomyAllClear(t *testing.T) {
	e := NewEconomy()

	action := e.Decide(testutil.State())
	if !action.IsNone() {
		t.Errorf("Kind = %v, want none", action.Kind)
	}
	if action.Reason != "Economy check passed" {
		t.Errorf("Reason = %q", action.Reason)
	}
}
