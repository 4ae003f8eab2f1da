// Package testutil provides shared snapshot fixtures so decision and
// coordinator tests build scenarios the same way.
package testutil

import "kore-engine/internal/model"

// State returns a baseline healthy snapshot: full vitals, light bag,
// empty field. Nothing in it activates any tier or coordinator; tests
// mutate it into their scenario.
func State() *model.GameState {
	return &model.GameState{
		Character: model.Character{
			Name:      "Testa",
			Level:     25,
			JobClass:  "Swordsman",
			HP:        100,
			MaxHP:     100,
			SP:        50,
			MaxSP:     50,
			Weight:    10,
			MaxWeight: 100,
			Zeny:      5000,
			Position:  model.Position{Map: "prt_fild08", X: 150, Y: 150},
		},
		TimestampMS: 1700000000000,
	}
}

// Aggressor builds a hostile monster at the given distance.
func Aggressor(id, name string, distance int) model.Monster {
	return model.Monster{
		ID:         id,
		Name:       name,
		HP:         100,
		MaxHP:      100,
		Distance:   distance,
		Aggressive: true,
	}
}

// Passive builds a non-aggressive monster at the given distance.
func Passive(id, name string, distance int) model.Monster {
	return model.Monster{
		ID:       id,
		Name:     name,
		HP:       100,
		MaxHP:    100,
		Distance: distance,
	}
}

// Stack builds a usable inventory stack.
func Stack(name string, amount int) model.Item {
	return model.Item{ID: "501", Name: name, Amount: amount, Type: "usable"}
}

// Loot builds an etc-category inventory stack.
func Loot(name string, amount int) model.Item {
	return model.Item{ID: "909", Name: name, Amount: amount, Type: "etc"}
}

// Player builds a nearby character at the given distance.
func Player(name string, distance int) model.Player {
	return model.Player{Name: name, Level: 30, Distance: distance}
}
