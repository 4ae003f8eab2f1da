package model

// Position locates a character on a game map.
type Position struct {
	Map string `json:"map"`
	X   int    `json:"x"`
	Y   int    `json:"y"`
}

// Equal reports whether two positions are the same cell on the same map.
func (p Position) Equal(other Position) bool {
	return p.Map == other.Map && p.X == other.X && p.Y == other.Y
}

// Character holds the controlled character's vitals as captured by the
// game client.
type Character struct {
	Name          string   `json:"name"`
	Level         int      `json:"level"`
	BaseExp       int      `json:"base_exp"`
	JobExp        int      `json:"job_exp"`
	HP            int      `json:"hp"`
	MaxHP         int      `json:"max_hp"`
	SP            int      `json:"sp"`
	MaxSP         int      `json:"max_sp"`
	Position      Position `json:"position"`
	Weight        int      `json:"weight"`
	MaxWeight     int      `json:"max_weight"`
	Zeny          int      `json:"zeny"`
	JobClass      string   `json:"job_class"`
	StatusEffects []string `json:"status_effects"`
}

// Monster is one visible monster and its relation to the character.
type Monster struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	HP         int    `json:"hp"`
	MaxHP      int    `json:"max_hp"`
	Distance   int    `json:"distance"`
	Aggressive bool   `json:"is_aggressive"`
}

// Item is one inventory stack.
type Item struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Amount int    `json:"amount"`
	Type   string `json:"type"`
}

// Player is another character near the controlled one.
type Player struct {
	Name        string `json:"name"`
	Level       int    `json:"level"`
	Guild       string `json:"guild"`
	Distance    int    `json:"distance"`
	PartyMember bool   `json:"is_party_member"`
}

// GameState is the situation snapshot for one decision call. It is
// treated as immutable for the duration of the call.
type GameState struct {
	Character     Character         `json:"character"`
	Monsters      []Monster         `json:"monsters"`
	Inventory     []Item            `json:"inventory"`
	NearbyPlayers []Player          `json:"nearby_players"`
	PartyMembers  map[string]string `json:"party_members"`
	TimestampMS   int64             `json:"timestamp_ms"`
}

// ratio guards against a zero denominator: an unknown maximum reads as
// full rather than undefined.
func ratio(current, max int) float64 {
	if max == 0 {
		return 1.0
	}
	return float64(current) / float64(max)
}

// HPRatio returns current HP as a fraction of max HP.
func (s *GameState) HPRatio() float64 {
	return ratio(s.Character.HP, s.Character.MaxHP)
}

// SPRatio returns current SP as a fraction of max SP.
func (s *GameState) SPRatio() float64 {
	return ratio(s.Character.SP, s.Character.MaxSP)
}

// WeightRatio returns carried weight as a fraction of capacity.
func (s *GameState) WeightRatio() float64 {
	return ratio(s.Character.Weight, s.Character.MaxWeight)
}

// ItemCount returns the carried amount of the named item, 0 when absent.
func (s *GameState) ItemCount(name string) int {
	total := 0
	for _, item := range s.Inventory {
		if item.Name == name {
			total += item.Amount
		}
	}
	return total
}

// HasItem reports whether at least one of the named item is carried.
func (s *GameState) HasItem(name string) bool {
	return s.ItemCount(name) > 0
}

// FirstItem returns the first name in preference order that is carried.
func (s *GameState) FirstItem(names ...string) (string, bool) {
	for _, name := range names {
		if s.HasItem(name) {
			return name, true
		}
	}
	return "", false
}

// HasAnyStatus reports whether any of the named status effects is active.
func (s *GameState) HasAnyStatus(names ...string) bool {
	for _, effect := range s.Character.StatusEffects {
		for _, name := range names {
			if effect == name {
				return true
			}
		}
	}
	return false
}

// MonstersWithin counts monsters of any disposition within dist.
func (s *GameState) MonstersWithin(dist int) int {
	count := 0
	for _, m := range s.Monsters {
		if m.Distance <= dist {
			count++
		}
	}
	return count
}

// AggressorsWithin counts aggressive monsters within dist.
func (s *GameState) AggressorsWithin(dist int) int {
	count := 0
	for _, m := range s.Monsters {
		if m.Aggressive && m.Distance <= dist {
			count++
		}
	}
	return count
}

// UnderAttack reports whether any aggressive monster is within dist.
func (s *GameState) UnderAttack(dist int) bool {
	return s.AggressorsWithin(dist) > 0
}

// NearestMonster selects a target within maxDist. With aggressiveFirst
// set, aggressive monsters outrank passive ones regardless of distance;
// within each group the nearest wins and ties keep the earlier entry.
func (s *GameState) NearestMonster(maxDist int, aggressiveFirst bool) (Monster, bool) {
	var best Monster
	found := false
	bestAggressive := false

	for _, m := range s.Monsters {
		if m.Distance > maxDist {
			continue
		}
		if !found {
			best, bestAggressive, found = m, m.Aggressive, true
			continue
		}
		if aggressiveFirst && m.Aggressive != bestAggressive {
			if m.Aggressive {
				best, bestAggressive = m, true
			}
			continue
		}
		if m.Distance < best.Distance {
			best, bestAggressive = m, m.Aggressive
		}
	}
	return best, found
}
