package coordinator

import "kore-engine/internal/model"

const (
	combatEngageRange = 15
	combatAOERange    = 5
	combatAOECount    = 3
	combatSkillSPMin  = 0.3
	combatMinHPRatio  = 0.5
)

// Combat engages monsters while the character is healthy enough to
// fight: aggressive targets first, area skills when surrounded, the
// job's attack skill when SP allows, plain attacks otherwise.
type Combat struct {
	base
}

func NewCombat() *Combat {
	return &Combat{base{name: "combat", priority: model.PriorityHigh}}
}

// ShouldActivate fights only above half health; below that, healing
// concerns own the cycle.
func (c *Combat) ShouldActivate(state *model.GameState) bool {
	return len(state.Monsters) > 0 && state.HPRatio() > combatMinHPRatio
}

func (c *Combat) Decide(state *model.GameState) model.Action {
	target, ok := state.NearestMonster(combatEngageRange, true)
	if !ok {
		return model.NewAction(model.ActionNone, "No valid combat target", 0.5)
	}

	if state.MonstersWithin(combatAOERange) >= combatAOECount {
		return model.NewAction(model.ActionSkill, "Multiple targets, using AOE", 0.85).
			WithParam("skill", "Magnum Break").
			WithParam("target_area", "self")
	}

	if skill := attackSkillForJob(state.Character.JobClass); skill != "" && state.SPRatio() >= combatSkillSPMin {
		return model.NewAction(model.ActionSkill, "Using optimal skill on "+target.Name, 0.90).
			WithParam("skill", skill).
			WithParam("target", target.ID)
	}

	return model.NewAction(model.ActionAttack, "Basic attack on "+target.Name, 0.75).
		WithParam("target", target.ID)
}

// attackSkillForJob maps a job class to its bread-and-butter skill.
func attackSkillForJob(job string) string {
	switch job {
	case "Knight", "Swordsman":
		return "Bash"
	case "Wizard", "Magician":
		return "Fire Bolt"
	case "Hunter", "Archer":
		return "Double Strafe"
	default:
		return ""
	}
}
