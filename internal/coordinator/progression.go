package coordinator

import (
	"strings"

	"kore-engine/internal/model"
)

// Progression watches for job-change milestones and recommends stat
// and skill allocations. Activation stays off while job changes are
// driven manually; Decide and the allocation helpers answer direct
// calls.
type Progression struct {
	base
}

func NewProgression() *Progression {
	return &Progression{base{name: "progression", priority: model.PriorityLow}}
}

// ShouldActivate is deliberately off until automatic job changes are
// trusted enough to run unattended.
func (p *Progression) ShouldActivate(state *model.GameState) bool {
	return false
}

func (p *Progression) Decide(state *model.GameState) model.Action {
	level := state.Character.Level
	job := state.Character.JobClass

	if level == 10 && job == "Novice" {
		return model.NewAction(model.ActionJobChange, "Ready for First Job at level 10", 0.90).
			WithParam("target_job", "auto")
	}
	if level == 50 && isFirstJob(job) {
		return model.NewAction(model.ActionJobChange, "Ready for Second Job at level 50", 0.90).
			WithParam("target_job", "auto")
	}

	return model.NewAction(model.ActionNone, "Progression on track", 0.1)
}

// AllocateStatPoints proposes one point into the job's primary stat.
func (p *Progression) AllocateStatPoints(state *model.GameState) model.Action {
	stat := primaryStatForJob(state.Character.JobClass)
	return model.NewAction(model.ActionAddStat, "Allocate stat to "+stat, 0.85).
		WithParam("stat", stat).
		WithParam("points", "1")
}

// AllocateSkillPoints proposes the next skill for the job, if one is
// known.
func (p *Progression) AllocateSkillPoints(state *model.GameState) model.Action {
	skill := recommendedSkillForJob(state.Character.JobClass)
	if skill == "" {
		return model.NewAction(model.ActionNone, "No skill recommendation", 0.1)
	}
	return model.NewAction(model.ActionAddSkill, "Learn "+skill, 0.85).
		WithParam("skill", skill)
}

func primaryStatForJob(job string) string {
	switch {
	case strings.Contains(job, "Sword"), strings.Contains(job, "Knight"):
		return "STR"
	case strings.Contains(job, "Magi"), strings.Contains(job, "Wizard"):
		return "INT"
	case strings.Contains(job, "Arch"), strings.Contains(job, "Hunter"):
		return "DEX"
	case strings.Contains(job, "Thief"), strings.Contains(job, "Assassin"):
		return "AGI"
	default:
		return "STR"
	}
}

func recommendedSkillForJob(job string) string {
	switch job {
	case "Swordsman":
		return "Bash"
	case "Magician":
		return "Fire Bolt"
	case "Archer":
		return "Double Strafe"
	default:
		return ""
	}
}

func isFirstJob(job string) bool {
	switch job {
	case "Swordsman", "Magician", "Archer", "Acolyte", "Merchant", "Thief":
		return true
	default:
		return false
	}
}
