package skill

// Leaf constructors for <game> (world/session) condition attributes.

// GameWithSkill requires the skill-bar availability flag to match want.
func GameWithSkill(want bool) *Leaf {
	return NewLeaf(LeafGame, "skill", func(env *Env) bool {
		return env.World != nil && env.World.WithSkills == want
	})
}

// GameNight requires the time-of-day flag to match want.
func GameNight(want bool) *Leaf {
	return NewLeaf(LeafGame, "night", func(env *Env) bool {
		return env.World != nil && env.World.Night == want
	})
}

// GameChance rolls an integer percentage each evaluation.
// Порог хранится при компиляции, бросок происходит при проверке.
func GameChance(chance int32) *Leaf {
	return NewLeaf(LeafGame, "chance", func(env *Env) bool {
		return env.World.RollChance(chance)
	})
}
