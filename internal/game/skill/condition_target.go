package skill

// Leaf constructors for <target> condition attributes.

// TargetAggro requires the target's aggro flag to match want.
func TargetAggro(want bool) *Leaf {
	return NewLeaf(LeafTarget, "aggro", func(env *Env) bool {
		return env.Target != nil && env.Target.Aggro == want
	})
}

// TargetLevel requires the target level at or below the value.
func TargetLevel(lvl int32) *Leaf {
	return NewLeaf(LeafTarget, "level", func(env *Env) bool {
		return env.Target != nil && env.Target.Level <= lvl
	})
}

// TargetLevelRange requires the target level inside [min, max].
func TargetLevelRange(min, max int32) *Leaf {
	return NewLeaf(LeafTarget, "levelrange", func(env *Env) bool {
		return env.Target != nil && env.Target.Level >= min && env.Target.Level <= max
	})
}

// TargetRace requires the target race.
func TargetRace(race Race) *Leaf {
	return NewLeaf(LeafTarget, "race", func(env *Env) bool {
		return env.Target != nil && env.Target.Race == race
	})
}

// TargetMyParty requires the target in the actor's party.
// Mode "EXCEPT_ME" additionally excludes the actor itself.
func TargetMyParty(mode string) *Leaf {
	exceptMe := mode == "EXCEPT_ME"
	return NewLeaf(LeafTarget, "myparty", func(env *Env) bool {
		if env.Target == nil || !env.Target.InActorParty {
			return false
		}
		if exceptMe && env.Target.IsActor {
			return false
		}
		return true
	})
}

// TargetPlayable requires a playable target (player, summon, pet).
func TargetPlayable() *Leaf {
	return NewLeaf(LeafTarget, "playable", func(env *Env) bool {
		return env.Target != nil && env.Target.Playable
	})
}

// TargetClassIDs requires the target class id in the set.
func TargetClassIDs(ids []int32) *Leaf {
	return NewLeaf(LeafTarget, "class_id_restriction", func(env *Env) bool {
		if env.Target == nil {
			return false
		}
		for _, id := range ids {
			if env.Target.ClassID == id {
				return true
			}
		}
		return false
	})
}

// TargetActiveEffect requires an active effect on target; lvl > 0 also
// requires at least that level.
func TargetActiveEffect(id, lvl int32) *Leaf {
	return NewLeaf(LeafTarget, "active_effect_id", func(env *Env) bool {
		if env.Target == nil {
			return false
		}
		have, ok := env.Target.ActiveEffects[id]
		return ok && (lvl <= 0 || have >= lvl)
	})
}

// TargetActiveSkill requires a known skill on target; lvl > 0 also requires
// at least that level.
func TargetActiveSkill(id, lvl int32) *Leaf {
	return NewLeaf(LeafTarget, "active_skill_id", func(env *Env) bool {
		if env.Target == nil {
			return false
		}
		have, ok := env.Target.ActiveSkills[id]
		return ok && (lvl <= 0 || have >= lvl)
	})
}

// TargetAbnormal requires the abnormal mask id on the target.
func TargetAbnormal(id int32) *Leaf {
	return NewLeaf(LeafTarget, "abnormal", func(env *Env) bool {
		return env.Target != nil && env.Target.AbnormalID == id
	})
}

// TargetMinDistanceSq requires the actor-target distance at or above the
// threshold. Радиус возводится в квадрат один раз при компиляции.
func TargetMinDistanceSq(distSq float64) *Leaf {
	return NewLeaf(LeafTarget, "mindistance", func(env *Env) bool {
		return env.Target != nil && env.Target.DistanceSq >= distSq
	})
}

// TargetUsingKind requires the target's weapon/armor kind mask to intersect.
func TargetUsingKind(mask int32) *Leaf {
	return NewLeaf(LeafTarget, "using", func(env *Env) bool {
		return env.Target != nil && env.Target.UsingKindMask&mask != 0
	})
}

// TargetNpcIDs requires the target npc id in the set.
func TargetNpcIDs(ids []int32) *Leaf {
	return NewLeaf(LeafTarget, "npcid", func(env *Env) bool {
		if env.Target == nil {
			return false
		}
		for _, id := range ids {
			if env.Target.NpcID == id {
				return true
			}
		}
		return false
	})
}

// TargetNpcTypes requires the target type to be (or inherit) one of types.
func TargetNpcTypes(types []NpcType) *Leaf {
	return NewLeaf(LeafTarget, "npctype", func(env *Env) bool {
		if env.Target == nil {
			return false
		}
		for _, t := range types {
			if env.Target.NpcType.IsType(t) {
				return true
			}
		}
		return false
	})
}

// TargetWeight requires the target's carried weight strictly below the pct.
func TargetWeight(pct int32) *Leaf {
	return NewLeaf(LeafTarget, "weight", func(env *Env) bool {
		return env.Target != nil && env.Target.WeightPct < pct
	})
}

// TargetInvSize requires at least n free inventory slots on the target.
func TargetInvSize(n int32) *Leaf {
	return NewLeaf(LeafTarget, "invsize", func(env *Env) bool {
		return env.Target != nil && env.Target.InvSizeLeft >= n
	})
}

// TargetSiegeZone requires the target's siege flags to intersect the mask.
func TargetSiegeZone(mask int32) *Leaf {
	return NewLeaf(LeafTarget, "siegezone", func(env *Env) bool {
		return env.Target != nil && env.Target.SiegeFlags&mask != 0
	})
}
