package skill

// Leaf constructors for <player> condition attributes. Каждый конструктор
// замыкает значения, разрешённые на этапе компиляции; Test только читает Env.

// PlayerRace requires the actor's race to be in the set.
func PlayerRace(races []Race) *Leaf {
	return NewLeaf(LeafPlayer, "races", func(env *Env) bool {
		if env.Actor == nil {
			return false
		}
		for _, r := range races {
			if env.Actor.Race == r {
				return true
			}
		}
		return false
	})
}

// PlayerLevel requires at least the given level.
func PlayerLevel(lvl int32) *Leaf {
	return NewLeaf(LeafPlayer, "level", func(env *Env) bool {
		return env.Actor != nil && env.Actor.Level >= lvl
	})
}

// PlayerLevelRange requires the level inside [min, max].
func PlayerLevelRange(min, max int32) *Leaf {
	return NewLeaf(LeafPlayer, "levelrange", func(env *Env) bool {
		return env.Actor != nil && env.Actor.Level >= min && env.Actor.Level <= max
	})
}

// PlayerStateIs requires a named boolean state to match want.
func PlayerStateIs(state PlayerState, want bool) *Leaf {
	return NewLeaf(LeafPlayer, "state", func(env *Env) bool {
		return env.Actor != nil && env.Actor.HasState(state) == want
	})
}

// PlayerHero requires hero status to match want.
func PlayerHero(want bool) *Leaf {
	return NewLeaf(LeafPlayer, "ishero", func(env *Env) bool {
		return env.Actor != nil && env.Actor.Hero == want
	})
}

// PlayerTransformationID requires the active transformation.
func PlayerTransformationID(id int32) *Leaf {
	return NewLeaf(LeafPlayer, "transformationid", func(env *Env) bool {
		return env.Actor != nil && env.Actor.TransformationID == id
	})
}

// PlayerHp requires current HP at or below the percentage (last-stand gates).
func PlayerHp(pct int32) *Leaf {
	return NewLeaf(LeafPlayer, "hp", func(env *Env) bool {
		return env.Actor != nil && env.Actor.HpPercent <= pct
	})
}

// PlayerMp requires current MP at or above the percentage.
func PlayerMp(pct int32) *Leaf {
	return NewLeaf(LeafPlayer, "mp", func(env *Env) bool {
		return env.Actor != nil && env.Actor.MpPercent >= pct
	})
}

// PlayerCp requires current CP at or above the percentage.
func PlayerCp(pct int32) *Leaf {
	return NewLeaf(LeafPlayer, "cp", func(env *Env) bool {
		return env.Actor != nil && env.Actor.CpPercent >= pct
	})
}

// PlayerGrade requires the expertise grade at or above the index.
func PlayerGrade(grade int32) *Leaf {
	return NewLeaf(LeafPlayer, "grade", func(env *Env) bool {
		return env.Actor != nil && env.Actor.Grade >= grade
	})
}

// PlayerPkCount requires at most the given PK count.
func PlayerPkCount(pk int32) *Leaf {
	return NewLeaf(LeafPlayer, "pkcount", func(env *Env) bool {
		return env.Actor != nil && env.Actor.PkCount <= pk
	})
}

// PlayerCharges requires at least the given charge count.
func PlayerCharges(n int32) *Leaf {
	return NewLeaf(LeafPlayer, "charges", func(env *Env) bool {
		return env.Actor != nil && env.Actor.Charges >= n
	})
}

// PlayerSouls requires at least the given soul count.
func PlayerSouls(n int32) *Leaf {
	return NewLeaf(LeafPlayer, "souls", func(env *Env) bool {
		return env.Actor != nil && env.Actor.Souls >= n
	})
}

// PlayerWeight requires carried weight strictly below the percentage.
func PlayerWeight(pct int32) *Leaf {
	return NewLeaf(LeafPlayer, "weight", func(env *Env) bool {
		return env.Actor != nil && env.Actor.WeightPct < pct
	})
}

// PlayerInvSize requires at least the given number of free inventory slots.
func PlayerInvSize(n int32) *Leaf {
	return NewLeaf(LeafPlayer, "invsize", func(env *Env) bool {
		return env.Actor != nil && env.Actor.InvSizeLeft >= n
	})
}

// PlayerPledgeClass requires the pledge class rank at or above the value.
func PlayerPledgeClass(rank int32) *Leaf {
	return NewLeaf(LeafPlayer, "pledgeclass", func(env *Env) bool {
		return env.Actor != nil && env.Actor.PledgeClass >= rank
	})
}

// PlayerClanLeader requires clan leadership to match want.
func PlayerClanLeader(want bool) *Leaf {
	return NewLeaf(LeafPlayer, "isclanleader", func(env *Env) bool {
		return env.Actor != nil && env.Actor.ClanLeader == want
	})
}

// PlayerSubclass requires the active subclass flag to match want.
func PlayerSubclass(want bool) *Leaf {
	return NewLeaf(LeafPlayer, "subclass", func(env *Env) bool {
		return env.Actor != nil && env.Actor.Subclass == want
	})
}

// PlayerCloakStatus requires the cloak slot availability to match want.
func PlayerCloakStatus(want bool) *Leaf {
	return NewLeaf(LeafPlayer, "cloakstatus", func(env *Env) bool {
		return env.Actor != nil && env.Actor.CloakOpen == want
	})
}

// PlayerHasClanHall requires owning one of the listed clan halls.
// Пустой список — достаточно любого холла.
func PlayerHasClanHall(ids []int32) *Leaf {
	return NewLeaf(LeafPlayer, "clanhall", func(env *Env) bool {
		if env.Actor == nil {
			return false
		}
		if len(ids) == 0 {
			return env.Actor.ClanHallID > 0
		}
		for _, id := range ids {
			if env.Actor.ClanHallID == id {
				return true
			}
		}
		return false
	})
}

// PlayerHasFort requires fortress ownership to match (0 = any fort).
func PlayerHasFort(id int32) *Leaf {
	return NewLeaf(LeafPlayer, "fort", func(env *Env) bool {
		if env.Actor == nil {
			return false
		}
		if id == 0 {
			return env.Actor.FortID > 0
		}
		return env.Actor.FortID == id
	})
}

// PlayerHasCastle requires castle ownership to match (0 = any castle).
func PlayerHasCastle(id int32) *Leaf {
	return NewLeaf(LeafPlayer, "castle", func(env *Env) bool {
		if env.Actor == nil {
			return false
		}
		if id == 0 {
			return env.Actor.CastleID > 0
		}
		return env.Actor.CastleID == id
	})
}

// PlayerSex requires the given sex (0 male, 1 female).
func PlayerSex(sex int32) *Leaf {
	return NewLeaf(LeafPlayer, "sex", func(env *Env) bool {
		return env.Actor != nil && env.Actor.Sex == sex
	})
}

// PlayerFlyMounted requires wyvern-mounted state to match want.
func PlayerFlyMounted(want bool) *Leaf {
	return NewLeaf(LeafPlayer, "flymounted", func(env *Env) bool {
		return env.Actor != nil && env.Actor.FlyMounted == want
	})
}

// PlayerVehicleMounted requires boat/airship state to match want.
func PlayerVehicleMounted(want bool) *Leaf {
	return NewLeaf(LeafPlayer, "vehiclemounted", func(env *Env) bool {
		return env.Actor != nil && env.Actor.VehicleMounted == want
	})
}

// PlayerLandingZone requires being in a landing zone to match want.
func PlayerLandingZone(want bool) *Leaf {
	return NewLeaf(LeafPlayer, "landingzone", func(env *Env) bool {
		return env.Actor != nil && env.Actor.LandingZone == want
	})
}

// PlayerActiveEffect requires an active effect; lvl > 0 also requires at
// least that effect level.
func PlayerActiveEffect(id, lvl int32) *Leaf {
	return NewLeaf(LeafPlayer, "active_effect_id", func(env *Env) bool {
		if env.Actor == nil {
			return false
		}
		have, ok := env.Actor.ActiveEffects[id]
		return ok && (lvl <= 0 || have >= lvl)
	})
}

// PlayerActiveSkill requires a known active skill; lvl > 0 also requires at
// least that skill level.
func PlayerActiveSkill(id, lvl int32) *Leaf {
	return NewLeaf(LeafPlayer, "active_skill_id", func(env *Env) bool {
		if env.Actor == nil {
			return false
		}
		have, ok := env.Actor.ActiveSkills[id]
		return ok && (lvl <= 0 || have >= lvl)
	})
}

// PlayerClassIDs requires the class id to be in the set.
func PlayerClassIDs(ids []int32) *Leaf {
	return NewLeaf(LeafPlayer, "class_id_restriction", func(env *Env) bool {
		if env.Actor == nil {
			return false
		}
		for _, id := range ids {
			if env.Actor.ClassID == id {
				return true
			}
		}
		return false
	})
}

// PlayerInstanceIDs requires the current instance to be in the set.
func PlayerInstanceIDs(ids []int32) *Leaf {
	return NewLeaf(LeafPlayer, "instanceid", func(env *Env) bool {
		if env.Actor == nil {
			return false
		}
		for _, id := range ids {
			if env.Actor.InstanceID == id {
				return true
			}
		}
		return false
	})
}

// PlayerInsideZoneIDs requires presence in one of the zones.
func PlayerInsideZoneIDs(ids []int32) *Leaf {
	return NewLeaf(LeafPlayer, "insidezoneid", func(env *Env) bool {
		if env.Actor == nil {
			return false
		}
		for _, id := range ids {
			if env.Actor.ZoneIDs[id] {
				return true
			}
		}
		return false
	})
}

// PlayerAgathionID requires the summoned agathion.
func PlayerAgathionID(id int32) *Leaf {
	return NewLeaf(LeafPlayer, "agathionid", func(env *Env) bool {
		return env.Actor != nil && env.Actor.AgathionID == id
	})
}

// PlayerHasAgathion requires agathion presence to match want.
func PlayerHasAgathion(want bool) *Leaf {
	return NewLeaf(LeafPlayer, "hasagathion", func(env *Env) bool {
		return env.Actor != nil && (env.Actor.AgathionID > 0) == want
	})
}

// PlayerAgathionEnergy requires at least the given agathion energy.
func PlayerAgathionEnergy(min int32) *Leaf {
	return NewLeaf(LeafPlayer, "agathionenergy", func(env *Env) bool {
		return env.Actor != nil && env.Actor.AgathionEnergy >= min
	})
}

// PlayerHasPet requires the current pet's npc id in the set.
func PlayerHasPet(ids []int32) *Leaf {
	return NewLeaf(LeafPlayer, "haspet", func(env *Env) bool {
		if env.Actor == nil || env.Actor.PetID == 0 {
			return false
		}
		for _, id := range ids {
			if env.Actor.PetID == id {
				return true
			}
		}
		return false
	})
}

// PlayerHasServitor requires an active servitor.
func PlayerHasServitor() *Leaf {
	return NewLeaf(LeafPlayer, "hasservitor", func(env *Env) bool {
		return env.Actor != nil && env.Actor.HasServitor
	})
}

// PlayerRangeFromNpc requires being within radius of any listed npc id
// (or outside, when want is false).
func PlayerRangeFromNpc(npcIDs []int32, radius int32, want bool) *Leaf {
	r := float64(radius)
	return NewLeaf(LeafPlayer, "npcidradius", func(env *Env) bool {
		if env.Actor == nil {
			return !want
		}
		within := false
		for _, id := range npcIDs {
			if d, ok := env.Actor.NpcDistances[id]; ok && d <= r {
				within = true
				break
			}
		}
		return within == want
	})
}

// PlayerCan requires a capability flag ("summon", "resurrect", "sweep",
// "transform", "escape", "takecastle", ...) to match want.
func PlayerCan(capability string, want bool) *Leaf {
	return NewLeaf(LeafPlayer, capability, func(env *Env) bool {
		return env.Actor != nil && env.Actor.Can[capability] == want
	})
}

// PlayerSiegeZone requires the actor's siege flags to intersect the mask.
func PlayerSiegeZone(mask int32) *Leaf {
	return NewLeaf(LeafPlayer, "siegezone", func(env *Env) bool {
		return env.Actor != nil && env.Actor.SiegeFlags&mask != 0
	})
}

// PlayerSiegeSide requires participating on the given siege side.
func PlayerSiegeSide(side int32) *Leaf {
	return NewLeaf(LeafPlayer, "siegeside", func(env *Env) bool {
		return env.Actor != nil && env.Actor.SiegeSide == side
	})
}

// PlayerCategories requires membership in one of the categories.
func PlayerCategories(cats []CategoryType) *Leaf {
	return NewLeaf(LeafPlayer, "categorytype", func(env *Env) bool {
		if env.Actor == nil {
			return false
		}
		for _, c := range cats {
			if env.Actor.Categories[c] {
				return true
			}
		}
		return false
	})
}

// CheckAbnormal requires an abnormal state of at least the given level
// on the actor or target (by category); mustHave false inverts the check.
func CheckAbnormal(cat LeafCategory, typ AbnormalType, lvl int32, mustHave bool) *Leaf {
	return NewLeaf(cat, "checkabnormal", func(env *Env) bool {
		var abnormals map[AbnormalType]int32
		switch {
		case cat == LeafTarget && env.Target != nil:
			abnormals = env.Target.Abnormals
		case cat == LeafPlayer && env.Actor != nil:
			abnormals = env.Actor.Abnormals
		default:
			return !mustHave
		}
		have, ok := abnormals[typ]
		present := ok && have >= lvl
		return present == mustHave
	})
}
