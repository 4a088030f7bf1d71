package data

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/teralith/interlude/internal/game/skill"
)

// parseFirstCondition compiles the first child element of a cond block.
// Children of non-condition tags yield nil.
func (c *defCompiler) parseFirstCondition(n *xmlNode, curLevel int) skill.Condition {
	if len(n.children) == 0 {
		return nil
	}
	return c.parseCondition(n.children[0], curLevel)
}

// parseCondition dispatches on the element name. Unknown names compile to
// nil so the caller can treat the block as unconditioned.
func (c *defCompiler) parseCondition(n *xmlNode, curLevel int) skill.Condition {
	switch n.name {
	case "and":
		return c.parseLogicAnd(n, curLevel)
	case "or":
		return c.parseLogicOr(n, curLevel)
	case "not":
		return c.parseLogicNot(n, curLevel)
	case "player":
		return c.parsePlayerCondition(n, curLevel)
	case "target":
		return c.parseTargetCondition(n, curLevel)
	case "using":
		return c.parseUsingCondition(n)
	case "game":
		return c.parseGameCondition(n, curLevel)
	}
	return nil
}

func (c *defCompiler) parseLogicAnd(n *xmlNode, curLevel int) skill.Condition {
	and := &skill.LogicAnd{}
	count := 0
	for _, ch := range n.children {
		if cond := c.parseCondition(ch, curLevel); cond != nil {
			and.Add(cond)
			count++
		}
	}
	if count == 0 {
		slog.Error("empty <and> condition", "file", c.file, "skill_id", c.id, "line", n.line)
	}
	return and
}

func (c *defCompiler) parseLogicOr(n *xmlNode, curLevel int) skill.Condition {
	or := &skill.LogicOr{}
	count := 0
	for _, ch := range n.children {
		if cond := c.parseCondition(ch, curLevel); cond != nil {
			or.Add(cond)
			count++
		}
	}
	if count == 0 {
		slog.Error("empty <or> condition", "file", c.file, "skill_id", c.id, "line", n.line)
	}
	return or
}

func (c *defCompiler) parseLogicNot(n *xmlNode, curLevel int) skill.Condition {
	for _, ch := range n.children {
		if cond := c.parseCondition(ch, curLevel); cond != nil {
			return &skill.LogicNot{Condition: cond}
		}
	}
	slog.Error("empty <not> condition", "file", c.file, "skill_id", c.id, "line", n.line)
	return nil
}

// parsePlayerCondition compiles one <player> element. Every attribute adds
// one leaf joined by and; a malformed attribute drops only that leaf.
func (c *defCompiler) parsePlayerCondition(n *xmlNode, curLevel int) skill.Condition {
	var cond skill.Condition
	lvl := levelRef(curLevel)
	for _, a := range n.attrs {
		v := a.value
		switch strings.ToLower(a.name) {
		case "races":
			races, ok := c.raceList(v, n)
			if ok {
				cond = skill.JoinAnd(cond, skill.PlayerRace(races))
			}
		case "level":
			if x, ok := c.decodeInt(c.value(v, lvl), n); ok {
				cond = skill.JoinAnd(cond, skill.PlayerLevel(x))
			}
		case "levelrange":
			if lo, hi, ok := c.decodeRange(c.value(v, lvl), n); ok {
				cond = skill.JoinAnd(cond, skill.PlayerLevelRange(lo, hi))
			}
		case "resting":
			cond = skill.JoinAnd(cond, skill.PlayerStateIs(skill.StateResting, parseBool(v)))
		case "flying":
			cond = skill.JoinAnd(cond, skill.PlayerStateIs(skill.StateFlying, parseBool(v)))
		case "moving":
			cond = skill.JoinAnd(cond, skill.PlayerStateIs(skill.StateMoving, parseBool(v)))
		case "running":
			cond = skill.JoinAnd(cond, skill.PlayerStateIs(skill.StateRunning, parseBool(v)))
		case "standing":
			cond = skill.JoinAnd(cond, skill.PlayerStateIs(skill.StateStanding, parseBool(v)))
		case "behind":
			cond = skill.JoinAnd(cond, skill.PlayerStateIs(skill.StateBehind, parseBool(v)))
		case "front":
			cond = skill.JoinAnd(cond, skill.PlayerStateIs(skill.StateFront, parseBool(v)))
		case "chaotic":
			cond = skill.JoinAnd(cond, skill.PlayerStateIs(skill.StateChaotic, parseBool(v)))
		case "olympiad":
			cond = skill.JoinAnd(cond, skill.PlayerStateIs(skill.StateOlympiad, parseBool(v)))
		case "ishero":
			cond = skill.JoinAnd(cond, skill.PlayerHero(parseBool(v)))
		case "transformationid":
			if x, ok := c.decodeInt(v, n); ok {
				cond = skill.JoinAnd(cond, skill.PlayerTransformationID(x))
			}
		case "hp":
			if x, ok := c.decodeInt(c.value(v, noLevel), n); ok {
				cond = skill.JoinAnd(cond, skill.PlayerHp(x))
			}
		case "mp":
			if x, ok := c.decodeInt(c.value(v, noLevel), n); ok {
				cond = skill.JoinAnd(cond, skill.PlayerMp(x))
			}
		case "cp":
			if x, ok := c.decodeInt(c.value(v, noLevel), n); ok {
				cond = skill.JoinAnd(cond, skill.PlayerCp(x))
			}
		case "grade":
			if x, ok := c.decodeInt(c.value(v, lvl), n); ok {
				cond = skill.JoinAnd(cond, skill.PlayerGrade(x))
			}
		case "pkcount":
			if x, ok := c.decodeInt(c.value(v, lvl), n); ok {
				cond = skill.JoinAnd(cond, skill.PlayerPkCount(x))
			}
		case "siegezone":
			if x, ok := c.decodeInt(c.value(v, noLevel), n); ok {
				cond = skill.JoinAnd(cond, skill.PlayerSiegeZone(x))
			}
		case "siegeside":
			if x, ok := c.decodeInt(c.value(v, noLevel), n); ok {
				cond = skill.JoinAnd(cond, skill.PlayerSiegeSide(x))
			}
		case "charges":
			if x, ok := c.decodeInt(c.value(v, lvl), n); ok {
				cond = skill.JoinAnd(cond, skill.PlayerCharges(x))
			}
		case "souls":
			if x, ok := c.decodeInt(c.value(v, lvl), n); ok {
				cond = skill.JoinAnd(cond, skill.PlayerSouls(x))
			}
		case "weight":
			if x, ok := c.decodeInt(c.value(v, noLevel), n); ok {
				cond = skill.JoinAnd(cond, skill.PlayerWeight(x))
			}
		case "invsize":
			if x, ok := c.decodeInt(c.value(v, noLevel), n); ok {
				cond = skill.JoinAnd(cond, skill.PlayerInvSize(x))
			}
		case "isclanleader":
			cond = skill.JoinAnd(cond, skill.PlayerClanLeader(parseBool(v)))
		case "pledgeclass":
			if x, ok := c.decodeInt(c.value(v, noLevel), n); ok {
				cond = skill.JoinAnd(cond, skill.PlayerPledgeClass(x))
			}
		case "clanhall":
			if ids, ok := c.intList(v, noLevel, n); ok {
				cond = skill.JoinAnd(cond, skill.PlayerHasClanHall(ids))
			}
		case "fort":
			if x, ok := c.decodeInt(c.value(v, noLevel), n); ok {
				cond = skill.JoinAnd(cond, skill.PlayerHasFort(x))
			}
		case "castle":
			if x, ok := c.decodeInt(c.value(v, noLevel), n); ok {
				cond = skill.JoinAnd(cond, skill.PlayerHasCastle(x))
			}
		case "sex":
			if x, ok := c.decodeInt(c.value(v, noLevel), n); ok {
				cond = skill.JoinAnd(cond, skill.PlayerSex(x))
			}
		case "flymounted":
			cond = skill.JoinAnd(cond, skill.PlayerFlyMounted(parseBool(v)))
		case "vehiclemounted":
			cond = skill.JoinAnd(cond, skill.PlayerVehicleMounted(parseBool(v)))
		case "landingzone":
			cond = skill.JoinAnd(cond, skill.PlayerLandingZone(parseBool(v)))
		case "active_effect_id":
			if x, ok := c.decodeInt(c.value(v, lvl), n); ok {
				cond = skill.JoinAnd(cond, skill.PlayerActiveEffect(x, -1))
			}
		case "active_effect_id_lvl":
			if id, el, ok := c.decodePair(v, lvl, n); ok {
				cond = skill.JoinAnd(cond, skill.PlayerActiveEffect(id, el))
			}
		case "active_skill_id":
			if x, ok := c.decodeInt(c.value(v, lvl), n); ok {
				cond = skill.JoinAnd(cond, skill.PlayerActiveSkill(x, -1))
			}
		case "active_skill_id_lvl":
			if id, sl, ok := c.decodePair(v, lvl, n); ok {
				cond = skill.JoinAnd(cond, skill.PlayerActiveSkill(id, sl))
			}
		case "class_id_restriction":
			if ids, ok := c.intList(v, noLevel, n); ok {
				cond = skill.JoinAnd(cond, skill.PlayerClassIDs(ids))
			}
		case "subclass":
			cond = skill.JoinAnd(cond, skill.PlayerSubclass(parseBool(v)))
		case "instanceid":
			if ids, ok := c.intList(v, noLevel, n); ok {
				cond = skill.JoinAnd(cond, skill.PlayerInstanceIDs(ids))
			}
		case "agathionid":
			if x, ok := c.decodeInt(v, n); ok {
				cond = skill.JoinAnd(cond, skill.PlayerAgathionID(x))
			}
		case "cloakstatus":
			cond = skill.JoinAnd(cond, skill.PlayerCloakStatus(parseBool(v)))
		case "haspet":
			if ids, ok := c.intList(v, noLevel, n); ok {
				cond = skill.JoinAnd(cond, skill.PlayerHasPet(ids))
			}
		case "hasservitor":
			cond = skill.JoinAnd(cond, skill.PlayerHasServitor())
		case "hasagathion":
			cond = skill.JoinAnd(cond, skill.PlayerHasAgathion(parseBool(v)))
		case "agathionenergy":
			if x, ok := c.decodeInt(c.value(v, noLevel), n); ok {
				cond = skill.JoinAnd(cond, skill.PlayerAgathionEnergy(x))
			}
		case "npcidradius":
			if leaf, ok := c.npcRadiusLeaf(v, lvl, n); ok {
				cond = skill.JoinAnd(cond, leaf)
			}
		case "callpc":
			cond = skill.JoinAnd(cond, skill.PlayerCan("callpc", parseBool(v)))
		case "cancreatebase":
			cond = skill.JoinAnd(cond, skill.PlayerCan("createbase", parseBool(v)))
		case "cancreateoutpost":
			cond = skill.JoinAnd(cond, skill.PlayerCan("createoutpost", parseBool(v)))
		case "canescape":
			cond = skill.JoinAnd(cond, skill.PlayerCan("escape", parseBool(v)))
		case "canrefuelairship":
			if x, ok := c.decodeInt(v, n); ok {
				cond = skill.JoinAnd(cond, skill.PlayerCan("refuelairship", x != 0))
			}
		case "canresurrect":
			cond = skill.JoinAnd(cond, skill.PlayerCan("resurrect", parseBool(v)))
		case "cansummon":
			cond = skill.JoinAnd(cond, skill.PlayerCan("summon", parseBool(v)))
		case "cansummonsiegegolem":
			cond = skill.JoinAnd(cond, skill.PlayerCan("summonsiegegolem", parseBool(v)))
		case "cansweep":
			cond = skill.JoinAnd(cond, skill.PlayerCan("sweep", parseBool(v)))
		case "cantakecastle":
			cond = skill.JoinAnd(cond, skill.PlayerCan("takecastle", true))
		case "cantakefort":
			cond = skill.JoinAnd(cond, skill.PlayerCan("takefort", parseBool(v)))
		case "cantransform":
			cond = skill.JoinAnd(cond, skill.PlayerCan("transform", parseBool(v)))
		case "canuntransform":
			cond = skill.JoinAnd(cond, skill.PlayerCan("untransform", parseBool(v)))
		case "insidezoneid":
			if ids, ok := c.intList(v, noLevel, n); ok {
				cond = skill.JoinAnd(cond, skill.PlayerInsideZoneIDs(ids))
			}
		case "checkabnormal":
			if leaf, ok := c.abnormalLeaf(skill.LeafPlayer, v, lvl, n); ok {
				cond = skill.JoinAnd(cond, leaf)
			}
		case "categorytype":
			if cats, ok := c.categoryList(v, n); ok {
				cond = skill.JoinAnd(cond, skill.PlayerCategories(cats))
			}
		default:
			slog.Warn("unrecognized <player> condition",
				"file", c.file, "skill_id", c.id, "attr", a.name, "line", n.line)
		}
	}
	if cond == nil {
		slog.Error("empty <player> condition", "file", c.file, "skill_id", c.id, "line", n.line)
	}
	return cond
}

// parseTargetCondition compiles one <target> element.
func (c *defCompiler) parseTargetCondition(n *xmlNode, curLevel int) skill.Condition {
	var cond skill.Condition
	lvl := levelRef(curLevel)
	for _, a := range n.attrs {
		v := a.value
		switch strings.ToLower(a.name) {
		case "aggro":
			cond = skill.JoinAnd(cond, skill.TargetAggro(parseBool(v)))
		case "siegezone":
			if x, ok := c.decodeInt(c.value(v, noLevel), n); ok {
				cond = skill.JoinAnd(cond, skill.TargetSiegeZone(x))
			}
		case "level":
			if x, ok := c.decodeInt(c.value(v, lvl), n); ok {
				cond = skill.JoinAnd(cond, skill.TargetLevel(x))
			}
		case "levelrange":
			if lo, hi, ok := c.decodeRange(c.value(v, lvl), n); ok {
				cond = skill.JoinAnd(cond, skill.TargetLevelRange(lo, hi))
			}
		case "myparty":
			cond = skill.JoinAnd(cond, skill.TargetMyParty(v))
		case "playable":
			cond = skill.JoinAnd(cond, skill.TargetPlayable())
		case "class_id_restriction":
			if ids, ok := c.intList(v, noLevel, n); ok {
				cond = skill.JoinAnd(cond, skill.TargetClassIDs(ids))
			}
		case "active_effect_id":
			if x, ok := c.decodeInt(c.value(v, lvl), n); ok {
				cond = skill.JoinAnd(cond, skill.TargetActiveEffect(x, -1))
			}
		case "active_effect_id_lvl":
			if id, el, ok := c.decodePair(v, lvl, n); ok {
				cond = skill.JoinAnd(cond, skill.TargetActiveEffect(id, el))
			}
		case "active_skill_id":
			if x, ok := c.decodeInt(c.value(v, lvl), n); ok {
				cond = skill.JoinAnd(cond, skill.TargetActiveSkill(x, -1))
			}
		case "active_skill_id_lvl":
			if id, sl, ok := c.decodePair(v, lvl, n); ok {
				cond = skill.JoinAnd(cond, skill.TargetActiveSkill(id, sl))
			}
		case "abnormal":
			if x, ok := c.decodeInt(c.value(v, lvl), n); ok {
				cond = skill.JoinAnd(cond, skill.TargetAbnormal(x))
			}
		case "mindistance":
			if x, ok := c.decodeInt(c.value(v, noLevel), n); ok {
				// Радиус возводится в квадрат один раз при компиляции.
				d := float64(x)
				cond = skill.JoinAnd(cond, skill.TargetMinDistanceSq(d*d))
			}
		case "race":
			race, err := skill.ParseRace(v)
			if err != nil {
				slog.Warn("unknown target race", "file", c.file, "skill_id", c.id, "race", v, "line", n.line)
				continue
			}
			cond = skill.JoinAnd(cond, skill.TargetRace(race))
		case "using":
			cond = skill.JoinAnd(cond, skill.TargetUsingKind(c.kindMask(v, n)))
		case "npcid":
			if ids, ok := c.intList(v, noLevel, n); ok {
				cond = skill.JoinAnd(cond, skill.TargetNpcIDs(ids))
			}
		case "npctype":
			if types, ok := c.npcTypeList(c.value(v, lvl), n); ok {
				cond = skill.JoinAnd(cond, skill.TargetNpcTypes(types))
			}
		case "weight":
			if x, ok := c.decodeInt(c.value(v, noLevel), n); ok {
				cond = skill.JoinAnd(cond, skill.TargetWeight(x))
			}
		case "invsize":
			if x, ok := c.decodeInt(c.value(v, noLevel), n); ok {
				cond = skill.JoinAnd(cond, skill.TargetInvSize(x))
			}
		case "checkabnormal":
			if leaf, ok := c.abnormalLeaf(skill.LeafTarget, v, lvl, n); ok {
				cond = skill.JoinAnd(cond, leaf)
			}
		default:
			slog.Warn("unrecognized <target> condition",
				"file", c.file, "skill_id", c.id, "attr", a.name, "line", n.line)
		}
	}
	if cond == nil {
		slog.Error("empty <target> condition", "file", c.file, "skill_id", c.id, "line", n.line)
	}
	return cond
}

// parseUsingCondition compiles one <using> element.
func (c *defCompiler) parseUsingCondition(n *xmlNode) skill.Condition {
	var cond skill.Condition
	for _, a := range n.attrs {
		v := a.value
		switch strings.ToLower(a.name) {
		case "kind":
			cond = skill.JoinAnd(cond, skill.UsingKind(c.kindMask(v, n)))
		case "slot":
			var mask int64
			for _, tok := range strings.Split(v, ",") {
				tok = strings.TrimSpace(tok)
				m, ok := skill.SlotMasks[tok]
				if !ok {
					slog.Warn("unknown item slot name", "file", c.file, "skill_id", c.id, "slot", tok, "line", n.line)
					continue
				}
				mask |= m
			}
			cond = skill.JoinAnd(cond, skill.UsingSlot(mask))
		case "skill":
			if x, ok := c.decodeInt(v, n); ok {
				cond = skill.JoinAnd(cond, skill.UsingSkill(x))
			}
		case "slotitem":
			parts := strings.Split(v, ";")
			if len(parts) < 2 {
				slog.Warn("malformed slotitem condition", "file", c.file, "skill_id", c.id, "val", v, "line", n.line)
				continue
			}
			itemID, ok1 := c.decodeInt(strings.TrimSpace(parts[0]), n)
			slot, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
			if !ok1 || err != nil {
				slog.Warn("malformed slotitem condition", "file", c.file, "skill_id", c.id, "val", v, "line", n.line)
				continue
			}
			var enchant int32
			if len(parts) > 2 {
				enchant, _ = c.decodeInt(strings.TrimSpace(parts[2]), n)
			}
			cond = skill.JoinAnd(cond, skill.UsingSlotItem(slot, itemID, enchant))
		case "weaponchange":
			cond = skill.JoinAnd(cond, skill.UsingWeaponChange(parseBool(v)))
		default:
			slog.Warn("unrecognized <using> condition",
				"file", c.file, "skill_id", c.id, "attr", a.name, "line", n.line)
		}
	}
	if cond == nil {
		slog.Error("empty <using> condition", "file", c.file, "skill_id", c.id, "line", n.line)
	}
	return cond
}

// parseGameCondition compiles one <game> element.
func (c *defCompiler) parseGameCondition(n *xmlNode, curLevel int) skill.Condition {
	var cond skill.Condition
	for _, a := range n.attrs {
		switch strings.ToLower(a.name) {
		case "skill":
			cond = skill.JoinAnd(cond, skill.GameWithSkill(parseBool(a.value)))
		case "night":
			cond = skill.JoinAnd(cond, skill.GameNight(parseBool(a.value)))
		case "chance":
			if x, ok := c.decodeInt(c.value(a.value, noLevel), n); ok {
				cond = skill.JoinAnd(cond, skill.GameChance(x))
			}
		default:
			slog.Warn("unrecognized <game> condition",
				"file", c.file, "skill_id", c.id, "attr", a.name, "line", n.line)
		}
	}
	if cond == nil {
		slog.Error("empty <game> condition", "file", c.file, "skill_id", c.id, "line", n.line)
	}
	return cond
}

// --- условные хелперы ---

func parseBool(v string) bool {
	b, _ := strconv.ParseBool(strings.TrimSpace(v))
	return b
}

// decodeRange parses "min;max".
func (c *defCompiler) decodeRange(v string, n *xmlNode) (int32, int32, bool) {
	parts := strings.Split(v, ";")
	if len(parts) != 2 {
		slog.Warn("malformed range value", "file", c.file, "skill_id", c.id, "val", v, "line", n.line)
		return 0, 0, false
	}
	lo, ok1 := c.decodeInt(parts[0], n)
	hi, ok2 := c.decodeInt(parts[1], n)
	return lo, hi, ok1 && ok2
}

// decodePair parses "a,b" where both halves may be table references.
func (c *defCompiler) decodePair(v string, lvl levelRef, n *xmlNode) (int32, int32, bool) {
	resolved := c.value(v, lvl)
	parts := strings.Split(resolved, ",")
	if len(parts) != 2 {
		slog.Warn("malformed pair value", "file", c.file, "skill_id", c.id, "val", v, "line", n.line)
		return 0, 0, false
	}
	a, ok1 := c.decodeInt(c.value(strings.TrimSpace(parts[0]), lvl), n)
	b, ok2 := c.decodeInt(c.value(strings.TrimSpace(parts[1]), lvl), n)
	return a, b, ok1 && ok2
}

func (c *defCompiler) intList(v string, lvl levelRef, n *xmlNode) ([]int32, bool) {
	var out []int32
	for _, tok := range strings.Split(v, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		x, ok := c.decodeInt(c.value(tok, lvl), n)
		if !ok {
			return nil, false
		}
		out = append(out, x)
	}
	return out, len(out) > 0
}

func (c *defCompiler) raceList(v string, n *xmlNode) ([]skill.Race, bool) {
	var out []skill.Race
	for _, tok := range strings.Split(v, ",") {
		tok = strings.TrimSpace(tok)
		race, err := skill.ParseRace(tok)
		if err != nil {
			slog.Warn("unknown race", "file", c.file, "skill_id", c.id, "race", tok, "line", n.line)
			return nil, false
		}
		out = append(out, race)
	}
	return out, len(out) > 0
}

func (c *defCompiler) categoryList(v string, n *xmlNode) ([]skill.CategoryType, bool) {
	var out []skill.CategoryType
	for _, tok := range strings.Split(v, ",") {
		tok = strings.TrimSpace(tok)
		cat, err := skill.ParseCategoryType(c.value(tok, noLevel))
		if err != nil {
			slog.Warn("unknown category type", "file", c.file, "skill_id", c.id, "category", tok, "line", n.line)
			return nil, false
		}
		out = append(out, cat)
	}
	return out, len(out) > 0
}

func (c *defCompiler) npcTypeList(v string, n *xmlNode) ([]skill.NpcType, bool) {
	var out []skill.NpcType
	for _, tok := range strings.Split(strings.TrimSpace(v), ",") {
		tok = strings.TrimSpace(tok)
		t, err := skill.ParseNpcType(tok)
		if err != nil {
			slog.Warn("unknown npc type", "file", c.file, "skill_id", c.id, "type", tok, "line", n.line)
			return nil, false
		}
		out = append(out, t)
	}
	return out, len(out) > 0
}

// kindMask resolves a comma-separated weapon/armor kind list into a mask.
// Unknown tokens are reported and skipped.
func (c *defCompiler) kindMask(v string, n *xmlNode) int32 {
	var mask int32
	for _, tok := range strings.Split(v, ",") {
		tok = strings.TrimSpace(tok)
		m := skill.ItemKindMask(tok)
		if m == 0 {
			slog.Warn("unknown item kind name", "file", c.file, "skill_id", c.id, "kind", tok, "line", n.line)
			continue
		}
		mask |= m
	}
	return mask
}

// npcRadiusLeaf parses "id1;id2,radius,flag".
func (c *defCompiler) npcRadiusLeaf(v string, lvl levelRef, n *xmlNode) (skill.Condition, bool) {
	parts := strings.Split(v, ",")
	if len(parts) != 3 {
		slog.Warn("malformed npcidradius condition", "file", c.file, "skill_id", c.id, "val", v, "line", n.line)
		return nil, false
	}
	var ids []int32
	for _, tok := range strings.Split(parts[0], ";") {
		x, ok := c.decodeInt(c.value(strings.TrimSpace(tok), lvl), n)
		if !ok {
			return nil, false
		}
		ids = append(ids, x)
	}
	radius, ok := c.decodeInt(strings.TrimSpace(parts[1]), n)
	if !ok {
		return nil, false
	}
	return skill.PlayerRangeFromNpc(ids, radius, parseBool(parts[2])), true
}

// abnormalLeaf parses the "TYPE;level;mustHave" form. A bare type token
// means level 1, mustHave.
func (c *defCompiler) abnormalLeaf(cat skill.LeafCategory, v string, lvl levelRef, n *xmlNode) (skill.Condition, bool) {
	parts := strings.Split(v, ";")
	typ, err := skill.ParseAbnormalType(strings.TrimSpace(parts[0]))
	if err != nil {
		slog.Warn("unknown abnormal type", "file", c.file, "skill_id", c.id, "type", parts[0], "line", n.line)
		return nil, false
	}
	if len(parts) == 1 {
		return skill.CheckAbnormal(cat, typ, 1, true), true
	}
	if len(parts) != 3 {
		slog.Warn("malformed checkabnormal condition", "file", c.file, "skill_id", c.id, "val", v, "line", n.line)
		return nil, false
	}
	level, ok := c.decodeInt(c.value(strings.TrimSpace(parts[1]), lvl), n)
	if !ok {
		return nil, false
	}
	return skill.CheckAbnormal(cat, typ, level, parseBool(parts[2])), true
}
