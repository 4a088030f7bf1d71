package skill

import "fmt"

// Race — раса персонажа/цели.
type Race int8

const (
	RaceHuman Race = iota
	RaceElf
	RaceDarkElf
	RaceOrc
	RaceDwarf
	RaceKamael
	RaceAnimal
	RaceBeast
	RaceBug
	RaceConstruct
	RaceDemonic
	RaceDivine
	RaceDragon
	RaceElemental
	RaceEtc
	RaceFairy
	RaceGiant
	RaceHumanoid
	RacePlant
	RaceUndead
)

var raceNames = map[string]Race{
	"HUMAN":     RaceHuman,
	"ELF":       RaceElf,
	"DARK_ELF":  RaceDarkElf,
	"ORC":       RaceOrc,
	"DWARF":     RaceDwarf,
	"KAMAEL":    RaceKamael,
	"ANIMAL":    RaceAnimal,
	"BEAST":     RaceBeast,
	"BUG":       RaceBug,
	"CONSTRUCT": RaceConstruct,
	"DEMONIC":   RaceDemonic,
	"DIVINE":    RaceDivine,
	"DRAGON":    RaceDragon,
	"ELEMENTAL": RaceElemental,
	"ETC":       RaceEtc,
	"FAIRY":     RaceFairy,
	"GIANT":     RaceGiant,
	"HUMANOID":  RaceHumanoid,
	"PLANT":     RacePlant,
	"UNDEAD":    RaceUndead,
}

// ParseRace resolves a race token. Unknown tokens are an error so the
// compiler can drop the predicate.
func ParseRace(s string) (Race, error) {
	r, ok := raceNames[s]
	if !ok {
		return 0, fmt.Errorf("unknown race: %q", s)
	}
	return r, nil
}

// PlayerState — именованное булево состояние актора.
type PlayerState int8

const (
	StateResting PlayerState = iota
	StateFlying
	StateMoving
	StateRunning
	StateStanding
	StateBehind // flanking target from behind
	StateFront  // flanking target from the front
	StateChaotic
	StateOlympiad
)

// Sex values follow the client convention: 0 male, 1 female.

// AbnormalType — тип абнормального состояния (STUN, ROOT, ...).
// Closed set; compile-time validation drops predicates with unknown tokens.
type AbnormalType string

var abnormalTypes = map[AbnormalType]bool{
	"BLEEDING": true, "POISON": true, "STUN": true, "ROOT": true,
	"SLEEP": true, "PARALYZE": true, "SILENCE": true, "FEAR": true,
	"CONFUSION": true, "HOLD": true, "DERANGEMENT": true, "SPEED_UP": true,
	"SPEED_DOWN": true, "PA_UP": true, "PA_DOWN": true, "MA_UP": true,
	"MA_DOWN": true, "PD_UP": true, "PD_DOWN": true, "MD_UP": true,
	"MD_DOWN": true, "CRITICAL_PROB_UP": true, "CRITICAL_PROB_DOWN": true,
	"ATTACK_TIME_UP": true, "ATTACK_TIME_DOWN": true, "CASTING_TIME_UP": true,
	"CASTING_TIME_DOWN": true, "HP_REGEN_UP": true, "HP_REGEN_DOWN": true,
	"MP_REGEN_UP": true, "MP_REGEN_DOWN": true, "INVINCIBILITY": true,
	"STEALTH": true, "BERSERKER": true, "TRANSFORM": true, "DISARM": true,
	"MULTI_BUFF": true, "VOTE": true, "SEED_OF_KNIGHT": true,
	"PUBLIC_SLOT": true, "TURN_FLEE": true, "MAGIC_SQUARE": true,
}

// ParseAbnormalType validates a token against the known abnormal set.
func ParseAbnormalType(s string) (AbnormalType, error) {
	t := AbnormalType(s)
	if !abnormalTypes[t] {
		return "", fmt.Errorf("unknown abnormal type: %q", s)
	}
	return t, nil
}

// CategoryType — категория класса/существа.
type CategoryType string

var categoryTypes = map[CategoryType]bool{
	"FIGHTER_GROUP": true, "MAGE_GROUP": true, "WIZARD_GROUP": true,
	"CLERIC_GROUP": true, "FIRST_CLASS_GROUP": true, "SECOND_CLASS_GROUP": true,
	"THIRD_CLASS_GROUP": true, "FOURTH_CLASS_GROUP": true, "BOUNTY_HUNTER_GROUP": true,
	"WARSMITH_GROUP": true, "STRIDER": true, "WOLF_GROUP": true,
	"SUMMON_GROUP": true, "KNIGHT_GROUP": true, "WHITE_MAGIC_GROUP": true,
	"HEAL_GROUP": true, "ATTACK_SUMMON_GROUP": true, "DEFENSE_SUMMON_GROUP": true,
}

// ParseCategoryType validates a category token.
func ParseCategoryType(s string) (CategoryType, error) {
	c := CategoryType(s)
	if !categoryTypes[c] {
		return "", fmt.Errorf("unknown category type: %q", s)
	}
	return c, nil
}

// NpcType — тип NPC с иерархией наследования (L2Monster ⊂ L2Attackable ⊂ L2Npc).
type NpcType int8

const (
	NpcTypeCharacter NpcType = iota // hierarchy root
	NpcTypePlayable
	NpcTypePlayer
	NpcTypeSummon
	NpcTypePet
	NpcTypeNpc
	NpcTypeAttackable
	NpcTypeGuard
	NpcTypeMonster
	NpcTypeChest
	NpcTypeRaidBoss
	NpcTypeGrandBoss
	NpcTypeFriendlyMob
	NpcTypeDoor
)

// npcTypeParent maps each type to its parent; NpcTypeCharacter is the root.
var npcTypeParent = map[NpcType]NpcType{
	NpcTypePlayable:    NpcTypeCharacter,
	NpcTypePlayer:      NpcTypePlayable,
	NpcTypeSummon:      NpcTypePlayable,
	NpcTypePet:         NpcTypeSummon,
	NpcTypeNpc:         NpcTypeCharacter,
	NpcTypeAttackable:  NpcTypeNpc,
	NpcTypeGuard:       NpcTypeAttackable,
	NpcTypeMonster:     NpcTypeAttackable,
	NpcTypeChest:       NpcTypeMonster,
	NpcTypeRaidBoss:    NpcTypeMonster,
	NpcTypeGrandBoss:   NpcTypeRaidBoss,
	NpcTypeFriendlyMob: NpcTypeAttackable,
	NpcTypeDoor:        NpcTypeCharacter,
}

var npcTypeNames = map[string]NpcType{
	"L2Character":   NpcTypeCharacter,
	"L2Playable":    NpcTypePlayable,
	"L2PcInstance":  NpcTypePlayer,
	"L2Summon":      NpcTypeSummon,
	"L2Pet":         NpcTypePet,
	"L2Npc":         NpcTypeNpc,
	"L2Attackable":  NpcTypeAttackable,
	"L2Guard":       NpcTypeGuard,
	"L2Monster":     NpcTypeMonster,
	"L2Chest":       NpcTypeChest,
	"L2RaidBoss":    NpcTypeRaidBoss,
	"L2GrandBoss":   NpcTypeGrandBoss,
	"L2FriendlyMob": NpcTypeFriendlyMob,
	"L2Door":        NpcTypeDoor,
}

// ParseNpcType resolves a type tag.
func ParseNpcType(s string) (NpcType, error) {
	t, ok := npcTypeNames[s]
	if !ok {
		return 0, fmt.Errorf("unknown npc type: %q", s)
	}
	return t, nil
}

// IsType reports whether t is want or inherits from it.
func (t NpcType) IsType(want NpcType) bool {
	for {
		if t == want {
			return true
		}
		p, ok := npcTypeParent[t]
		if !ok {
			return false
		}
		t = p
	}
}
