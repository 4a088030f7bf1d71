package skill

// Weapon and armor kind masks. One shared bit space so a single "kind"
// attribute can mix weapon and armor tokens, как в исходных XML.

// WeaponKind masks.
const (
	WeaponSword int32 = 1 << iota
	WeaponBlunt
	WeaponDagger
	WeaponBow
	WeaponPole
	WeaponNone // fists
	WeaponDual
	WeaponEtc
	WeaponFist
	WeaponDualFist
	WeaponFishingRod
	WeaponRapier
	WeaponAncientSword
	WeaponCrossbow
	WeaponFlag
	WeaponOwnThing
	WeaponDualDagger
)

// ArmorKind masks continue the same bit space after the weapon kinds.
const (
	ArmorNone int32 = 1 << (17 + iota)
	ArmorLight
	ArmorHeavy
	ArmorMagic
	ArmorSigil
	ArmorShield
)

var weaponKindNames = map[string]int32{
	"SWORD":        WeaponSword,
	"BLUNT":        WeaponBlunt,
	"DAGGER":       WeaponDagger,
	"BOW":          WeaponBow,
	"POLE":         WeaponPole,
	"NONE":         WeaponNone,
	"DUAL":         WeaponDual,
	"ETC":          WeaponEtc,
	"FIST":         WeaponFist,
	"DUALFIST":     WeaponDualFist,
	"FISHINGROD":   WeaponFishingRod,
	"RAPIER":       WeaponRapier,
	"ANCIENTSWORD": WeaponAncientSword,
	"CROSSBOW":     WeaponCrossbow,
	"FLAG":         WeaponFlag,
	"OWNTHING":     WeaponOwnThing,
	"DUALDAGGER":   WeaponDualDagger,
}

var armorKindNames = map[string]int32{
	"ARMOR_NONE": ArmorNone,
	"LIGHT":      ArmorLight,
	"HEAVY":      ArmorHeavy,
	"MAGIC":      ArmorMagic,
	"SIGIL":      ArmorSigil,
	"SHIELD":     ArmorShield,
}

// ItemKindMask resolves a single weapon/armor kind token to its mask bit.
// Returns 0 for unknown tokens; the compiler logs and keeps going.
func ItemKindMask(token string) int32 {
	if m, ok := weaponKindNames[token]; ok {
		return m
	}
	if m, ok := armorKindNames[token]; ok {
		return m
	}
	return 0
}

// Equipment slot masks (L2Item SLOT_* names as they appear in XML).
const (
	SlotNone      int64 = 0x0000
	SlotUnderwear int64 = 0x0001
	SlotREar      int64 = 0x0002
	SlotLEar      int64 = 0x0004
	SlotNeck      int64 = 0x0008
	SlotRFinger   int64 = 0x0010
	SlotLFinger   int64 = 0x0020
	SlotHead      int64 = 0x0040
	SlotRHand     int64 = 0x0080
	SlotLHand     int64 = 0x0100
	SlotGloves    int64 = 0x0200
	SlotChest     int64 = 0x0400
	SlotLegs      int64 = 0x0800
	SlotFeet      int64 = 0x1000
	SlotBack      int64 = 0x2000
	SlotLRHand    int64 = 0x4000
	SlotFullArmor int64 = 0x8000
	SlotHair      int64 = 0x010000
	SlotWolf      int64 = 0x020000
	SlotHatchling int64 = 0x100000
	SlotStrider   int64 = 0x200000
	SlotBabyPet   int64 = 0x400000
	SlotHair2     int64 = 0x080000
	SlotHairAll   int64 = 0x080000 | 0x010000
	SlotRBracelet int64 = 0x100000000
	SlotLBracelet int64 = 0x200000000
	SlotDeco      int64 = 0x400000000
	SlotBelt      int64 = 0x10000000000
)

// SlotMasks maps XML slot names to slot mask bits.
var SlotMasks = map[string]int64{
	"none":            SlotNone,
	"underwear":       SlotUnderwear,
	"rear;lear":       SlotREar | SlotLEar,
	"rear":            SlotREar,
	"lear":            SlotLEar,
	"neck":            SlotNeck,
	"rfinger":         SlotRFinger,
	"lfinger":         SlotLFinger,
	"rfinger;lfinger": SlotRFinger | SlotLFinger,
	"head":            SlotHead,
	"rhand":           SlotRHand,
	"lhand":           SlotLHand,
	"gloves":          SlotGloves,
	"chest":           SlotChest,
	"legs":            SlotLegs,
	"feet":            SlotFeet,
	"back":            SlotBack,
	"lrhand":          SlotLRHand,
	"fullarmor":       SlotFullArmor,
	"onepiece":        SlotFullArmor,
	"hair":            SlotHair,
	"hair2":           SlotHair2,
	"hairall":         SlotHairAll,
	"wolf":            SlotWolf,
	"hatchling":       SlotHatchling,
	"strider":         SlotStrider,
	"babypet":         SlotBabyPet,
	"rbracelet":       SlotRBracelet,
	"lbracelet":       SlotLBracelet,
	"deco1":           SlotDeco,
	"waist":           SlotBelt,
}
