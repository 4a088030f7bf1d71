package skill

import "math/rand/v2"

// Env — снимок состояния мира на момент проверки условия.
// Заполняется боевой логикой перед кастом; проверки условий чистые,
// не блокируют и не мутируют снимок.
type Env struct {
	Actor  *Actor
	Target *Target
	Equip  *Equipment
	World  *World
}

// Actor describes the casting character at evaluation time.
type Actor struct {
	Race    Race
	Level   int32
	Sex     int32 // 0 male, 1 female
	ClassID int32
	Hero    bool

	// Resource percentages 0..100.
	HpPercent int32
	MpPercent int32
	CpPercent int32

	States map[PlayerState]bool

	PkCount     int32
	Charges     int32
	Souls       int32
	WeightPct   int32 // carried weight as percent of limit
	InvSizeLeft int32 // free inventory slots
	PledgeClass int32
	Grade       int32

	ClanLeader     bool
	Subclass       bool
	CloakOpen      bool
	HasServitor    bool
	FlyMounted     bool
	VehicleMounted bool
	LandingZone    bool

	TransformationID int32
	AgathionID       int32
	AgathionEnergy   int32

	ClanHallID int32
	FortID     int32
	CastleID   int32
	SiegeFlags int32
	SiegeSide  int32

	InstanceID int32
	ZoneIDs    map[int32]bool

	// Active effect/skill id → level.
	ActiveEffects map[int32]int32
	ActiveSkills  map[int32]int32

	Abnormals  map[AbnormalType]int32
	Categories map[CategoryType]bool

	PetID int32 // npc id of the current pet, 0 when none

	// Distance to the nearest npc per npc id, in game units.
	NpcDistances map[int32]float64

	// Capability flags ("summon", "resurrect", "sweep", ...).
	Can map[string]bool
}

// HasState reports a named state; nil map means all states false.
func (a *Actor) HasState(s PlayerState) bool {
	return a != nil && a.States[s]
}

// Target describes the current target at evaluation time.
type Target struct {
	Aggro   bool
	Level   int32
	Race    Race
	ClassID int32

	ActiveEffects map[int32]int32
	ActiveSkills  map[int32]int32
	Abnormals     map[AbnormalType]int32
	AbnormalID    int32

	// Squared distance from actor to target.
	DistanceSq float64

	// Weapon/armor kind mask currently in use by the target.
	UsingKindMask int32

	NpcID   int32
	NpcType NpcType

	WeightPct   int32
	InvSizeLeft int32

	InActorParty bool
	IsActor      bool // target is the actor itself (self-target)
	Playable     bool
	SiegeFlags   int32
}

// Equipment describes the actor's worn items.
type Equipment struct {
	// Kind mask of the equipped weapon plus worn armor kinds.
	KindMask int32

	// Mask of occupied equip slots.
	SlotsUsed int64

	// Item skill ids granted by equipped items.
	ItemSkills map[int32]bool

	// Equipped item id and enchant level per slot mask.
	Items map[int64]EquippedItem

	WeaponChanged bool
}

// EquippedItem — предмет в слоте.
type EquippedItem struct {
	ID      int32
	Enchant int32
}

// World describes session/world state.
type World struct {
	// Actor has usable entries on the skill bar.
	WithSkills bool
	Night      bool

	// Roll decides integer-percentage chance leaves. Nil falls back to
	// the process-wide PRNG.
	Roll func(chance int32) bool
}

// RollChance resolves a chance leaf against the snapshot.
func (w *World) RollChance(chance int32) bool {
	if w != nil && w.Roll != nil {
		return w.Roll(chance)
	}
	return rand.Int32N(100) < chance
}
