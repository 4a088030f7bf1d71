package skill

import "fmt"

// Registry — дефолтная EffectFactory поверх списка известных видов эффектов.
// Боевая система регистрирует свои виды при старте; компилятор отклоняет
// неизвестные имена.
type Registry struct {
	kinds map[string]bool
}

// NewRegistry creates an empty effect registry.
func NewRegistry() *Registry {
	return &Registry{kinds: make(map[string]bool)}
}

// RegisterKind registers an effect kind name.
func (r *Registry) RegisterKind(name string) {
	r.kinds[name] = true
}

// Known reports whether the kind is registered.
func (r *Registry) Known(name string) bool {
	return r.kinds[name]
}

// CreateEffect builds a compiled effect instance for a registered kind.
func (r *Registry) CreateEffect(kind string, set, params *StatsSet, attachCond, applyCond Condition) (*Effect, error) {
	if !r.kinds[kind] {
		return nil, fmt.Errorf("unknown effect kind: %q", kind)
	}
	return &Effect{
		Kind:       kind,
		Set:        set,
		Params:     params,
		AttachCond: attachCond,
		ApplyCond:  applyCond,
	}, nil
}

// DefaultRegistry returns a registry pre-seeded with the effect kinds the
// combat system implements.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, name := range []string{
		"Buff",
		"Debuff",
		"PhysicalDamage",
		"MagicalDamage",
		"Heal",
		"HealOverTime",
		"MpHeal",
		"HpDrain",
		"DamOverTime",
		"ManaDamOverTime",
		"Stun",
		"Root",
		"Paralyze",
		"Sleep",
		"Fear",
		"Mute",
		"CancelTarget",
		"DispelByCategory",
		"DispelBySlot",
		"Resurrection",
		"Escape",
		"Teleport",
		"Summon",
		"SummonAgathion",
		"SummonCubic",
		"Transformation",
		"TargetCancel",
		"Sweeper",
		"TakeCastle",
		"RefuelAirship",
	} {
		r.RegisterKind(name)
	}
	return r
}
