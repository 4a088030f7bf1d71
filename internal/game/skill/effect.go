package skill

import "fmt"

// EffectScope — фаза жизненного цикла скилла, к которой привязан эффект.
type EffectScope int8

const (
	ScopeGeneral EffectScope = iota
	ScopePassive
	ScopeStart
	ScopeChanneling
	ScopePve
	ScopePvp
	ScopeEnd
	ScopeSelf

	scopeCount
)

var scopeNames = [...]string{
	ScopeGeneral:    "general",
	ScopePassive:    "passive",
	ScopeStart:      "start",
	ScopeChanneling: "channeling",
	ScopePve:        "pve",
	ScopePvp:        "pvp",
	ScopeEnd:        "end",
	ScopeSelf:       "self",
}

func (s EffectScope) String() string {
	if s < 0 || int(s) >= len(scopeNames) {
		return fmt.Sprintf("EffectScope(%d)", int8(s))
	}
	return scopeNames[s]
}

// Scopes lists every lifecycle scope in declaration order.
func Scopes() []EffectScope {
	out := make([]EffectScope, scopeCount)
	for i := range out {
		out[i] = EffectScope(i)
	}
	return out
}

// Effect — скомпилированный экземпляр эффекта уровня скилла.
// Поведение эффекта живёт в боевой системе и диспатчится по Kind;
// здесь только контракт привязки: атрибуты, параметры, гарды и
// вложенные модификаторы статов.
type Effect struct {
	Kind       string
	Set        *StatsSet
	Params     *StatsSet // nil when the declaration has no param block
	AttachCond Condition
	ApplyCond  Condition
	Scope      EffectScope

	// Stat functions declared inside the effect element attach here,
	// not to the owning skill.
	Funcs []*FuncTemplate
}

// AttachFunc appends a stat function to the effect.
func (e *Effect) AttachFunc(f *FuncTemplate) {
	e.Funcs = append(e.Funcs, f)
}

// Attachable reports whether the attach guard passes for env.
func (e *Effect) Attachable(env *Env) bool {
	return e.AttachCond == nil || e.AttachCond.Test(env)
}

// Applicable reports whether the apply-time condition passes for env.
func (e *Effect) Applicable(env *Env) bool {
	return e.ApplyCond == nil || e.ApplyCond.Test(env)
}

// EffectFactory — внешний коллаборатор, создающий эффекты по имени вида.
// Компилятор скиллов передаёт сюда атрибуты и параметры декларации.
type EffectFactory interface {
	CreateEffect(kind string, set, params *StatsSet, attachCond, applyCond Condition) (*Effect, error)
}
