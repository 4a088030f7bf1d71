package skill

import (
	"fmt"
	"strings"
)

// OperateType — способ применения скила.
type OperateType string

const (
	OperateActive  OperateType = "A1"
	OperatePassive OperateType = "P"
	OperateToggle  OperateType = "T"
)

// Skill — скомпилированная запись одного уровня скила. Все значения уже
// разрешены: таблиц и ссылок здесь нет.
type Skill struct {
	ID    int
	Level int
	Name  string

	operateType string
	magicLevel  int
	castRange   int
	hitTime     int
	reuseDelay  int
	mpConsume   int
	hpConsume   int

	// Set хранит полный набор атрибутов уровня, включая те, которые
	// боевая система читает напрямую.
	Set *StatsSet

	// PreConditions проверяются перед началом каста.
	PreConditions []Condition

	funcs   [scopeCount][]*FuncTemplate
	effects [scopeCount][]*Effect
}

// NewSkill compiles the resolved per-level attribute set into a skill record.
func NewSkill(set *StatsSet) (*Skill, error) {
	id := int(set.Int("skill_id", -1))
	level := int(set.Int("level", -1))
	if id < 0 || level < 1 {
		return nil, fmt.Errorf("skill set missing id/level: id=%d level=%d", id, level)
	}
	s := &Skill{
		ID:          id,
		Level:       level,
		Name:        set.String("name", ""),
		operateType: set.String("operateType", "A1"),
		magicLevel:  int(set.Int("magicLvl", 0)),
		castRange:   int(set.Int("castRange", -1)),
		hitTime:     int(set.Int("hitTime", 0)),
		reuseDelay:  int(set.Int("reuseDelay", 0)),
		mpConsume:   int(set.Int("mpConsume", 0)),
		hpConsume:   int(set.Int("hpConsume", 0)),
		Set:         set,
	}
	return s, nil
}

// HashCode returns the composite key used by the repository table.
func (s *Skill) HashCode() int {
	return SkillHashCode(s.ID, s.Level)
}

// SkillHashCode packs a skill id and level into a single table key.
// Levels are expected to stay below 1021.
func SkillHashCode(id, level int) int {
	return id*1021 + level
}

// IsPassive reports whether the skill never casts and only attaches stat
// functions while known.
func (s *Skill) IsPassive() bool {
	return strings.HasPrefix(s.operateType, "P")
}

// IsToggle reports whether the skill stays active until switched off.
func (s *Skill) IsToggle() bool {
	return strings.HasPrefix(s.operateType, "T")
}

func (s *Skill) MagicLevel() int { return s.magicLevel }
func (s *Skill) CastRange() int  { return s.castRange }
func (s *Skill) HitTime() int    { return s.hitTime }
func (s *Skill) ReuseDelay() int { return s.reuseDelay }
func (s *Skill) MpConsume() int  { return s.mpConsume }
func (s *Skill) HpConsume() int  { return s.hpConsume }

// AttachPreCondition appends a compiled cast precondition.
func (s *Skill) AttachPreCondition(c Condition) {
	if c == nil {
		return
	}
	s.PreConditions = append(s.PreConditions, c)
}

// CheckPreConditions tests every attached precondition against the snapshot.
// The first failing condition stops the walk; its message is returned.
func (s *Skill) CheckPreConditions(env *Env) (bool, string) {
	for _, c := range s.PreConditions {
		if !c.Test(env) {
			msg, _, _ := c.Message()
			return false, msg
		}
	}
	return true, ""
}

// AddFunc files a stat function template under its lifecycle scope.
func (s *Skill) AddFunc(scope EffectScope, f *FuncTemplate) {
	if f == nil {
		return
	}
	s.funcs[scope] = append(s.funcs[scope], f)
}

// AddEffect files a compiled effect under its lifecycle scope.
func (s *Skill) AddEffect(scope EffectScope, e *Effect) {
	if e == nil {
		return
	}
	e.Scope = scope
	s.effects[scope] = append(s.effects[scope], e)
}

// Funcs returns the stat function templates attached under the scope.
func (s *Skill) Funcs(scope EffectScope) []*FuncTemplate {
	return s.funcs[scope]
}

// Effects returns the compiled effects attached under the scope.
func (s *Skill) Effects(scope EffectScope) []*Effect {
	return s.effects[scope]
}

// HasEffects reports whether any scope carries at least one effect.
func (s *Skill) HasEffects() bool {
	for _, list := range s.effects {
		if len(list) > 0 {
			return true
		}
	}
	return false
}

// StatFuncs returns the templates whose attach condition passes for the
// snapshot, sorted by application order.
func (s *Skill) StatFuncs(scope EffectScope, env *Env) []*FuncTemplate {
	list := s.funcs[scope]
	if len(list) == 0 {
		return nil
	}
	out := make([]*FuncTemplate, 0, len(list))
	for _, f := range list {
		if f.Attachable(env) {
			out = append(out, f)
		}
	}
	SortFuncs(out)
	return out
}
