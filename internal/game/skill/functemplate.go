package skill

import (
	"fmt"
	"sort"
)

// FuncOp — операция числового модификатора стата.
type FuncOp int8

const (
	OpAdd FuncOp = iota
	OpSub
	OpMul
	OpDiv
	OpSet
	OpShare     // contributes a share of the base value (servitor stat share)
	OpEnchant   // flat bonus scaled by item enchant level
	OpEnchantHp // resource bonus scaled by item enchant level
)

var funcOpNames = map[string]FuncOp{
	"add":       OpAdd,
	"sub":       OpSub,
	"mul":       OpMul,
	"div":       OpDiv,
	"set":       OpSet,
	"share":     OpShare,
	"enchant":   OpEnchant,
	"enchanthp": OpEnchantHp,
}

// ParseFuncOp resolves a mutation element name to its operation.
func ParseFuncOp(s string) (FuncOp, error) {
	op, ok := funcOpNames[s]
	if !ok {
		return 0, fmt.Errorf("unknown function op: %q", s)
	}
	return op, nil
}

// Stat — идентификатор стата из закрытого перечисления.
type Stat string

var statNames = map[Stat]bool{
	"maxHp": true, "maxMp": true, "maxCp": true,
	"regHp": true, "regMp": true, "regCp": true,
	"pAtk": true, "mAtk": true, "pDef": true, "mDef": true,
	"pAtkSpd": true, "mAtkSpd": true, "atkReuse": true, "magicReuse": true,
	"critRate": true, "mCritRate": true, "blowRate": true,
	"runSpd": true, "walkSpd": true,
	"accCombat": true, "evasRate": true,
	"shldRate": true, "shldDef": true,
	"STR": true, "DEX": true, "CON": true, "INT": true, "WIT": true, "MEN": true,
	"power": true, "magicLvl": true,
	"pvpPhysDmg": true, "pvpMagicalDmg": true, "pvpPhysSkillsDmg": true,
	"pveMagicalDmg": true, "pvePhysDmg": true, "pvePhysSkillsDmg": true,
	"physDamageResist": true, "magicDamageResist": true,
	"bleedRes": true, "poisonRes": true, "stunRes": true, "rootRes": true,
	"sleepRes": true, "paralyzeRes": true, "derangementRes": true,
	"fireRes": true, "waterRes": true, "windRes": true, "earthRes": true,
	"holyRes": true, "darkRes": true,
	"firePower": true, "waterPower": true, "windPower": true,
	"earthPower": true, "holyPower": true, "darkPower": true,
	"hpConsumeRate": true, "mpConsumeRate": true, "mpConsume": true,
	"weightLimit": true, "inventoryLimit": true,
	"breath": true, "fallSafeHeight": true, "expRate": true, "spRate": true,
	"cancel": true, "skillMastery": true, "castleGuardCost": true,
}

// ParseStat validates a stat token against the closed enumeration.
func ParseStat(s string) (Stat, error) {
	st := Stat(s)
	if !statNames[st] {
		return "", fmt.Errorf("unknown stat: %q", s)
	}
	return st, nil
}

// FuncTemplate — скомпилированный числовой модификатор стата.
// AttachCond проверяется один раз при выдаче уровня; ApplyCond — при каждом
// пересчёте стата. Order задаёт детерминированный порядок применения
// нескольких модификаторов одного стата (-1 = без явного порядка).
type FuncTemplate struct {
	AttachCond Condition
	ApplyCond  Condition
	Op         FuncOp
	Order      int32
	Stat       Stat
	Value      float64
}

// Attachable reports whether the attach guard passes for env.
func (f *FuncTemplate) Attachable(env *Env) bool {
	return f.AttachCond == nil || f.AttachCond.Test(env)
}

// Apply computes the modified stat value. ApplyCond failures leave base
// untouched. enchant is the owning item's enchant level (0 for skills).
func (f *FuncTemplate) Apply(env *Env, base float64, enchant int32) float64 {
	if f.ApplyCond != nil && !f.ApplyCond.Test(env) {
		return base
	}
	switch f.Op {
	case OpAdd:
		return base + f.Value
	case OpSub:
		return base - f.Value
	case OpMul:
		return base * f.Value
	case OpDiv:
		if f.Value == 0 {
			return base
		}
		return base / f.Value
	case OpSet:
		return f.Value
	case OpShare:
		return base + base*f.Value
	case OpEnchant, OpEnchantHp:
		return base + f.Value*float64(enchant)
	default:
		return base
	}
}

// SortFuncs orders templates by Order ascending, keeping source order for
// equal keys (ties разрешаются детерминированно).
func SortFuncs(funcs []*FuncTemplate) {
	sort.SliceStable(funcs, func(i, j int) bool {
		return funcs[i].Order < funcs[j].Order
	})
}
