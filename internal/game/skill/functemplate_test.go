package skill

import "testing"

func TestFuncTemplateApply(t *testing.T) {
	cases := []struct {
		name    string
		op      FuncOp
		value   float64
		base    float64
		enchant int32
		want    float64
	}{
		{"add", OpAdd, 15, 100, 0, 115},
		{"sub", OpSub, 30, 100, 0, 70},
		{"mul", OpMul, 1.1, 200, 0, 220},
		{"div", OpDiv, 2, 90, 0, 45},
		{"div by zero keeps base", OpDiv, 0, 90, 0, 90},
		{"set", OpSet, 40, 100, 0, 40},
		{"share", OpShare, 0.3, 100, 0, 130},
		{"enchant scales", OpEnchant, 2, 100, 5, 110},
		{"enchant at zero", OpEnchant, 2, 100, 0, 100},
		{"enchanthp scales", OpEnchantHp, 3, 50, 4, 62},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := &FuncTemplate{Op: tc.op, Stat: "pAtk", Value: tc.value}
			if got := f.Apply(nil, tc.base, tc.enchant); got != tc.want {
				t.Errorf("Apply(%v, %v) = %v, want %v", tc.base, tc.enchant, got, tc.want)
			}
		})
	}
}

func TestFuncTemplateApplyCond(t *testing.T) {
	f := &FuncTemplate{
		Op:        OpAdd,
		Stat:      "pAtk",
		Value:     50,
		ApplyCond: PlayerLevel(40),
	}
	low := &Env{Actor: &Actor{Level: 39}}
	high := &Env{Actor: &Actor{Level: 40}}

	if got := f.Apply(low, 100, 0); got != 100 {
		t.Errorf("failed apply cond must keep base, got %v", got)
	}
	if got := f.Apply(high, 100, 0); got != 150 {
		t.Errorf("passing apply cond must modify, got %v", got)
	}
}

func TestFuncTemplateAttachable(t *testing.T) {
	unguarded := &FuncTemplate{Op: OpAdd, Stat: "pDef", Value: 1}
	if !unguarded.Attachable(nil) {
		t.Error("nil attach cond means always attachable")
	}
	guarded := &FuncTemplate{Op: OpAdd, Stat: "pDef", Value: 1, AttachCond: PlayerHero(true)}
	if guarded.Attachable(&Env{Actor: &Actor{}}) {
		t.Error("failed attach cond must block")
	}
	if !guarded.Attachable(&Env{Actor: &Actor{Hero: true}}) {
		t.Error("passing attach cond must allow")
	}
}

func TestSortFuncsStable(t *testing.T) {
	a := &FuncTemplate{Op: OpAdd, Order: 10}
	b := &FuncTemplate{Op: OpMul, Order: -1}
	c := &FuncTemplate{Op: OpSub, Order: 10}
	d := &FuncTemplate{Op: OpSet, Order: 0}
	funcs := []*FuncTemplate{a, b, c, d}

	SortFuncs(funcs)

	want := []*FuncTemplate{b, d, a, c}
	for i := range want {
		if funcs[i] != want[i] {
			t.Fatalf("order after sort: pos %d is %+v", i, funcs[i])
		}
	}
}

func TestParseFuncOp(t *testing.T) {
	for name, want := range map[string]FuncOp{
		"add": OpAdd, "sub": OpSub, "mul": OpMul, "div": OpDiv,
		"set": OpSet, "share": OpShare, "enchant": OpEnchant, "enchanthp": OpEnchantHp,
	} {
		got, err := ParseFuncOp(name)
		if err != nil {
			t.Errorf("ParseFuncOp(%q): %v", name, err)
		}
		if got != want {
			t.Errorf("ParseFuncOp(%q) = %v, want %v", name, got, want)
		}
	}
	if _, err := ParseFuncOp("concat"); err == nil {
		t.Error("unknown op must fail")
	}
}

func TestParseStat(t *testing.T) {
	if _, err := ParseStat("pAtk"); err != nil {
		t.Errorf("pAtk must parse: %v", err)
	}
	if _, err := ParseStat("patk"); err == nil {
		t.Error("stat names are case-sensitive")
	}
	if _, err := ParseStat("charisma"); err == nil {
		t.Error("unknown stat must fail")
	}
}
