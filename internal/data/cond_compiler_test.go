package data

import (
	"strings"
	"testing"

	"github.com/teralith/interlude/internal/game/skill"
)

func condParser(t *testing.T, tables map[string][]string) *defCompiler {
	t.Helper()
	if tables == nil {
		tables = map[string][]string{}
	}
	return &defCompiler{file: "test.xml", id: 1, name: "Test", tables: tables}
}

func parseFrag(t *testing.T, body string) *xmlNode {
	t.Helper()
	n, err := parseXMLTree(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parsing fragment: %v", err)
	}
	return n
}

func TestParseConditionTree(t *testing.T) {
	c := condParser(t, nil)
	n := parseFrag(t, `<and>
  <player level="10" hp="60"/>
  <not><using kind="BOW"/></not>
  <or>
    <game night="true"/>
    <target mindistance="100"/>
  </or>
</and>`)

	cond := c.parseCondition(n, 0)
	if cond == nil {
		t.Fatal("compiled condition is nil")
	}

	base := func() *skill.Env {
		return &skill.Env{
			Actor:  &skill.Actor{Level: 12, HpPercent: 50},
			Equip:  &skill.Equipment{KindMask: skill.WeaponSword},
			Target: &skill.Target{DistanceSq: 0},
			World:  &skill.World{Night: true},
		}
	}

	if e := base(); !cond.Test(e) {
		t.Error("satisfying env should pass")
	}

	e := base()
	e.Actor.Level = 9
	if cond.Test(e) {
		t.Error("level below 10 should fail")
	}

	e = base()
	e.Actor.HpPercent = 61
	if cond.Test(e) {
		t.Error("hp above threshold should fail")
	}

	e = base()
	e.Equip.KindMask = skill.WeaponBow
	if cond.Test(e) {
		t.Error("bow in hand should fail the <not> branch")
	}

	// Night is off but the target stands far enough for the <or>.
	e = base()
	e.World.Night = false
	e.Target.DistanceSq = 100 * 100
	if !cond.Test(e) {
		t.Error("mindistance branch should satisfy the <or>")
	}
	e.Target.DistanceSq = 99 * 99
	if cond.Test(e) {
		t.Error("neither <or> branch holds, tree should fail")
	}
}

func TestUnknownAttributeKeepsSiblings(t *testing.T) {
	c := condParser(t, nil)
	n := parseFrag(t, `<player bogus="1" level="5"/>`)

	cond := c.parseCondition(n, 0)
	if cond == nil {
		t.Fatal("known sibling attribute must survive the unknown one")
	}
	if cond.Test(&skill.Env{Actor: &skill.Actor{Level: 4}}) {
		t.Error("level leaf lost")
	}
	if !cond.Test(&skill.Env{Actor: &skill.Actor{Level: 5}}) {
		t.Error("level leaf should pass at exactly 5")
	}
}

func TestCheckAbnormalForms(t *testing.T) {
	c := condParser(t, nil)

	// Bare type means level 1, mustHave.
	cond := c.parseCondition(parseFrag(t, `<player checkabnormal="STUN"/>`), 0)
	if cond == nil {
		t.Fatal("bare form must compile")
	}
	stunned := &skill.Env{Actor: &skill.Actor{Abnormals: map[skill.AbnormalType]int32{"STUN": 1}}}
	if !cond.Test(stunned) {
		t.Error("bare form requires the abnormal present")
	}
	if cond.Test(&skill.Env{Actor: &skill.Actor{}}) {
		t.Error("bare form must fail without the abnormal")
	}

	// Three-field form with mustHave false.
	cond = c.parseCondition(parseFrag(t, `<player checkabnormal="STUN;2;false"/>`), 0)
	if cond == nil {
		t.Fatal("three-field form must compile")
	}
	if !cond.Test(&skill.Env{Actor: &skill.Actor{}}) {
		t.Error("mustHave=false passes on a clean actor")
	}

	// Two fields is malformed; the sibling leaf survives.
	cond = c.parseCondition(parseFrag(t, `<player checkabnormal="STUN;2" level="5"/>`), 0)
	if cond == nil {
		t.Fatal("sibling leaf must survive")
	}
	if !cond.Test(&skill.Env{Actor: &skill.Actor{Level: 5}}) {
		t.Error("only the level leaf should remain")
	}
}

func TestTableReferenceInCondition(t *testing.T) {
	c := condParser(t, map[string][]string{"#lvl": {"10", "20"}})
	n := parseFrag(t, `<player level="#lvl"/>`)

	cond := c.parseCondition(n, 1)
	if cond == nil {
		t.Fatal("compiled condition is nil")
	}
	if cond.Test(&skill.Env{Actor: &skill.Actor{Level: 19}}) {
		t.Error("second table entry is 20, 19 should fail")
	}
	if !cond.Test(&skill.Env{Actor: &skill.Actor{Level: 20}}) {
		t.Error("second table entry is 20, 20 should pass")
	}
}

func TestUsingSlotItemCondition(t *testing.T) {
	c := condParser(t, nil)
	n := parseFrag(t, `<using slotitem="6847;128;3"/>`)

	cond := c.parseCondition(n, 0)
	if cond == nil {
		t.Fatal("compiled condition is nil")
	}
	env := &skill.Env{Equip: &skill.Equipment{
		Items: map[int64]skill.EquippedItem{128: {ID: 6847, Enchant: 3}},
	}}
	if !cond.Test(env) {
		t.Error("matching item at required enchant should pass")
	}
	env.Equip.Items[128] = skill.EquippedItem{ID: 6847, Enchant: 2}
	if cond.Test(env) {
		t.Error("enchant below required should fail")
	}
	env.Equip.Items[128] = skill.EquippedItem{ID: 6848, Enchant: 5}
	if cond.Test(env) {
		t.Error("wrong item id should fail")
	}
}

func TestUsingSlotNames(t *testing.T) {
	c := condParser(t, nil)
	n := parseFrag(t, `<using slot="chest,legs"/>`)

	cond := c.parseCondition(n, 0)
	if cond == nil {
		t.Fatal("compiled condition is nil")
	}
	if !cond.Test(&skill.Env{Equip: &skill.Equipment{SlotsUsed: skill.SlotLegs}}) {
		t.Error("legs occupied should pass")
	}
	if cond.Test(&skill.Env{Equip: &skill.Equipment{SlotsUsed: skill.SlotHead}}) {
		t.Error("unrelated slot should fail")
	}
}

func TestEmptyLogicAndCompilesButFails(t *testing.T) {
	c := condParser(t, nil)
	n := parseFrag(t, `<and><unknown/></and>`)

	cond := c.parseCondition(n, 0)
	if cond == nil {
		t.Fatal("empty <and> still compiles to a node")
	}
	if cond.Test(&skill.Env{Actor: &skill.Actor{Level: 99}}) {
		t.Error("empty <and> must never pass")
	}
}

func TestGameChanceUsesWorldRoll(t *testing.T) {
	c := condParser(t, nil)
	n := parseFrag(t, `<game chance="30"/>`)

	cond := c.parseCondition(n, 0)
	if cond == nil {
		t.Fatal("compiled condition is nil")
	}
	var got int32
	env := &skill.Env{World: &skill.World{Roll: func(chance int32) bool {
		got = chance
		return true
	}}}
	if !cond.Test(env) {
		t.Error("roll returned true, leaf should pass")
	}
	if got != 30 {
		t.Errorf("rolled chance = %d, want 30", got)
	}
}
