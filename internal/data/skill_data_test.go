package data

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/teralith/interlude/internal/game/skill"
)

// stubRoutes — тестовый реестр маршрутов заточки с фиксированными
// размерами групп.
type stubRoutes struct {
	levels map[int]int
}

func (s stubRoutes) RouteLevels(skillID, baseLevel, route, groupID int) int {
	return s.levels[groupID]
}

func writeSkillFile(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("writing fixture %s: %v", name, err)
	}
}

func loadSkills(t *testing.T, routes EnchantRouteRegistry, files map[string]string) *SkillData {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		writeSkillFile(t, dir, name, body)
	}
	d := NewSkillData(skill.DefaultRegistry(), routes)
	if err := d.Load(context.Background(), dir); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return d
}

func noRoutes() EnchantRouteRegistry {
	return stubRoutes{levels: map[int]int{}}
}

func TestLoadBaseLevels(t *testing.T) {
	d := loadSkills(t, noRoutes(), map[string]string{
		"power_strike.xml": `<?xml version="1.0" encoding="UTF-8"?>
<list>
  <skill id="100" levels="3" name="Power Strike">
    <table name="#power">10 20 30</table>
    <set name="power" val="#power"/>
    <set name="operateType" val="A1"/>
    <set name="mpConsume" val="9"/>
  </skill>
</list>`,
	})

	if got := d.Count(); got != 3 {
		t.Fatalf("Count() = %d, want 3", got)
	}

	sk, err := d.Skill(100, 2)
	if err != nil {
		t.Fatalf("Skill(100, 2): %v", err)
	}
	if sk.Level != 2 {
		t.Errorf("level = %d, want 2", sk.Level)
	}
	if got := sk.Set.Float("power", 0); got != 20 {
		t.Errorf("power at level 2 = %v, want 20", got)
	}
	if got := sk.Name; got != "Power Strike" {
		t.Errorf("name = %q", got)
	}
	if got := sk.MpConsume(); got != 9 {
		t.Errorf("mpConsume = %d, want 9", got)
	}
}

func TestSkillClampsToMaxLevel(t *testing.T) {
	d := loadSkills(t, noRoutes(), map[string]string{
		"power_strike.xml": `<list>
  <skill id="100" levels="3" name="Power Strike">
    <table name="#power">10 20 30</table>
    <set name="power" val="#power"/>
  </skill>
</list>`,
	})

	sk, err := d.Skill(100, 99)
	if err != nil {
		t.Fatalf("Skill(100, 99): %v", err)
	}
	if sk.Level != 3 {
		t.Errorf("clamped level = %d, want 3", sk.Level)
	}
	if got := sk.Set.Float("power", 0); got != 30 {
		t.Errorf("clamped power = %v, want 30", got)
	}

	if _, err := d.Skill(999, 1); !errors.Is(err, ErrSkillNotFound) {
		t.Errorf("Skill(999, 1) err = %v, want ErrSkillNotFound", err)
	}
	// Level below max without a record is still a miss: clamp only
	// rounds down from above the max.
	if _, err := d.Skill(100, 0); !errors.Is(err, ErrSkillNotFound) {
		t.Errorf("Skill(100, 0) err = %v, want ErrSkillNotFound", err)
	}
}

func TestTableResolvedFuncValue(t *testing.T) {
	d := loadSkills(t, noRoutes(), map[string]string{
		"fury.xml": `<list>
  <skill id="200" levels="3" name="Fury">
    <table name="#dmg">5 10 15</table>
    <set name="operateType" val="P"/>
    <effects>
      <effect name="Buff">
        <add stat="pAtk" val="#dmg"/>
      </effect>
    </effects>
  </skill>
</list>`,
	})

	sk, err := d.Skill(200, 2)
	if err != nil {
		t.Fatalf("Skill(200, 2): %v", err)
	}
	if !sk.IsPassive() {
		t.Fatal("operateType=P should be passive")
	}
	effs := sk.Effects(skill.ScopePassive)
	if len(effs) != 1 {
		t.Fatalf("passive effects = %d, want 1", len(effs))
	}
	if len(effs[0].Funcs) != 1 {
		t.Fatalf("effect funcs = %d, want 1", len(effs[0].Funcs))
	}
	f := effs[0].Funcs[0]
	if f.Value != 10 {
		t.Errorf("func value at level 2 = %v, want 10 (#dmg[1])", f.Value)
	}
	if f.Op != skill.OpAdd {
		t.Errorf("op = %v, want add", f.Op)
	}
	if f.Order != -1 {
		t.Errorf("order = %d, want default -1", f.Order)
	}
	if f.Stat != "pAtk" {
		t.Errorf("stat = %q, want pAtk", f.Stat)
	}
}

func TestEnchantRouteLevelsAndFallback(t *testing.T) {
	routes := stubRoutes{levels: map[int]int{7: 2}}
	d := loadSkills(t, routes, map[string]string{
		"route.xml": `<list>
  <skill id="300" levels="5" name="Route Skill" enchantGroup3="7">
    <table name="#mp">10 20 30 40 50</table>
    <set name="mpConsume" val="#mp"/>
    <cond msg="not ready"><player level="60"/></cond>
    <effects>
      <effect name="Heal"/>
    </effects>
    <enchant3Effects>
      <effect name="Buff"/>
    </enchant3Effects>
  </skill>
</list>`,
	})

	// 5 базовых + 2 уровня маршрута 3.
	if got := d.Count(); got != 7 {
		t.Fatalf("Count() = %d, want 7", got)
	}

	// Route 3, step index 1 => numeric level 302.
	sk, err := d.Skill(300, 302)
	if err != nil {
		t.Fatalf("Skill(300, 302): %v", err)
	}

	// Attribute records inherit from the final base level.
	if got := sk.MpConsume(); got != 50 {
		t.Errorf("route mpConsume = %d, want base max 50", got)
	}

	// Effects declared for the route win; base effects are not added.
	gen := sk.Effects(skill.ScopeGeneral)
	if len(gen) != 1 || gen[0].Kind != "Buff" {
		t.Fatalf("route effects = %+v, want single Buff", gen)
	}

	// The eligibility condition is gap-filled from the final base level.
	if len(sk.PreConditions) != 1 {
		t.Fatalf("preconditions = %d, want 1 inherited", len(sk.PreConditions))
	}
	base, err := d.Skill(300, 5)
	if err != nil {
		t.Fatalf("Skill(300, 5): %v", err)
	}
	for _, env := range []struct {
		level int32
		want  bool
	}{{59, false}, {60, true}} {
		e := &skill.Env{Actor: &skill.Actor{Level: env.level}}
		if got := sk.PreConditions[0].Test(e); got != env.want {
			t.Errorf("route cond at level %d = %v, want %v", env.level, got, env.want)
		}
		if got, want := base.PreConditions[0].Test(e), sk.PreConditions[0].Test(e); got != want {
			t.Errorf("route cond diverges from base cond at level %d", env.level)
		}
	}
	msg, _, _ := sk.PreConditions[0].Message()
	if msg != "not ready" {
		t.Errorf("inherited message = %q, want %q", msg, "not ready")
	}
}

func TestRouteCategoryNeverOverwritten(t *testing.T) {
	routes := stubRoutes{levels: map[int]int{4: 1}}
	d := loadSkills(t, routes, map[string]string{
		"route.xml": `<list>
  <skill id="310" levels="2" name="Guarded" enchantGroup1="4">
    <cond msg="base gate"><player level="40"/></cond>
    <enchant1cond msg="route gate"><player level="76"/></enchant1cond>
    <effects>
      <effect name="Heal"/>
    </effects>
  </skill>
</list>`,
	})

	sk, err := d.Skill(310, 101)
	if err != nil {
		t.Fatalf("Skill(310, 101): %v", err)
	}
	// The route declared its own cond: exactly one precondition and it is
	// the route's, not the base one stacked on top.
	if len(sk.PreConditions) != 1 {
		t.Fatalf("preconditions = %d, want 1", len(sk.PreConditions))
	}
	msg, _, _ := sk.PreConditions[0].Message()
	if msg != "route gate" {
		t.Errorf("message = %q, want route's own", msg)
	}
	e := &skill.Env{Actor: &skill.Actor{Level: 50}}
	if sk.PreConditions[0].Test(e) {
		t.Error("route cond should require level 76, passed at 50")
	}

	// Effects, however, were omitted for the route and fall back to base.
	gen := sk.Effects(skill.ScopeGeneral)
	if len(gen) != 1 || gen[0].Kind != "Heal" {
		t.Fatalf("fallback effects = %+v, want single Heal", gen)
	}
}

func TestScopedEffectBlocks(t *testing.T) {
	d := loadSkills(t, noRoutes(), map[string]string{
		"scoped.xml": `<list>
  <skill id="320" levels="1" name="Scoped">
    <startEffects>
      <effect name="Stun"/>
    </startEffects>
    <pvpEffects>
      <effect name="Debuff"/>
    </pvpEffects>
    <selfEffects>
      <effect name="Buff"/>
    </selfEffects>
  </skill>
</list>`,
	})

	sk, err := d.Skill(320, 1)
	if err != nil {
		t.Fatalf("Skill(320, 1): %v", err)
	}
	checks := []struct {
		scope skill.EffectScope
		kind  string
	}{
		{skill.ScopeStart, "Stun"},
		{skill.ScopePvp, "Debuff"},
		{skill.ScopeSelf, "Buff"},
	}
	for _, c := range checks {
		effs := sk.Effects(c.scope)
		if len(effs) != 1 || effs[0].Kind != c.kind {
			t.Errorf("scope %s effects = %+v, want single %s", c.scope, effs, c.kind)
		}
	}
	if got := sk.Effects(skill.ScopeGeneral); len(got) != 0 {
		t.Errorf("general scope should be empty, got %d", len(got))
	}
}

func TestNestedEffectDropsDefinition(t *testing.T) {
	d := loadSkills(t, noRoutes(), map[string]string{
		"bad.xml": `<list>
  <skill id="330" levels="1" name="Nested">
    <effects>
      <effect name="Buff">
        <effect name="Heal"/>
      </effect>
    </effects>
  </skill>
  <skill id="331" levels="1" name="Fine">
    <set name="power" val="5"/>
  </skill>
</list>`,
	})

	if _, err := d.Skill(330, 1); !errors.Is(err, ErrSkillNotFound) {
		t.Errorf("nested-effect definition should be dropped, err = %v", err)
	}
	// Остальные определения файла продолжают грузиться.
	if _, err := d.Skill(331, 1); err != nil {
		t.Errorf("sibling definition lost: %v", err)
	}
	if got := d.Dropped(); got != 1 {
		t.Errorf("Dropped() = %d, want 1", got)
	}
}

func TestMalformedFileSkipped(t *testing.T) {
	d := loadSkills(t, noRoutes(), map[string]string{
		"broken.xml": `<list><skill id="340" levels="1"`,
		"good.xml": `<list>
  <skill id="341" levels="1" name="Good">
    <set name="power" val="1"/>
  </skill>
</list>`,
	})

	if _, err := d.Skill(341, 1); err != nil {
		t.Errorf("good file should survive a broken sibling: %v", err)
	}
	if _, err := d.Skill(340, 1); !errors.Is(err, ErrSkillNotFound) {
		t.Errorf("broken file should be skipped, err = %v", err)
	}
}

func TestMaxLevelIgnoresEnchantLevels(t *testing.T) {
	routes := stubRoutes{levels: map[int]int{9: 3}}
	d := loadSkills(t, routes, map[string]string{
		"route.xml": `<list>
  <skill id="350" levels="4" name="Enchanted" enchantGroup1="9"/>
  <skill id="351" levels="2" name="Plain"/>
</list>`,
	})

	if got := d.MaxLevel(350); got != 4 {
		t.Errorf("MaxLevel(350) = %d, want 4 (levels >99 never count)", got)
	}
	if got := d.MaxLevel(351); got != 2 {
		t.Errorf("MaxLevel(351) = %d, want 2", got)
	}
	if got := d.MaxLevel(999); got != 0 {
		t.Errorf("MaxLevel(999) = %d, want 0", got)
	}

	if !d.IsEnchantable(350) {
		t.Error("IsEnchantable(350) = false, want true")
	}
	if d.IsEnchantable(351) {
		t.Error("IsEnchantable(351) = true, want false")
	}
}

func TestSiegeSkills(t *testing.T) {
	files := map[string]string{
		"siege.xml": `<list>
  <skill id="246" levels="1" name="Seal of Ruler"/>
  <skill id="247" levels="1" name="Build Headquarters"/>
  <skill id="326" levels="1" name="Build Advanced Headquarters"/>
  <skill id="844" levels="1" name="Outpost Construction"/>
  <skill id="845" levels="1" name="Outpost Demolition"/>
</list>`,
	}
	d := loadSkills(t, noRoutes(), files)

	full := d.SiegeSkills(true, true)
	if len(full) != 5 {
		t.Fatalf("SiegeSkills(true, true) = %d entries, want 5", len(full))
	}
	wantIDs := []int{246, 247, 326, 844, 845}
	for i, sk := range full {
		if sk == nil {
			t.Fatalf("entry %d is nil", i)
		}
		if sk.ID != wantIDs[i] || sk.Level != 1 {
			t.Errorf("entry %d = (%d, %d), want (%d, 1)", i, sk.ID, sk.Level, wantIDs[i])
		}
	}

	if got := len(d.SiegeSkills(false, false)); got != 2 {
		t.Errorf("SiegeSkills(false, false) = %d entries, want 2", got)
	}
	if got := len(d.SiegeSkills(true, false)); got != 3 {
		t.Errorf("SiegeSkills(true, false) = %d entries, want 3", got)
	}
}

func TestReloadSwapsTableAtomically(t *testing.T) {
	dir := t.TempDir()
	writeSkillFile(t, dir, "a.xml", `<list>
  <skill id="400" levels="1" name="First">
    <set name="power" val="1"/>
  </skill>
</list>`)

	d := NewSkillData(skill.DefaultRegistry(), noRoutes())
	if err := d.Load(context.Background(), dir); err != nil {
		t.Fatalf("first Load: %v", err)
	}
	if _, err := d.Skill(400, 1); err != nil {
		t.Fatalf("Skill(400, 1): %v", err)
	}

	writeSkillFile(t, dir, "a.xml", `<list>
  <skill id="401" levels="1" name="Second">
    <set name="power" val="2"/>
  </skill>
</list>`)
	if err := d.Load(context.Background(), dir); err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if _, err := d.Skill(401, 1); err != nil {
		t.Errorf("new table missing new skill: %v", err)
	}
	if _, err := d.Skill(400, 1); !errors.Is(err, ErrSkillNotFound) {
		t.Errorf("old table leaked into new one, err = %v", err)
	}
}

func TestCapsuledItemsSkill(t *testing.T) {
	d := loadSkills(t, noRoutes(), map[string]string{
		"extract.xml": `<list>
  <skill id="360" levels="2" name="Extract">
    <table name="#extractableItems">1873,3,100 1874,2,100</table>
    <set name="capsuled_items_skill" val="#extractableItems"/>
  </skill>
</list>`,
	})

	sk, err := d.Skill(360, 2)
	if err != nil {
		t.Fatalf("Skill(360, 2): %v", err)
	}
	if got := sk.Set.String("capsuled_items_skill", ""); got != "1874,2,100" {
		t.Errorf("capsuled_items_skill = %q, want level-2 table entry", got)
	}
}
