package data

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/teralith/interlude/internal/game/skill"
)

// maxEnchantRoutes — число независимых маршрутов заточки на скилл.
const maxEnchantRoutes = 8

// defCompiler компилирует одно определение скилла. Контекст (таблицы,
// текущий уровень) живёт только внутри одного вызова compile, утечки
// состояния между определениями нет.
type defCompiler struct {
	file    string
	factory skill.EffectFactory
	enchant EnchantRouteRegistry

	id     int
	name   string
	tables map[string][]string
}

// scopeTags maps lifecycle block tag names to their effect scope.
// The unscoped "effects" block is filed under general or passive at
// attach time, depending on the owning skill.
var scopeTags = []struct {
	tag    string
	scope  skill.EffectScope
	scoped bool
}{
	{"effects", skill.ScopeGeneral, false},
	{"starteffects", skill.ScopeStart, true},
	{"channelingeffects", skill.ScopeChanneling, true},
	{"pveeffects", skill.ScopePve, true},
	{"pvpeffects", skill.ScopePvp, true},
	{"endeffects", skill.ScopeEnd, true},
	{"selfeffects", skill.ScopeSelf, true},
}

// foundSlots = условие + семь блоков эффектов, отслеживаемых fallback-проходом.
const foundSlots = 1 + 7

// compile turns one <skill> element into its full list of level records:
// base levels 1..N and, per declared route r, enchant levels 100*r+1+i.
// Returns an error when the whole definition must be dropped.
func (c *defCompiler) compile(n *xmlNode) ([]*skill.Skill, error) {
	idStr, ok := n.Attr("id")
	if !ok {
		return nil, fmt.Errorf("skill element without id (line %d)", n.line)
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return nil, fmt.Errorf("skill id %q: %w", idStr, err)
	}
	name := n.AttrDefault("name", "")
	lastLvl, err := strconv.Atoi(n.AttrDefault("levels", ""))
	if err != nil || lastLvl < 1 {
		return nil, fmt.Errorf("skill id=%d: bad levels attribute %q", id, n.AttrDefault("levels", ""))
	}

	c.id = id
	c.name = name
	c.tables = make(map[string][]string)

	var routeLevels [maxEnchantRoutes]int
	for r := 1; r <= maxEnchantRoutes; r++ {
		groupStr, ok := n.Attr(fmt.Sprintf("enchantGroup%d", r))
		if !ok {
			continue
		}
		groupID, err := strconv.Atoi(groupStr)
		if err != nil {
			return nil, fmt.Errorf("skill id=%d: bad enchantGroup%d %q", id, r, groupStr)
		}
		routeLevels[r-1] = c.enchant.RouteLevels(id, lastLvl, r, groupID)
	}

	// Таблицы компилируются до заполнения первой записи уровня.
	for _, ch := range n.children {
		if ch.name == "table" {
			if err := c.parseTable(ch); err != nil {
				return nil, err
			}
		}
	}

	sets := c.expandLevels(n, lastLvl, routeLevels)

	skills, err := c.makeSkills(sets, lastLvl, routeLevels)
	if err != nil {
		return nil, err
	}

	if err := c.attachBaseLevels(n, skills, lastLvl); err != nil {
		return nil, err
	}
	if err := c.attachRouteLevels(n, skills, lastLvl, routeLevels); err != nil {
		return nil, err
	}
	return skills, nil
}

// parseTable registers one substitution table. One token per declared level.
func (c *defCompiler) parseTable(n *xmlNode) error {
	name, ok := n.Attr("name")
	if !ok || !strings.HasPrefix(name, "#") {
		return fmt.Errorf("skill id=%d: table name must start with # (line %d)", c.id, n.line)
	}
	c.tables[name] = strings.Fields(n.Text())
	return nil
}

// expandLevels allocates one attribute record per base level and per route
// level, each pre-seeded with skill_id, level and name.
func (c *defCompiler) expandLevels(n *xmlNode, lastLvl int, routeLevels [maxEnchantRoutes]int) []*skill.StatsSet {
	total := lastLvl
	for _, rl := range routeLevels {
		total += rl
	}
	sets := make([]*skill.StatsSet, 0, total)

	for i := 1; i <= lastLvl; i++ {
		set := c.seedSet(i)
		for _, ch := range n.children {
			if ch.name != "set" {
				continue
			}
			c.parseBeanSet(ch, set, i)
		}
		sets = append(sets, set)
	}

	for r := 1; r <= maxEnchantRoutes; r++ {
		enchTag := fmt.Sprintf("enchant%d", r)
		for i := 0; i < routeLevels[r-1]; i++ {
			set := c.seedSet(100*r + 1 + i)
			// База берётся с последнего обычного уровня, затем
			// перекрывается значениями маршрута с индексом шага.
			for _, ch := range n.children {
				if ch.name == "set" {
					c.parseBeanSet(ch, set, lastLvl)
				}
			}
			for _, ch := range n.children {
				if ch.name == enchTag {
					c.parseBeanSet(ch, set, i+1)
				}
			}
			sets = append(sets, set)
		}
	}
	return sets
}

func (c *defCompiler) seedSet(level int) *skill.StatsSet {
	set := skill.NewStatsSet()
	set.Set("skill_id", strconv.Itoa(c.id))
	set.Set("level", strconv.Itoa(level))
	set.Set("name", c.name)
	return set
}

// parseBeanSet resolves one <set>/<enchantN> attribute pair into the record.
// idx is the 1-based table index for this record.
func (c *defCompiler) parseBeanSet(n *xmlNode, set *skill.StatsSet, idx int) {
	name := strings.TrimSpace(n.AttrDefault("name", ""))
	value := strings.TrimSpace(n.AttrDefault("val", ""))
	if name == "" {
		slog.Warn("set element without name", "file", c.file, "skill_id", c.id, "line", n.line)
		return
	}
	if name == "capsuled_items_skill" {
		set.Set(name, c.tableValueAt("#extractableItems", idx))
		return
	}
	var ch byte = ' '
	if value != "" {
		ch = value[0]
	}
	if ch == '#' || ch == '-' || (ch >= '0' && ch <= '9') {
		set.Set(name, c.valueAt(value, idx))
	} else {
		set.Set(name, value)
	}
}

// makeSkills builds the final level records and enforces the declared
// counts: any record that fails to build fails the whole definition.
func (c *defCompiler) makeSkills(sets []*skill.StatsSet, lastLvl int, routeLevels [maxEnchantRoutes]int) ([]*skill.Skill, error) {
	declared := lastLvl
	for _, rl := range routeLevels {
		declared += rl
	}
	skills := make([]*skill.Skill, 0, len(sets))
	for _, set := range sets {
		sk, err := skill.NewSkill(set)
		if err != nil {
			slog.Error("skill level failed to build",
				"file", c.file, "skill_id", set.String("skill_id", "?"), "level", set.String("level", "?"), "err", err)
			continue
		}
		skills = append(skills, sk)
	}
	if len(skills) != declared {
		return nil, fmt.Errorf("skill id=%d: number of levels mismatch, %d levels expected, %d built",
			c.id, declared, len(skills))
	}
	return skills, nil
}

// attachBaseLevels compiles conditions and lifecycle blocks for levels 1..N.
func (c *defCompiler) attachBaseLevels(n *xmlNode, skills []*skill.Skill, lastLvl int) error {
	for i := 0; i < lastLvl; i++ {
		sk := skills[i]
		for _, ch := range n.children {
			if ch.name == "cond" {
				c.attachCondTag(ch, sk, i)
				continue
			}
			for _, st := range scopeTags {
				if ch.name == st.tag {
					if err := c.parseTemplate(ch, sk, nil, st.scope, st.scoped, i); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

// attachRouteLevels compiles conditions and lifecycle blocks for every
// enchant route level, falling back per missing category to the base
// ability's final level. A category found in the route pass is never
// overwritten by the base pass.
func (c *defCompiler) attachRouteLevels(n *xmlNode, skills []*skill.Skill, lastLvl int, routeLevels [maxEnchantRoutes]int) error {
	offset := lastLvl
	for r := 1; r <= maxEnchantRoutes; r++ {
		prefix := fmt.Sprintf("enchant%d", r)
		for i := 0; i < routeLevels[r-1]; i++ {
			sk := skills[offset+i]
			var found [foundSlots]bool

			for _, ch := range n.children {
				if ch.name == prefix+"cond" {
					found[0] = true
					c.attachCondTag(ch, sk, i)
					continue
				}
				for si, st := range scopeTags {
					if ch.name == prefix+st.tag {
						found[si+1] = true
						if err := c.parseTemplate(ch, sk, nil, st.scope, st.scoped, i); err != nil {
							return err
						}
					}
				}
			}

			missing := false
			for _, f := range found {
				if !f {
					missing = true
					break
				}
			}
			if !missing {
				continue
			}

			base := lastLvl - 1
			for _, ch := range n.children {
				if !found[0] && ch.name == "cond" {
					c.attachCondTag(ch, sk, base)
					continue
				}
				for si, st := range scopeTags {
					if !found[si+1] && ch.name == st.tag {
						if err := c.parseTemplate(ch, sk, nil, st.scope, st.scoped, base); err != nil {
							return err
						}
					}
				}
			}
		}
		offset += routeLevels[r-1]
	}
	return nil
}

// attachCondTag compiles a cast precondition block with its failure
// message attributes.
func (c *defCompiler) attachCondTag(n *xmlNode, sk *skill.Skill, curLevel int) {
	cond := c.parseFirstCondition(n, curLevel)
	if cond == nil {
		return
	}
	if msg, ok := n.Attr("msg"); ok {
		cond.SetMessage(msg)
	} else if msgID, ok := n.Attr("msgId"); ok {
		id, ok := c.decodeInt(c.value(msgID, noLevel), n)
		if ok {
			cond.SetMessageID(id)
			if _, has := n.Attr("addName"); has && id > 0 {
				cond.AddName()
			}
		}
	}
	sk.AttachPreCondition(cond)
}

// parseTemplate walks one lifecycle block (or the body of an effect
// element). An optional leading cond becomes the attach guard of every
// entry in the block. eff is non-nil when compiling inside an effect
// element; a nested effect declaration there is a fatal structural error.
func (c *defCompiler) parseTemplate(n *xmlNode, sk *skill.Skill, eff *skill.Effect, scope skill.EffectScope, scoped bool, curLevel int) error {
	children := n.children
	var attachCond skill.Condition
	if len(children) > 0 && children[0].name == "cond" {
		attachCond = c.parseFirstCondition(children[0], curLevel)
		if attachCond != nil {
			if msg, ok := children[0].Attr("msg"); ok {
				attachCond.SetMessage(msg)
			} else if msgID, ok := children[0].Attr("msgId"); ok {
				if id, ok := c.decodeInt(c.value(msgID, noLevel), children[0]); ok {
					attachCond.SetMessageID(id)
					if _, has := children[0].Attr("addName"); has && id > 0 {
						attachCond.AddName()
					}
				}
			}
		}
		children = children[1:]
	}

	for _, ch := range children {
		switch ch.name {
		case "effect":
			if eff != nil {
				return fmt.Errorf("skill id=%d: nested effects (line %d)", c.id, ch.line)
			}
			if err := c.attachEffect(ch, sk, attachCond, scope, scoped, curLevel); err != nil {
				return err
			}
		case "add", "sub", "mul", "div", "set", "share", "enchant", "enchanthp":
			c.attachFunc(ch, sk, eff, scope, scoped, attachCond, curLevel)
		}
	}
	return nil
}

// attachFunc compiles one numeric stat mutation into a FuncTemplate.
func (c *defCompiler) attachFunc(n *xmlNode, sk *skill.Skill, eff *skill.Effect, scope skill.EffectScope, scoped bool, attachCond skill.Condition, curLevel int) {
	op, err := skill.ParseFuncOp(n.name)
	if err != nil {
		slog.Warn("unknown stat function", "file", c.file, "skill_id", c.id, "op", n.name, "line", n.line)
		return
	}
	statName, ok := n.Attr("stat")
	if !ok {
		slog.Warn("stat function without stat attribute", "file", c.file, "skill_id", c.id, "line", n.line)
		return
	}
	stat, err := skill.ParseStat(statName)
	if err != nil {
		slog.Warn("unknown stat", "file", c.file, "skill_id", c.id, "stat", statName, "line", n.line)
		return
	}
	order := int32(-1)
	if o, ok := n.Attr("order"); ok {
		if v, ok := c.decodeInt(o, n); ok {
			order = v
		}
	}
	valStr := c.value(n.AttrDefault("val", ""), levelRef(curLevel))
	value, err := strconv.ParseFloat(valStr, 64)
	if err != nil {
		slog.Warn("stat function value is not numeric",
			"file", c.file, "skill_id", c.id, "stat", statName, "val", valStr, "line", n.line)
		return
	}
	applyCond := c.parseFirstCondition(n, curLevel)

	ft := &skill.FuncTemplate{
		AttachCond: attachCond,
		ApplyCond:  applyCond,
		Op:         op,
		Order:      order,
		Stat:       stat,
		Value:      value,
	}
	if eff != nil {
		eff.AttachFunc(ft)
		return
	}
	sk.AddFunc(c.actualScope(sk, scope, scoped), ft)
}

// attachEffect compiles one effect element: attribute set, optional param
// block, apply condition, factory dispatch, then its nested stat functions.
func (c *defCompiler) attachEffect(n *xmlNode, sk *skill.Skill, attachCond skill.Condition, scope skill.EffectScope, scoped bool, curLevel int) error {
	kind, ok := n.Attr("name")
	if !ok {
		slog.Warn("effect element without name", "file", c.file, "skill_id", c.id, "line", n.line)
		return nil
	}
	set := skill.NewStatsSet()
	for _, a := range n.attrs {
		set.Set(a.name, c.value(a.value, levelRef(curLevel)))
	}
	set.Set("id", strconv.Itoa(sk.ID))

	var params *skill.StatsSet
	for _, ch := range n.children {
		if ch.name != "param" {
			continue
		}
		if params == nil {
			params = skill.NewStatsSet()
		}
		for _, a := range ch.attrs {
			params.Set(a.name, c.value(a.value, levelRef(curLevel)))
		}
	}

	applyCond := c.parseFirstCondition(n, curLevel)

	eff, err := c.factory.CreateEffect(kind, set, params, attachCond, applyCond)
	if err != nil {
		slog.Warn("effect dropped", "file", c.file, "skill_id", c.id, "effect", kind, "err", err)
		return nil
	}
	if err := c.parseTemplate(n, sk, eff, scope, scoped, curLevel); err != nil {
		return err
	}
	sk.AddEffect(c.actualScope(sk, scope, scoped), eff)
	return nil
}

// actualScope files unscoped blocks under general, or passive for
// passive skills.
func (c *defCompiler) actualScope(sk *skill.Skill, scope skill.EffectScope, scoped bool) skill.EffectScope {
	if scoped {
		return scope
	}
	if sk.IsPassive() {
		return skill.ScopePassive
	}
	return skill.ScopeGeneral
}

// --- value resolution ---

// noLevel marks a value resolved outside any per-level context.
// Table references are not resolvable there.
const noLevel = levelRef(-1)

type levelRef int

// value resolves a possibly table-substituted literal against the current
// compiling level (0-based).
func (c *defCompiler) value(v string, lvl levelRef) string {
	if !strings.HasPrefix(v, "#") {
		return v
	}
	if lvl == noLevel {
		slog.Warn("table reference outside level context", "file", c.file, "skill_id", c.id, "table", v)
		return ""
	}
	return c.tableValue(v, int(lvl))
}

// valueAt resolves a possibly table-substituted literal against an explicit
// 1-based index.
func (c *defCompiler) valueAt(v string, idx int) string {
	if !strings.HasPrefix(v, "#") {
		return v
	}
	return c.tableValueAt(v, idx)
}

func (c *defCompiler) tableValue(name string, curLevel int) string {
	table, ok := c.tables[name]
	if !ok || curLevel < 0 || curLevel >= len(table) {
		slog.Warn("unresolvable table reference",
			"file", c.file, "skill_id", c.id, "table", name, "index", curLevel)
		return ""
	}
	return table[curLevel]
}

func (c *defCompiler) tableValueAt(name string, idx int) string {
	table, ok := c.tables[name]
	if !ok || idx < 1 || idx > len(table) {
		slog.Warn("unresolvable table reference",
			"file", c.file, "skill_id", c.id, "table", name, "index", idx)
		return ""
	}
	return table[idx-1]
}

// decodeInt parses a decimal or 0x-prefixed integer attribute value.
func (c *defCompiler) decodeInt(v string, n *xmlNode) (int32, bool) {
	i, err := strconv.ParseInt(strings.TrimSpace(v), 0, 32)
	if err != nil {
		slog.Warn("malformed integer value", "file", c.file, "skill_id", c.id, "val", v, "line", n.line)
		return 0, false
	}
	return int32(i), true
}
