package data

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/teralith/interlude/internal/game/skill"
)

// ErrSkillNotFound возвращается, когда скилл не найден даже после
// округления уровня вниз до максимального известного.
var ErrSkillNotFound = errors.New("skill not found")

// decodeWorkers ограничивает параллелизм разбора XML файлов.
const decodeWorkers = 4

// SkillData — опубликованный индекс скомпилированных уровней скилов.
// Таблица неизменяемая; Load подменяет её целиком одним atomic swap,
// читатели никогда не видят частично построенную таблицу.
type SkillData struct {
	factory skill.EffectFactory
	enchant EnchantRouteRegistry

	table atomic.Pointer[skillTable]
}

type skillTable struct {
	skills      map[int]*skill.Skill
	maxLevel    map[int]int
	enchantable map[int]struct{}
	dropped     int
}

var emptyTable = &skillTable{
	skills:      map[int]*skill.Skill{},
	maxLevel:    map[int]int{},
	enchantable: map[int]struct{}{},
}

// NewSkillData creates a repository with the injected effect factory and
// enchant route registry. The table is empty until the first Load.
func NewSkillData(factory skill.EffectFactory, enchant EnchantRouteRegistry) *SkillData {
	d := &SkillData{factory: factory, enchant: enchant}
	d.table.Store(emptyTable)
	return d
}

// Load rebuilds the whole table from every *.xml file under dir and
// publishes it atomically. A malformed file or definition is logged and
// skipped; the rest of the pass continues.
func (d *SkillData) Load(ctx context.Context, dir string) error {
	var files []string
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".xml") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("scan skill dir: %w", err)
	}
	sort.Strings(files)

	// Разбор файлов идёт параллельно, компиляция — последовательно:
	// дерево условий и таблицы подстановок контекстно-зависимы.
	trees := make([]*xmlNode, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(decodeWorkers)
	var mu sync.Mutex
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open %s: %w", path, err)
			}
			defer f.Close()
			tree, err := parseXMLTree(f)
			if err != nil {
				// Schema violation: фатально только для этого файла.
				slog.Error("skill file skipped", "file", path, "err", err)
				return nil
			}
			mu.Lock()
			trees[i] = tree
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	table := &skillTable{
		skills:      make(map[int]*skill.Skill),
		maxLevel:    make(map[int]int),
		enchantable: make(map[int]struct{}),
	}
	var defs, dropped int
	for i, tree := range trees {
		if tree == nil {
			continue
		}
		for _, sk := range d.compileDocument(files[i], tree, &defs, &dropped) {
			table.skills[skill.SkillHashCode(sk.ID, sk.Level)] = sk
		}
	}

	for _, sk := range table.skills {
		if sk.Level > 99 {
			table.enchantable[sk.ID] = struct{}{}
			continue
		}
		if sk.Level > table.maxLevel[sk.ID] {
			table.maxLevel[sk.ID] = sk.Level
		}
	}

	table.dropped = dropped
	d.table.Store(table)
	slog.Info("loaded skills",
		"files", len(files), "definitions", defs, "dropped", dropped, "levels", len(table.skills))
	return nil
}

// compileDocument compiles every skill element of one document tree.
func (d *SkillData) compileDocument(file string, tree *xmlNode, defs, dropped *int) []*skill.Skill {
	var out []*skill.Skill
	compileOne := func(n *xmlNode) {
		*defs++
		c := &defCompiler{file: file, factory: d.factory, enchant: d.enchant}
		skills, err := c.compile(n)
		if err != nil {
			// Провал компиляции роняет только это определение.
			*dropped++
			slog.Error("skill definition dropped", "file", file, "err", err)
			return
		}
		out = append(out, skills...)
	}
	if tree.name == "skill" {
		compileOne(tree)
		return out
	}
	if tree.name != "list" {
		slog.Error("unexpected document root", "file", file, "root", tree.name)
		return nil
	}
	for _, ch := range tree.children {
		if ch.name == "skill" {
			compileOne(ch)
		}
	}
	return out
}

// Skill returns the record for (id, level). A level above the known max
// base level clamps down to the max; otherwise a miss is ErrSkillNotFound.
func (d *SkillData) Skill(id, level int) (*skill.Skill, error) {
	t := d.table.Load()
	if sk, ok := t.skills[skill.SkillHashCode(id, level)]; ok {
		return sk, nil
	}
	maxLvl := t.maxLevel[id]
	if maxLvl > 0 && level > maxLvl {
		if sk, ok := t.skills[skill.SkillHashCode(id, maxLvl)]; ok {
			return sk, nil
		}
	}
	return nil, fmt.Errorf("%w: id=%d level=%d", ErrSkillNotFound, id, level)
}

// MaxLevel returns the highest base level (<=99) known for the skill,
// or 0 when the skill is unknown.
func (d *SkillData) MaxLevel(id int) int {
	return d.table.Load().maxLevel[id]
}

// IsEnchantable reports whether the skill registered any level above 99.
func (d *SkillData) IsEnchantable(id int) bool {
	_, ok := d.table.Load().enchantable[id]
	return ok
}

// Count returns the number of published level records.
func (d *SkillData) Count() int {
	return len(d.table.Load().skills)
}

// Dropped returns how many definitions the last Load rejected.
func (d *SkillData) Dropped() int {
	return d.table.Load().dropped
}

// SiegeSkills returns the fixed list of siege skills: the two headquarters
// skills, then the advanced headquarters for nobles, then the two castle
// gate skills.
func (d *SkillData) SiegeSkills(addNoble, hasCastle bool) []*skill.Skill {
	t := d.table.Load()
	out := make([]*skill.Skill, 0, 5)
	out = append(out,
		t.skills[skill.SkillHashCode(246, 1)],
		t.skills[skill.SkillHashCode(247, 1)])
	if addNoble {
		out = append(out, t.skills[skill.SkillHashCode(326, 1)])
	}
	if hasCastle {
		out = append(out,
			t.skills[skill.SkillHashCode(844, 1)],
			t.skills[skill.SkillHashCode(845, 1)])
	}
	return out
}
