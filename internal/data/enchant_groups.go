package data

import "log/slog"

// EnchantRouteRegistry выдаёт количество уровней заточки для маршрута,
// объявленного через enchantGroupN. Компилятор скилов использует только
// счётчик уровней; стоимость шага читает подсистема заточки.
type EnchantRouteRegistry interface {
	// RouteLevels registers route r (1..8) of the skill against the named
	// group and returns how many enchant levels the route carries.
	RouteLevels(skillID, baseLevel, route, groupID int) int
}

// EnchantStep contains per-step costs for one skill enchant level.
type EnchantStep struct {
	SpCost  int32
	ExpCost int64
	// Rate — шанс успеха в процентах для уровня персонажа 76..85.
	Rate [10]int32
}

// EnchantSkillGroups — дефолтный реестр групп заточки.
type EnchantSkillGroups struct {
	groups map[int][]EnchantStep
	// routes: skillID*10+route -> groupID, заполняется по ходу load.
	routes map[int]int
}

// NewEnchantSkillGroups creates an empty registry.
func NewEnchantSkillGroups() *EnchantSkillGroups {
	return &EnchantSkillGroups{
		groups: make(map[int][]EnchantStep),
		routes: make(map[int]int),
	}
}

// RegisterGroup registers the step list for a group id, replacing any
// previous registration.
func (g *EnchantSkillGroups) RegisterGroup(groupID int, steps []EnchantStep) {
	g.groups[groupID] = steps
}

// RouteLevels implements EnchantRouteRegistry.
func (g *EnchantSkillGroups) RouteLevels(skillID, baseLevel, route, groupID int) int {
	steps, ok := g.groups[groupID]
	if !ok {
		slog.Warn("unknown enchant group", "skill_id", skillID, "route", route, "group", groupID)
		return 0
	}
	g.routes[skillID*10+route] = groupID
	return len(steps)
}

// Step returns the cost data for one enchant step of a registered route.
// Returns nil when the route or step is unknown.
func (g *EnchantSkillGroups) Step(skillID, route, step int) *EnchantStep {
	groupID, ok := g.routes[skillID*10+route]
	if !ok {
		return nil
	}
	steps := g.groups[groupID]
	if step < 1 || step > len(steps) {
		return nil
	}
	return &steps[step-1]
}

// DefaultEnchantSkillGroups returns a registry seeded with the standard
// 30-step groups. Costs grow with the step index; rates fall from 82% to
// near 20% at the last step.
func DefaultEnchantSkillGroups() *EnchantSkillGroups {
	g := NewEnchantSkillGroups()
	for _, groupID := range []int{1, 2, 3, 4, 5} {
		steps := make([]EnchantStep, 30)
		for i := range steps {
			steps[i].SpCost = int32(10000 + (i * 2000 * groupID))
			steps[i].ExpCost = int64(50000 + (i * 10000 * groupID))
			base := int32(82 - (i * 2))
			if base < 20 {
				base = 20
			}
			for lvl := range steps[i].Rate {
				r := base + int32(lvl)
				if r > 100 {
					r = 100
				}
				steps[i].Rate[lvl] = r
			}
		}
		g.RegisterGroup(groupID, steps)
	}
	return g
}
