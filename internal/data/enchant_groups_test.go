package data

import "testing"

func TestEnchantSkillGroups(t *testing.T) {
	g := NewEnchantSkillGroups()
	g.RegisterGroup(2, []EnchantStep{
		{SpCost: 100, ExpCost: 1000},
		{SpCost: 200, ExpCost: 2000},
	})

	if got := g.RouteLevels(1177, 40, 1, 2); got != 2 {
		t.Errorf("RouteLevels = %d, want 2", got)
	}
	if got := g.RouteLevels(1177, 40, 2, 99); got != 0 {
		t.Errorf("unknown group must yield 0 levels, got %d", got)
	}

	step := g.Step(1177, 1, 2)
	if step == nil || step.SpCost != 200 {
		t.Errorf("Step(1177, 1, 2) = %+v, want SpCost 200", step)
	}
	if g.Step(1177, 1, 3) != nil {
		t.Error("step past the route length must be nil")
	}
	if g.Step(1177, 2, 1) != nil {
		t.Error("failed route registration must not be queryable")
	}
	if g.Step(9999, 1, 1) != nil {
		t.Error("unknown skill must be nil")
	}
}

func TestDefaultEnchantSkillGroups(t *testing.T) {
	g := DefaultEnchantSkillGroups()

	for _, groupID := range []int{1, 2, 3, 4, 5} {
		if got := g.RouteLevels(100+groupID, 40, 1, groupID); got != 30 {
			t.Errorf("group %d levels = %d, want 30", groupID, got)
		}
	}

	first := g.Step(101, 1, 1)
	last := g.Step(101, 1, 30)
	if first == nil || last == nil {
		t.Fatal("seeded steps missing")
	}
	if first.SpCost >= last.SpCost || first.ExpCost >= last.ExpCost {
		t.Error("costs must grow with the step index")
	}
	if first.Rate[0] <= last.Rate[0] {
		t.Error("success rate must fall with the step index")
	}
	if last.Rate[0] < 20 {
		t.Errorf("rate floor is 20, got %d", last.Rate[0])
	}
}
