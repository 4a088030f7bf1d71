package model

import "testing"

func TestSkillInfoEnchant(t *testing.T) {
	cases := []struct {
		level     int32
		enchanted bool
		route     int32
		step      int32
	}{
		{1, false, 0, 0},
		{40, false, 0, 0},
		{99, false, 0, 0},
		{101, true, 1, 1},
		{130, true, 1, 30},
		{305, true, 3, 5},
		{801, true, 8, 1},
	}
	for _, tc := range cases {
		s := &SkillInfo{SkillID: 1177, Level: tc.level}
		if s.IsEnchanted() != tc.enchanted {
			t.Errorf("level %d: IsEnchanted = %v", tc.level, s.IsEnchanted())
		}
		if got := s.EnchantRoute(); got != tc.route {
			t.Errorf("level %d: route = %d, want %d", tc.level, got, tc.route)
		}
		if got := s.EnchantStep(); got != tc.step {
			t.Errorf("level %d: step = %d, want %d", tc.level, got, tc.step)
		}
	}
}
