package model

// SkillInfo — выученный персонажем скилл: ссылка на (id, level) в
// опубликованной таблице скилов. Уровни > 99 означают заточку.
type SkillInfo struct {
	SkillID int32
	Level   int32
	// ClassIndex — 0 для основного класса, 1..3 для сабклассов.
	ClassIndex int32
}

// IsEnchanted reports whether the learned level sits on an enchant route.
func (s *SkillInfo) IsEnchanted() bool {
	return s.Level > 99
}

// EnchantRoute returns the route number 1..8, or 0 for a base level.
func (s *SkillInfo) EnchantRoute() int32 {
	if s.Level <= 99 {
		return 0
	}
	return s.Level / 100
}

// EnchantStep returns the 1-based step inside the route, or 0 for a base
// level.
func (s *SkillInfo) EnchantStep() int32 {
	if s.Level <= 99 {
		return 0
	}
	return s.Level % 100
}
