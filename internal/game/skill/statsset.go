package skill

import (
	"strconv"
	"strings"
)

// StatsSet — упорядоченный набор атрибутов name→value уровня скилла.
// Значения хранятся строками как в исходных XML; типизированные геттеры
// парсят по требованию. Порядок вставки сохраняется.
type StatsSet struct {
	keys   []string
	values map[string]string
}

// EmptyStatsSet is shared by effects declared without parameters.
// Не модифицировать.
var EmptyStatsSet = NewStatsSet()

// NewStatsSet creates an empty attribute set.
func NewStatsSet() *StatsSet {
	return &StatsSet{values: make(map[string]string)}
}

// Set stores a value, keeping first-insertion order for Keys.
func (s *StatsSet) Set(name, value string) {
	if _, ok := s.values[name]; !ok {
		s.keys = append(s.keys, name)
	}
	s.values[name] = value
}

// Contains reports whether the attribute is present.
func (s *StatsSet) Contains(name string) bool {
	_, ok := s.values[name]
	return ok
}

// Keys returns attribute names in insertion order.
func (s *StatsSet) Keys() []string {
	return s.keys
}

// Len returns the number of attributes.
func (s *StatsSet) Len() int {
	return len(s.keys)
}

// String returns the attribute value or def if absent.
func (s *StatsSet) String(name, def string) string {
	if v, ok := s.values[name]; ok {
		return v
	}
	return def
}

// Int returns the attribute parsed as int32 or def on absence/parse failure.
func (s *StatsSet) Int(name string, def int32) int32 {
	v, ok := s.values[name]
	if !ok {
		return def
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 32)
	if err != nil {
		return def
	}
	return int32(n)
}

// Int64 returns the attribute parsed as int64 or def.
func (s *StatsSet) Int64(name string, def int64) int64 {
	v, ok := s.values[name]
	if !ok {
		return def
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return def
	}
	return n
}

// Float returns the attribute parsed as float64 or def.
func (s *StatsSet) Float(name string, def float64) float64 {
	v, ok := s.values[name]
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return def
	}
	return f
}

// Bool returns the attribute parsed as bool or def.
func (s *StatsSet) Bool(name string, def bool) bool {
	v, ok := s.values[name]
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return b
}
