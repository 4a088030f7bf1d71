package skill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsSetOrder(t *testing.T) {
	s := NewStatsSet()
	s.Set("power", "40")
	s.Set("mpConsume", "9")
	s.Set("target", "TARGET_ONE")
	s.Set("power", "45") // overwrite keeps the original position

	require.Equal(t, []string{"power", "mpConsume", "target"}, s.Keys())
	require.Equal(t, 3, s.Len())
	assert.Equal(t, "45", s.String("power", ""))
}

func TestStatsSetTypedGetters(t *testing.T) {
	s := NewStatsSet()
	s.Set("power", " 40.5 ")
	s.Set("mpConsume", "9")
	s.Set("reuseDelay", "6000")
	s.Set("isMagic", "true")
	s.Set("junk", "not-a-number")

	assert.Equal(t, 40.5, s.Float("power", 0))
	assert.EqualValues(t, 9, s.Int("mpConsume", 0))
	assert.EqualValues(t, 6000, s.Int64("reuseDelay", 0))
	assert.True(t, s.Bool("isMagic", false))

	// Absent and unparseable both fall back to the default.
	assert.EqualValues(t, -1, s.Int("missing", -1))
	assert.EqualValues(t, 7, s.Int("junk", 7))
	assert.Equal(t, 1.5, s.Float("junk", 1.5))

	assert.True(t, s.Contains("junk"))
	assert.False(t, s.Contains("missing"))
}
