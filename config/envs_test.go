package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 45, c.CountdownUnits())
	assert.Equal(t, 10*time.Second, c.RevealDelay)
	assert.Equal(t, 3, c.WellnessEvery)
}

func TestFromEnv(t *testing.T) {
	t.Run("overrides", func(t *testing.T) {
		c, err := FromEnv(lookupMap(map[string]string{
			"MAZE_ROWS":          "11",
			"MAZE_COLS":          "15",
			"ROUND_DURATION":     "30s",
			"WELLNESS_EVERY":     "2",
			"MAX_SLIDE_DURATION": "1s",
			"HARD_MODE":          "true",
			"MAZE_SEED":          "99",
			"MAZE_UI":            "terminal",
			"LOG_LEVEL":          "debug",
			"CELL_SIZE":          "24.5",
		}))
		require.NoError(t, err)
		assert.Equal(t, 11, c.Rows)
		assert.Equal(t, 15, c.Cols)
		assert.Equal(t, 30, c.CountdownUnits())
		assert.Equal(t, 2, c.WellnessEvery)
		assert.Equal(t, time.Second, c.MaxSlideDuration)
		assert.True(t, c.HardMode)
		assert.Equal(t, int64(99), c.Seed)
		assert.Equal(t, UITerminal, c.UI)
		assert.Equal(t, 24.5, c.CellSize)
	})

	t.Run("unparseable values", func(t *testing.T) {
		for key, value := range map[string]string{
			"MAZE_ROWS":      "many",
			"ROUND_DURATION": "45",
			"HARD_MODE":      "maybe",
			"CELL_SIZE":      "big",
			"MAZE_SEED":      "x",
		} {
			_, err := FromEnv(lookupMap(map[string]string{key: value}))
			assert.ErrorIs(t, err, ErrInvalid, key)
		}
	})
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("MAZE_ROWS", "9")
	t.Setenv("MAZE_COLS", "9")
	t.Setenv("GOAL_REVEAL_DELAY", "2s")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9, c.Rows)
	assert.Equal(t, 2*time.Second, c.RevealDelay)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"even rows", func(c *Config) { c.Rows = 20 }},
		{"too small", func(c *Config) { c.Cols = 3 }},
		{"zero tick", func(c *Config) { c.TickInterval = 0 }},
		{"negative reveal", func(c *Config) { c.RevealDelay = -time.Second }},
		{"tick longer than round", func(c *Config) { c.TickInterval = time.Minute }},
		{"negative wellness period", func(c *Config) { c.WellnessEvery = -1 }},
		{"zero cell size", func(c *Config) { c.CellSize = 0 }},
		{"unknown ui", func(c *Config) { c.UI = "vr" }},
		{"unknown log level", func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalid)
		})
	}

	c := Default()
	c.WellnessEvery = 0
	assert.NoError(t, c.Validate())
}
