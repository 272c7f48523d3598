package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 60, cfg.TickRate)
	assert.Equal(t, "world", cfg.WorldName)
	assert.Equal(t, 48, cfg.World.TileSize)
}

func TestConfig_ApplyEnv(t *testing.T) {
	t.Setenv("TW_PORT", "9000")
	t.Setenv("TW_SEED", "1234")
	t.Setenv("TW_SAVE_DIR", "/tmp/worlds")
	t.Setenv("TW_REDIS_ADDR", "localhost:6379")
	t.Setenv("TW_WORLD", "terra")
	t.Setenv("TW_TICK_RATE", "30")

	cfg := NewConfig()
	require.NoError(t, cfg.ApplyEnv())

	assert.Equal(t, 9000, cfg.Port)
	assert.EqualValues(t, 1234, cfg.Seed)
	assert.Equal(t, "/tmp/worlds", cfg.SaveDir)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "terra", cfg.WorldName)
	assert.Equal(t, 30, cfg.TickRate)
}

func TestConfig_ApplyEnvInvalid(t *testing.T) {
	for _, tc := range []struct{ key, value string }{
		{"TW_PORT", "http"},
		{"TW_SEED", "abc"},
		{"TW_TICK_RATE", "0"},
	} {
		t.Run(tc.key, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			cfg := NewConfig()
			assert.Error(t, cfg.ApplyEnv())
		})
	}
}
