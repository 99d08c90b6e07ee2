package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 255, cfg.MapSize)
	assert.Equal(t, "galaxy.db", cfg.DBPath)
	assert.Equal(t, 72*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 180*time.Second, cfg.TurnDuration)
	assert.Equal(t, 10.0, cfg.CommandRate)
	assert.Equal(t, 20, cfg.CommandBurst)
	assert.Equal(t, 1, cfg.SaveEvery)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("GALAXY_ADDR", ":9999")
	t.Setenv("GALAXY_MAP_SIZE", "64")
	t.Setenv("GALAXY_TURN_DURATION", "30s")
	t.Setenv("GALAXY_DB_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, 64, cfg.MapSize)
	assert.Equal(t, 30*time.Second, cfg.TurnDuration)
	assert.Equal(t, "", cfg.DBPath)
}

func TestLoadRejectsTinyMap(t *testing.T) {
	t.Setenv("GALAXY_MAP_SIZE", "1")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GALAXY_MAP_SIZE")
}

func TestLoadClampsSaveEvery(t *testing.T) {
	t.Setenv("GALAXY_SAVE_EVERY", "0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.SaveEvery)
}
