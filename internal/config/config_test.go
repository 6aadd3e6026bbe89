package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("BAAN_BASE_URL", "https://courts.example.com")
	t.Setenv("BAAN_USERNAME", "user")
	t.Setenv("BAAN_PASSWORD", "pass")
}

func TestFromEnvDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "785", cfg.SportID)
	assert.Equal(t, "pending_bookings.json", cfg.PendingFile)
	assert.Equal(t, 7, cfg.HorizonDays)
	assert.Equal(t, 24*time.Hour, cfg.SweepInterval)
	assert.Equal(t, time.Second, cfg.SweepInitialDelay)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
}

func TestFromEnvMissingCredentials(t *testing.T) {
	t.Setenv("BAAN_BASE_URL", "https://courts.example.com")
	t.Setenv("BAAN_USERNAME", "")
	t.Setenv("BAAN_PASSWORD", "")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestFromEnvOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("SWEEP_INTERVAL", "1h")
	t.Setenv("BOOKING_HORIZON_DAYS", "14")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, time.Hour, cfg.SweepInterval)
	assert.Equal(t, 14, cfg.HorizonDays)
}

func TestFromEnvBadDuration(t *testing.T) {
	setRequired(t)
	t.Setenv("SWEEP_INTERVAL", "soon")

	_, err := FromEnv()
	assert.Error(t, err)
}
