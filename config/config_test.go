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

	assert.Equal(t, "dental_care", cfg.DatabaseName)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 30*time.Second, cfg.AvailabilityCacheTTL)
	assert.Equal(t, "usd", cfg.PaymentCurrency)
	assert.False(t, cfg.StrictDates)
	assert.Equal(t, []string{"Jan 2, 2006", "2006-01-02"}, cfg.Layouts())
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("DATABASE_NAME", "clinic_test")
	t.Setenv("STRICT_DATES", "true")
	t.Setenv("REMINDER_LEAD", "2h")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "clinic_test", cfg.DatabaseName)
	assert.True(t, cfg.StrictDates)
	assert.Equal(t, 2*time.Hour, cfg.ReminderLead)
}

func TestOrigins(t *testing.T) {
	cfg := Config{CORSOrigins: "https://a.example, https://b.example,,"}
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Origins())
}
