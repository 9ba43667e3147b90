package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("SWEEP_INTERVAL", "")
	t.Setenv("AMQP_URL", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, ":8080", cfg.Addr())
	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, time.Minute, cfg.SweepInterval)
	require.Empty(t, cfg.AMQPURL)
}

func TestLoad_SweepInterval(t *testing.T) {
	t.Run("valid_duration", func(t *testing.T) {
		t.Setenv("SWEEP_INTERVAL", "15s")
		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, 15*time.Second, cfg.SweepInterval)
	})

	t.Run("invalid_duration", func(t *testing.T) {
		t.Setenv("SWEEP_INTERVAL", "every minute")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("non_positive_duration", func(t *testing.T) {
		t.Setenv("SWEEP_INTERVAL", "-1m")
		_, err := Load()
		require.Error(t, err)
	})
}
