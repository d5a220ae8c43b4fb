package config_test

import (
	"testing"
	"time"

	"github.com/passkeyhq/delegate-relay/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("RELAYER_URL", "https://relayer.testnet.example/relay")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Stage)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://relayer.testnet.example/relay", cfg.RelayerURL)
	assert.Equal(t, 30*time.Second, cfg.RelayerTimeout)
	assert.Equal(t, 750*time.Millisecond, cfg.BridgePingTimeout)
	assert.Empty(t, cfg.AllowedOrigins)
}

func TestLoad_RequiresRelayerURL(t *testing.T) {
	t.Setenv("RELAYER_URL", "")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RELAYER_URL")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("RELAYER_URL", "https://relayer.example/relay")
	t.Setenv("STAGE", "prod")
	t.Setenv("PORT", "9090")
	t.Setenv("RELAYER_TIMEOUT", "5s")
	t.Setenv("WALLET_BRIDGE_URL", "http://127.0.0.1:18420")
	t.Setenv("WALLET_BRIDGE_PING_TIMEOUT", "250ms")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com, https://staging.example.com,")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Stage)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.RelayerTimeout)
	assert.Equal(t, "http://127.0.0.1:18420", cfg.BridgeURL)
	assert.Equal(t, 250*time.Millisecond, cfg.BridgePingTimeout)
	assert.Equal(t, []string{"https://app.example.com", "https://staging.example.com"}, cfg.AllowedOrigins)
}

func TestLoad_BadDurationFallsBack(t *testing.T) {
	t.Setenv("RELAYER_URL", "https://relayer.example/relay")
	t.Setenv("RELAYER_TIMEOUT", "not-a-duration")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.RelayerTimeout)
}
