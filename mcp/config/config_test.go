package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/questflowai/aster-mcp-server/aster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	document := `
port: 8081
exchange:
  baseURL: https://example.test
  timeoutSec: 20
credentials:
  key: K
  secret: S
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(document), 0o644))

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.EqualValues(t, 8081, cfg.Port)
	assert.EqualValues(t, "https://example.test", cfg.Exchange.BaseURL)
	assert.EqualValues(t, 20*time.Second, cfg.Exchange.Timeout())
	assert.EqualValues(t, "K", cfg.Credentials.Key)
	assert.EqualValues(t, "debug", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestInitDefaults(t *testing.T) {
	t.Setenv(EnvPort, "")
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvAPISecret, "")

	cfg := New()
	assert.EqualValues(t, DefaultPort, cfg.Port)
	assert.EqualValues(t, aster.DefaultBaseURL, cfg.Exchange.BaseURL)
	assert.Empty(t, cfg.Credentials.Key)
	assert.NoError(t, cfg.Validate())
}

func TestInitEnvOverrides(t *testing.T) {
	t.Setenv(EnvPort, "9090")
	t.Setenv(EnvAPIKey, "envKey")
	t.Setenv(EnvAPISecret, "envSecret")

	cfg := New()
	assert.EqualValues(t, 9090, cfg.Port)
	assert.EqualValues(t, "envKey", cfg.Credentials.Key)
	assert.EqualValues(t, "envSecret", cfg.Credentials.Secret)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		description string
		config      *Config
		expectError bool
	}{
		{
			description: "minimal config",
			config:      &Config{Port: DefaultPort},
		},
		{
			description: "half-configured credentials",
			config:      &Config{Port: DefaultPort, Credentials: &Credentials{Key: "K"}},
			expectError: true,
		},
		{
			description: "negative timeout",
			config:      &Config{Port: DefaultPort, Exchange: &Exchange{TimeoutSec: -1}},
			expectError: true,
		},
		{
			description: "port out of range",
			config:      &Config{Port: 70000},
			expectError: true,
		},
	}
	for _, testCase := range testCases {
		err := testCase.config.Validate()
		if testCase.expectError {
			assert.Error(t, err, testCase.description)
			continue
		}
		assert.NoError(t, err, testCase.description)
	}
}
