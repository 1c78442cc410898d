package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), cfg.UserID)
	assert.Equal(t, 2, cfg.FetchLimit)
	assert.Equal(t, "independent", cfg.FetchPolicy)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Empty(t, cfg.GatewayURL)
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"PROFILESCREEN_GATEWAY_URL":  "http://localhost:8080",
		"PROFILESCREEN_USER_ID":      "42",
		"PROFILESCREEN_FETCH_POLICY": "cancel-replace",
		"PROFILESCREEN_HTTP_TIMEOUT": "250ms",
		"USER_ID":                    "99",
	})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.GatewayURL)
	assert.Equal(t, int64(42), cfg.UserID)
	assert.Equal(t, "cancel-replace", cfg.FetchPolicy)
	assert.Equal(t, 250*time.Millisecond, cfg.HTTPTimeout)
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{"non-numeric user", map[string]string{"PROFILESCREEN_USER_ID": "abc"}},
		{"zero limit", map[string]string{"PROFILESCREEN_FETCH_LIMIT": "0"}},
		{"bad timeout", map[string]string{"PROFILESCREEN_HTTP_TIMEOUT": "soon"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(tt.vars)
			assert.Error(t, err)
		})
	}
}
