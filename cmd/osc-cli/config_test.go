package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theta-osc/osc-go/pkg/theta"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "osc-cli.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
endpoint: http://192.168.0.20
username: THETAYL00105377
password: "00105377"
poll_interval: 250ms
log_level: debug
protocol_log: /tmp/camera.osclog
metrics_addr: ":9100"
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://192.168.0.20", cfg.Endpoint)
	assert.Equal(t, "THETAYL00105377", cfg.Username)
	assert.Equal(t, "00105377", cfg.Password)
	assert.Equal(t, 250*time.Millisecond, cfg.PollInterval)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/camera.osclog", cfg.ProtocolLog)
	assert.Equal(t, ":9100", cfg.MetricsAddr)

	cc := cfg.CameraConfig()
	assert.Equal(t, "http://192.168.0.20", cc.Endpoint)
	assert.Equal(t, 250*time.Millisecond, cc.PollInterval)
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "metrics_addr: localhost:9100\n"))
	require.NoError(t, err)
	assert.Equal(t, theta.DefaultEndpoint, cfg.Endpoint)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "endpoint: [unterminated\n"},
		{"bad level", "log_level: verbose\n"},
		{"half credentials", "username: someone\n"},
		{"negative interval", "poll_interval: -1s\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
