// internal/common/config/loader_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalConfig = `
relay:
  recorder_url: https://recorder.example.com/exec
database:
  postgres:
    host: localhost
    database: waitlist
    user: waitlist
`

func TestLoadFromFile_AppliesDefaults(t *testing.T) {
	cfg, err := LoadFromFile(writeConfigFile(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, "waitlist-service", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, 30000, cfg.Relay.Timeout)
	assert.Equal(t, "Elite Business Club", cfg.Club.Name)
	assert.Equal(t, "Where Next-Gen Wealth Meets Opportunity", cfg.Club.Tagline)
	assert.Equal(t, 150, cfg.Club.MaxMembers)
	assert.Equal(t, "48 hours", cfg.Club.ResponseTime)
	assert.Equal(t, "EBC", cfg.Club.IDPrefix)
	assert.Equal(t, 5, cfg.RateLimit.Limit)
	assert.Equal(t, 60, cfg.RateLimit.Window)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Recorder.StrictSchema)
}

func TestLoadFromFile_MissingRecorderURL(t *testing.T) {
	_, err := LoadFromFile(writeConfigFile(t, `
database:
  postgres:
    host: localhost
    database: waitlist
    user: waitlist
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recorder_url")
}

func TestLoadFromFile_RecorderURLFromEnv(t *testing.T) {
	t.Setenv("RECORDER_URL", "https://recorder.example.com/exec")

	cfg, err := LoadFromFile(writeConfigFile(t, `
database:
  postgres:
    host: localhost
    database: waitlist
    user: waitlist
`))
	require.NoError(t, err)
	assert.Equal(t, "https://recorder.example.com/exec", cfg.Relay.RecorderURL)
}

func TestLoadFromFile_RateLimitRequiresRedis(t *testing.T) {
	_, err := LoadFromFile(writeConfigFile(t, minimalConfig+`
rate_limit:
  enabled: true
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis")
}

func TestLoadFromFile_ExportCredentials(t *testing.T) {
	cfg, err := LoadFromFile(writeConfigFile(t, minimalConfig+`
export:
  username: admin
  password: s3cret
`))
	require.NoError(t, err)
	assert.True(t, cfg.Export.Enabled())
}

func TestLoadFromFile_ExportDisabledByDefault(t *testing.T) {
	cfg, err := LoadFromFile(writeConfigFile(t, minimalConfig))
	require.NoError(t, err)
	assert.False(t, cfg.Export.Enabled())
}

func TestGetDuration(t *testing.T) {
	assert.Equal(t, 30*time.Second, GetDuration(30000))
}
