package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadReadsYAML(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8081
  mode: debug
  request_timeout: 3s
database:
  driver: sqlite
  path: /tmp/tracker.db
redis:
  enabled: true
  addr: 127.0.0.1:6379
  ttl: 30s
logger:
  level: debug
tracker:
  timezone: Europe/Berlin
  allow_negative_hours: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, 3*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "/tmp/tracker.db", cfg.Database.Path)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Redis.TTL)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "Europe/Berlin", cfg.Tracker.Location().String())
	assert.False(t, cfg.Tracker.NegativeHoursAllowed())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, DefaultMode, cfg.Server.Mode)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultDriver, cfg.Database.Driver)
	assert.Equal(t, DefaultMySQLPort, cfg.Database.Port)
	assert.Equal(t, DefaultRedisTTL, cfg.Redis.TTL)
	assert.Equal(t, DefaultLogOutput, cfg.Logger.Output)
	assert.Equal(t, time.UTC, cfg.Tracker.Location())
	assert.True(t, cfg.Tracker.NegativeHoursAllowed())
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "server: [unterminated")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_USER", "tracker")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_DATABASE", "mytime")

	path := writeConfig(t, `
server:
  port: 8081
database:
  host: localhost
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 3307, cfg.Database.Port)
	assert.Equal(t, "tracker", cfg.Database.User)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, "mytime", cfg.Database.Database)
}

func TestEnvOverrideIgnoresNonNumericPort(t *testing.T) {
	t.Setenv("PORT", "eighty")
	cfg, err := Load(writeConfig(t, "server:\n  port: 8081\n"))
	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.Server.Port)
}

func TestValidateAndApplyDefaults(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		verify func(t *testing.T, cfg *Config)
	}{
		{
			name: "unknown driver falls back to mysql",
			cfg:  Config{Database: DatabaseConfig{Driver: "postgres"}},
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "mysql", cfg.Database.Driver)
			},
		},
		{
			name: "sqlite without path gets default path",
			cfg:  Config{Database: DatabaseConfig{Driver: "sqlite"}},
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultSQLitePath, cfg.Database.Path)
			},
		},
		{
			name: "unknown timezone falls back to UTC",
			cfg:  Config{Tracker: TrackerConfig{Timezone: "Mars/Olympus"}},
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultTimezone, cfg.Tracker.Timezone)
			},
		},
		{
			name: "file output without path gets default log file",
			cfg:  Config{Logger: LoggerConfig{Output: "file"}},
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultLogFile, cfg.Logger.File.Path)
				assert.Equal(t, DefaultLogMaxSize, cfg.Logger.File.MaxSize)
			},
		},
		{
			name: "unknown mode falls back to release",
			cfg:  Config{Server: ServerConfig{Mode: "verbose"}},
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultMode, cfg.Server.Mode)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			validateAndApplyDefaults(&cfg)
			tt.verify(t, &cfg)
		})
	}
}
