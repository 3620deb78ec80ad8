package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalYAML = `
database:
  host: localhost
  name: testdb
  user: testuser
catalog:
  login: "M:1/C"
  password: hunter2
`

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid minimal config",
			yaml: minimalYAML,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "testdb", cfg.Database.Name)
				assert.Equal(t, "M:1/C", cfg.Catalog.Login)
				assert.Equal(t, "hunter2", cfg.Catalog.Password)
			},
		},
		{
			name: "defaults applied for optional fields",
			yaml: minimalYAML,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 5, cfg.Database.PoolSize)
				assert.False(t, cfg.Redis.Enabled())
				assert.Equal(t, 10*time.Minute, cfg.Redis.BrandTTL)
				assert.Equal(t, "https://fimex.ae", cfg.Catalog.BaseURL)
				assert.Equal(t, "fimex_ae", cfg.Catalog.ServiceID)
				assert.Equal(t, 15*time.Second, cfg.Catalog.RequestTimeout)
				assert.Equal(t, 15*time.Second, cfg.Catalog.LoginTimeout)
				assert.Equal(t, 24*time.Hour, cfg.Catalog.TokenTTL)
				assert.InDelta(t, 5.0, cfg.Catalog.RateLimit.PerSecond, 0)
				assert.Equal(t, 1, cfg.Catalog.RateLimit.Burst)
				assert.Equal(t, 3*time.Minute, cfg.Schedule.Interval)
				assert.Equal(t, 200*time.Millisecond, cfg.Schedule.BrandDelay)
				assert.Equal(t, 500*time.Millisecond, cfg.Schedule.MessageDelay)
				assert.Equal(t, time.Second, cfg.Schedule.BootstrapDelay)
				require.NotNil(t, cfg.Schedule.RunOnStart)
				assert.True(t, *cfg.Schedule.RunOnStart)
				assert.Equal(t, "https://api.telegram.org", cfg.Notifications.Telegram.APIURL)
				assert.Equal(t, 3800, cfg.Messages.MaxLength)
				assert.Equal(t, "RUB", cfg.Messages.Currency)
				assert.Equal(t, time.UTC, cfg.Messages.Location())
				assert.Equal(t, "pricelist-monitor", cfg.Tracing.ServiceName)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
			},
		},
		{
			name: "env var substitution",
			yaml: minimalYAML + `
notifications:
  telegram:
    enabled: true
    bot_token: "${TEST_BOT_TOKEN}"
`,
			envVars: map[string]string{
				"TEST_BOT_TOKEN": "123:abc",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.True(t, cfg.Notifications.Telegram.Enabled)
				assert.Equal(t, "123:abc", cfg.Notifications.Telegram.BotToken)
			},
		},
		{
			name: "explicit schedule overrides",
			yaml: minimalYAML + `
schedule:
  interval: 10m
  brand_delay: 1s
  run_on_start: false
redis:
  addr: localhost:6379
messages:
  timezone: Europe/Moscow
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, 10*time.Minute, cfg.Schedule.Interval)
				assert.Equal(t, time.Second, cfg.Schedule.BrandDelay)
				assert.False(t, *cfg.Schedule.RunOnStart)
				assert.True(t, cfg.Redis.Enabled())
				assert.Equal(t, "Europe/Moscow", cfg.Messages.Location().String())
			},
		},
		{
			name: "missing required database.host",
			yaml: `
database:
  name: testdb
  user: testuser
catalog:
  login: a
  password: b
`,
			wantErr: "database.host is required",
		},
		{
			name: "missing catalog credentials",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
`,
			wantErr: "catalog.login is required",
		},
		{
			name: "telegram enabled without token",
			yaml: minimalYAML + `
notifications:
  telegram:
    enabled: true
`,
			wantErr: "notifications.telegram.bot_token is required",
		},
		{
			name:    "interval too short",
			yaml:    minimalYAML + "schedule:\n  interval: 500ms\n",
			wantErr: "schedule.interval must be at least 1s",
		},
		{
			name:    "max length too small",
			yaml:    minimalYAML + "messages:\n  max_length: 50\n",
			wantErr: "messages.max_length must be at least 200",
		},
		{
			name:    "unknown timezone",
			yaml:    minimalYAML + "messages:\n  timezone: Mars/Olympus\n",
			wantErr: "messages.timezone",
		},
		{
			name:    "invalid yaml",
			yaml:    "database: [",
			wantErr: "parsing config YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Only parallelize tests that don't modify env vars.
			if len(tt.envVars) == 0 {
				t.Parallel()
			}

			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			cfg, err := Load(path)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Parallel()

	cfg := DatabaseConfig{
		Host:     "db.example.com",
		Port:     5433,
		Name:     "pricelist",
		User:     "monitor",
		Password: "s3cret",
		SSLMode:  "require",
	}
	assert.Equal(t,
		"host=db.example.com port=5433 dbname=pricelist user=monitor password=s3cret sslmode=require",
		cfg.DSN(),
	)
}
