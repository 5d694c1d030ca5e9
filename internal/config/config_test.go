package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eos420/indexer-api/internal/cache"
	"github.com/eos420/indexer-api/internal/id"
)

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: 20
  write_timeout: 20
  idle_timeout: 180
database:
  host: localhost
  port: 5432
  user: testuser
  password: testpass
  dbname: testdb
  max_open_conns: 40
  conn_max_lifetime: "1h"
  connect_timeout: "30s"
core:
  machine_id: 42
cache:
  enabled: false
  capacity: 64
  ttl: "1m"
  tti: "10s"
worker:
  pool_size: 4
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 20, cfg.Server.ReadTimeout)
				assert.Equal(t, 180, cfg.Server.IdleTimeout)
				assert.Equal(t, "testdb", cfg.Database.DBName)
				assert.Equal(t, 40, cfg.Database.MaxOpenConns)
				assert.Equal(t, time.Hour, cfg.Database.ConnMaxLifetime)
				assert.Equal(t, 30*time.Second, cfg.Database.ConnectTimeout)
				assert.Equal(t, uint16(42), cfg.Core.MachineID)
				assert.False(t, cfg.Cache.Enabled)
				assert.Equal(t, 64, cfg.Cache.Capacity)
				assert.Equal(t, time.Minute, cfg.Cache.TTL)
				assert.Equal(t, 10*time.Second, cfg.Cache.TTI)
				assert.Equal(t, 4, cfg.Worker.WorkerPoolSize)
			},
		},
		{
			name:        "missing config file - should work with env vars",
			configFile:  "",
			expectError: false, // API config allows missing config file
			validate: func(t *testing.T, cfg *APIConfig) {
				// Should use defaults
				assert.NotNil(t, cfg)
				assert.False(t, cfg.Debug)                  // default
				assert.Equal(t, "0.0.0.0", cfg.Server.Host) // default
				assert.Equal(t, 8080, cfg.Server.Port)      // default
				assert.Equal(t, id.DefaultMachineID, cfg.Core.MachineID)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.False(t, cfg.Debug)                   // default
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)  // default
				assert.Equal(t, 8080, cfg.Server.Port)       // default
				assert.Equal(t, 10, cfg.Server.ReadTimeout)  // default
				assert.Equal(t, 10, cfg.Server.WriteTimeout) // default
				assert.Equal(t, 120, cfg.Server.IdleTimeout) // default
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 2*time.Minute, cfg.Database.ConnectTimeout)
				assert.Equal(t, id.DefaultMachineID, cfg.Core.MachineID)
				assert.Equal(t, cache.DefaultConfig(), cfg.Cache.Cache())
				assert.Equal(t, 16, cfg.Worker.WorkerPoolSize)
			},
		},
		{
			name:        "malformed yaml",
			configFile:  "server: [",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var configFile string

			if tt.configFile != "" {
				tmpDir := t.TempDir()
				configFile = filepath.Join(tmpDir, "config.yaml")
				err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
				require.NoError(t, err)
			} else {
				// For missing config file, use empty string to let viper search in config/ directory
				configFile = ""
			}

			cfg, err := LoadAPIConfig(configFile, "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				if tt.validate != nil {
					require.NoError(t, err)
					require.NotNil(t, cfg)
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	tests := []struct {
		name     string
		config   DatabaseConfig
		expected string
	}{
		{
			name: "complete config",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "testpass",
				DBName:   "testdb",
				SSLMode:  "require",
			},
			expected: "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=require",
		},
		{
			name: "with special characters in password",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "p@ssw0rd!",
				DBName:   "testdb",
				SSLMode:  "disable",
			},
			expected: "host=localhost port=5432 user=testuser password=p@ssw0rd! dbname=testdb sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dsn := tt.config.DSN()
			assert.Equal(t, tt.expected, dsn)
		})
	}
}

func TestCoreConfig_MachineIDConfigured(t *testing.T) {
	assert.False(t, CoreConfig{MachineID: id.DefaultMachineID}.MachineIDConfigured())
	assert.True(t, CoreConfig{MachineID: 0}.MachineIDConfigured())
	assert.True(t, CoreConfig{MachineID: 42}.MachineIDConfigured())
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	tmpDir := t.TempDir()

	// Create temporary directory for env files
	envDir := filepath.Join(tmpDir, "env")
	err := os.MkdirAll(envDir, 0750)
	require.NoError(t, err)

	// Create .env file with environment variables
	// Note: Viper uses EOS420_ prefix, so env vars need the prefix
	envFile := filepath.Join(envDir, ".env")
	envContent := `EOS420_DEBUG=true
EOS420_DATABASE_HOST=env-host
EOS420_DATABASE_PORT=3306
EOS420_CORE_MACHINE_ID=7
EOS420_CACHE_TTL=90s
`
	err = os.WriteFile(envFile, []byte(envContent), 0600)
	require.NoError(t, err)

	// The env files set real process variables; clear them for the other tests
	t.Cleanup(func() {
		for _, key := range []string{"EOS420_DEBUG", "EOS420_DATABASE_HOST", "EOS420_DATABASE_PORT", "EOS420_CORE_MACHINE_ID", "EOS420_CACHE_TTL"} {
			_ = os.Unsetenv(key)
		}
	})

	// Create a local override that wins over .env
	err = os.WriteFile(filepath.Join(envDir, ".env.api.local"), []byte("EOS420_DATABASE_HOST=local-host\n"), 0600)
	require.NoError(t, err)

	// Create config file with different values to verify env vars override
	configPath := filepath.Join(tmpDir, "config.yaml")
	configFile := `
debug: false
database:
  host: file-host
  port: 5432
  user: file-user
core:
  machine_id: 1
`

	err = os.WriteFile(configPath, []byte(configFile), 0600)
	require.NoError(t, err)

	cfg, err := LoadAPIConfig(configPath, envDir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.True(t, cfg.Debug)                        // from .env, not the config file
	assert.Equal(t, "local-host", cfg.Database.Host) // from .env.api.local
	assert.Equal(t, 3306, cfg.Database.Port)         // from .env
	assert.Equal(t, "file-user", cfg.Database.User)  // untouched by env
	assert.Equal(t, uint16(7), cfg.Core.MachineID)   // from .env
	assert.Equal(t, 90*time.Second, cfg.Cache.TTL)   // from .env
	assert.Equal(t, cache.DefaultTTI, cfg.Cache.TTI) // default
}
