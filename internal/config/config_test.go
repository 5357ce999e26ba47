package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_SQLiteDefaults(t *testing.T) {
	t.Setenv("DB_DRIVER", DriverSQLite)
	t.Setenv("DB_SQLITE_PATH", "/tmp/esupport-test.db")
	t.Setenv("PORT", "9090")
	t.Setenv("NOTIFIER_TIMEOUT", "3s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "/tmp/esupport-test.db?_foreign_keys=on", cfg.GetSQLiteDSN())
	assert.Equal(t, 3*time.Second, cfg.Notification.Timeout)
	assert.False(t, cfg.Notification.Enabled())
	assert.Equal(t, "eSupport", cfg.Admin.SiteHeader)
	assert.Equal(t, "Panel administracyjny eSupport", cfg.Admin.IndexTitle)
	assert.Equal(t, 25, cfg.Admin.PageSize)
}

func TestLoadConfig_AdminOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", DriverSQLite)
	t.Setenv("ADMIN_SITE_HEADER", "Helpdesk")
	t.Setenv("ADMIN_PAGE_SIZE", "50")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "Helpdesk", cfg.Admin.SiteHeader)
	assert.Equal(t, "eSupport", cfg.Admin.SiteTitle)
	assert.Equal(t, 50, cfg.Admin.PageSize)
}

func TestLoadConfig_PostgresRequiresCredentials(t *testing.T) {
	t.Setenv("DB_DRIVER", DriverPostgres)
	t.Setenv("DB_USER", "")
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("DB_NAME", "")

	cfg, err := LoadConfig()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database user is required")
	assert.Contains(t, err.Error(), "database password is required")
	assert.Contains(t, err.Error(), "database name is required")
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:     8080,
			LogLevel: "debug",
			Database: DatabaseConfig{Driver: DriverSQLite, SQLitePath: "x.db"},
			Admin:    DefaultAdminConfig(),
		}
	}

	tests := []struct {
		name          string
		mutate        func(c *Config)
		errorContains string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "unknown driver", mutate: func(c *Config) { c.Database.Driver = "mysql" }, errorContains: "unsupported database driver"},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "trace" }, errorContains: "invalid log level"},
		{name: "bad port", mutate: func(c *Config) { c.Port = 70000 }, errorContains: "port must be between"},
		{name: "page size too large", mutate: func(c *Config) { c.Admin.PageSize = 500 }, errorContains: "admin page size"},
		{name: "too many retries", mutate: func(c *Config) { c.Notification.RetryAttempts = 11 }, errorContains: "retry attempts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := validateConfig(cfg)
			if tt.errorContains == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorContains)
		})
	}
}

func TestGetDatabaseDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "db", Port: 5432, User: "u", Password: "p", Name: "inv", SSLMode: "disable",
	}}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=inv sslmode=disable", cfg.GetDatabaseDSN())
}

func TestSQLiteDSN_AppendsToExistingQuery(t *testing.T) {
	assert.Equal(t, "file:test.db?cache=shared&_foreign_keys=on", SQLiteDSN("file:test.db?cache=shared"))
}
