package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 32, cfg.Server.BodyLimitMB)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, 6, cfg.Reconcile.CompanySkipRows)
	assert.Equal(t, 4, cfg.Reconcile.BankSkipRows)
	assert.Equal(t, "membership", cfg.Reconcile.Mode)
	assert.Equal(t, "reports", cfg.Reconcile.ReportPrefix)
	assert.Empty(t, cfg.Reconcile.CompanyQuery)
	assert.False(t, cfg.Storage.UseSSL)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("RECONCILE_BANK_SKIP_ROWS", "0")
	t.Setenv("RECONCILE_MODE", "multiset")
	t.Setenv("STORAGE_USE_SSL", "true")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 0, cfg.Reconcile.BankSkipRows)
	assert.Equal(t, "multiset", cfg.Reconcile.Mode)
	assert.True(t, cfg.Storage.UseSSL)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	// Registered so the values written by the .env file are restored afterwards
	t.Setenv("RECONCILE_COMPANY_SKIP_ROWS", "")
	t.Setenv("DATABASE_DRIVER", "")

	dir := t.TempDir()
	content := "RECONCILE_COMPANY_SKIP_ROWS=2\nDATABASE_DRIVER=sqlite\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Reconcile.CompanySkipRows)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
}
