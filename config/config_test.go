package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{"PORT", "DB_PATH", "USE_HTTPS", "SESSION_LIFETIME", "LOGGED_HOSTS"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "logtrail.db", cfg.DBPath)
	assert.False(t, cfg.UseHTTPS)
	assert.Equal(t, int64(3600), cfg.SessionLifetime)
	assert.Empty(t, cfg.LoggedHosts)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("USE_HTTPS", "true")
	t.Setenv("SESSION_LIFETIME", "600")
	t.Setenv("LOGGED_HOSTS", " order, customer ,,invoice")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.UseHTTPS)
	assert.Equal(t, int64(600), cfg.SessionLifetime)
	assert.Equal(t, []string{"order", "customer", "invoice"}, cfg.LoggedHosts)
}

func TestLoad_FromEnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv does not override variables that are already set
	require.NoError(t, os.Unsetenv("DB_PATH"))
	t.Cleanup(func() { os.Unsetenv("DB_PATH") })

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("DB_PATH=/tmp/trail.db\n"), 0o600))

	cfg, err := Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/trail.db", cfg.DBPath)
}

func TestLoad_InvalidSessionLifetime(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_LIFETIME", "soon")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "invalid SESSION_LIFETIME")
}
