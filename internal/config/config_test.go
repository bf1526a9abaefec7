package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "0.0.0.0:3000", cfg.Address())
	assert.Equal(t, "logs/app.log", cfg.AccessLog.Path)
	assert.True(t, cfg.AccessLog.Enabled)
	assert.Empty(t, cfg.AccessLog.JournalPath)
	assert.True(t, cfg.Store.SeedSamples)
	assert.Equal(t, 5*time.Second, cfg.Context.RequestTimeout)
	assert.Equal(t, 1<<20, cfg.HTTP.MaxBodySize)
}

func TestLoad_FromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("APP_ENV", EnvDevelopment)
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "2")
	t.Setenv("ACCESS_JOURNAL_RETENTION", "90m")
	t.Setenv("ACCESS_JOURNAL_PATH", "data/access.db")
	t.Setenv("SEED_SAMPLE_TASKS", "false")
	t.Setenv("SERVER_MAX_BODY_SIZE", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "127.0.0.1:8080", cfg.Address())
	assert.Equal(t, 2*time.Second, cfg.Context.RequestTimeout)
	assert.Equal(t, 90*time.Minute, cfg.AccessLog.Retention)
	assert.Equal(t, "data/access.db", cfg.AccessLog.JournalPath)
	assert.False(t, cfg.Store.SeedSamples)
	assert.Equal(t, 1<<20, cfg.HTTP.MaxBodySize)
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
