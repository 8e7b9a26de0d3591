package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, 3000, c.Server.Port)
	assert.Equal(t, "canned", c.Coach.Mode)
	assert.Equal(t, "https://api.openai.com", c.Coach.BaseURL)
	assert.Equal(t, "data/planner.sqlite", c.Database.File)
	assert.Equal(t, ":3000", c.Addr())
}

func TestLoadYAMLAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"server:\n  port: 8080\ncoach:\n  mode: live\n  api_key: from-file\n"), 0644))

	t.Setenv("OPENAI_API_KEY", "from-env")
	t.Setenv("PORT", "9090")

	c := Load(path)
	assert.Equal(t, 9090, c.Server.Port)
	assert.Equal(t, "live", c.Coach.Mode)
	// env wins over file
	assert.Equal(t, "from-env", c.Coach.APIKey)
}

func TestOpenGormDBSQLiteFile(t *testing.T) {
	c := Load("")
	c.Database.File = filepath.Join(t.TempDir(), "nested", "planner.sqlite")

	db, err := c.OpenGormDB()
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	assert.NoError(t, sqlDB.Ping())
	_, statErr := os.Stat(filepath.Dir(c.Database.File))
	assert.NoError(t, statErr)
}
