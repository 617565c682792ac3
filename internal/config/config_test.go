package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfigFile(t, `{
		"port": 9090,
		"database_url": "postgres://localhost/pipeline",
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "postgres://localhost/pipeline", cfg.DatabaseURL)
	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.JSONLogs)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfigFile(t, `{"port": `)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://db.example/pipeline")
	t.Setenv("PORT", "8181")

	cfg := FromEnv()
	assert.Equal(t, "postgres://db.example/pipeline", cfg.DatabaseURL)
	assert.Equal(t, 8181, cfg.Port)
}

func TestFromEnv_BadPortIgnored(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PORT", "not-a-port")

	cfg := FromEnv()
	assert.Equal(t, 0, cfg.Port)
}

func TestValidate_PortRange(t *testing.T) {
	assert.NoError(t, (&Config{Port: 8080}).Validate())
	assert.NoError(t, (&Config{}).Validate())
	assert.Error(t, (&Config{Port: -1}).Validate())
	assert.Error(t, (&Config{Port: 70000}).Validate())
}

func TestValidate_VocabularyPaths(t *testing.T) {
	existing := writeConfigFile(t, `{}`)

	cfg := &Config{SkillFamiliesPath: existing}
	assert.NoError(t, cfg.Validate())

	cfg = &Config{SkillFamiliesPath: "/does/not/exist.json"}
	require.Error(t, cfg.Validate())
	assert.Contains(t, cfg.Validate().Error(), "skill families file not found")

	cfg = &Config{BiasCategoriesPath: "/does/not/exist.json"}
	require.Error(t, cfg.Validate())
	assert.Contains(t, cfg.Validate().Error(), "bias categories file not found")
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Port: 9090}
	defaults := Config{
		Port:        8080,
		DatabaseURL: "postgres://localhost/pipeline",
		JSONLogs:    true,
	}

	merged := cfg.MergeWithDefaults(defaults)
	assert.Equal(t, 9090, merged.Port)
	assert.Equal(t, "postgres://localhost/pipeline", merged.DatabaseURL)

	// bool fields are never merged; the caller's value stands
	assert.False(t, merged.JSONLogs)
}

func TestMergeWithDefaults_EmptyTakesAll(t *testing.T) {
	defaults := Config{Port: 8080, DatabaseURL: "postgres://localhost/pipeline", SkillFamiliesPath: "families.json"}

	merged := (&Config{}).MergeWithDefaults(defaults)
	assert.Equal(t, defaults.Port, merged.Port)
	assert.Equal(t, defaults.DatabaseURL, merged.DatabaseURL)
	assert.Equal(t, defaults.SkillFamiliesPath, merged.SkillFamiliesPath)
}
