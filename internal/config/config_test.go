package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"data_path": "jobs.csv",
		"model": "gemini-2.5-pro",
		"port": 9090,
		"github_repo": "owner/repo"
	}`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "jobs.csv", cfg.DataPath)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "owner/repo", cfg.GitHubRepo)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig("")
	require.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("not json"), 0o644))
	_, err = LoadConfig(bad)
	require.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("DATA_PATH", "env.csv")
	t.Setenv("GEMINI_API_KEY", "key")
	t.Setenv("GITHUB_TOKEN", "tok")
	t.Setenv("GITHUB_REPO", "owner/repo")

	cfg := FromEnv()
	assert.Equal(t, "env.csv", cfg.DataPath)
	assert.Equal(t, "key", cfg.APIKey)
	assert.Equal(t, "tok", cfg.GitHubToken)
	assert.Equal(t, "owner/repo", cfg.GitHubRepo)
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Model: "flag-model"}
	merged := cfg.MergeWithDefaults(Config{
		DataPath: "default.csv",
		Model:    "default-model",
		APIKey:   "key",
		Port:     8080,
	})

	// explicit values win, empty values take the defaults
	assert.Equal(t, "flag-model", merged.Model)
	assert.Equal(t, "default.csv", merged.DataPath)
	assert.Equal(t, "key", merged.APIKey)
	assert.Equal(t, 8080, merged.Port)
}

func TestMergeWithDefaults_FallsBackToDefaultDataPath(t *testing.T) {
	merged := (&Config{}).MergeWithDefaults(Config{})
	assert.Equal(t, DefaultDataPath, merged.DataPath)
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "jobs.csv")
	require.NoError(t, os.WriteFile(data, []byte("header\n"), 0o644))

	cfg := Config{DataPath: data, Port: 8080}
	assert.NoError(t, cfg.Validate())

	cfg = Config{DataPath: filepath.Join(dir, "missing.csv")}
	assert.Error(t, cfg.Validate())

	cfg = Config{Port: -1}
	assert.Error(t, cfg.Validate())

	cfg = Config{Port: 70000}
	assert.Error(t, cfg.Validate())
}
