package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	for _, key := range []string{"RESALE_TOKEN", "RESALE_BASE_URL", "RESALE_EMAIL", "RESALE_PAGE_SIZE", "RESALE_THEME", "RESALE_LOG_LEVEL", "RESALE_LOG_FILE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	return dir
}

func writeRaw(t *testing.T, home, content string) {
	t.Helper()
	cfgDir := filepath.Join(home, ".resale")
	require.NoError(t, os.MkdirAll(cfgDir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config"), []byte(content), 0600))
}

func TestSaveConfigCreatesDirectories(t *testing.T) {
	useHome(t)

	cfg := Config{Token: "test-token"}
	require.NoError(t, cfg.Save())

	info, err := os.Stat(Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLoadConfigNonExistent(t *testing.T) {
	useHome(t)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestSaveLoadRoundtripWithAllFields(t *testing.T) {
	useHome(t)

	original := Config{
		Token:    "jwt-verylongtoken12345",
		BaseURL:  "https://admin.example.com/api",
		Email:    "admin@example.com",
		UserName: "Admin",
		Role:     "admin",
		PageSize: 50,
		Theme:    "dark",
		LogLevel: "debug",
	}
	require.NoError(t, original.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, original, *loaded)
}

func TestSaveConfigOverwritesExisting(t *testing.T) {
	useHome(t)

	require.NoError(t, (&Config{Token: "one"}).Save())
	require.NoError(t, (&Config{Token: "two"}).Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "two", loaded.Token)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	home := useHome(t)
	writeRaw(t, home, "invalid: yaml: content:")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoadConfigMissingToken(t *testing.T) {
	home := useHome(t)
	writeRaw(t, home, "email: admin@example.com\n")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token")
}

func TestStoredIgnoresEnvironmentAndMissingFile(t *testing.T) {
	home := useHome(t)

	cfg, err := Stored()
	require.NoError(t, err)
	assert.Equal(t, Config{}, *cfg)

	writeRaw(t, home, "base_url: https://saved.example.com/api\npage_size: 50\n")
	t.Setenv("RESALE_BASE_URL", "https://env.example.com/api")

	cfg, err = Stored()
	require.NoError(t, err)
	assert.Equal(t, "https://saved.example.com/api", cfg.BaseURL)
	assert.Equal(t, 50, cfg.PageSize)
	assert.Empty(t, cfg.Token)

	env, err := Env()
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com/api", env.BaseURL)
	assert.Zero(t, env.PageSize)
}

func TestStoredRejectsOpenPermissions(t *testing.T) {
	useHome(t)
	require.NoError(t, (&Config{Token: "secret"}).Save())
	require.NoError(t, os.Chmod(Path(), 0644))

	_, err := Stored()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permissions")
}

func TestConfigPermissionsStrictlyEnforced(t *testing.T) {
	useHome(t)

	require.NoError(t, (&Config{Token: "secret"}).Save())
	require.NoError(t, os.Chmod(Path(), 0644))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permissions")
}

func TestSaveTightensExistingPermissions(t *testing.T) {
	useHome(t)

	require.NoError(t, (&Config{Token: "secret"}).Save())
	require.NoError(t, os.Chmod(Path(), 0644))
	require.NoError(t, (&Config{Token: "secret"}).Save())

	_, err := Load()
	require.NoError(t, err)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	home := useHome(t)
	writeRaw(t, home, "token: file-token\nbase_url: http://file\npage_size: 10\n")
	t.Setenv("RESALE_BASE_URL", "http://env")
	t.Setenv("RESALE_PAGE_SIZE", "40")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "file-token", cfg.Token)
	assert.Equal(t, "http://env", cfg.BaseURL)
	assert.Equal(t, 40, cfg.ListPageSize())
}

func TestEnvironmentTokenWithoutFile(t *testing.T) {
	useHome(t)
	t.Setenv("RESALE_TOKEN", "env-token")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.Token)
}

func TestEnvironmentInvalidPageSize(t *testing.T) {
	home := useHome(t)
	writeRaw(t, home, "token: t\n")
	t.Setenv("RESALE_PAGE_SIZE", "many")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read environment")
}

func TestDefaults(t *testing.T) {
	home := useHome(t)

	var cfg *Config
	assert.Equal(t, "http://fallback", cfg.APIBaseURL("http://fallback"))
	assert.Equal(t, 20, cfg.ListPageSize())
	assert.Equal(t, filepath.Join(home, ".resale", "logs", "resale.log"), cfg.LogPath())

	custom := &Config{BaseURL: "http://x", PageSize: 5, LogFile: "/tmp/r.log"}
	assert.Equal(t, "http://x", custom.APIBaseURL("http://fallback"))
	assert.Equal(t, 5, custom.ListPageSize())
	assert.Equal(t, "/tmp/r.log", custom.LogPath())
}
