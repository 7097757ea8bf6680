package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".t3ui.yaml")
	configContent := `
verbose: true
root: apps/web
library: ./my-components

add:
  dir: src/ui
  package-manager: pnpm
  helper-package: tailwind-variants
  skip-checks: true
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("verbose"))
	assert.Equal(t, "apps/web", k.String("root"))
	assert.Equal(t, "src/ui", k.String("add.dir"))
	assert.Equal(t, "pnpm", k.String("add.package-manager"))
	assert.True(t, k.Bool("add.skip-checks"))
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Point to non-existent config, should not error
	require.NoError(t, loadConfigFromPath("/nonexistent/.t3ui.yaml"))

	s := buildSettings()
	assert.Equal(t, ".", s.Root)
	assert.Empty(t, s.Library)
	assert.Empty(t, s.Destination)
	assert.Empty(t, s.PackageManager)
	assert.Equal(t, "class-variance-authority", s.HelperPackage)
	assert.False(t, s.SkipChecks)
	assert.False(t, s.Verbose)
	assert.False(t, s.Quiet)
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".t3ui.yaml")
	configContent := `
add:
  package-manager: npm
  skip-checks: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	t.Setenv("T3UI_ADD__PACKAGE_MANAGER", "yarn")
	t.Setenv("T3UI_ADD__SKIP_CHECKS", "true")
	t.Setenv("T3UI_QUIET", "true")

	require.NoError(t, loadConfigFromPath(configPath))

	s := buildSettings()
	assert.Equal(t, "yarn", s.PackageManager)
	assert.True(t, s.SkipChecks)
	assert.True(t, s.Quiet)
}

func TestBuildSettings_FromConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".t3ui.yaml")
	configContent := `
color: true
add:
  dir: components
  helper-package: tailwind-variants
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	s := buildSettings()
	assert.Equal(t, "components", s.Destination)
	assert.Equal(t, "tailwind-variants", s.HelperPackage)
	assert.True(t, s.Color)
}

func TestGetStringWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.Equal(t, "default", getStringWithFallback("flag-key", "config.key", "default"))

	require.NoError(t, k.Set("config.key", "from-config"))
	assert.Equal(t, "from-config", getStringWithFallback("flag-key", "config.key", "default"))

	require.NoError(t, k.Set("flag-key", "from-flag"))
	assert.Equal(t, "from-flag", getStringWithFallback("flag-key", "config.key", "default"))
}

func TestGetBoolWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.False(t, getBoolWithFallback("flag-key", "config.key", false))
	assert.True(t, getBoolWithFallback("flag-key", "config.key", true))

	require.NoError(t, k.Set("config.key", true))
	assert.True(t, getBoolWithFallback("flag-key", "config.key", false))
}
