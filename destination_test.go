package t3ui

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDestination_Missing(t *testing.T) {
	dest, found, err := LoadDestination(t.TempDir())
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, dest)
}

func TestSaveThenLoadDestination(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, SaveDestination(root, "./ui"))

	data, err := os.ReadFile(ConfigPath(root))
	require.NoError(t, err)
	assert.JSONEq(t, `{"componentDirectory": "./ui"}`, string(data))

	dest, found, err := LoadDestination(root)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "./ui", dest)
}

func TestSaveDestination_Overwrites(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(ConfigPath(root), []byte(`{"componentDirectory": "old", "theme": "dark"}`), 0644))

	require.NoError(t, SaveDestination(root, "src/components"))

	data, err := os.ReadFile(ConfigPath(root))
	require.NoError(t, err)
	assert.JSONEq(t, `{"componentDirectory": "src/components"}`, string(data))
}

func TestLoadDestination_IgnoresUnknownKeys(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(ConfigPath(root), []byte(`{"componentDirectory": "lib/ui", "extra": [1, 2]}`), 0644))

	dest, found, err := LoadDestination(root)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "lib/ui", dest)
}

func TestLoadDestination_MissingKey(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(ConfigPath(root), []byte(`{}`), 0644))

	dest, found, err := LoadDestination(root)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, dest)
}

func TestLoadDestination_InvalidJSON(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(ConfigPath(root), []byte(`{"componentDirectory": `), 0644))

	_, _, err := LoadDestination(root)
	require.Error(t, err)

	var parseErr *ConfigParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, ConfigPath(root), parseErr.Path)
}
