package t3ui

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogNames(t *testing.T) {
	c, err := NewCatalog(testLibrary())
	require.NoError(t, err)

	names, err := c.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"button", "card"}, names)
}

func TestCatalogNames_EveryChildDirectory(t *testing.T) {
	lib := fstest.MapFS{
		"README.md":         {Data: []byte("readme")},
		".shared/util.ts":   {Data: []byte("x")},
		"button/button.tsx": {Data: []byte("x")},
		"legacy/old.tsx":    {Data: []byte("x")},
	}
	c, err := NewCatalog(lib)
	require.NoError(t, err)

	names, err := c.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{".shared", "button", "legacy"}, names)
}

func TestCatalogNames_Empty(t *testing.T) {
	c, err := NewCatalog(fstest.MapFS{})
	require.NoError(t, err)

	names, err := c.Names()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestCatalogHas(t *testing.T) {
	c, err := NewCatalog(testLibrary())
	require.NoError(t, err)

	ok, err := c.Has("card")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.Has("dialog")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCatalogFiles(t *testing.T) {
	c, err := NewCatalog(testLibrary())
	require.NoError(t, err)

	tests := []struct {
		name      string
		component string
		want      []string
	}{
		{
			name:      "every file",
			component: "button",
			want:      []string{"button.stories.tsx", "button.tsx", "index.ts"},
		},
		{
			name:      "nested directories",
			component: "card",
			want:      []string{"card.tsx", "parts/header.tsx"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files, err := c.Files(tt.component)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, files)
		})
	}
}
