package t3ui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGitIgnored(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, GitIgnoreFile), []byte("# build output\ndist/\n*.log\n"), 0644))

	tests := []struct {
		name     string
		paths    []string
		wantPath string
		wantOK   bool
	}{
		{name: "nothing matched", paths: []string{"ui/button/button.tsx", "ui/button/index.ts"}},
		{name: "directory rule", paths: []string{"dist/ui/card.tsx"}, wantPath: "dist/ui/card.tsx", wantOK: true},
		{name: "first match wins", paths: []string{"ui/a.tsx", "ui/debug.log", "dist/b.tsx"}, wantPath: "ui/debug.log", wantOK: true},
		{name: "no paths"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := GitIgnored(root, tt.paths)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantPath, p)
		})
	}
}

func TestGitIgnored_NoFile(t *testing.T) {
	p, ok := GitIgnored(t.TempDir(), []string{"ui/button/button.tsx"})
	assert.False(t, ok)
	assert.Empty(t, p)
}
