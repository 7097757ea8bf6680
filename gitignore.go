package t3ui

import (
	"path/filepath"

	ignore "github.com/sabhiram/go-gitignore"
)

// GitIgnoreFile is the project file consulted after a copy.
const GitIgnoreFile = ".gitignore"

// loadGitIgnore compiles the project's .gitignore.
// Returns nil when the file is missing or unreadable.
func loadGitIgnore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, GitIgnoreFile))
	if err != nil {
		return nil
	}
	return gi
}

// GitIgnored returns the first of paths matched by root's .gitignore.
// Paths are slash-separated and relative to root.
func GitIgnored(root string, paths []string) (string, bool) {
	gi := loadGitIgnore(root)
	if gi == nil {
		return "", false
	}
	for _, p := range paths {
		if gi.MatchesPath(p) {
			return p, true
		}
	}
	return "", false
}
