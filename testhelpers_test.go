package t3ui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

// scriptedPrompter answers prompts from fixed values and records what was asked.
type scriptedPrompter struct {
	text        string
	choice      string
	textAsked   int
	choiceAsked int
	options     []string
}

func (p *scriptedPrompter) AskText(string) (string, error) {
	p.textAsked++
	return p.text, nil
}

func (p *scriptedPrompter) AskChoice(_ string, options []string) (string, error) {
	p.choiceAsked++
	p.options = options
	if p.choice == "" {
		return "", errors.New("no scripted choice")
	}
	return p.choice, nil
}

type fakeChecker struct {
	installed map[string]bool
	asked     []string
}

func (c *fakeChecker) HasPackage(_ context.Context, name string) bool {
	c.asked = append(c.asked, name)
	return c.installed[name]
}

func installed(pkgs ...string) *fakeChecker {
	c := &fakeChecker{installed: map[string]bool{}}
	for _, p := range pkgs {
		c.installed[p] = true
	}
	return c
}

func testLibrary() fstest.MapFS {
	return fstest.MapFS{
		"button/button.tsx":         {Data: []byte("export const Button = () => null;\n")},
		"button/index.ts":           {Data: []byte("export * from \"./button\";\n")},
		"button/button.stories.tsx": {Data: []byte("stories\n")},
		"card/card.tsx":             {Data: []byte("export const Card = () => null;\n")},
		"card/parts/header.tsx":     {Data: []byte("export const CardHeader = () => null;\n")},
		"README.md":                 {Data: []byte("not a component\n")},
	}
}

// tailwindProject creates a project root with a Tailwind config.
func tailwindProject(t *testing.T, configName, content string) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, configName), []byte(content), 0644))
	return root
}
