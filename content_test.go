package t3ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentGlobs(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "commonjs array",
			src: `/** @type {import('tailwindcss').Config} */
module.exports = {
  content: ["./src/**/*.{js,ts,jsx,tsx}", './app/**/*.tsx'],
  theme: { extend: {} },
  plugins: [],
}`,
			want: []string{"./src/**/*.{js,ts,jsx,tsx}", "./app/**/*.tsx"},
		},
		{
			name: "typescript with satisfies",
			src: `import type { Config } from "tailwindcss";

export default {
  // scanned for class names
  content: [
    "./src/pages/**/*.{ts,tsx}",
    "./src/components/**/*.{ts,tsx}",
  ],
} satisfies Config;`,
			want: []string{"./src/pages/**/*.{ts,tsx}", "./src/components/**/*.{ts,tsx}"},
		},
		{
			name: "object form with files",
			src: `module.exports = {
  content: {
    relative: true,
    files: ["./ui/**/*.tsx"],
  },
}`,
			want: []string{"./ui/**/*.tsx"},
		},
		{
			name: "theme content before top-level content",
			src: `const config: Config = {
  theme: { extend: { content: { empty: '""' } } },
  "content": [` + "`./lib/**/*.tsx`" + `],
};
export default config;`,
			want: []string{"./lib/**/*.tsx"},
		},
		{
			name: "no content property",
			src:  `export default { theme: {} }`,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContentGlobs([]byte(tt.src)))
		})
	}
}

func TestCoveredBy(t *testing.T) {
	globs := []string{"./src/**/*.{ts,tsx}", "!./src/legacy/**", "app/*.tsx"}

	tests := []struct {
		path string
		want bool
	}{
		{"src/ui/button/button.tsx", true},
		{"src/ui/button/index.ts", true},
		{"app/page.tsx", true},
		{"app/nested/page.tsx", false},
		{"ui/button/button.tsx", false},
		{"src/ui/button/styles.css", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, CoveredBy(globs, tt.path))
		})
	}
}
