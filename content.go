package t3ui

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/js"
)

// token is a significant (non-whitespace, non-comment) JS token.
type token struct {
	tt   js.TokenType
	text string
}

// ContentGlobs extracts the file globs from the content property of a
// Tailwind config. Both `content: [...]` and `content: { files: [...] }` are
// recognized. The source is lexed rather than parsed so TypeScript configs
// work as well; type annotations are just more tokens.
func ContentGlobs(src []byte) []string {
	tokens := lexTokens(src)

	for i := 0; i+2 < len(tokens); i++ {
		if !isKey(tokens[i], "content") || tokens[i+1].tt != js.ColonToken {
			continue
		}
		switch tokens[i+2].tt {
		case js.OpenBracketToken:
			return collectStrings(tokens, i+2)
		case js.OpenBraceToken:
			// theme.content also exists; it has no files key and is skipped
			if globs := filesFromObject(tokens, i+2); len(globs) > 0 {
				return globs
			}
		}
	}
	return nil
}

// ReadContentGlobs reads a Tailwind config file and returns its content globs.
func ReadContentGlobs(configPath string) ([]string, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	return ContentGlobs(data), nil
}

// CoveredBy reports whether relPath (slash-separated, relative to the project
// root) is matched by any of the globs. Negated globs are ignored.
func CoveredBy(globs []string, relPath string) bool {
	relPath = filepath.ToSlash(relPath)
	for _, g := range globs {
		if strings.HasPrefix(g, "!") {
			continue
		}
		g = strings.TrimPrefix(g, "./")
		if ok, _ := doublestar.Match(g, relPath); ok {
			return true
		}
	}
	return false
}

func lexTokens(src []byte) []token {
	lexer := js.NewLexer(parse.NewInputBytes(src))

	var tokens []token
	for {
		tt, text := lexer.Next()
		switch tt {
		case js.ErrorToken:
			return tokens
		case js.WhitespaceToken, js.LineTerminatorToken, js.CommentToken, js.CommentLineTerminatorToken:
			continue
		}
		tokens = append(tokens, token{tt: tt, text: string(text)})
	}
}

func isKey(t token, name string) bool {
	switch t.tt {
	case js.IdentifierToken:
		return t.text == name
	case js.StringToken:
		return unquote(t.text) == name
	}
	return false
}

// collectStrings returns every string literal between the bracket at start
// and its matching close.
func collectStrings(tokens []token, start int) []string {
	var out []string
	depth := 0
	for i := start; i < len(tokens); i++ {
		switch tokens[i].tt {
		case js.OpenBracketToken, js.OpenBraceToken, js.OpenParenToken:
			depth++
		case js.CloseBracketToken, js.CloseBraceToken, js.CloseParenToken:
			depth--
			if depth == 0 {
				return out
			}
		case js.StringToken, js.TemplateToken:
			out = append(out, unquote(tokens[i].text))
		}
	}
	return out
}

// filesFromObject looks for a files array directly inside the object at start.
func filesFromObject(tokens []token, start int) []string {
	depth := 0
	for i := start; i < len(tokens); i++ {
		switch tokens[i].tt {
		case js.OpenBracketToken, js.OpenBraceToken, js.OpenParenToken:
			depth++
		case js.CloseBracketToken, js.CloseBraceToken, js.CloseParenToken:
			depth--
			if depth == 0 {
				return nil
			}
		}
		if depth == 1 && i+2 < len(tokens) && isKey(tokens[i], "files") &&
			tokens[i+1].tt == js.ColonToken && tokens[i+2].tt == js.OpenBracketToken {
			return collectStrings(tokens, i+2)
		}
	}
	return nil
}

var unescaper = strings.NewReplacer(`\\`, `\`, `\'`, `'`, `\"`, `"`, "\\`", "`")

func unquote(s string) string {
	if len(s) >= 2 {
		s = s[1 : len(s)-1]
	}
	return unescaper.Replace(s)
}
