// Package t3ui holds the terminal side of the t3ui CLI: output styling,
// reporting and interactive prompts.
package t3ui

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Reporter prints run outcomes for the operator.
type Reporter struct {
	out       io.Writer
	err       io.Writer
	useColors bool
	quiet     bool
}

// NewReporter creates a reporter writing results to out and problems to errOut.
// forceColor enables colors regardless of the terminal.
func NewReporter(out, errOut io.Writer, forceColor, quiet bool) *Reporter {
	return &Reporter{
		out:       out,
		err:       errOut,
		useColors: shouldUseColors(forceColor),
		quiet:     quiet,
	}
}

// shouldUseColors determines if colors should be enabled
func shouldUseColors(force bool) bool {
	if force {
		return true
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, _ := os.Stdout.Stat(); fileInfo != nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// Success prints the confirmation line unless quiet.
func (r *Reporter) Success(msg string) {
	if r.quiet {
		return
	}
	fmt.Fprintln(r.out, RenderStyle(StyleGreen, msg, r.useColors))
}

// Warn prints a warning line unless quiet.
func (r *Reporter) Warn(msg string) {
	if r.quiet {
		return
	}
	fmt.Fprintf(r.err, "%s %s\n", RenderStyle(StyleYellow, "Warning:", r.useColors), msg)
}

// Error prints a single-line error. Errors are printed even when quiet.
func (r *Reporter) Error(err error) {
	msg := strings.ReplaceAll(err.Error(), "\n", " ")
	fmt.Fprintf(r.err, "%s %s\n", RenderStyle(StyleRed, "Error:", r.useColors), msg)
}

// List prints one name per line.
func (r *Reporter) List(names []string) {
	for _, n := range names {
		fmt.Fprintln(r.out, n)
	}
}
