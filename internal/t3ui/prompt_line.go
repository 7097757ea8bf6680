package t3ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LinePrompter asks questions one line at a time. It is used when stdin is
// not a terminal.
type LinePrompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewLinePrompter creates a prompter reading answers from in.
// in and out are injectable for testing.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{scanner: bufio.NewScanner(in), out: out}
}

// AskText returns the next line as entered. End of input cancels.
func (p *LinePrompter) AskText(msg string) (string, error) {
	_, _ = fmt.Fprintf(p.out, "? %s ", msg)
	return p.readLine()
}

// AskChoice lists the options and accepts either a number or an option name.
// Invalid answers are asked again until input ends.
func (p *LinePrompter) AskChoice(msg string, options []string) (string, error) {
	if len(options) == 0 {
		return "", ErrNoChoices
	}

	_, _ = fmt.Fprintf(p.out, "? %s\n", msg)
	for i, opt := range options {
		_, _ = fmt.Fprintf(p.out, "  %d) %s\n", i+1, opt)
	}

	for {
		_, _ = fmt.Fprintf(p.out, "Select [1-%d]: ", len(options))
		line, err := p.readLine()
		if err != nil {
			return "", err
		}

		answer := strings.TrimSpace(line)
		if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(options) {
			return options[n-1], nil
		}
		for _, opt := range options {
			if answer == opt {
				return opt, nil
			}
		}
		_, _ = fmt.Fprintf(p.out, "Please enter a number between 1 and %d.\n", len(options))
	}
}

func (p *LinePrompter) readLine() (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("reading answer: %w", err)
		}
		return "", ErrCancelled
	}
	return strings.TrimRight(p.scanner.Text(), "\r"), nil
}
