package t3ui

import (
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/yacobolo/t3ui"
	"golang.org/x/term"
)

// Prompt errors.
var (
	ErrCancelled = errors.New("prompt cancelled")
	ErrNoChoices = errors.New("no choices to select from")
)

// NewPrompter returns a TerminalPrompter when both in and out are terminals
// and a LinePrompter otherwise (pipes, CI, scripted input).
func NewPrompter(in, out *os.File) t3ui.Prompter {
	if term.IsTerminal(int(in.Fd())) && term.IsTerminal(int(out.Fd())) {
		return &TerminalPrompter{In: in, Out: out}
	}
	return NewLinePrompter(in, out)
}

// TerminalPrompter asks questions with Bubble Tea programs.
type TerminalPrompter struct {
	In  io.Reader
	Out io.Writer
}

// AskText shows a free-text input and returns what was typed.
func (p *TerminalPrompter) AskText(msg string) (string, error) {
	final, err := p.run(newTextModel(msg))
	if err != nil {
		return "", err
	}
	m := final.(textModel)
	if m.cancelled {
		return "", ErrCancelled
	}
	return m.input.Value(), nil
}

// AskChoice shows a single-select list and returns the chosen option.
func (p *TerminalPrompter) AskChoice(msg string, options []string) (string, error) {
	if len(options) == 0 {
		return "", ErrNoChoices
	}
	final, err := p.run(choiceModel{question: msg, options: options})
	if err != nil {
		return "", err
	}
	m := final.(choiceModel)
	if m.cancelled {
		return "", ErrCancelled
	}
	return m.chosen, nil
}

func (p *TerminalPrompter) run(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m, tea.WithInput(p.In), tea.WithOutput(p.Out)).Run()
}

//
// Text input
//

type textModel struct {
	question  string
	input     textinput.Model
	done      bool
	cancelled bool
}

func newTextModel(question string) textModel {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.Focus()
	return textModel{question: question, input: ti}
}

func (m textModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m textModel) View() string {
	q := StyleCyan.Render("? ") + m.question + " "
	if m.done {
		return q + StyleGreen.Render(m.input.Value()) + "\n"
	}
	if m.cancelled {
		return q + StyleGray.Render("cancelled") + "\n"
	}
	return q + "\n" + m.input.View() + "\n"
}

//
// Single choice
//

type choiceModel struct {
	question  string
	options   []string
	cursor    int
	chosen    string
	cancelled bool
}

func (m choiceModel) Init() tea.Cmd {
	return nil
}

func (m choiceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	last := len(m.options) - 1
	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.cancelled = true
		return m, tea.Quit
	case tea.KeyUp:
		m.cursor = wrap(m.cursor-1, last)
	case tea.KeyDown, tea.KeyTab:
		m.cursor = wrap(m.cursor+1, last)
	case tea.KeyHome:
		m.cursor = 0
	case tea.KeyEnd:
		m.cursor = last
	case tea.KeyEnter:
		m.chosen = m.options[m.cursor]
		return m, tea.Quit
	case tea.KeyRunes:
		switch string(key.Runes) {
		case "q":
			m.cancelled = true
			return m, tea.Quit
		case "k":
			m.cursor = wrap(m.cursor-1, last)
		case "j":
			m.cursor = wrap(m.cursor+1, last)
		case "g":
			m.cursor = 0
		case "G":
			m.cursor = last
		}
	}
	return m, nil
}

func wrap(i, last int) int {
	switch {
	case i < 0:
		return last
	case i > last:
		return 0
	}
	return i
}

func (m choiceModel) View() string {
	q := StyleCyan.Render("? ") + m.question + " "
	if m.chosen != "" {
		return q + StyleGreen.Render(m.chosen) + "\n"
	}
	if m.cancelled {
		return q + StyleGray.Render("cancelled") + "\n"
	}

	s := q + StyleGray.Render("(↑↓ move, enter select, q cancel)") + "\n"
	for i, opt := range m.options {
		if i == m.cursor {
			s += StyleGreen.Render("❯ "+opt) + "\n"
		} else {
			s += "  " + opt + "\n"
		}
	}
	return s
}
