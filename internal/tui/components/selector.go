package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/guidodo/mdto/internal/tui"
)

// Option is one entry of a begrippenlijst offered by a Selector.
// Value is what ends up in begripLabel.
type Option struct {
	Label       string
	Description string
	Value       string
}

// Selector picks one option from a short list. Back (esc) cancels.
type Selector struct {
	title     string
	options   []Option
	cursor    int
	selected  int
	showHelp  bool
	keys      tui.KeyMap
	submitted bool
	cancelled bool
}

// NewSelector creates a selector with the cursor on the first option.
func NewSelector(title string, options []Option) Selector {
	return Selector{
		title:    title,
		options:  options,
		selected: -1,
		showHelp: true,
		keys:     tui.DefaultKeyMap(),
	}
}

// WithValue puts the cursor on the option with the given value, if any.
func (s Selector) WithValue(value string) Selector {
	for i, opt := range s.options {
		if opt.Value == value {
			s.cursor = i
			break
		}
	}
	return s
}

// WithShowHelp enables or disables the help text.
func (s Selector) WithShowHelp(show bool) Selector {
	s.showHelp = show
	return s
}

// Init implements tea.Model.
func (s Selector) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (s Selector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch {
	case key.Matches(keyMsg, s.keys.Up):
		if s.cursor > 0 {
			s.cursor--
		}
	case key.Matches(keyMsg, s.keys.Down):
		if s.cursor < len(s.options)-1 {
			s.cursor++
		}
	case key.Matches(keyMsg, s.keys.Select):
		if len(s.options) == 0 {
			return s, nil
		}
		s.selected = s.cursor
		s.submitted = true
		return s, tea.Quit
	case key.Matches(keyMsg, s.keys.Back), key.Matches(keyMsg, s.keys.Quit):
		s.cancelled = true
		return s, tea.Quit
	}
	return s, nil
}

// View implements tea.Model.
func (s Selector) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render(s.title))
	b.WriteString("\n\n")

	for i, opt := range s.options {
		line := tui.UnselectedStyle.Render("  " + tui.SymbolUnselected + " " + opt.Label)
		if i == s.cursor {
			line = tui.SelectedStyle.Render("  " + tui.SymbolSelected + " " + opt.Label)
		}
		b.WriteString(line)
		b.WriteString("\n")
		if opt.Description != "" {
			b.WriteString(tui.DescriptionStyle.Render(opt.Description))
			b.WriteString("\n")
		}
	}

	if s.showHelp {
		b.WriteString(tui.HelpStyle.Render(s.keys.HelpText()))
	}
	return b.String()
}

// Cancelled reports whether the selection was abandoned.
func (s Selector) Cancelled() bool {
	return s.cancelled
}

// Submitted reports whether an option was chosen.
func (s Selector) Submitted() bool {
	return s.submitted
}

// Value returns the value of the chosen option, or "".
func (s Selector) Value() string {
	if s.selected >= 0 && s.selected < len(s.options) {
		return s.options[s.selected].Value
	}
	return ""
}
