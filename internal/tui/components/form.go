package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/guidodo/mdto/internal/tui"
)

// Form collects a fixed list of text fields. Enter moves to the next
// field and submits on the last one; a submit with invalid fields moves
// the focus to the first of them instead.
type Form struct {
	title     string
	fields    []TextField
	focusIdx  int
	submitted bool
	cancelled bool
	keyMap    formKeyMap
}

type formKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Cancel key.Binding
}

func defaultFormKeyMap() formKeyMap {
	return formKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "prev"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "next/submit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// NewForm creates a form with the given title and fields. The first
// field starts focused.
func NewForm(title string, fields ...TextField) Form {
	if len(fields) > 0 {
		fields[0].Focus()
	}
	return Form{
		title:  title,
		fields: fields,
		keyMap: defaultFormKeyMap(),
	}
}

// Init implements tea.Model.
func (f Form) Init() tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	return textinput.Blink
}

// Update implements tea.Model.
func (f Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, f.keyMap.Cancel):
			f.cancelled = true
			return f, tea.Quit
		case key.Matches(keyMsg, f.keyMap.Next):
			return f.next()
		case key.Matches(keyMsg, f.keyMap.Prev):
			return f.focus(f.focusIdx - 1)
		case key.Matches(keyMsg, f.keyMap.Submit):
			if f.focusIdx < len(f.fields)-1 {
				return f.next()
			}
			return f.submit()
		}
	}

	if f.focusIdx < len(f.fields) {
		var cmd tea.Cmd
		f.fields[f.focusIdx], cmd = f.fields[f.focusIdx].Update(msg)
		return f, cmd
	}
	return f, nil
}

// next moves on when the focused field is valid.
func (f Form) next() (tea.Model, tea.Cmd) {
	if f.focusIdx < len(f.fields) && f.fields[f.focusIdx].Validate() != nil {
		return f, nil
	}
	return f.focus(f.focusIdx + 1)
}

func (f Form) focus(idx int) (tea.Model, tea.Cmd) {
	if idx < 0 || idx >= len(f.fields) || idx == f.focusIdx {
		return f, nil
	}
	f.fields[f.focusIdx].Blur()
	f.focusIdx = idx
	return f, f.fields[idx].Focus()
}

func (f Form) submit() (tea.Model, tea.Cmd) {
	firstInvalid := -1
	for i := range f.fields {
		if f.fields[i].Validate() != nil && firstInvalid < 0 {
			firstInvalid = i
		}
	}
	if firstInvalid >= 0 {
		return f.focus(firstInvalid)
	}
	f.submitted = true
	return f, tea.Quit
}

// View implements tea.Model.
func (f Form) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render(f.title))
	b.WriteString("\n\n")

	views := make([]string, len(f.fields))
	for i, field := range f.fields {
		views[i] = field.View()
	}
	b.WriteString(strings.Join(views, "\n\n"))

	help := make([]string, 0, 4)
	for _, binding := range []key.Binding{f.keyMap.Next, f.keyMap.Prev, f.keyMap.Submit, f.keyMap.Cancel} {
		h := binding.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	b.WriteString("\n")
	b.WriteString(tui.HelpStyle.Render(strings.Join(help, " • ")))
	return b.String()
}

// Submitted reports whether every field validated on submit.
func (f Form) Submitted() bool {
	return f.submitted
}

// Cancelled reports whether the form was cancelled.
func (f Form) Cancelled() bool {
	return f.cancelled
}

// Focused returns the label of the focused field.
func (f Form) Focused() string {
	if f.focusIdx < len(f.fields) {
		return f.fields[f.focusIdx].label
	}
	return ""
}

// Field returns the field with the given label, or nil.
func (f Form) Field(label string) *TextField {
	for i := range f.fields {
		if f.fields[i].label == label {
			return &f.fields[i]
		}
	}
	return nil
}

// Value returns the trimmed value of the field with the given label.
func (f Form) Value(label string) string {
	if field := f.Field(label); field != nil {
		return field.Value()
	}
	return ""
}

// Values returns the trimmed value of every field by label.
func (f Form) Values() map[string]string {
	out := make(map[string]string, len(f.fields))
	for _, field := range f.fields {
		out[field.label] = field.Value()
	}
	return out
}
