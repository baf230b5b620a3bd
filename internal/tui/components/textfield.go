package components

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/guidodo/mdto/internal/tui"
)

// ErrFieldRequired is returned when a required field is empty.
var ErrFieldRequired = fieldError("this field is required")

type fieldError string

func (e fieldError) Error() string { return string(e) }

// TextField is a labeled single-line input. The label doubles as the key
// under which a Form reports the value, so it is usually the MDTO element
// name the value ends up in.
type TextField struct {
	label    string
	input    textinput.Model
	focused  bool
	required bool
	check    func(string) error
	err      error
}

// NewTextField creates a text field showing placeholder while empty.
func NewTextField(label, placeholder string) TextField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.Width = 60

	return TextField{label: label, input: ti}
}

// WithRequired marks the field as required.
func (t TextField) WithRequired(required bool) TextField {
	t.required = required
	return t
}

// WithValidator adds a check that runs after the required check.
func (t TextField) WithValidator(fn func(string) error) TextField {
	t.check = fn
	return t
}

// WithValue sets the initial value.
func (t TextField) WithValue(value string) TextField {
	t.input.SetValue(value)
	return t
}

// WithCharLimit limits the number of characters that can be typed.
func (t TextField) WithCharLimit(limit int) TextField {
	t.input.CharLimit = limit
	return t
}

// Focus focuses the text field.
func (t *TextField) Focus() tea.Cmd {
	t.focused = true
	return t.input.Focus()
}

// Blur removes focus from the text field.
func (t *TextField) Blur() {
	t.focused = false
	t.input.Blur()
}

// Label returns the field label.
func (t TextField) Label() string {
	return t.label
}

// Value returns the entered text without surrounding whitespace.
func (t TextField) Value() string {
	return strings.TrimSpace(t.input.Value())
}

// Len returns the number of characters in Value.
func (t TextField) Len() int {
	return utf8.RuneCountInString(t.Value())
}

// Err returns the error of the last validation.
func (t TextField) Err() error {
	return t.err
}

// Update forwards msg to the input. A field that showed an error is
// re-validated so the message disappears once the input is fixed.
func (t TextField) Update(msg tea.Msg) (TextField, tea.Cmd) {
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	if t.err != nil {
		t.Validate()
	}
	return t, cmd
}

// Validate runs the required check and the validator.
func (t *TextField) Validate() error {
	t.err = nil
	switch {
	case t.required && t.Value() == "":
		t.err = ErrFieldRequired
	case t.check != nil:
		t.err = t.check(t.Value())
	}
	return t.err
}

// View renders the label, the input and the last validation error.
func (t TextField) View() string {
	var b strings.Builder

	label := t.label
	if t.required {
		label += tui.ErrorStyle.Render(" *")
	}
	b.WriteString(tui.LabelStyle.Render(label))
	b.WriteString("\n")

	if t.focused {
		b.WriteString(tui.SelectedStyle.Render(t.input.View()))
	} else {
		b.WriteString(t.input.View())
	}

	if t.err != nil {
		b.WriteString("\n")
		b.WriteString(tui.ErrorStyle.Render(t.err.Error()))
	}
	return b.String()
}
