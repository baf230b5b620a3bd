package tui

import "github.com/charmbracelet/lipgloss"

// ANSI 256 palette.
var (
	colorAccent  = lipgloss.Color("39")
	colorDim     = lipgloss.Color("245")
	colorMuted   = lipgloss.Color("240")
	colorValid   = lipgloss.Color("34")
	colorAdvice  = lipgloss.Color("214")
	colorInvalid = lipgloss.Color("196")
)

// Wizard styles.
var (
	TitleStyle       = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).MarginBottom(1)
	LabelStyle       = lipgloss.NewStyle().Foreground(colorDim)
	SelectedStyle    = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	UnselectedStyle  = lipgloss.NewStyle().Foreground(colorDim)
	DescriptionStyle = lipgloss.NewStyle().Foreground(colorMuted).MarginLeft(4)
	HelpStyle        = lipgloss.NewStyle().Foreground(colorMuted).MarginTop(1)
)

// Result styles, used by Reporter for valid documents, violations and
// advisories.
var (
	SuccessStyle = lipgloss.NewStyle().Foreground(colorValid)
	ErrorStyle   = lipgloss.NewStyle().Foreground(colorInvalid)
	WarningStyle = lipgloss.NewStyle().Foreground(colorAdvice)
)

const (
	SymbolSelected   = "●"
	SymbolUnselected = "○"
	SymbolCheck      = "✓"
	SymbolCross      = "✗"
)
