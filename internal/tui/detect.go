package tui

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

// EnvNonInteractive forces non-interactive mode when set to a true value
// ("1", "true", ...).
const EnvNonInteractive = "MDTO_NON_INTERACTIVE"

// Mode is how mdto talks to the user: prompts and wizards, or flags only.
type Mode int

const (
	// ModeNonInteractive never prompts; missing input is a usage error.
	ModeNonInteractive Mode = iota
	// ModeInteractive may run the wizard and ask before overwriting files.
	ModeInteractive
)

func (m Mode) String() string {
	if m == ModeInteractive {
		return "interactive"
	}
	return "non-interactive"
}

// modeEnv holds what mode detection looks at.
type modeEnv struct {
	getenv     func(string) string
	isTerminal func(fd int) bool
	stdin      int
	stdout     int
}

func systemEnv() modeEnv {
	return modeEnv{
		getenv:     os.Getenv,
		isTerminal: term.IsTerminal,
		stdin:      int(os.Stdin.Fd()),
		stdout:     int(os.Stdout.Fd()),
	}
}

// DetectMode returns ModeInteractive only when both stdin and stdout are
// terminals and none of MDTO_NON_INTERACTIVE, CI or NO_COLOR is set.
func DetectMode() Mode {
	return systemEnv().mode()
}

func (p modeEnv) mode() Mode {
	if forced, err := strconv.ParseBool(p.getenv(EnvNonInteractive)); err == nil && forced {
		return ModeNonInteractive
	}
	if p.getenv("CI") != "" || p.getenv("NO_COLOR") != "" {
		return ModeNonInteractive
	}
	if !p.isTerminal(p.stdin) || !p.isTerminal(p.stdout) {
		return ModeNonInteractive
	}
	return ModeInteractive
}

// IsInteractive reports whether DetectMode returns ModeInteractive.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}
