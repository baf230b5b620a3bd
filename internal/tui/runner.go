package tui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Confirm writes message to out and reads a y/n answer from in.
// An empty answer counts as yes.
func Confirm(message string, in io.Reader, out io.Writer) bool {
	fmt.Fprintf(out, "%s [Y/n]: ", message)

	response, _ := bufio.NewReader(in).ReadString('\n')
	response = strings.TrimSpace(response)
	return response == "" || response == "y" || response == "Y"
}

// Reporter prints per-file results of a command, one line each.
type Reporter struct {
	out   io.Writer
	color bool
}

// NewReporter returns a Reporter writing to out. Symbols are colored only
// in interactive mode.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out, color: IsInteractive()}
}

func (r *Reporter) Success(message string) {
	r.line(SuccessStyle, SymbolCheck, message)
}

func (r *Reporter) Failure(message string) {
	r.line(ErrorStyle, SymbolCross, message)
}

// Warning prints an indented advisory below the preceding result.
func (r *Reporter) Warning(message string) {
	r.line(WarningStyle, "  !", message)
}

// Detail prints indented text, one line per line of message.
func (r *Reporter) Detail(message string) {
	for _, l := range strings.Split(strings.TrimRight(message, "\n"), "\n") {
		fmt.Fprintf(r.out, "    %s\n", l)
	}
}

func (r *Reporter) line(style lipgloss.Style, symbol, message string) {
	if r.color {
		symbol = style.Render(symbol)
	}
	fmt.Fprintf(r.out, "%s %s\n", symbol, message)
}
