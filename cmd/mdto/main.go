// Command mdto reads, writes and validates MDTO archival metadata.
package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/guidodo/mdto/internal/cli"
	"github.com/guidodo/mdto/pkg/mdto"
)

func main() {
	os.Exit(run())
}

// run executes the CLI and maps its outcome to an exit code. A panic is
// reported with its stack and exits with mdto.ExitPanic.
func run() (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			code = mdto.ExitPanic
		}
	}()

	if os.Getenv("MDTO_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}
	return mdto.ExitCodeForError(cli.Execute())
}
