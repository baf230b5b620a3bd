package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/guidodo/mdto/pkg/mdto"
)

// RequireFile validates that exactly one <file> argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireFile(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`%w: missing required argument: <file>

Usage: %s

Example:
  %s dossier.xml`, mdto.ErrUsage, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: accepts 1 arg(s), received %d", mdto.ErrUsage, len(args))
	}
	return nil
}

// RequirePaths validates that at least one <path> argument is provided.
func RequirePaths(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`%w: missing required argument: <path>

Usage: %s

Example:
  %s ./archief`, mdto.ErrUsage, cmd.UseLine(), cmd.CommandPath())
	}
	return nil
}

func usageErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{mdto.ErrUsage}, args...)...)
}
