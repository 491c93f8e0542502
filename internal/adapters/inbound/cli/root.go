package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/flightlint/flightlint/internal/shared"
)

var (
	version = "0.1.0"
	commit  = "none"
)

// ErrBlockingViolations is returned by lint when at least one NEVER or
// MUST result survives the severity filter. It maps to exit code 1;
// every other error maps to exit code 2.
var ErrBlockingViolations = errors.New("blocking violations found")

// ExitCode maps an Execute error to the process exit code:
// 0 clean, 1 blocking violations, 2 configuration or scan error.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrBlockingViolations):
		return 1
	default:
		return 2
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:           "flightlint",
		Short:         "Structural policy linting for source trees",
		Long:          "Flightlint runs declarative rule documents against a source tree: tree-sitter queries find structural violations, severities decide whether the build fails.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			shared.InitLogger(logLevel)
		},
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newLintCmd())
	cmd.AddCommand(newSchemaCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
