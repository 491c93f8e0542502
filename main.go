package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/flightlint/flightlint/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		if !errors.Is(err, cli.ErrBlockingViolations) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}
