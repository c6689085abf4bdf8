// Package main is the entry point for the seolint CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/seolint/internal/cli"
	"github.com/yaklabco/seolint/internal/logging"

	// Import rules package to register built-in rules via init().
	_ "github.com/yaklabco/seolint/pkg/audit/rules"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// Threshold and per-URL failures are signals for the exit code,
		// already rendered in the report.
		switch {
		case errors.Is(err, cli.ErrScoreBelowThreshold):
			return cli.ExitScoreBelowThreshold
		case errors.Is(err, cli.ErrAuditFailed):
			return cli.ExitAuditErrors
		}

		logger := logging.Default()
		logger.Error("command failed", logging.FieldError, err)
		return 1
	}

	return cli.ExitSuccess
}
