package cli

import "github.com/yaklabco/seolint/pkg/runner"

// Exit codes for seolint.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitScoreBelowThreshold indicates the audit completed but a page
	// scored below --fail-under.
	ExitScoreBelowThreshold = 1

	// ExitAuditErrors indicates one or more URLs could not be audited.
	ExitAuditErrors = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70
)

// ExitCodeFromResult determines the exit code from the run result and the
// fail-under threshold (0 disables the score gate).
func ExitCodeFromResult(result *runner.Result, failUnder int) int {
	if result == nil {
		return ExitSuccess
	}

	if result.Stats.URLsErrored > 0 {
		return ExitAuditErrors
	}

	if failUnder > 0 {
		worst := result.WorstScore()
		if worst >= 0 && worst < failUnder {
			return ExitScoreBelowThreshold
		}
	}

	return ExitSuccess
}
