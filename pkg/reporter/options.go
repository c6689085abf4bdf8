package reporter

import (
	"io"
	"os"

	"github.com/yaklabco/seolint/pkg/config"
)

// Options configures reporter creation.
type Options struct {
	// Format selects the output rendering.
	Format config.OutputFormat

	// Writer receives the rendered report. Defaults to stdout.
	Writer io.Writer

	// Color is "auto", "always", or "never". Only the text format uses it.
	Color string

	// Verbose includes every finding in text output instead of only
	// warnings and errors.
	Verbose bool
}

// DefaultOptions returns the options used when none are specified.
func DefaultOptions() Options {
	return Options{
		Format: config.FormatText,
		Writer: os.Stdout,
		Color:  "auto",
	}
}
