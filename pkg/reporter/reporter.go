// Package reporter renders scored audit results as text, JSON, CSV, or HTML.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/seolint/pkg/config"
	"github.com/yaklabco/seolint/pkg/runner"
)

// Reporter formats and writes audit results.
type Reporter interface {
	// Report writes formatted output for the given result.
	Report(ctx context.Context, result *runner.Result) error
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = config.FormatText
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	switch format {
	case config.FormatJSON:
		return NewJSONReporter(opts), nil
	case config.FormatCSV:
		return NewCSVReporter(opts), nil
	case config.FormatHTML:
		return NewHTMLReporter(opts), nil
	default:
		return NewTextReporter(opts), nil
	}
}
