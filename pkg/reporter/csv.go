package reporter

import (
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/yaklabco/seolint/pkg/audit"
	"github.com/yaklabco/seolint/pkg/runner"
)

// CSVReporter renders one row per finding, suitable for spreadsheets.
type CSVReporter struct {
	opts Options
}

// NewCSVReporter creates a CSV reporter.
func NewCSVReporter(opts Options) *CSVReporter {
	return &CSVReporter{opts: opts}
}

var csvHeader = []string{
	"url", "overall_score", "category", "category_score", "severity", "message", "tip",
}

// Report writes a header row followed by every finding. Failed URLs produce
// a single row with the error in the message column.
func (r *CSVReporter) Report(_ context.Context, result *runner.Result) error {
	w := csv.NewWriter(r.opts.Writer)

	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, outcome := range result.Outcomes {
		if outcome.Error != nil {
			row := []string{outcome.URL, "", "", "", "error", outcome.Error.Error(), ""}
			if err := w.Write(row); err != nil {
				return fmt.Errorf("write csv row: %w", err)
			}
			continue
		}

		overall := strconv.Itoa(outcome.Report.OverallScore)
		for _, cat := range audit.AllCategories {
			cs, ok := outcome.Report.Categories[cat]
			if !ok {
				continue
			}
			catScore := strconv.Itoa(cs.Score)

			writeBucket := func(severity string, findings []audit.Finding) error {
				for _, f := range findings {
					row := []string{
						outcome.URL, overall, string(cat), catScore,
						severity, f.Message, f.Tip,
					}
					if err := w.Write(row); err != nil {
						return fmt.Errorf("write csv row: %w", err)
					}
				}
				return nil
			}

			if err := writeBucket("error", cs.Details.Errors); err != nil {
				return err
			}
			if err := writeBucket("warning", cs.Details.Warnings); err != nil {
				return err
			}
			if err := writeBucket("good", cs.Details.Good); err != nil {
				return err
			}
		}
	}

	w.Flush()
	return w.Error()
}
