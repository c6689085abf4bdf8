package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/yaklabco/seolint/pkg/audit"
	"github.com/yaklabco/seolint/pkg/probe"
	"github.com/yaklabco/seolint/pkg/runner"
)

// jsonVersion identifies the envelope schema.
const jsonVersion = "1.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string      `json:"version"`
	Pages   []JSONPage  `json:"pages"`
	Summary JSONSummary `json:"summary"`
}

// JSONPage represents one audited URL.
type JSONPage struct {
	URL          string         `json:"url"`
	GeneratedAt  *time.Time     `json:"generatedAt,omitempty"`
	OverallScore int            `json:"overallScore"`
	Categories   []JSONCategory `json:"categories,omitempty"`
	Probes       *probe.Results `json:"probes,omitempty"`
	Error        string         `json:"error,omitempty"`
}

// JSONCategory carries one category's score and bucketed findings.
type JSONCategory struct {
	ID          audit.Category        `json:"id"`
	DisplayName string                `json:"displayName"`
	Score       int                   `json:"score"`
	Counts      audit.Counts          `json:"counts"`
	Findings    *audit.CategoryResult `json:"findings"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	URLsRequested int `json:"urlsRequested"`
	URLsAudited   int `json:"urlsAudited"`
	URLsErrored   int `json:"urlsErrored"`
}

// JSONReporter renders the versioned JSON envelope.
type JSONReporter struct {
	opts Options
}

// NewJSONReporter creates a JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{opts: opts}
}

// Report writes the result as indented JSON. Categories appear in canonical
// order so output is stable across runs.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) error {
	output := JSONOutput{
		Version: jsonVersion,
		Pages:   make([]JSONPage, 0, len(result.Outcomes)),
		Summary: JSONSummary{
			URLsRequested: result.Stats.URLsRequested,
			URLsAudited:   result.Stats.URLsAudited,
			URLsErrored:   result.Stats.URLsErrored,
		},
	}

	for _, outcome := range result.Outcomes {
		page := JSONPage{URL: outcome.URL}
		if outcome.Error != nil {
			page.Error = outcome.Error.Error()
			output.Pages = append(output.Pages, page)
			continue
		}

		page.GeneratedAt = &outcome.Report.GeneratedAt
		page.OverallScore = outcome.Report.OverallScore
		page.Probes = outcome.Probes

		for _, cat := range audit.AllCategories {
			cs, ok := outcome.Report.Categories[cat]
			if !ok {
				continue
			}
			page.Categories = append(page.Categories, JSONCategory{
				ID:          cat,
				DisplayName: cat.DisplayName(),
				Score:       cs.Score,
				Counts:      cs.Counts,
				Findings:    cs.Details,
			})
		}
		output.Pages = append(output.Pages, page)
	}

	w := bufio.NewWriter(r.opts.Writer)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(output); err != nil {
		return fmt.Errorf("encode json report: %w", err)
	}
	return w.Flush()
}
