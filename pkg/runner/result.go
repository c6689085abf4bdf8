package runner

import (
	"github.com/yaklabco/seolint/pkg/probe"
	"github.com/yaklabco/seolint/pkg/score"
)

// Outcome is the result of auditing one URL.
type Outcome struct {
	// URL is the audited page URL.
	URL string

	// Report is the scored audit report. Nil when Error is set.
	Report *score.ScoredReport

	// Probes holds the advisory probe results, when probes ran.
	Probes *probe.Results

	// Error is set when the page could not be collected or analyzed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// URLsRequested is the number of URLs submitted.
	URLsRequested int

	// URLsAudited is the number of URLs audited successfully.
	URLsAudited int

	// URLsErrored is the number of URLs that failed.
	URLsErrored int
}

// Result is the overall runner result. Outcomes follow the input URL order
// regardless of worker completion order.
type Result struct {
	Outcomes []Outcome
	Stats    Stats
}

func (r *Result) accumulate(outcome Outcome) {
	r.Outcomes = append(r.Outcomes, outcome)
	if outcome.Error != nil {
		r.Stats.URLsErrored++
	} else {
		r.Stats.URLsAudited++
	}
}

// WorstScore returns the lowest overall score across successful outcomes,
// or -1 when nothing succeeded. Used for the fail-under exit gate.
func (r *Result) WorstScore() int {
	worst := -1
	for _, o := range r.Outcomes {
		if o.Error != nil {
			continue
		}
		if worst < 0 || o.Report.OverallScore < worst {
			worst = o.Report.OverallScore
		}
	}
	return worst
}
