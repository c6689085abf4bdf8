package reporter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"

	"github.com/yaklabco/seolint/internal/ui/pretty"
	"github.com/yaklabco/seolint/pkg/audit"
	"github.com/yaklabco/seolint/pkg/probe"
	"github.com/yaklabco/seolint/pkg/runner"
)

// defaultTermWidth is used when terminal width cannot be determined.
const defaultTermWidth = 100

// TextReporter renders a styled human-readable report.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	width  int
}

// NewTextReporter creates a text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		width:  getTerminalWidth(opts.Writer),
	}
}

// Report writes one block per audited URL, ordered as the URLs were given.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) error {
	w := bufio.NewWriter(r.opts.Writer)

	for i, outcome := range result.Outcomes {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if outcome.Error != nil {
			fmt.Fprintf(w, "%s %s\n",
				r.styles.Failure.Render("audit failed:"),
				r.styles.URL.Render(outcome.URL))
			fmt.Fprintf(w, "  %s\n", outcome.Error)
			continue
		}
		r.writeOutcome(w, outcome)
	}

	r.writeSummary(w, result)
	return w.Flush()
}

func (r *TextReporter) writeOutcome(w *bufio.Writer, outcome runner.Outcome) {
	report := outcome.Report
	fmt.Fprintf(w, "%s  %s\n",
		r.styles.URL.Render(outcome.URL),
		r.styles.ScoreStyle(report.OverallScore).Render(fmt.Sprintf("%d/100", report.OverallScore)))

	for _, cat := range audit.AllCategories {
		cs, ok := report.Categories[cat]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  %s %s  %s\n",
			r.styles.ScoreStyle(cs.Score).Render(fmt.Sprintf("%3d", cs.Score)),
			r.styles.Category.Render(cat.DisplayName()),
			r.styles.Dim.Render(fmt.Sprintf("(%d good, %d warnings, %d errors)",
				cs.Counts.Good, cs.Counts.Warnings, cs.Counts.Errors)))

		for _, f := range cs.Details.Errors {
			r.writeFinding(w, r.styles.Error.Render("✗"), f)
		}
		for _, f := range cs.Details.Warnings {
			r.writeFinding(w, r.styles.Warning.Render("!"), f)
		}
		if r.opts.Verbose {
			for _, f := range cs.Details.Good {
				r.writeFinding(w, r.styles.Good.Render("✓"), f)
			}
		}
	}

	if outcome.Probes != nil {
		r.writeProbes(w, outcome.Probes)
	}
}

func (r *TextReporter) writeFinding(w *bufio.Writer, marker string, f audit.Finding) {
	fmt.Fprintf(w, "      %s %s\n", marker, r.styles.Message.Render(f.Message))
	if f.Tip != "" {
		for i, line := range wrapText("tip: "+f.Tip, r.width-tipIndent) {
			if i > 0 {
				line = "     " + line
			}
			fmt.Fprintf(w, "        %s\n", r.styles.Tip.Render(line))
		}
	}
}

// tipIndent is the number of columns consumed to the left of a tip line.
const tipIndent = 8

// wrapText breaks text into lines no longer than width, splitting on word
// boundaries. Words longer than width are kept whole.
func wrapText(text string, width int) []string {
	if width < 20 {
		width = 20
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	return append(lines, line)
}

// getTerminalWidth attempts to get the terminal width from the writer.
func getTerminalWidth(writer io.Writer) int {
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}

func (r *TextReporter) writeProbes(w *bufio.Writer, probes *probe.Results) {
	var parts []string
	if probes.Robots != nil {
		if probes.Robots.Exists {
			parts = append(parts, "robots.txt found")
		} else {
			parts = append(parts, "robots.txt missing")
		}
	}
	if probes.Sitemap != nil {
		if probes.Sitemap.Exists {
			parts = append(parts, "sitemap found")
		} else {
			parts = append(parts, "sitemap missing")
		}
	}
	if probes.Backlinks != nil {
		parts = append(parts, fmt.Sprintf("~%d backlinks from %d domains (DA %d)",
			probes.Backlinks.TotalBacklinks,
			probes.Backlinks.ReferringDomains,
			probes.Backlinks.DomainAuthority))
	}
	if probes.PageSpeed != nil && probes.PageSpeed.PerformanceScore != nil {
		parts = append(parts, fmt.Sprintf("PSI performance %d", *probes.PageSpeed.PerformanceScore))
	}
	if probes.Listing != nil {
		if probes.Listing.Found {
			parts = append(parts, "Places listing found")
		} else {
			parts = append(parts, "no Places listing")
		}
	}
	if len(parts) == 0 {
		return
	}
	fmt.Fprintf(w, "  %s\n", r.styles.Probe.Render("probes: "+strings.Join(parts, " | ")))
}

func (r *TextReporter) writeSummary(w *bufio.Writer, result *runner.Result) {
	if result.Stats.URLsRequested <= 1 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s\n",
		r.styles.SummaryTitle.Render("Audited:"),
		r.styles.SummaryValue.Render(fmt.Sprintf("%d of %d URLs (%d failed)",
			result.Stats.URLsAudited,
			result.Stats.URLsRequested,
			result.Stats.URLsErrored)))
}
