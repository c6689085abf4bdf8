package reporter

import (
	"bufio"
	"context"
	"fmt"
	"html/template"

	"github.com/yaklabco/seolint/pkg/audit"
	"github.com/yaklabco/seolint/pkg/probe"
	"github.com/yaklabco/seolint/pkg/runner"
)

// HTMLReporter renders a standalone report page with inline styling.
type HTMLReporter struct {
	opts Options
	tmpl *template.Template
}

// NewHTMLReporter creates an HTML reporter.
func NewHTMLReporter(opts Options) *HTMLReporter {
	return &HTMLReporter{
		opts: opts,
		tmpl: template.Must(template.New("report").Parse(htmlTemplate)),
	}
}

type htmlPage struct {
	URL          string
	OverallScore int
	ScoreClass   string
	Categories   []htmlCategory
	Probes       *probe.Results
	Error        string
}

type htmlCategory struct {
	DisplayName string
	Score       int
	ScoreClass  string
	Counts      audit.Counts
	Errors      []audit.Finding
	Warnings    []audit.Finding
	Good        []audit.Finding
}

func scoreClass(score int) string {
	switch {
	case score >= 90:
		return "excellent"
	case score >= 70:
		return "good"
	case score >= 50:
		return "fair"
	default:
		return "poor"
	}
}

// Report renders every outcome into one document.
func (r *HTMLReporter) Report(_ context.Context, result *runner.Result) error {
	pages := make([]htmlPage, 0, len(result.Outcomes))
	for _, outcome := range result.Outcomes {
		page := htmlPage{URL: outcome.URL}
		if outcome.Error != nil {
			page.Error = outcome.Error.Error()
			pages = append(pages, page)
			continue
		}

		page.OverallScore = outcome.Report.OverallScore
		page.ScoreClass = scoreClass(page.OverallScore)
		page.Probes = outcome.Probes

		for _, cat := range audit.AllCategories {
			cs, ok := outcome.Report.Categories[cat]
			if !ok {
				continue
			}
			page.Categories = append(page.Categories, htmlCategory{
				DisplayName: cat.DisplayName(),
				Score:       cs.Score,
				ScoreClass:  scoreClass(cs.Score),
				Counts:      cs.Counts,
				Errors:      cs.Details.Errors,
				Warnings:    cs.Details.Warnings,
				Good:        cs.Details.Good,
			})
		}
		pages = append(pages, page)
	}

	w := bufio.NewWriter(r.opts.Writer)
	if err := r.tmpl.Execute(w, pages); err != nil {
		return fmt.Errorf("render html report: %w", err)
	}
	return w.Flush()
}

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>seolint report</title>
<style>
body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 2rem auto; max-width: 60rem; color: #1f2937; }
h1 { font-size: 1.4rem; }
h2 { font-size: 1.1rem; margin-top: 2rem; word-break: break-all; }
.score { display: inline-block; min-width: 3.5rem; text-align: center; border-radius: 999px; padding: 0.2rem 0.7rem; color: #fff; font-weight: 600; }
.excellent { background: #10b981; }
.good { background: #f59e0b; }
.fair { background: #f97316; }
.poor { background: #ef4444; }
.category { margin: 1rem 0; padding: 0.8rem 1rem; border: 1px solid #e5e7eb; border-radius: 8px; }
.category h3 { margin: 0 0 0.5rem; font-size: 1rem; }
ul { margin: 0.3rem 0; padding-left: 1.4rem; }
li.error { color: #b91c1c; }
li.warning { color: #b45309; }
li.ok { color: #047857; }
.tip { color: #6b7280; font-size: 0.85rem; }
.probes { color: #0e7490; font-size: 0.9rem; margin-top: 0.8rem; }
.failed { color: #b91c1c; }
</style>
</head>
<body>
<h1>seolint report</h1>
{{range .}}
<h2>{{.URL}} {{if .Error}}<span class="failed">audit failed</span>{{else}}<span class="score {{.ScoreClass}}">{{.OverallScore}}</span>{{end}}</h2>
{{if .Error}}<p class="failed">{{.Error}}</p>{{else}}
{{range .Categories}}
<div class="category">
<h3>{{.DisplayName}} <span class="score {{.ScoreClass}}">{{.Score}}</span></h3>
<ul>
{{range .Errors}}<li class="error">{{.Message}}{{if .Tip}} <span class="tip">{{.Tip}}</span>{{end}}</li>{{end}}
{{range .Warnings}}<li class="warning">{{.Message}}{{if .Tip}} <span class="tip">{{.Tip}}</span>{{end}}</li>{{end}}
{{range .Good}}<li class="ok">{{.Message}}</li>{{end}}
</ul>
</div>
{{end}}
{{if .Probes}}<p class="probes">
{{if .Probes.Robots}}robots.txt: {{if .Probes.Robots.Exists}}found{{else}}missing{{end}}.{{end}}
{{if .Probes.Sitemap}}sitemap: {{if .Probes.Sitemap.Exists}}found{{else}}missing{{end}}.{{end}}
{{if .Probes.Backlinks}}backlinks: ~{{.Probes.Backlinks.TotalBacklinks}} from {{.Probes.Backlinks.ReferringDomains}} domains.{{end}}
</p>{{end}}
{{end}}
{{end}}
</body>
</html>
`
