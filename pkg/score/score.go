// Package score turns audit findings into 0-100 category and overall scores.
package score

import (
	"math"
	"time"

	"github.com/yaklabco/seolint/pkg/audit"
)

// CategoryScore is one category's score together with the findings behind it.
type CategoryScore struct {
	Score   int                   `json:"score"`
	Counts  audit.Counts          `json:"counts"`
	Details *audit.CategoryResult `json:"details"`
}

// ScoredReport is the final output of an audit pass for one URL.
type ScoredReport struct {
	URL          string                           `json:"url"`
	GeneratedAt  time.Time                        `json:"generatedAt"`
	OverallScore int                              `json:"overallScore"`
	Categories   map[audit.Category]CategoryScore `json:"categories"`
}

// FromCounts derives a category score from its severity counts. Errors cost
// 15 points, warnings 5, and good findings earn back up to 10. The result is
// clamped to 0-100, so a category with no findings scores 100.
func FromCounts(good, warnings, errors int) int {
	bonus := good
	if bonus > 10 {
		bonus = 10
	}
	s := 100 - errors*15 - warnings*5 + bonus
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

// Compute scores every category present in the report and averages them into
// the overall score. Categories absent from the report (disabled at analysis
// time) do not participate in the mean. An empty report scores 0 overall.
func Compute(report audit.Report, url string, now time.Time) *ScoredReport {
	scored := &ScoredReport{
		URL:         url,
		GeneratedAt: now,
		Categories:  make(map[audit.Category]CategoryScore, len(report)),
	}

	sum := 0
	for cat, result := range report {
		counts := result.Counts()
		s := FromCounts(counts.Good, counts.Warnings, counts.Errors)
		scored.Categories[cat] = CategoryScore{
			Score:   s,
			Counts:  counts,
			Details: result,
		}
		sum += s
	}

	if len(report) > 0 {
		scored.OverallScore = int(math.Round(float64(sum) / float64(len(report))))
	}
	return scored
}
