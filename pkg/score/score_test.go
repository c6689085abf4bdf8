package score

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/seolint/pkg/audit"
)

func TestFromCounts(t *testing.T) {
	tests := []struct {
		name     string
		good     int
		warnings int
		errors   int
		want     int
	}{
		{"no findings", 0, 0, 0, 100},
		{"one error", 0, 0, 1, 85},
		{"one warning", 0, 1, 0, 95},
		{"mixed", 5, 3, 2, 60},
		{"heavily penalized", 2, 3, 5, 12},
		{"good bonus capped at ten", 50, 0, 1, 95},
		{"bonus cannot exceed 100", 10, 0, 0, 100},
		{"floor at zero", 0, 0, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromCounts(tt.good, tt.warnings, tt.errors))
		})
	}
}

func resultWith(good, warnings, errors int) *audit.CategoryResult {
	result := audit.NewCategoryResult()
	for i := 0; i < good; i++ {
		result.Add(audit.Good("ok"))
	}
	for i := 0; i < warnings; i++ {
		result.Add(audit.Warn("hmm", "fix"))
	}
	for i := 0; i < errors; i++ {
		result.Add(audit.Error("bad", "fix"))
	}
	return result
}

func TestCompute(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	t.Run("overall is the rounded mean of present categories", func(t *testing.T) {
		report := audit.Report{
			audit.CategoryOnPage:    resultWith(0, 0, 1), // 85
			audit.CategoryTechnical: resultWith(0, 1, 0), // 95
		}
		scored := Compute(report, "https://example.com/", now)

		require.Len(t, scored.Categories, 2)
		assert.Equal(t, 85, scored.Categories[audit.CategoryOnPage].Score)
		assert.Equal(t, 95, scored.Categories[audit.CategoryTechnical].Score)
		assert.Equal(t, 90, scored.OverallScore)
		assert.Equal(t, "https://example.com/", scored.URL)
		assert.Equal(t, now, scored.GeneratedAt)
	})

	t.Run("counts mirror bucket lengths", func(t *testing.T) {
		report := audit.Report{
			audit.CategoryContent: resultWith(3, 2, 1),
		}
		scored := Compute(report, "https://example.com/", now)

		cs := scored.Categories[audit.CategoryContent]
		assert.Equal(t, audit.Counts{Good: 3, Warnings: 2, Errors: 1}, cs.Counts)
		assert.Len(t, cs.Details.Good, 3)
		assert.Len(t, cs.Details.Warnings, 2)
		assert.Len(t, cs.Details.Errors, 1)
	})

	t.Run("absent categories are excluded from the mean", func(t *testing.T) {
		report := audit.Report{
			audit.CategoryOnPage: resultWith(0, 0, 0), // 100
		}
		scored := Compute(report, "https://example.com/", now)
		assert.Equal(t, 100, scored.OverallScore)
		_, present := scored.Categories[audit.CategoryLocal]
		assert.False(t, present)
	})

	t.Run("empty report scores zero", func(t *testing.T) {
		scored := Compute(audit.Report{}, "https://example.com/", now)
		assert.Equal(t, 0, scored.OverallScore)
		assert.Empty(t, scored.Categories)
	})

	t.Run("present empty category scores 100", func(t *testing.T) {
		report := audit.Report{
			audit.CategoryAnalytics: audit.NewCategoryResult(),
		}
		scored := Compute(report, "https://example.com/", now)
		assert.Equal(t, 100, scored.Categories[audit.CategoryAnalytics].Score)
	})
}
