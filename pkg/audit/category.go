package audit

import "github.com/yaklabco/seolint/pkg/config"

// Category identifies one of the nine fixed rule groupings.
type Category string

const (
	CategoryOnPage      Category = "onPage"
	CategoryTechnical   Category = "technical"
	CategoryContent     Category = "content"
	CategoryOffPage     Category = "offPage"
	CategoryUX          Category = "userExperience"
	CategoryLocal       Category = "local"
	CategoryPerformance Category = "performance"
	CategoryAnalytics   Category = "analytics"
	CategoryAdvanced    Category = "advanced"
)

// AllCategories lists every category in evaluation and display order.
//
//nolint:gochecknoglobals // Fixed category order is shared across packages
var AllCategories = []Category{
	CategoryOnPage,
	CategoryTechnical,
	CategoryContent,
	CategoryOffPage,
	CategoryUX,
	CategoryLocal,
	CategoryPerformance,
	CategoryAnalytics,
	CategoryAdvanced,
}

// displayNames maps categories to the names shown in reports.
//
//nolint:gochecknoglobals // Static lookup table
var displayNames = map[Category]string{
	CategoryOnPage:      "On-Page SEO",
	CategoryTechnical:   "Technical SEO",
	CategoryContent:     "Content Quality",
	CategoryOffPage:     "Off-Page SEO",
	CategoryUX:          "UX & Core Web Vitals",
	CategoryLocal:       "Local SEO",
	CategoryPerformance: "Performance & Speed",
	CategoryAnalytics:   "Analytics & Monitoring",
	CategoryAdvanced:    "Advanced SEO",
}

// DisplayName returns the human-readable category name.
func (c Category) DisplayName() string {
	if name, ok := displayNames[c]; ok {
		return name
	}
	return string(c)
}

// Enabled reports whether the category is switched on in the settings.
func (c Category) Enabled(cats config.Categories) bool {
	switch c {
	case CategoryOnPage:
		return cats.OnPage
	case CategoryTechnical:
		return cats.Technical
	case CategoryContent:
		return cats.Content
	case CategoryOffPage:
		return cats.OffPage
	case CategoryUX:
		return cats.UX
	case CategoryLocal:
		return cats.Local
	case CategoryPerformance:
		return cats.Performance
	case CategoryAnalytics:
		return cats.Analytics
	case CategoryAdvanced:
		return cats.Advanced
	default:
		return false
	}
}
