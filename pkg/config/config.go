// Package config defines core configuration types for seolint.
// These types are pure data structures with no dependency on the config loader.
package config

import "time"

// BacklinkProvider selects where backlink estimates come from.
type BacklinkProvider string

const (
	// BacklinkMock returns deterministic placeholder data.
	BacklinkMock BacklinkProvider = "mock"
	// BacklinkCustom queries a user-supplied HTTP endpoint.
	BacklinkCustom BacklinkProvider = "custom"
)

// OutputFormat specifies the output format for a scored report.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatCSV  OutputFormat = "csv"
	FormatHTML OutputFormat = "html"
)

// IsValid returns true if the output format is one seolint can render.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatCSV, FormatHTML:
		return true
	default:
		return false
	}
}

// Categories holds the per-category analysis toggles. A disabled category is
// not evaluated at all and is absent from the report rather than empty.
type Categories struct {
	OnPage      bool `yaml:"on_page"`
	Technical   bool `yaml:"technical"`
	Content     bool `yaml:"content"`
	OffPage     bool `yaml:"off_page"`
	UX          bool `yaml:"ux"`
	Local       bool `yaml:"local"`
	Performance bool `yaml:"performance"`
	Analytics   bool `yaml:"analytics"`
	Advanced    bool `yaml:"advanced"`
}

// Probes configures the best-effort background checks. All probe results are
// advisory annotations and never contribute to scoring.
type Probes struct {
	// Enabled turns the probe pass on or off entirely.
	Enabled bool `yaml:"enabled"`

	// BacklinkProvider is "mock" or "custom".
	BacklinkProvider BacklinkProvider `yaml:"backlink_provider"`

	// BacklinkEndpoint is the custom backlink API base URL. Used only when
	// BacklinkProvider is "custom".
	BacklinkEndpoint string `yaml:"backlink_endpoint"`

	// PageSpeedAPIKey enables the PageSpeed Insights probe when non-empty.
	PageSpeedAPIKey string `yaml:"pagespeed_api_key"`

	// PlacesAPIKey enables the Google Places listing probe when non-empty
	// and the local category is enabled.
	PlacesAPIKey string `yaml:"places_api_key"`

	// Timeout bounds each individual probe request.
	Timeout time.Duration `yaml:"timeout"`
}

// Fetch configures how pages are collected.
type Fetch struct {
	// Render collects pages through a headless browser so that vitals and
	// navigation timing are measured. When false, pages are fetched with a
	// plain HTTP GET and vitals-dependent rules report "not available".
	Render bool `yaml:"render"`

	// Timeout bounds the collection of a single page.
	Timeout time.Duration `yaml:"timeout"`

	// UserAgent is sent on plain HTTP fetches.
	UserAgent string `yaml:"user_agent"`
}

// Settings is the root configuration structure for seolint.
type Settings struct {
	Categories Categories `yaml:"categories"`
	Probes     Probes     `yaml:"probes"`
	Fetch      Fetch      `yaml:"fetch"`

	// CLI-level options, never persisted to config files.

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// Output is the file to write the report to ("" means stdout).
	Output string `yaml:"-"`

	// Jobs specifies the number of parallel page workers.
	Jobs int `yaml:"-"`

	// FailUnder makes the audit command exit non-zero when the overall
	// score drops below this value. Zero disables the gate.
	FailUnder int `yaml:"-"`
}

const defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/137.0.0.0 Safari/537.36 seolint"

// Default returns the settings used when no config file is present. The local
// category is off by default, matching how rarely it applies.
func Default() *Settings {
	return &Settings{
		Categories: Categories{
			OnPage:      true,
			Technical:   true,
			Content:     true,
			OffPage:     true,
			UX:          true,
			Local:       false,
			Performance: true,
			Analytics:   true,
			Advanced:    true,
		},
		Probes: Probes{
			Enabled:          true,
			BacklinkProvider: BacklinkMock,
			Timeout:          10 * time.Second,
		},
		Fetch: Fetch{
			Render:    false,
			Timeout:   60 * time.Second,
			UserAgent: defaultUserAgent,
		},
		Format: FormatText,
	}
}
