package configloader

import (
	"fmt"
	"strings"

	"github.com/yaklabco/seolint/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "probes.backlink_provider").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// knownBacklinkProviders lists valid backlink provider values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownBacklinkProviders = map[config.BacklinkProvider]bool{
	config.BacklinkMock:   true,
	config.BacklinkCustom: true,
}

// Validate checks settings for errors and warnings.
func Validate(settings *config.Settings) *ValidationResult {
	if settings == nil {
		return &ValidationResult{}
	}

	result := &ValidationResult{}

	if settings.Format != "" && !settings.Format.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   settings.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: text, json, csv, html", settings.Format),
		})
	}

	if settings.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "jobs",
			Value:   settings.Jobs,
			Message: "jobs must be >= 0 (0 means auto)",
		})
	}

	if settings.FailUnder < 0 || settings.FailUnder > 100 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "fail_under",
			Value:   settings.FailUnder,
			Message: "fail_under must be between 0 and 100",
		})
	}

	if settings.Fetch.Timeout < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "fetch.timeout",
			Value:   settings.Fetch.Timeout,
			Message: "fetch timeout must be >= 0",
		})
	}

	if settings.Probes.Timeout < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "probes.timeout",
			Value:   settings.Probes.Timeout,
			Message: "probe timeout must be >= 0",
		})
	}

	provider := settings.Probes.BacklinkProvider
	if provider != "" && !knownBacklinkProviders[provider] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "probes.backlink_provider",
			Value:   provider,
			Message: fmt.Sprintf("invalid backlink provider %q; must be one of: mock, custom", provider),
		})
	}
	if provider == config.BacklinkCustom && settings.Probes.BacklinkEndpoint == "" {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "probes.backlink_endpoint",
			Value:   "",
			Message: "backlink_endpoint is required when backlink_provider is custom",
		})
	}

	if !anyCategoryEnabled(settings.Categories) {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "categories",
			Message: "at least one category must be enabled",
		})
	}

	if settings.Probes.PlacesAPIKey != "" && !settings.Categories.Local {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "probes.places_api_key",
			Message: "places_api_key is set but the local category is disabled; the listing probe will not run",
		})
	}

	return result
}

// anyCategoryEnabled reports whether at least one category toggle is on.
func anyCategoryEnabled(c config.Categories) bool {
	return c.OnPage || c.Technical || c.Content || c.OffPage ||
		c.UX || c.Local || c.Performance || c.Analytics || c.Advanced
}

// ValidateWithFile validates settings and includes the file path in errors.
func ValidateWithFile(settings *config.Settings, filePath string) *ValidationResult {
	result := Validate(settings)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}
