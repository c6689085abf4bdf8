package configloader

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/yaklabco/seolint/pkg/config"
)

// envVarPrefix is the prefix for all seolint environment variables.
const envVarPrefix = "SEOLINT_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeDuration
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"FORMAT":            {field: "format", typ: envTypeString},
	"OUTPUT":            {field: "output", typ: envTypeString},
	"JOBS":              {field: "jobs", typ: envTypeInt},
	"FAIL_UNDER":        {field: "fail_under", typ: envTypeInt},
	"RENDER":            {field: "fetch.render", typ: envTypeBool},
	"FETCH_TIMEOUT":     {field: "fetch.timeout", typ: envTypeDuration},
	"USER_AGENT":        {field: "fetch.user_agent", typ: envTypeString},
	"PROBES":            {field: "probes.enabled", typ: envTypeBool},
	"PROBE_TIMEOUT":     {field: "probes.timeout", typ: envTypeDuration},
	"BACKLINK_PROVIDER": {field: "probes.backlink_provider", typ: envTypeString},
	"BACKLINK_ENDPOINT": {field: "probes.backlink_endpoint", typ: envTypeString},
	"PAGESPEED_API_KEY": {field: "probes.pagespeed_api_key", typ: envTypeString},
	"PLACES_API_KEY":    {field: "probes.places_api_key", typ: envTypeString},
}

// LoadFromEnv applies environment variable overrides to the settings.
// Environment variables are prefixed with SEOLINT_ (e.g., SEOLINT_FORMAT).
func LoadFromEnv(settings *config.Settings) error {
	if settings == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(settings, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the settings.
func applyEnvValue(settings *config.Settings, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(settings, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(settings, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(settings, mapping.field, i)
	case envTypeDuration:
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration for %s: %q (expected e.g. 30s)", envVar, value)
		}
		return setDurationField(settings, mapping.field, d)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// setStringField sets a string field on the settings by field path.
func setStringField(settings *config.Settings, field, value string) error {
	switch field {
	case "format":
		settings.Format = config.OutputFormat(value)
	case "output":
		settings.Output = value
	case "fetch.user_agent":
		settings.Fetch.UserAgent = value
	case "probes.backlink_provider":
		settings.Probes.BacklinkProvider = config.BacklinkProvider(value)
	case "probes.backlink_endpoint":
		settings.Probes.BacklinkEndpoint = value
	case "probes.pagespeed_api_key":
		settings.Probes.PageSpeedAPIKey = value
	case "probes.places_api_key":
		settings.Probes.PlacesAPIKey = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the settings by field path.
func setBoolField(settings *config.Settings, field string, value bool) error {
	switch field {
	case "fetch.render":
		settings.Fetch.Render = value
	case "probes.enabled":
		settings.Probes.Enabled = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the settings by field path.
func setIntField(settings *config.Settings, field string, value int) error {
	switch field {
	case "jobs":
		settings.Jobs = value
	case "fail_under":
		settings.FailUnder = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// setDurationField sets a duration field on the settings by field path.
func setDurationField(settings *config.Settings, field string, value time.Duration) error {
	switch field {
	case "fetch.timeout":
		settings.Fetch.Timeout = value
	case "probes.timeout":
		settings.Probes.Timeout = value
	default:
		return fmt.Errorf("unknown duration field: %s", field)
	}
	return nil
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"SEOLINT_FORMAT":            "Output format: text, json, csv, or html",
		"SEOLINT_OUTPUT":            "Report output file (empty = stdout)",
		"SEOLINT_JOBS":              "Number of parallel page workers (0 = auto)",
		"SEOLINT_FAIL_UNDER":        "Exit non-zero when the overall score is below this value",
		"SEOLINT_RENDER":            "Collect pages with a headless browser: true or false",
		"SEOLINT_FETCH_TIMEOUT":     "Per-page collection timeout (e.g. 60s)",
		"SEOLINT_USER_AGENT":        "User-Agent header for plain HTTP fetches",
		"SEOLINT_PROBES":            "Enable background probes: true or false",
		"SEOLINT_PROBE_TIMEOUT":     "Per-probe request timeout (e.g. 10s)",
		"SEOLINT_BACKLINK_PROVIDER": "Backlink data source: mock or custom",
		"SEOLINT_BACKLINK_ENDPOINT": "Custom backlink API base URL",
		"SEOLINT_PAGESPEED_API_KEY": "Google PageSpeed Insights API key",
		"SEOLINT_PLACES_API_KEY":    "Google Places API key",
	}
}
