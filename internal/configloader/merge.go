package configloader

import (
	"fmt"
	"time"

	"github.com/yaklabco/seolint/pkg/config"
)

// Overrides carries CLI flag values. Pointer fields distinguish "flag not
// given" from "flag given with the zero value", so a config file's true can
// still be turned off from the command line.
type Overrides struct {
	Format    *config.OutputFormat
	Output    *string
	Jobs      *int
	FailUnder *int

	Render       *bool
	FetchTimeout *time.Duration

	Probes           *bool
	ProbeTimeout     *time.Duration
	BacklinkProvider *config.BacklinkProvider
	BacklinkEndpoint *string
	PageSpeedAPIKey  *string
	PlacesAPIKey     *string

	// EnableCategories and DisableCategories are category names (e.g.
	// "local", "analytics") to toggle on top of the file configuration.
	EnableCategories  []string
	DisableCategories []string
}

// Apply writes the overrides onto the settings. Overrides always win: they
// carry the highest precedence in the merge order.
func (o *Overrides) Apply(settings *config.Settings) error {
	if o == nil || settings == nil {
		return nil
	}

	if o.Format != nil {
		settings.Format = *o.Format
	}
	if o.Output != nil {
		settings.Output = *o.Output
	}
	if o.Jobs != nil {
		settings.Jobs = *o.Jobs
	}
	if o.FailUnder != nil {
		settings.FailUnder = *o.FailUnder
	}

	if o.Render != nil {
		settings.Fetch.Render = *o.Render
	}
	if o.FetchTimeout != nil {
		settings.Fetch.Timeout = *o.FetchTimeout
	}

	if o.Probes != nil {
		settings.Probes.Enabled = *o.Probes
	}
	if o.ProbeTimeout != nil {
		settings.Probes.Timeout = *o.ProbeTimeout
	}
	if o.BacklinkProvider != nil {
		settings.Probes.BacklinkProvider = *o.BacklinkProvider
	}
	if o.BacklinkEndpoint != nil {
		settings.Probes.BacklinkEndpoint = *o.BacklinkEndpoint
	}
	if o.PageSpeedAPIKey != nil {
		settings.Probes.PageSpeedAPIKey = *o.PageSpeedAPIKey
	}
	if o.PlacesAPIKey != nil {
		settings.Probes.PlacesAPIKey = *o.PlacesAPIKey
	}

	for _, name := range o.EnableCategories {
		if err := setCategory(&settings.Categories, name, true); err != nil {
			return err
		}
	}
	for _, name := range o.DisableCategories {
		if err := setCategory(&settings.Categories, name, false); err != nil {
			return err
		}
	}

	return nil
}

// setCategory flips one category toggle by its configuration name.
func setCategory(categories *config.Categories, name string, enabled bool) error {
	switch name {
	case "on_page", "on-page", "onpage":
		categories.OnPage = enabled
	case "technical":
		categories.Technical = enabled
	case "content":
		categories.Content = enabled
	case "off_page", "off-page", "offpage":
		categories.OffPage = enabled
	case "ux":
		categories.UX = enabled
	case "local":
		categories.Local = enabled
	case "performance":
		categories.Performance = enabled
	case "analytics":
		categories.Analytics = enabled
	case "advanced":
		categories.Advanced = enabled
	default:
		return &ValidationError{
			Field:   "categories",
			Value:   name,
			Message: fmt.Sprintf("unknown category %q", name),
		}
	}
	return nil
}
