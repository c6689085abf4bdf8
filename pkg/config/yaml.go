package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes probe settings, accepting Go duration strings such as
// "10s" for the timeout. Keys absent from the document keep their current
// values so layered config files merge correctly.
func (p *Probes) UnmarshalYAML(value *yaml.Node) error {
	raw := struct {
		Enabled          bool             `yaml:"enabled"`
		BacklinkProvider BacklinkProvider `yaml:"backlink_provider"`
		BacklinkEndpoint string           `yaml:"backlink_endpoint"`
		PageSpeedAPIKey  string           `yaml:"pagespeed_api_key"`
		PlacesAPIKey     string           `yaml:"places_api_key"`
		Timeout          string           `yaml:"timeout"`
	}{
		Enabled:          p.Enabled,
		BacklinkProvider: p.BacklinkProvider,
		BacklinkEndpoint: p.BacklinkEndpoint,
		PageSpeedAPIKey:  p.PageSpeedAPIKey,
		PlacesAPIKey:     p.PlacesAPIKey,
		Timeout:          p.Timeout.String(),
	}

	if err := value.Decode(&raw); err != nil {
		return err
	}

	timeout, err := time.ParseDuration(raw.Timeout)
	if err != nil {
		return fmt.Errorf("probes.timeout: %w", err)
	}

	p.Enabled = raw.Enabled
	p.BacklinkProvider = raw.BacklinkProvider
	p.BacklinkEndpoint = raw.BacklinkEndpoint
	p.PageSpeedAPIKey = raw.PageSpeedAPIKey
	p.PlacesAPIKey = raw.PlacesAPIKey
	p.Timeout = timeout
	return nil
}

// UnmarshalYAML decodes fetch settings, accepting Go duration strings for the
// timeout.
func (f *Fetch) UnmarshalYAML(value *yaml.Node) error {
	raw := struct {
		Render    bool   `yaml:"render"`
		Timeout   string `yaml:"timeout"`
		UserAgent string `yaml:"user_agent"`
	}{
		Render:    f.Render,
		Timeout:   f.Timeout.String(),
		UserAgent: f.UserAgent,
	}

	if err := value.Decode(&raw); err != nil {
		return err
	}

	timeout, err := time.ParseDuration(raw.Timeout)
	if err != nil {
		return fmt.Errorf("fetch.timeout: %w", err)
	}

	f.Render = raw.Render
	f.Timeout = timeout
	f.UserAgent = raw.UserAgent
	return nil
}
