package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefault(t *testing.T) {
	settings := Default()

	assert.True(t, settings.Categories.OnPage)
	assert.True(t, settings.Categories.Technical)
	assert.True(t, settings.Categories.Advanced)
	assert.False(t, settings.Categories.Local, "local SEO is opt-in")

	assert.True(t, settings.Probes.Enabled)
	assert.Equal(t, BacklinkMock, settings.Probes.BacklinkProvider)
	assert.Equal(t, 10*time.Second, settings.Probes.Timeout)

	assert.False(t, settings.Fetch.Render)
	assert.Equal(t, 60*time.Second, settings.Fetch.Timeout)
	assert.NotEmpty(t, settings.Fetch.UserAgent)

	assert.Equal(t, FormatText, settings.Format)
	assert.Zero(t, settings.FailUnder)
}

func TestOutputFormatIsValid(t *testing.T) {
	for _, f := range []OutputFormat{FormatText, FormatJSON, FormatCSV, FormatHTML} {
		assert.True(t, f.IsValid(), "%s should be valid", f)
	}
	assert.False(t, OutputFormat("yaml").IsValid())
	assert.False(t, OutputFormat("").IsValid())
}

func TestSettingsUnmarshalYAML(t *testing.T) {
	t.Run("duration strings", func(t *testing.T) {
		settings := Default()
		doc := "probes:\n  timeout: 5s\nfetch:\n  timeout: 90s\n"
		require.NoError(t, yaml.Unmarshal([]byte(doc), settings))

		assert.Equal(t, 5*time.Second, settings.Probes.Timeout)
		assert.Equal(t, 90*time.Second, settings.Fetch.Timeout)
	})

	t.Run("absent keys keep current values", func(t *testing.T) {
		settings := Default()
		settings.Probes.PageSpeedAPIKey = "existing"
		doc := "probes:\n  backlink_provider: custom\n"
		require.NoError(t, yaml.Unmarshal([]byte(doc), settings))

		assert.Equal(t, BacklinkCustom, settings.Probes.BacklinkProvider)
		assert.Equal(t, "existing", settings.Probes.PageSpeedAPIKey)
		assert.Equal(t, 10*time.Second, settings.Probes.Timeout, "timeout keeps its default")
		assert.True(t, settings.Probes.Enabled)
	})

	t.Run("invalid duration", func(t *testing.T) {
		settings := Default()
		err := yaml.Unmarshal([]byte("fetch:\n  timeout: soonish\n"), settings)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fetch.timeout")
	})
}
