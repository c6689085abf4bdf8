package configloader

// Template is the starter configuration written by "seolint init". Every key
// is present with its default value so editing is self-documenting.
const Template = `# seolint configuration
# See: https://github.com/yaklabco/seolint

# Analysis categories. A disabled category is skipped entirely and does not
# affect the overall score.
categories:
  on_page: true
  technical: true
  content: true
  off_page: true
  ux: true
  # Local SEO checks only apply to businesses with a physical presence.
  local: false
  performance: true
  analytics: true
  advanced: true

# Background probes run alongside the page audit. Their results annotate the
# report but never change scores.
probes:
  enabled: true
  # Backlink data source: "mock" (deterministic placeholder) or "custom".
  backlink_provider: mock
  # Required when backlink_provider is "custom". The domain is appended as
  # ?domain=<host>.
  backlink_endpoint: ""
  # Set to enable the Google PageSpeed Insights probe.
  pagespeed_api_key: ""
  # Set to enable the Google Places listing probe (local category only).
  places_api_key: ""
  timeout: 10s

fetch:
  # Render pages with a headless browser so Core Web Vitals are measured.
  # Requires Chrome or Chromium on the PATH.
  render: false
  timeout: 60s
`
