package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/yaklabco/seolint/internal/configloader"
	"github.com/yaklabco/seolint/internal/logging"
	"github.com/yaklabco/seolint/pkg/audit"
	_ "github.com/yaklabco/seolint/pkg/audit/rules" // Register built-in rules
	"github.com/yaklabco/seolint/pkg/collect"
	"github.com/yaklabco/seolint/pkg/config"
	"github.com/yaklabco/seolint/pkg/probe"
	"github.com/yaklabco/seolint/pkg/reporter"
	"github.com/yaklabco/seolint/pkg/runner"
)

// ErrScoreBelowThreshold is returned when a page scores below --fail-under.
var ErrScoreBelowThreshold = errors.New("score below threshold")

// ErrAuditFailed is returned when one or more URLs could not be audited.
var ErrAuditFailed = errors.New("audit failed")

type auditFlags struct {
	format       string
	output       string
	render       bool
	timeout      time.Duration
	jobs         int
	probes       bool
	probeTimeout time.Duration
	failUnder    int
	enable       []string
	disable      []string
	verbose      bool
}

func newAuditCommand() *cobra.Command {
	flags := &auditFlags{}

	cmd := &cobra.Command{
		Use:   "audit <url> [url...]",
		Short: "Audit web pages for SEO issues",
		Long:  auditLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAudit(cmd, args, flags)
		},
	}

	addAuditFlags(cmd, flags)

	return cmd
}

const auditLongDescription = `Audit one or more web pages against the full SEO rule catalog.

Each page is fetched, evaluated by every enabled rule category, and scored
0-100. URLs without a scheme are assumed to be https.

Examples:
  seolint audit example.com                 # Audit a single page
  seolint audit a.com b.com --jobs 4        # Audit several pages in parallel
  seolint audit example.com --render        # Measure Core Web Vitals too
  seolint audit example.com --format json   # Machine-readable output for CI
  seolint audit example.com --fail-under 70 # Exit non-zero below 70
  seolint audit example.com --enable local  # Include local SEO checks`

func runAudit(cmd *cobra.Command, args []string, flags *auditFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		ExplicitPath: configPath,
		Overrides:    overridesFromFlags(cmd, flags),
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	settings := loadResult.Settings

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", "files", loadResult.LoadedFrom)
	}

	urls := make([]string, 0, len(args))
	for _, arg := range args {
		urls = append(urls, normalizeURL(arg))
	}

	logger.Debug("starting audit",
		logging.FieldJobs, settings.Jobs,
		logging.FieldFormat, settings.Format,
		"render", settings.Fetch.Render,
	)

	collector, cleanup, err := newCollector(ctx, settings)
	if err != nil {
		return fmt.Errorf("create collector: %w", err)
	}
	defer cleanup()

	prober := probe.New(settings.Probes.Timeout, logger)
	engine := audit.NewEngine(audit.DefaultRegistry)

	auditRunner := runner.New(engine, collector, prober, settings, logger)

	result, err := auditRunner.Run(ctx, urls)
	if err != nil {
		return errors.Join(errors.New("audit run failed"), err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	writer, closeWriter, err := openOutput(cmd, settings.Output)
	if err != nil {
		return err
	}
	defer closeWriter()

	rep, err := reporter.New(reporter.Options{
		Format:  settings.Format,
		Writer:  writer,
		Color:   colorMode,
		Verbose: flags.verbose,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	switch ExitCodeFromResult(result, settings.FailUnder) {
	case ExitAuditErrors:
		return ErrAuditFailed
	case ExitScoreBelowThreshold:
		return ErrScoreBelowThreshold
	default:
		return nil
	}
}

// overridesFromFlags translates changed CLI flags into config overrides.
// Unchanged flags stay nil so config files and env keep their say.
func overridesFromFlags(cmd *cobra.Command, flags *auditFlags) *configloader.Overrides {
	overrides := &configloader.Overrides{
		EnableCategories:  flags.enable,
		DisableCategories: flags.disable,
	}

	if cmd.Flags().Changed("format") {
		format := config.OutputFormat(flags.format)
		overrides.Format = &format
	}
	if cmd.Flags().Changed("output") {
		overrides.Output = &flags.output
	}
	if cmd.Flags().Changed("jobs") {
		overrides.Jobs = &flags.jobs
	}
	if cmd.Flags().Changed("fail-under") {
		overrides.FailUnder = &flags.failUnder
	}
	if cmd.Flags().Changed("render") {
		overrides.Render = &flags.render
	}
	if cmd.Flags().Changed("timeout") {
		overrides.FetchTimeout = &flags.timeout
	}
	if cmd.Flags().Changed("probes") {
		overrides.Probes = &flags.probes
	}
	if cmd.Flags().Changed("probe-timeout") {
		overrides.ProbeTimeout = &flags.probeTimeout
	}

	return overrides
}

// newCollector builds the page collector for the run. With --render a shared
// headless browser is started; the cleanup func shuts it down.
func newCollector(ctx context.Context, settings *config.Settings) (runner.Collector, func(), error) {
	if !settings.Fetch.Render {
		return runner.FetchCollector(settings.Fetch), func() {}, nil
	}

	browser, err := collect.NewCollector(ctx, settings.Fetch)
	if err != nil {
		return nil, nil, err
	}
	return browser, browser.Close, nil
}

// openOutput resolves the report destination. An empty path means stdout.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func(), error) {
	if path == "" {
		return cmd.OutOrStdout(), func() {}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// normalizeURL assumes https for bare hostnames.
func normalizeURL(raw string) string {
	if strings.Contains(raw, "://") {
		return raw
	}
	return "https://" + raw
}

func addAuditFlags(cmd *cobra.Command, flags *auditFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, csv, html")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write the report to a file instead of stdout")
	cmd.Flags().BoolVar(&flags.render, "render", false, "render pages with a headless browser to measure Core Web Vitals")
	cmd.Flags().DurationVar(&flags.timeout, "timeout", 60*time.Second, "per-page collection timeout")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel page workers (0 = auto)")
	cmd.Flags().BoolVar(&flags.probes, "probes", true, "run background probes (robots.txt, sitemap, backlinks)")
	cmd.Flags().DurationVar(&flags.probeTimeout, "probe-timeout", 10*time.Second, "per-probe request timeout")
	cmd.Flags().IntVar(&flags.failUnder, "fail-under", 0, "exit non-zero when a page scores below this value (0 = off)")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "categories to enable (e.g. local)")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "categories to disable (e.g. analytics)")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "show passing checks in text output")
}
