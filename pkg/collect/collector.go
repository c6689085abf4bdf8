package collect

import (
	"context"
	"fmt"
	"time"

	cdppage "github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/yaklabco/seolint/pkg/config"
	"github.com/yaklabco/seolint/pkg/page"
	"github.com/yaklabco/seolint/pkg/vitals"
)

// settleDelay gives buffered observers time to flush after the load event
// before metrics are read.
const settleDelay = 2 * time.Second

// Collector renders pages in a headless browser so that web vitals and
// navigation timing are measured. One Collector holds one browser process;
// Close must be called when done.
type Collector struct {
	browserCtx context.Context
	cancels    []context.CancelFunc
	timeout    time.Duration
}

// NewCollector starts a headless browser. The context bounds the browser's
// lifetime; cfg.Timeout bounds each individual page collection.
func NewCollector(ctx context.Context, cfg config.Fetch) (*Collector, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
	)
	if cfg.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(cfg.UserAgent))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)

	// Start the browser with a blank page so Collect failures are
	// per-page, not process-start errors.
	if err := chromedp.Run(browserCtx, chromedp.Navigate("about:blank")); err != nil {
		cancelBrowser()
		cancelAlloc()
		return nil, fmt.Errorf("start headless browser: %w", err)
	}

	return &Collector{
		browserCtx: browserCtx,
		cancels:    []context.CancelFunc{cancelBrowser, cancelAlloc},
		timeout:    cfg.Timeout,
	}, nil
}

// Close shuts the browser down.
func (c *Collector) Close() {
	for _, cancel := range c.cancels {
		cancel()
	}
}

// pageMetrics mirrors the object returned by metricsScript.
type pageMetrics struct {
	LCP           *float64 `json:"lcp"`
	CLS           float64  `json:"cls"`
	INP           *float64 `json:"inp"`
	ResponseStart float64  `json:"responseStart"`
	LoadEventEnd  float64  `json:"loadEventEnd"`
}

// Collect navigates to the URL, lets the page settle, and returns a snapshot
// built from the rendered document together with the observed vitals.
func (c *Collector) Collect(ctx context.Context, rawURL string) (*Result, error) {
	runCtx, cancel := context.WithTimeout(c.browserCtx, c.timeout)
	defer cancel()

	// Honor the caller's cancellation as well as the per-page timeout.
	go func() {
		select {
		case <-ctx.Done():
			cancel()
		case <-runCtx.Done():
		}
	}()

	var (
		metrics pageMetrics
		html    string
	)
	err := chromedp.Run(runCtx,
		chromedp.ActionFunc(func(ctx context.Context) error {
			_, err := cdppage.AddScriptToEvaluateOnNewDocument(vitalsScript).Do(ctx)
			return err
		}),
		chromedp.Navigate(rawURL),
		chromedp.Sleep(settleDelay),
		chromedp.Evaluate(metricsScript, &metrics),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return nil, fmt.Errorf("collect %s: %w", rawURL, err)
	}

	recorder := vitals.NewRecorder()
	if metrics.LCP != nil {
		recorder.RecordLCP(*metrics.LCP)
	}
	recorder.AccumulateCLS(metrics.CLS)
	if metrics.INP != nil {
		// The in-page observer already restricted entries to interaction
		// events, so any qualifying name passes the recorder's filter.
		recorder.RecordInteraction("click", *metrics.INP)
	}

	snap, err := page.NewFromHTML(rawURL, html, page.Timing{
		ResponseStart: metrics.ResponseStart,
		LoadEventEnd:  metrics.LoadEventEnd,
	})
	if err != nil {
		return nil, err
	}

	return &Result{Snapshot: snap, Vitals: recorder.Snapshot()}, nil
}
