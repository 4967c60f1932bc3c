// Package verify implements the page verification run: acquire a headless
// browser session, navigate to the target, wait for the readiness selector,
// read the title, and capture a screenshot. Failures are reported, never
// propagated — the session is released on every path.
package verify

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/davidarcher/pagecheck/internal/browser"
	"github.com/davidarcher/pagecheck/internal/common"
)

// Options describes a single verification run.
type Options struct {
	URL        string
	Selector   string
	Screenshot string
	Timeout    time.Duration
	Headless   bool
}

// DefaultOptions mirrors the zero-argument smoke run.
func DefaultOptions() Options {
	return Options{
		URL:        "http://localhost:8080",
		Selector:   "app-root",
		Screenshot: "verification.png",
		Timeout:    30 * time.Second,
		Headless:   true,
	}
}

// Run executes the verification sequence and writes its plain-text progress
// to out. An error at any step is printed as "Error: <msg>" and recorded on
// the report; it does not propagate. The browser session is released before
// Run returns, success or not.
func Run(opts Options, logger *common.Logger, out io.Writer) *Report {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	if out == nil {
		out = os.Stdout
	}

	runID := uuid.New().String()
	log := logger.WithCorrelationId(runID)

	report := &Report{
		RunID:    runID,
		URL:      opts.URL,
		Selector: opts.Selector,
	}
	start := time.Now()

	ctx, cancel := browser.NewContext(&browser.Config{
		Headless: opts.Headless,
		Timeout:  opts.Timeout,
	})
	defer cancel()

	collector := browser.NewJSErrorCollector(ctx)

	log.Info().
		Str("url", opts.URL).
		Str("selector", opts.Selector).
		Msg("verification started")

	err := run(ctx, opts, report, out)
	report.Duration = time.Since(start)
	report.JSErrors = collector.Errors()

	if collector.HasErrors() {
		log.Warn().
			Int("js_errors", len(report.JSErrors)).
			Msg("page logged JS errors")
	}

	if err != nil {
		report.Err = err
		fmt.Fprintf(out, "Error: %v\n", err)
		log.Warn().
			Str("url", opts.URL).
			Str("error", err.Error()).
			Msg("verification failed")
		return report
	}

	log.Info().
		Str("title", report.Title).
		Str("screenshot", report.ScreenshotPath).
		Int64("duration_ms", report.Duration.Milliseconds()).
		Msg("verification complete")

	return report
}

// run performs the navigate/wait/title/screenshot sequence. The first error
// aborts the remaining steps; cleanup is the caller's deferred cancel.
func run(ctx context.Context, opts Options, report *Report, out io.Writer) error {
	if err := browser.NavigateAndWait(ctx, opts.URL, opts.Selector); err != nil {
		return err
	}

	title, err := browser.Title(ctx)
	if err != nil {
		return err
	}
	report.Title = title
	fmt.Fprintf(out, "Page title: %s\n", title)

	if err := browser.CaptureScreenshot(ctx, opts.Screenshot); err != nil {
		return err
	}
	report.ScreenshotPath = opts.Screenshot
	fmt.Fprintf(out, "Screenshot saved to %s\n", opts.Screenshot)

	return nil
}
