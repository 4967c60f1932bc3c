// Package browser wraps chromedp with the small surface pagecheck needs:
// scoped headless sessions, selector-gated navigation, title reads, selector
// checks, and full-page screenshots.
package browser

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/chromedp/chromedp"
)

// Config controls browser session creation.
type Config struct {
	Headless bool
	Timeout  time.Duration
}

// DefaultConfig returns the standard headless session settings.
func DefaultConfig() *Config {
	return &Config{
		Headless: true,
		Timeout:  30 * time.Second,
	}
}

// NewContext creates a headless Chrome context. The returned cancel releases
// the tab, the browser process, and the allocator — callers must defer it on
// every path so no Chrome process outlives the run.
func NewContext(cfg *Config) (context.Context, context.CancelFunc) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	ctx, ctxCancel := chromedp.NewContext(allocCtx)

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, timeoutCancel := context.WithTimeout(ctx, timeout)

	cancel := func() {
		timeoutCancel()
		ctxCancel()
		allocCancel()
	}
	return ctx, cancel
}

// NavigateAndWait navigates to url and blocks until the selector is present
// in the DOM. The selector is the app's readiness signal, so presence (not
// visibility) is the gate.
func NavigateAndWait(ctx context.Context, url, selector string) error {
	actions := []chromedp.Action{
		chromedp.Navigate(url),
		chromedp.WaitReady(selector, chromedp.ByQuery),
	}
	if err := chromedp.Run(ctx, actions...); err != nil {
		return fmt.Errorf("navigate %s: %w", url, err)
	}
	return nil
}

// Title returns the current document title.
func Title(ctx context.Context) (string, error) {
	var title string
	if err := chromedp.Run(ctx, chromedp.Title(&title)); err != nil {
		return "", fmt.Errorf("read title: %w", err)
	}
	return title, nil
}

// SetViewport emulates the given viewport size.
func SetViewport(ctx context.Context, width, height int64) error {
	return chromedp.Run(ctx, chromedp.EmulateViewport(width, height))
}

// CaptureScreenshot writes a full-page screenshot to path.
func CaptureScreenshot(ctx context.Context, path string) error {
	var buf []byte
	if err := chromedp.Run(ctx, chromedp.FullScreenshot(&buf, 90)); err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	if err := os.WriteFile(path, buf, 0644); err != nil {
		return fmt.Errorf("write screenshot %s: %w", path, err)
	}
	return nil
}
