package verify

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/davidarcher/pagecheck/internal/common"
)

const fixtureHTML = `<!DOCTYPE html>
<html>
<head><title>Fixture App</title></head>
<body>
<app-root><h1>it renders</h1></app-root>
</body>
</html>`

// requireChrome skips the test when no Chrome/Chromium binary is available,
// so the suite still passes on machines without a browser.
func requireChrome(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"google-chrome", "google-chrome-stable", "chromium", "chromium-browser", "headless-shell", "chrome",
	} {
		if _, err := exec.LookPath(name); err == nil {
			return
		}
	}
	t.Skip("no Chrome binary found, skipping browser test")
}

func newFixtureServer(t *testing.T, html string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, html)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRunAgainstFixture(t *testing.T) {
	requireChrome(t)

	srv := newFixtureServer(t, fixtureHTML)
	shot := filepath.Join(t.TempDir(), "verification.png")

	var out bytes.Buffer
	report := Run(Options{
		URL:        srv.URL,
		Selector:   "app-root",
		Screenshot: shot,
		Timeout:    30 * time.Second,
		Headless:   true,
	}, common.NewSilentLogger(), &out)

	if report.Err != nil {
		t.Fatalf("run failed: %v", report.Err)
	}
	if report.Title != "Fixture App" {
		t.Errorf("title = %q, want %q", report.Title, "Fixture App")
	}
	if !strings.Contains(out.String(), "Page title: Fixture App") {
		t.Errorf("output missing title line: %q", out.String())
	}
	if !strings.Contains(out.String(), "Screenshot saved to "+shot) {
		t.Errorf("output missing screenshot line: %q", out.String())
	}

	info, err := os.Stat(shot)
	if err != nil {
		t.Fatalf("screenshot not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("screenshot file is empty")
	}
	if report.RunID == "" {
		t.Error("report missing run ID")
	}
}

func TestRunUnreachableTarget(t *testing.T) {
	requireChrome(t)

	// Grab a port nobody is listening on by closing a live server.
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	shot := filepath.Join(t.TempDir(), "verification.png")

	var out bytes.Buffer
	report := Run(Options{
		URL:        url,
		Selector:   "app-root",
		Screenshot: shot,
		Timeout:    15 * time.Second,
		Headless:   true,
	}, common.NewSilentLogger(), &out)

	if report.Err == nil {
		t.Fatal("expected error for unreachable target")
	}
	if !strings.Contains(out.String(), "Error: ") {
		t.Errorf("output missing error line: %q", out.String())
	}
	if _, err := os.Stat(shot); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("no screenshot should be written on failure, stat err = %v", err)
	}
}

func TestRunSelectorNeverAppears(t *testing.T) {
	requireChrome(t)

	srv := newFixtureServer(t, `<!DOCTYPE html><html><head><title>Empty</title></head><body><p>no app here</p></body></html>`)
	shot := filepath.Join(t.TempDir(), "verification.png")

	var out bytes.Buffer
	report := Run(Options{
		URL:        srv.URL,
		Selector:   "app-root",
		Screenshot: shot,
		Timeout:    5 * time.Second,
		Headless:   true,
	}, common.NewSilentLogger(), &out)

	if report.Err == nil {
		t.Fatal("expected error when selector never appears")
	}
	if _, err := os.Stat(shot); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("no screenshot should be written on timeout, stat err = %v", err)
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.URL != "http://localhost:8080" {
		t.Errorf("url = %q", opts.URL)
	}
	if opts.Selector != "app-root" {
		t.Errorf("selector = %q", opts.Selector)
	}
	if opts.Screenshot != "verification.png" {
		t.Errorf("screenshot = %q", opts.Screenshot)
	}
	if !opts.Headless {
		t.Error("default should be headless")
	}
}

func TestReportText_OK(t *testing.T) {
	r := &Report{
		RunID:          "abc",
		URL:            "http://localhost:8080",
		Selector:       "app-root",
		Title:          "Fixture App",
		ScreenshotPath: "verification.png",
		Duration:       1200 * time.Millisecond,
	}

	text := r.Text()
	for _, want := range []string{"result: OK", "title: Fixture App", "screenshot: verification.png", "duration: 1200ms"} {
		if !strings.Contains(text, want) {
			t.Errorf("report text missing %q:\n%s", want, text)
		}
	}
	if !r.OK() {
		t.Error("report should be OK")
	}
}

func TestReportText_Failure(t *testing.T) {
	r := &Report{
		URL:      "http://localhost:8080",
		Selector: "app-root",
		Err:      errors.New("net::ERR_CONNECTION_REFUSED"),
		JSErrors: []string{"EXCEPTION: boom"},
	}

	text := r.Text()
	for _, want := range []string{"result: FAIL", "error: net::ERR_CONNECTION_REFUSED", "js errors:", "EXCEPTION: boom"} {
		if !strings.Contains(text, want) {
			t.Errorf("report text missing %q:\n%s", want, text)
		}
	}
	if r.OK() {
		t.Error("report should not be OK")
	}
	if strings.Contains(text, "title:") {
		t.Error("failed report should not include a title line")
	}
}
