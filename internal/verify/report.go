package verify

import (
	"fmt"
	"strings"
	"time"
)

// Report captures the outcome of a verification run. The CLI exits 0 either
// way; callers that need the result (MCP tools, tests) read it from here.
type Report struct {
	RunID          string
	URL            string
	Selector       string
	Title          string
	ScreenshotPath string
	JSErrors       []string
	Err            error
	Duration       time.Duration
}

// OK reports whether the run completed without error.
func (r *Report) OK() bool {
	return r.Err == nil
}

// Text renders the report as plain text, one fact per line.
func (r *Report) Text() string {
	var b strings.Builder

	fmt.Fprintf(&b, "url: %s\n", r.URL)
	fmt.Fprintf(&b, "selector: %s\n", r.Selector)

	if r.Err != nil {
		fmt.Fprintf(&b, "result: FAIL\n")
		fmt.Fprintf(&b, "error: %v\n", r.Err)
	} else {
		fmt.Fprintf(&b, "result: OK\n")
		fmt.Fprintf(&b, "title: %s\n", r.Title)
		if r.ScreenshotPath != "" {
			fmt.Fprintf(&b, "screenshot: %s\n", r.ScreenshotPath)
		}
	}

	if len(r.JSErrors) > 0 {
		fmt.Fprintf(&b, "js errors:\n")
		for _, e := range r.JSErrors {
			fmt.Fprintf(&b, "  %s\n", e)
		}
	}

	fmt.Fprintf(&b, "duration: %dms\n", r.Duration.Milliseconds())

	return b.String()
}
