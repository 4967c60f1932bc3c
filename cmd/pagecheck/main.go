// pagecheck verifies that a locally served web app renders: it opens the
// target URL in headless Chrome, waits for the readiness element, prints the
// page title, and saves a screenshot. Failures are printed and the command
// still exits 0 — it is a smoke probe, not a gate.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/davidarcher/pagecheck/internal/common"
	"github.com/davidarcher/pagecheck/internal/config"
	"github.com/davidarcher/pagecheck/internal/verify"
)

// configPaths is a custom flag type that allows multiple -config flags.
type configPaths []string

func (c *configPaths) String() string {
	return fmt.Sprintf("%v", *c)
}

func (c *configPaths) Set(value string) error {
	*c = append(*c, value)
	return nil
}

var (
	configFiles configPaths
	targetURL   = flag.String("url", "", "Target URL (overrides config)")
	selector    = flag.String("selector", "", "Readiness selector (overrides config)")
	screenshot  = flag.String("screenshot", "", "Screenshot output path (overrides config)")
	showVersion = flag.Bool("version", false, "Print version information")
)

func init() {
	flag.Var(&configFiles, "config", "Configuration file path (can be specified multiple times)")
	flag.Var(&configFiles, "c", "Configuration file path (shorthand)")
}

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("pagecheck version %s\n", config.GetFullVersion())
		os.Exit(0)
	}

	// Auto-discover config file if not specified.
	// Binary-relative paths are tried first so the config is found even when
	// the working directory differs from the binary location.
	if len(configFiles) == 0 {
		for _, path := range configSearchPaths() {
			if _, err := os.Stat(path); err == nil {
				configFiles = append(configFiles, path)
				break
			}
		}
	}

	cfg, err := config.LoadFromFiles(configFiles...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// CLI flag overrides (highest priority)
	config.ApplyFlagOverrides(cfg, *targetURL, *selector, *screenshot)

	logger := common.NewLoggerFromConfig(common.LoggingConfig{
		Level:      cfg.Logging.Level,
		Outputs:    cfg.Logging.Outputs,
		FilePath:   cfg.Logging.FilePath,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
	})

	opts := verify.Options{
		URL:        cfg.Target.URL,
		Selector:   cfg.Target.Selector,
		Screenshot: cfg.Target.Screenshot,
		Timeout:    time.Duration(cfg.Target.TimeoutSeconds) * time.Second,
		Headless:   cfg.Target.Headless,
	}

	// The run prints its own progress and errors; the exit code stays 0
	// either way. Read the report from logs or the MCP surface when the
	// outcome matters programmatically.
	verify.Run(opts, logger, os.Stdout)
}

// configSearchPaths returns TOML files to auto-discover (first match wins).
// Binary-relative paths are tried first, with CWD fallbacks after.
func configSearchPaths() []string {
	candidates := []string{
		"pagecheck.toml",
		"config/pagecheck.toml",
	}

	exe, err := os.Executable()
	if err != nil {
		return candidates
	}
	binDir := filepath.Dir(exe)

	paths := []string{
		filepath.Join(binDir, "pagecheck.toml"),
		filepath.Join(binDir, "config", "pagecheck.toml"),
	}
	paths = append(paths, candidates...)

	// Deduplicate via absolute path.
	seen := make(map[string]bool, len(paths))
	deduped := make([]string, 0, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			abs = p
		}
		if seen[abs] {
			continue
		}
		seen[abs] = true
		deduped = append(deduped, p)
	}
	return deduped
}
