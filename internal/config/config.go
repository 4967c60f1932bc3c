package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration.
type Config struct {
	Target  TargetConfig  `toml:"target"`
	Serve   ServeConfig   `toml:"serve"`
	Logging LoggingConfig `toml:"logging"`
}

// TargetConfig describes the application under verification.
type TargetConfig struct {
	URL            string `toml:"url"`
	Selector       string `toml:"selector"`
	Screenshot     string `toml:"screenshot"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	Headless       bool   `toml:"headless"`
}

// ServeConfig contains settings for the local app host (pagecheck-serve).
type ServeConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
	Dir  string `toml:"dir"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level      string   `toml:"level"`
	Outputs    []string `toml:"outputs"`
	FilePath   string   `toml:"file_path"`
	MaxSizeMB  int      `toml:"max_size_mb"`
	MaxBackups int      `toml:"max_backups"`
}

// LoadFromFile loads configuration with priority: defaults -> file -> env.
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple files with priority:
// defaults -> file1 -> file2 -> ... -> env.
// Later files override earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		err = toml.Unmarshal(data, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies PAGECHECK_* environment variable overrides to config.
func applyEnvOverrides(config *Config) {
	if url := os.Getenv("PAGECHECK_TARGET_URL"); url != "" {
		config.Target.URL = url
	}
	if sel := os.Getenv("PAGECHECK_TARGET_SELECTOR"); sel != "" {
		config.Target.Selector = sel
	}
	if shot := os.Getenv("PAGECHECK_TARGET_SCREENSHOT"); shot != "" {
		config.Target.Screenshot = shot
	}
	if secs := os.Getenv("PAGECHECK_TIMEOUT_SECONDS"); secs != "" {
		if n, err := strconv.Atoi(secs); err == nil && n > 0 {
			config.Target.TimeoutSeconds = n
		}
	}
	if port := os.Getenv("PAGECHECK_SERVE_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Serve.Port = p
		}
	}
	if host := os.Getenv("PAGECHECK_SERVE_HOST"); host != "" {
		config.Serve.Host = host
	}
	if dir := os.Getenv("PAGECHECK_SERVE_DIR"); dir != "" {
		config.Serve.Dir = dir
	}
	if level := os.Getenv("PAGECHECK_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config.
func ApplyFlagOverrides(config *Config, url, selector, screenshot string) {
	if url != "" {
		config.Target.URL = url
	}
	if selector != "" {
		config.Target.Selector = selector
	}
	if screenshot != "" {
		config.Target.Screenshot = screenshot
	}
}
