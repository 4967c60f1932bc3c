// pagecheck-mcp exposes the page verification operations as MCP tools over
// stdio, so coding agents can verify a deployed app and read the result.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/server"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/davidarcher/pagecheck/internal/common"
	"github.com/davidarcher/pagecheck/internal/config"
)

// Config holds all pagecheck-mcp configuration.
type Config struct {
	Server  McpServerConfig      `toml:"server"`
	Target  config.TargetConfig  `toml:"target"`
	Logging config.LoggingConfig `toml:"logging"`
}

// McpServerConfig holds MCP server settings.
type McpServerConfig struct {
	Name string `toml:"name"`
}

// newDefaultConfig returns a Config with sensible defaults.
func newDefaultConfig() Config {
	base := config.NewDefaultConfig()
	return Config{
		Server: McpServerConfig{
			Name: "Pagecheck-MCP",
		},
		Target: base.Target,
		Logging: config.LoggingConfig{
			Level:    "info",
			Outputs:  []string{"file"},
			FilePath: "logs/pagecheck-mcp.log",
		},
	}
}

// loadConfig loads configuration from a TOML file with defaults and env overrides.
func loadConfig(path string) Config {
	cfg := newDefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				log.Fatalf("Failed to read config file %s: %v", path, err)
			}
			// File not found — use defaults
		} else {
			if err := toml.Unmarshal(data, &cfg); err != nil {
				log.Fatalf("Failed to parse config file %s: %v", path, err)
			}
		}
	}

	if url := os.Getenv("PAGECHECK_TARGET_URL"); url != "" {
		cfg.Target.URL = url
	}
	if sel := os.Getenv("PAGECHECK_TARGET_SELECTOR"); sel != "" {
		cfg.Target.Selector = sel
	}

	return cfg
}

func main() {
	configFile := flag.String("config", "pagecheck-mcp.toml", "Path to config file")
	flag.Parse()

	cfg := loadConfig(*configFile)

	// Stdout carries the JSON-RPC stream, so logs must stay off it.
	logger := common.NewLoggerFromConfig(common.LoggingConfig{
		Level:    cfg.Logging.Level,
		Outputs:  cfg.Logging.Outputs,
		FilePath: cfg.Logging.FilePath,
	})

	mcpServer := server.NewMCPServer(
		cfg.Server.Name,
		config.GetVersion(),
		server.WithToolCapabilities(true),
	)

	registerTools(mcpServer, cfg, logger)

	if err := server.ServeStdio(mcpServer); err != nil {
		fmt.Fprintf(os.Stderr, "stdio server error: %v\n", err)
		os.Exit(1)
	}
}
