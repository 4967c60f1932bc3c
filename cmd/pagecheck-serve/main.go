// pagecheck-serve hosts a built web app directory locally so pagecheck has
// something to verify against: static files with SPA fallback plus health
// and version endpoints.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/davidarcher/pagecheck/internal/common"
	"github.com/davidarcher/pagecheck/internal/config"
	"github.com/davidarcher/pagecheck/internal/server"
)

var (
	configFile  = flag.String("config", "", "Configuration file path")
	servePort   = flag.Int("port", 0, "Server port (overrides config)")
	serveHost   = flag.String("host", "", "Server host (overrides config)")
	serveDir    = flag.String("dir", "", "App directory to serve (overrides config)")
	showVersion = flag.Bool("version", false, "Print version information")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("pagecheck-serve version %s\n", config.GetFullVersion())
		os.Exit(0)
	}

	cfg, err := config.LoadFromFile(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if *servePort > 0 {
		cfg.Serve.Port = *servePort
	}
	if *serveHost != "" {
		cfg.Serve.Host = *serveHost
	}
	if *serveDir != "" {
		cfg.Serve.Dir = *serveDir
	}

	logger := common.NewLoggerFromConfig(common.LoggingConfig{
		Level:      cfg.Logging.Level,
		Outputs:    cfg.Logging.Outputs,
		FilePath:   cfg.Logging.FilePath,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
	})

	if _, err := os.Stat(cfg.Serve.Dir); err != nil {
		logger.Error().Str("dir", cfg.Serve.Dir).Msg("app directory not found")
		os.Exit(1)
	}

	srv := server.New(cfg, logger)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Error().Str("error", err.Error()).Msg("server failed to start")
			os.Exit(1)
		}
	}()

	logger.Info().
		Str("url", fmt.Sprintf("http://%s:%d", cfg.Serve.Host, cfg.Serve.Port)).
		Str("dir", cfg.Serve.Dir).
		Msg("server ready")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info().Msg("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Str("error", err.Error()).Msg("server shutdown failed")
	}

	logger.Info().Msg("server stopped")
}
