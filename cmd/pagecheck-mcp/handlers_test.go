package main

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := newDefaultConfig()

	if cfg.Server.Name != "Pagecheck-MCP" {
		t.Errorf("server name = %q", cfg.Server.Name)
	}
	if cfg.Target.URL != "http://localhost:8080" {
		t.Errorf("target url = %q", cfg.Target.URL)
	}
	if cfg.Target.Selector != "app-root" {
		t.Errorf("target selector = %q", cfg.Target.Selector)
	}
	// Stdout carries JSON-RPC, so the default log output must be file-only
	for _, out := range cfg.Logging.Outputs {
		if out == "console" {
			t.Error("mcp default logging must not write to console")
		}
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg := loadConfig("/nonexistent/pagecheck-mcp.toml")
	if cfg.Target.URL != "http://localhost:8080" {
		t.Errorf("expected defaults for missing file, got url %q", cfg.Target.URL)
	}
}

func TestTargetTimeout(t *testing.T) {
	cfg := newDefaultConfig()
	if got := targetTimeout(cfg); got != 30*time.Second {
		t.Errorf("timeout = %v, want 30s", got)
	}

	cfg.Target.TimeoutSeconds = 5
	if got := targetTimeout(cfg); got != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", got)
	}

	cfg.Target.TimeoutSeconds = 0
	if got := targetTimeout(cfg); got != 30*time.Second {
		t.Errorf("zero timeout should fall back to 30s, got %v", got)
	}
}

func TestTargetBrowserConfig(t *testing.T) {
	cfg := newDefaultConfig()
	bc := targetBrowserConfig(cfg)
	if !bc.Headless {
		t.Error("default target must produce a headless session")
	}
	if bc.Timeout != 30*time.Second {
		t.Errorf("timeout = %v, want 30s", bc.Timeout)
	}

	// A headed target config must reach the browser session settings
	cfg.Target.Headless = false
	cfg.Target.TimeoutSeconds = 5
	bc = targetBrowserConfig(cfg)
	if bc.Headless {
		t.Error("headless=false in config was not propagated")
	}
	if bc.Timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", bc.Timeout)
	}
}

func TestParseViewport(t *testing.T) {
	w, h, err := parseViewport("375x812")
	if err != nil {
		t.Fatalf("parseViewport failed: %v", err)
	}
	if w != 375 || h != 812 {
		t.Errorf("parseViewport = %dx%d, want 375x812", w, h)
	}

	for _, bad := range []string{"", "375", "375x", "x812", "ax b", "0x600", "-1x600", "375x-1"} {
		if _, _, err := parseViewport(bad); err == nil {
			t.Errorf("parseViewport(%q) should fail", bad)
		}
	}
}

func TestTextResult(t *testing.T) {
	r := textResult("hello")
	if r.IsError {
		t.Error("textResult should not be an error")
	}
	if len(r.Content) != 1 {
		t.Fatalf("content length = %d", len(r.Content))
	}
}

func TestErrorResult(t *testing.T) {
	r := errorResult("boom")
	if !r.IsError {
		t.Error("errorResult should set IsError")
	}
}

func TestRunSelectorCheck_UnknownState(t *testing.T) {
	_, err := runSelectorCheck(context.Background(), "app-root", "wibble")
	if err == nil {
		t.Fatal("expected error for unknown state")
	}
	if !strings.Contains(err.Error(), "unknown state") {
		t.Errorf("err = %v", err)
	}
}

func TestToolDefinitions(t *testing.T) {
	if got := createVerifyPageTool().Name; got != "verify_page" {
		t.Errorf("tool name = %q", got)
	}
	if got := createCaptureScreenshotTool().Name; got != "capture_screenshot" {
		t.Errorf("tool name = %q", got)
	}
	if got := createCheckSelectorTool().Name; got != "check_selector" {
		t.Errorf("tool name = %q", got)
	}
	if got := createEvalExpressionTool().Name; got != "eval_expression" {
		t.Errorf("tool name = %q", got)
	}
}
