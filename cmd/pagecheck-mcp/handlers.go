package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/davidarcher/pagecheck/internal/browser"
	"github.com/davidarcher/pagecheck/internal/common"
	"github.com/davidarcher/pagecheck/internal/verify"
)

// --- Helpers ---

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

func targetTimeout(cfg Config) time.Duration {
	if cfg.Target.TimeoutSeconds > 0 {
		return time.Duration(cfg.Target.TimeoutSeconds) * time.Second
	}
	return 30 * time.Second
}

// targetBrowserConfig builds the session settings every tool shares from the
// configured target.
func targetBrowserConfig(cfg Config) *browser.Config {
	return &browser.Config{
		Headless: cfg.Target.Headless,
		Timeout:  targetTimeout(cfg),
	}
}

// parseViewport parses a "WxH" viewport spec like "375x812".
func parseViewport(s string) (width, height int64, err error) {
	w, h, ok := strings.Cut(s, "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid viewport %q, want WxH", s)
	}
	width, err = strconv.ParseInt(w, 10, 64)
	if err == nil {
		height, err = strconv.ParseInt(h, 10, 64)
	}
	if err != nil || width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("invalid viewport %q, want WxH", s)
	}
	return width, height, nil
}

// --- Handlers ---

func handleVerifyPage(cfg Config, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		opts := verify.Options{
			URL:        request.GetString("url", cfg.Target.URL),
			Selector:   request.GetString("selector", cfg.Target.Selector),
			Screenshot: request.GetString("screenshot", cfg.Target.Screenshot),
			Timeout:    targetTimeout(cfg),
			Headless:   cfg.Target.Headless,
		}

		// The stdio transport owns stdout; the run's progress lines go to
		// the report instead.
		report := verify.Run(opts, logger, io.Discard)

		return textResult(report.Text()), nil
	}
}

func handleCaptureScreenshot(cfg Config, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		url, err := request.RequireString("url")
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		path, err := request.RequireString("path")
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		selector := request.GetString("selector", "body")

		bctx, cancel := browser.NewContext(targetBrowserConfig(cfg))
		defer cancel()

		if viewport := request.GetString("viewport", ""); viewport != "" {
			width, height, err := parseViewport(viewport)
			if err != nil {
				return errorResult(fmt.Sprintf("Error: %v", err)), nil
			}
			if err := browser.SetViewport(bctx, width, height); err != nil {
				return errorResult(fmt.Sprintf("Error: %v", err)), nil
			}
		}

		if err := browser.NavigateAndWait(bctx, url, selector); err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		if err := browser.CaptureScreenshot(bctx, path); err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		logger.Info().Str("url", url).Str("path", path).Msg("screenshot captured")

		return textResult(fmt.Sprintf("Screenshot saved to %s", path)), nil
	}
}

func handleCheckSelector(cfg Config, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		url, err := request.RequireString("url")
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		selector, err := request.RequireString("selector")
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		state := request.GetString("state", "exists")

		bctx, cancel := browser.NewContext(targetBrowserConfig(cfg))
		defer cancel()

		if err := browser.NavigateAndWait(bctx, url, "body"); err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		result, err := runSelectorCheck(bctx, selector, state)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		return textResult(result), nil
	}
}

func handleEvalExpression(cfg Config, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		url, err := request.RequireString("url")
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		expr, err := request.RequireString("expression")
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		bctx, cancel := browser.NewContext(targetBrowserConfig(cfg))
		defer cancel()

		if err := browser.NavigateAndWait(bctx, url, "body"); err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		ok, err := browser.EvalBool(bctx, expr)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		logger.Info().Str("url", url).Str("expression", browser.Truncate(expr, 60)).Msg("expression evaluated")

		return textResult(fmt.Sprintf("eval(%s): %v", browser.Truncate(expr, 60), ok)), nil
	}
}

// runSelectorCheck evaluates one selector|state assertion and renders the
// outcome as text.
func runSelectorCheck(ctx context.Context, selector, state string) (string, error) {
	switch {
	case state == "exists":
		exists, err := browser.Exists(ctx, selector)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("check(%s|exists): %v", selector, exists), nil

	case state == "visible":
		visible, err := browser.IsVisible(ctx, selector)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("check(%s|visible): %v", selector, visible), nil

	case state == "hidden":
		hidden, err := browser.IsHidden(ctx, selector)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("check(%s|hidden): %v", selector, hidden), nil

	case state == "count":
		count, err := browser.ElementCount(ctx, selector)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("check(%s|count): %d", selector, count), nil

	case strings.HasPrefix(state, "text="):
		expected := state[5:]
		pass, actual, err := browser.TextContains(ctx, selector, expected)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("check(%s|%s): %v (got: %s)", selector, state, pass, browser.Truncate(actual, 60)), nil

	default:
		return "", fmt.Errorf("unknown state: %s", state)
	}
}
