package main

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/davidarcher/pagecheck/internal/common"
)

// registerTools registers all MCP tools on the server.
func registerTools(s *server.MCPServer, cfg Config, logger *common.Logger) {
	s.AddTool(createVerifyPageTool(), handleVerifyPage(cfg, logger))
	s.AddTool(createCaptureScreenshotTool(), handleCaptureScreenshot(cfg, logger))
	s.AddTool(createCheckSelectorTool(), handleCheckSelector(cfg, logger))
	s.AddTool(createEvalExpressionTool(), handleEvalExpression(cfg, logger))
}

// --- Tool definitions ---

func createVerifyPageTool() mcp.Tool {
	return mcp.NewTool("verify_page",
		mcp.WithDescription("Verify that a served web app renders: navigate to the URL, wait for the readiness selector, read the page title, and save a screenshot. Returns a plain-text report."),
		mcp.WithString("url", mcp.Description("Target URL. Uses the configured target (default http://localhost:8080) if not specified.")),
		mcp.WithString("selector", mcp.Description("Readiness selector to wait for (default 'app-root').")),
		mcp.WithString("screenshot", mcp.Description("Screenshot output path (default 'verification.png').")),
	)
}

func createCaptureScreenshotTool() mcp.Tool {
	return mcp.NewTool("capture_screenshot",
		mcp.WithDescription("Capture a full-page screenshot of a URL after it finishes rendering."),
		mcp.WithString("url", mcp.Required(), mcp.Description("URL to capture")),
		mcp.WithString("path", mcp.Required(), mcp.Description("File path to write the PNG to")),
		mcp.WithString("selector", mcp.Description("Selector to wait for before capturing (default 'body')")),
		mcp.WithString("viewport", mcp.Description("Viewport as WxH, e.g. 375x812 (default: browser default)")),
	)
}

func createCheckSelectorTool() mcp.Tool {
	return mcp.NewTool("check_selector",
		mcp.WithDescription("Check the state of a DOM element on a page: exists, visible, hidden, count, or text content."),
		mcp.WithString("url", mcp.Required(), mcp.Description("URL to load")),
		mcp.WithString("selector", mcp.Required(), mcp.Description("CSS selector to check")),
		mcp.WithString("state", mcp.Description("Check to run: exists, visible, hidden, count, text=<expected> (default 'exists')")),
	)
}

func createEvalExpressionTool() mcp.Tool {
	return mcp.NewTool("eval_expression",
		mcp.WithDescription("Evaluate a JavaScript expression on a page. The expression must return a boolean; the tool reports whether it held."),
		mcp.WithString("url", mcp.Required(), mcp.Description("URL to load")),
		mcp.WithString("expression", mcp.Required(), mcp.Description("JS expression returning a boolean, e.g. document.querySelectorAll('.panel').length > 0")),
	)
}
