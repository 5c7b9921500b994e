// ABOUTME: MCP tool handler implementations for the assistant server
// ABOUTME: Thin adapters from tool calls onto the two answer pipelines
package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// SiteAnswerer answers questions from the knowledge corpus.
type SiteAnswerer interface {
	Answer(ctx context.Context, question string) (string, error)
}

// ResumeAnswerer answers questions from the resume profile. It never fails.
type ResumeAnswerer interface {
	Answer(question string) string
}

// Handlers contains the handler functions for the assistant tools.
type Handlers struct {
	site   SiteAnswerer
	resume ResumeAnswerer
}

// AskSite handles the ask_site tool.
func (h *Handlers) AskSite(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError("question argument is required and must be a string"), nil
	}

	if h.site == nil {
		return mcp.NewToolResultError("knowledge pipeline is not configured"), nil
	}

	answer, err := h.site.Answer(ctx, question)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("answering failed: %v", err)), nil
	}
	return mcp.NewToolResultText(answer), nil
}

// AskResume handles the ask_resume tool.
func (h *Handlers) AskResume(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError("question argument is required and must be a string"), nil
	}

	if h.resume == nil {
		return mcp.NewToolResultError("resume pipeline is not configured"), nil
	}
	return mcp.NewToolResultText(h.resume.Answer(question)), nil
}
