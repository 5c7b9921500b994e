// ABOUTME: MCP tool definitions and registration for the assistant server
// ABOUTME: Exposes the knowledge and resume pipelines as ask_site and ask_resume tools
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers the assistant tools with the MCP server.
func RegisterTools(server *mcpserver.MCPServer, site SiteAnswerer, resume ResumeAnswerer) *Handlers {
	handlers := &Handlers{
		site:   site,
		resume: resume,
	}

	// 1. ask_site - Answer a question from the portfolio knowledge corpus
	server.AddTool(mcp.Tool{
		Name:        "ask_site",
		Description: "Answer a question using the portfolio site's knowledge file. Retrieves the most relevant passages and generates a grounded answer.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"question": map[string]interface{}{
					"type":        "string",
					"description": "Question to answer from the site knowledge",
				},
			},
			Required: []string{"question"},
		},
	}, handlers.AskSite)

	// 2. ask_resume - Answer a question from the parsed resume profile
	server.AddTool(mcp.Tool{
		Name:        "ask_resume",
		Description: "Answer a question about the resume: education, work experience, skills, projects, contact details, or a pasted job description for a fit analysis.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"question": map[string]interface{}{
					"type":        "string",
					"description": "Question about the resume, or a full job posting to analyze",
				},
			},
			Required: []string{"question"},
		},
	}, handlers.AskResume)

	return handlers
}
