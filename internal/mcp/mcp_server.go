// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/flowstate/internal/contract"
	"github.com/huangsam/flowstate/internal/datastore"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// DashboardResourceURI identifies the dashboard resource.
const DashboardResourceURI = "flowstate://dashboard"

// NewMCPServer initializes and configures the FlowState MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, store datastore.DatasetStore) *server.MCPServer {
	s := server.NewMCPServer(
		"FlowState Analysis Server",
		"1.0.0",
		server.WithLogging(),
		server.WithResourceCapabilities(true, true),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		store:   store,
	}

	// --- 1. Tool: get_best_hours ---
	s.AddTool(mcp.NewTool("get_best_hours",
		mcp.WithDescription("Get the best hours for coding based on historical day-of-week patterns."),
	), h.handleGetBestHours)

	// --- 2. Tool: get_flow_state_pattern ---
	s.AddTool(mcp.NewTool("get_flow_state_pattern",
		mcp.WithDescription("Identify which media consumption pattern produces the highest commit average."),
	), h.handleGetFlowStatePattern)

	// --- 3. Tool: analyze_productivity ---
	s.AddTool(mcp.NewTool("analyze_productivity",
		mcp.WithDescription("Analyze productivity for a specific date with a composite score."),
		mcp.WithString("date", mcp.Description("Date to analyze in YYYY-MM-DD format."), mcp.Required()),
	), h.handleAnalyzeProductivity)

	// --- 4. Tool: get_music_impact ---
	s.AddTool(mcp.NewTool("get_music_impact",
		mcp.WithDescription("Measure how listening to music correlates with commit output."),
	), h.handleGetMusicImpact)

	// --- 5. Tool: predict_commits ---
	s.AddTool(mcp.NewTool("predict_commits",
		mcp.WithDescription("Predict expected commits for a hypothetical day of media consumption."),
		mcp.WithNumber("music_hours", mcp.Description("Hours of music listening planned."), mcp.Required()),
		mcp.WithNumber("video_minutes", mcp.Description("Minutes of video watching planned."), mcp.Required()),
	), h.handlePredictCommits)

	// --- Resource: dashboard URL ---
	s.AddResource(mcp.NewResource(DashboardResourceURI, "FlowState Dashboard",
		mcp.WithResourceDescription("URL of the deployed FlowState dashboard, with deployment metadata."),
		mcp.WithMIMEType("application/json"),
	), h.handleDashboardResource)

	return s
}

// StartMCPServer starts the FlowState MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, store datastore.DatasetStore) error {
	s := NewMCPServer(baseCfg, store)
	return server.ServeStdio(s)
}
