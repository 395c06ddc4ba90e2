package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/huangsam/flowstate/core"
	"github.com/huangsam/flowstate/internal/contract"
	"github.com/huangsam/flowstate/internal/datastore"
	"github.com/huangsam/flowstate/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	store   datastore.DatasetStore
}

// loadDataset reads the latest snapshot. Every tool call loads fresh so a
// rerun of the correlation pipeline is visible without restarting the server.
func (h *toolHandler) loadDataset() (*schema.Dataset, *contract.QueryError) {
	dataset, err := h.store.Load()
	if err != nil {
		return nil, contract.AsQueryError(err, contract.ErrLoad,
			"Check the correlation data and try again.")
	}
	return dataset, nil
}

func toolResult(payload any, qerr *contract.QueryError) (*mcp.CallToolResult, error) {
	if qerr != nil {
		return mcp.NewToolResultError(qerr.Envelope()), nil
	}
	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetBestHours(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dataset, qerr := h.loadDataset()
	if qerr != nil {
		return toolResult(nil, qerr)
	}

	result, err := core.BestHours(dataset)
	if err != nil {
		return toolResult(nil, contract.AsQueryError(err, contract.ErrAnalysis,
			"Check the correlation data and try again."))
	}
	return toolResult(result, nil)
}

func (h *toolHandler) handleGetFlowStatePattern(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dataset, qerr := h.loadDataset()
	if qerr != nil {
		return toolResult(nil, qerr)
	}

	result, err := core.FlowStatePattern(dataset)
	if err != nil {
		return toolResult(nil, contract.AsQueryError(err, contract.ErrAnalysis,
			"Check the correlation data and try again."))
	}
	return toolResult(result, nil)
}

func (h *toolHandler) handleAnalyzeProductivity(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	date, err := request.RequireString("date")
	if err != nil {
		return toolResult(nil, contract.NewQueryError(contract.ErrInvalidParameterType,
			"Date parameter must be a string in YYYY-MM-DD format.",
			"Provide the date as a string, e.g. '2024-01-15'."))
	}

	dataset, qerr := h.loadDataset()
	if qerr != nil {
		return toolResult(nil, qerr)
	}

	result, err := core.AnalyzeProductivity(dataset, date)
	if err != nil {
		return toolResult(nil, contract.AsQueryError(err, contract.ErrAnalysis,
			"Check the correlation data and try again."))
	}
	return toolResult(result, nil)
}

func (h *toolHandler) handleGetMusicImpact(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dataset, qerr := h.loadDataset()
	if qerr != nil {
		return toolResult(nil, qerr)
	}

	result, err := core.MusicImpact(dataset)
	if err != nil {
		return toolResult(nil, contract.AsQueryError(err, contract.ErrAnalysis,
			"Check the correlation data and try again."))
	}
	return toolResult(result, nil)
}

func (h *toolHandler) handlePredictCommits(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	musicHours, err := request.RequireFloat("music_hours")
	if err != nil {
		return toolResult(nil, predictTypeError())
	}
	videoMinutes, err := request.RequireFloat("video_minutes")
	if err != nil {
		return toolResult(nil, predictTypeError())
	}

	dataset, qerr := h.loadDataset()
	if qerr != nil {
		return toolResult(nil, qerr)
	}

	result, err := core.PredictCommits(dataset, musicHours, videoMinutes)
	if err != nil {
		return toolResult(nil, contract.AsQueryError(err, contract.ErrPrediction,
			"Check the correlation data and try again."))
	}
	return toolResult(result, nil)
}

func predictTypeError() *contract.QueryError {
	return contract.NewQueryError(contract.ErrInvalidParameterType,
		"Parameters must be numbers. music_hours and video_minutes are required.",
		"Provide numeric values, e.g. music_hours=2.5, video_minutes=30.")
}

// dashboardPayload is the resource body for the dashboard URL.
type dashboardPayload struct {
	URL      string            `json:"url"`
	Metadata map[string]string `json:"metadata"`
}

func (h *toolHandler) handleDashboardResource(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	deploymentType := "production"
	if h.baseCfg.DashboardURL == contract.DefaultDashboardURL {
		deploymentType = "development"
	}

	payload := dashboardPayload{
		URL: h.baseCfg.DashboardURL,
		Metadata: map[string]string{
			"description":     "FlowState Dashboard - Interactive visualization of productivity insights based on music, video consumption, and GitHub commits",
			"content_type":    "text/html",
			"last_modified":   time.Now().Format(time.RFC3339),
			"deployment_type": deploymentType,
			"resource_type":   "dashboard",
			"version":         "1.0.0",
		},
	}

	jsonData, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      DashboardResourceURI,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}
