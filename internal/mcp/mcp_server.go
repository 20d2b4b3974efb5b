// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/roadmap/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Roadmap MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.OrderManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Roadmap Layout Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: build_layout ---
	s.AddTool(mcp.NewTool("build_layout",
		mcp.WithDescription("Lay out a milestone sheet (.csv or .xlsx) as a roadmap: timeline window, quarter header, and positioned milestones with build phases per program and journey."),
		mcp.WithString("input_path", mcp.Description("Path to the milestone sheet."), mcp.Required()),
		mcp.WithString("program", mcp.Description("Only return this program. The timeline window still covers every program.")),
		mcp.WithString("sheet", mcp.Description("XLSX sheet name (defaults to the first sheet).")),
	), h.handleBuildLayout)

	// --- 2. Tool: timeline_header ---
	s.AddTool(mcp.NewTool("timeline_header",
		mcp.WithDescription("Generate the year, quarter and month header of a timeline window."),
		mcp.WithString("start", mcp.Description("Window start as MM/DD/YYYY. Must be given together with end.")),
		mcp.WithString("end", mcp.Description("Window end as MM/DD/YYYY. Defaults to the fallback window when both are omitted.")),
	), h.handleTimelineHeader)

	// --- 3. Tool: estimate_sprints ---
	s.AddTool(mcp.NewTool("estimate_sprints",
		mcp.WithDescription("Estimate the sprints required for a t-shirt size (XS, S, M, L, XL, XXL)."),
		mcp.WithString("size", mcp.Description("The size token, case-insensitive."), mcp.Required()),
		mcp.WithString("format", mcp.Description("Answer format. Defaults to 'range'."), mcp.Enum("range", "minmax", "average", "max", "raw")),
	), h.handleEstimateSprints)

	return s
}

// StartMCPServer starts the Roadmap MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.OrderManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
