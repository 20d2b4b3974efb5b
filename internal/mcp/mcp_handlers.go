package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/roadmap/core"
	"github.com/huangsam/roadmap/core/algo"
	"github.com/huangsam/roadmap/internal/contract"
	"github.com/huangsam/roadmap/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.OrderManager
}

// jsonResult encodes data as an indented JSON text result.
func jsonResult(data any) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleBuildLayout(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if err := contract.RevalidateInput(cfg, request.GetString("input_path", "")); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid layout parameters: %v", err)), nil
	}
	cfg = cfg.CloneWithProgram(request.GetString("program", ""))
	cfg.Sheet = request.GetString("sheet", cfg.Sheet)

	// Tool calls read stored orders but never rewrite them.
	ctx = core.WithSuppressWarnings(core.WithReadOnlyOrders(ctx))
	layout, err := core.GetRoadmapLayout(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("layout failed: %v", err)), nil
	}
	return jsonResult(layout)
}

func (h *toolHandler) handleTimelineHeader(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	start, end := request.GetString("start", ""), request.GetString("end", "")
	if err := contract.RevalidateHeaderWindow(cfg, start, end); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid header parameters: %v", err)), nil
	}

	window := algo.DefaultWindow()
	if cfg.HasHeaderWindow {
		window = cfg.HeaderWindow
	}
	cells := algo.QuarterHeader(window)
	return jsonResult(map[string]any{
		"window":   window,
		"quarters": cells,
		"months":   algo.HeaderMonths(cells),
	})
}

func (h *toolHandler) handleEstimateSprints(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if cfg.SizeFormat == "" {
		cfg.SizeFormat = schema.RangeFormat
	}
	if err := contract.RevalidateSizeFormat(cfg, request.GetString("format", "")); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid size parameters: %v", err)), nil
	}

	token := request.GetString("size", "")
	size, err := algo.NormalizeSize(token)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("estimate failed: %v", err)), nil
	}
	result, err := algo.SprintsRequired(token, cfg.SizeFormat)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("estimate failed: %v", err)), nil
	}
	return jsonResult(map[string]any{
		"size":   size,
		"format": cfg.SizeFormat,
		"result": result,
	})
}
