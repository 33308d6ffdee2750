package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/congress-mcp/internal/common"
	"github.com/bobmcallan/congress-mcp/internal/congress"
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

// errorPayloadResult flattens any failure into the structured error body
// clients receive: {"error": ..., "message": ..., "status_code": ...}.
func errorPayloadResult(err error) *mcp.CallToolResult {
	apiErr := congress.AsError(err)
	payload, marshalErr := json.MarshalIndent(apiErr.Payload(), "", "  ")
	if marshalErr != nil {
		return errorResult(apiErr.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(string(payload)),
		},
		IsError: true,
	}
}

// jsonResult pretty-prints a response payload as the tool result.
func jsonResult(v interface{}) *mcp.CallToolResult {
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorPayloadResult(congress.NewInternalError("failed to encode response", err))
	}
	return textResult(string(payload))
}

func getString(request mcp.CallToolRequest, key, defaultVal string) string {
	return request.GetString(key, defaultVal)
}

func getInt(request mcp.CallToolRequest, key string, defaultVal int) int {
	return request.GetInt(key, defaultVal)
}

func requireString(request mcp.CallToolRequest, key string) (string, error) {
	value, err := request.RequireString(key)
	if err != nil {
		return "", congress.NewValidationError("%s is required and must be a string", key)
	}
	return value, nil
}

func requireInt(request mcp.CallToolRequest, key string) (int, error) {
	value, err := request.RequireInt(key)
	if err != nil {
		return 0, congress.NewValidationError("%s is required and must be an integer", key)
	}
	return value, nil
}

// amendmentRef carries the congress/type/number triple shared by the
// amendment detail tools.
type amendmentRef struct {
	congress      int
	amendmentType string
	number        int
}

func requireAmendmentRef(request mcp.CallToolRequest) (amendmentRef, error) {
	congressNum, err := requireInt(request, "congress")
	if err != nil {
		return amendmentRef{}, err
	}
	amendmentType, err := requireString(request, "amendment_type")
	if err != nil {
		return amendmentRef{}, err
	}
	number, err := requireInt(request, "amendment_number")
	if err != nil {
		return amendmentRef{}, err
	}
	return amendmentRef{congress: congressNum, amendmentType: amendmentType, number: number}, nil
}

// --- Resource tool handler ---

// resourceToolHandler adapts a generated tool call onto the router. The
// handler never returns a Go error: every failure is rendered as the
// structured error payload so clients always see the same shape.
func resourceToolHandler(router *Router, toolName string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := router.Dispatch(ctx, toolName, request.GetArguments())
		if err != nil {
			return errorPayloadResult(err), nil
		}
		return jsonResult(result), nil
	}
}

// --- Amendment handlers ---

func handleListAmendments(service *congress.AmendmentService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		response, err := service.ListAmendments(ctx,
			getInt(request, "congress", 0),
			getString(request, "amendment_type", ""),
			getInt(request, "limit", 0),
			getInt(request, "offset", 0),
		)
		if err != nil {
			return errorPayloadResult(err), nil
		}
		return jsonResult(response), nil
	}
}

func handleGetAmendment(service *congress.AmendmentService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ref, err := requireAmendmentRef(request)
		if err != nil {
			return errorPayloadResult(err), nil
		}
		response, err := service.GetAmendment(ctx, ref.congress, ref.amendmentType, ref.number)
		if err != nil {
			return errorPayloadResult(err), nil
		}
		return jsonResult(response), nil
	}
}

func handleGetAmendmentActions(service *congress.AmendmentService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ref, err := requireAmendmentRef(request)
		if err != nil {
			return errorPayloadResult(err), nil
		}
		response, err := service.GetAmendmentActions(ctx, ref.congress, ref.amendmentType, ref.number,
			getInt(request, "limit", 0), getInt(request, "offset", 0))
		if err != nil {
			return errorPayloadResult(err), nil
		}
		return jsonResult(response), nil
	}
}

func handleGetAmendmentCosponsors(service *congress.AmendmentService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ref, err := requireAmendmentRef(request)
		if err != nil {
			return errorPayloadResult(err), nil
		}
		response, err := service.GetAmendmentCosponsors(ctx, ref.congress, ref.amendmentType, ref.number,
			getInt(request, "limit", 0), getInt(request, "offset", 0))
		if err != nil {
			return errorPayloadResult(err), nil
		}
		return jsonResult(response), nil
	}
}

func handleGetAmendmentText(service *congress.AmendmentService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ref, err := requireAmendmentRef(request)
		if err != nil {
			return errorPayloadResult(err), nil
		}
		response, err := service.GetAmendmentText(ctx, ref.congress, ref.amendmentType, ref.number,
			getInt(request, "limit", 0), getInt(request, "offset", 0))
		if err != nil {
			return errorPayloadResult(err), nil
		}
		return jsonResult(response), nil
	}
}

func handleGetAmendmentsToAmendment(service *congress.AmendmentService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ref, err := requireAmendmentRef(request)
		if err != nil {
			return errorPayloadResult(err), nil
		}
		response, err := service.GetAmendmentsToAmendment(ctx, ref.congress, ref.amendmentType, ref.number,
			getInt(request, "limit", 0), getInt(request, "offset", 0))
		if err != nil {
			return errorPayloadResult(err), nil
		}
		return jsonResult(response), nil
	}
}

func handleSearchAmendments(service *congress.AmendmentService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := requireString(request, "query")
		if err != nil {
			return errorPayloadResult(err), nil
		}
		response, err := service.SearchAmendmentsByText(ctx, query,
			getInt(request, "congress", 0), getInt(request, "limit", 0))
		if err != nil {
			return errorPayloadResult(err), nil
		}
		return jsonResult(response), nil
	}
}

func handleGetAmendmentsBySponsor(service *congress.AmendmentService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		bioguideID, err := requireString(request, "bioguide_id")
		if err != nil {
			return errorPayloadResult(err), nil
		}
		response, err := service.GetAmendmentsBySponsor(ctx, bioguideID,
			getInt(request, "congress", 0), getInt(request, "limit", 0))
		if err != nil {
			return errorPayloadResult(err), nil
		}
		return jsonResult(response), nil
	}
}

func handleGetRecentAmendments(service *congress.AmendmentService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		response, err := service.GetRecentAmendments(ctx,
			getInt(request, "congress", 0),
			getInt(request, "days_back", 30),
			getInt(request, "limit", 0),
		)
		if err != nil {
			return errorPayloadResult(err), nil
		}
		return jsonResult(response), nil
	}
}

// --- Utility handlers ---

func handleGetRateLimitStatus(client *congress.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(client.RateLimitStatus()), nil
	}
}

func handleResetRateLimit(client *congress.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		client.ResetRateLimit()
		return jsonResult(client.RateLimitStatus()), nil
	}
}

func handleGetVersion() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result := fmt.Sprintf("Congress MCP Server\nVersion: %s\nBuild: %s\nCommit: %s\nStatus: OK",
			common.GetVersion(), common.GetBuild(), common.GetGitCommit())
		return textResult(result), nil
	}
}
