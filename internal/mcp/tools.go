package mcp

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/congress-mcp/internal/congress"
)

// RegisterResourceTools registers the three generated tools for every
// entry in the resource definition table and returns the count.
func RegisterResourceTools(s *server.MCPServer, router *Router) int {
	count := 0
	for _, definition := range congress.ResourceDefinitions {
		for _, tool := range buildResourceTools(definition) {
			s.AddTool(tool, resourceToolHandler(router, tool.Name))
			count++
		}
	}
	return count
}

// RegisterAmendmentTools registers the fixed amendment tool set and
// returns the count.
func RegisterAmendmentTools(s *server.MCPServer, service *congress.AmendmentService) int {
	registrations := []struct {
		tool    mcp.Tool
		handler server.ToolHandlerFunc
	}{
		{createListAmendmentsTool(), handleListAmendments(service)},
		{createGetAmendmentTool(), handleGetAmendment(service)},
		{createGetAmendmentActionsTool(), handleGetAmendmentActions(service)},
		{createGetAmendmentCosponsorsTool(), handleGetAmendmentCosponsors(service)},
		{createGetAmendmentTextTool(), handleGetAmendmentText(service)},
		{createGetAmendmentsToAmendmentTool(), handleGetAmendmentsToAmendment(service)},
		{createSearchAmendmentsTool(), handleSearchAmendments(service)},
		{createGetAmendmentsBySponsorTool(), handleGetAmendmentsBySponsor(service)},
		{createGetRecentAmendmentsTool(), handleGetRecentAmendments(service)},
	}
	for _, registration := range registrations {
		s.AddTool(registration.tool, registration.handler)
	}
	return len(registrations)
}

// RegisterUtilityTools registers the server status tools and returns the
// count.
func RegisterUtilityTools(s *server.MCPServer, client *congress.Client) int {
	registrations := []struct {
		tool    mcp.Tool
		handler server.ToolHandlerFunc
	}{
		{createGetRateLimitStatusTool(), handleGetRateLimitStatus(client)},
		{createResetRateLimitTool(), handleResetRateLimit(client)},
		{createGetVersionTool(), handleGetVersion()},
	}
	for _, registration := range registrations {
		s.AddTool(registration.tool, registration.handler)
	}
	return len(registrations)
}

// --- Generated resource tools ---

// buildResourceTools derives the list/detail/subresource tools for one
// resource definition. Names, descriptions, and hints all come from the
// definition so the table stays the single source of truth.
func buildResourceTools(definition congress.ResourceDefinition) []mcp.Tool {
	description := definition.BuildDescription()
	segmentsHint := fmt.Sprintf("Path segments identifying the resource, matching the endpoint layout (e.g., the segments of `%s`). Numbers and strings are both accepted.", definition.SamplePath)

	return []mcp.Tool{
		mcp.NewTool("list_"+definition.ToolPrefix,
			mcp.WithDescription(description),
			paramsOption(),
		),
		mcp.NewTool("get_"+definition.ToolPrefix,
			mcp.WithDescription(description),
			mcp.WithArray("pathSegments", mcp.Required(), mcp.Description(segmentsHint)),
			paramsOption(),
		),
		mcp.NewTool("get_"+definition.ToolPrefix+"_subresource",
			mcp.WithDescription(description),
			mcp.WithString("subresource", mcp.Required(), mcp.Description("Subresource path appended after the path segments, such as 'actions', 'cosponsors', or 'text'. Slashes are allowed for nested paths.")),
			mcp.WithArray("pathSegments", mcp.Description(segmentsHint+" May be omitted for collection-level subresources.")),
			paramsOption(),
		),
	}
}

// paramsOption declares the free-form query parameter object shared by
// every generated tool.
func paramsOption() mcp.ToolOption {
	return mcp.WithObject("params",
		mcp.Description("Optional query parameters forwarded to the endpoint, such as limit, offset, or fromDateTime."),
	)
}

// --- Amendment tools ---

func createListAmendmentsTool() mcp.Tool {
	return mcp.NewTool("list_amendments",
		mcp.WithDescription("List amendments with optional filtering by congress and type"),
		mcp.WithNumber("congress", mcp.Description("Congress number (e.g., 117)")),
		mcp.WithString("amendment_type", mcp.Description("Amendment type: HAMDT (House), SAMDT (Senate), SUAMDT (Senate - old)")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of results (1-250, default: 20)")),
		mcp.WithNumber("offset", mcp.Description("Number of results to skip (default: 0)")),
	)
}

func createGetAmendmentTool() mcp.Tool {
	return mcp.NewTool("get_amendment",
		mcp.WithDescription("Get detailed information about a specific amendment"),
		mcp.WithNumber("congress", mcp.Required(), mcp.Description("Congress number (e.g., 117)")),
		mcp.WithString("amendment_type", mcp.Required(), mcp.Description("Amendment type: HAMDT (House), SAMDT (Senate), SUAMDT (Senate - old)")),
		mcp.WithNumber("amendment_number", mcp.Required(), mcp.Description("Amendment number (e.g., 2137)")),
	)
}

func createGetAmendmentActionsTool() mcp.Tool {
	return mcp.NewTool("get_amendment_actions",
		mcp.WithDescription("Get all actions taken on a specific amendment"),
		mcp.WithNumber("congress", mcp.Required(), mcp.Description("Congress number (e.g., 117)")),
		mcp.WithString("amendment_type", mcp.Required(), mcp.Description("Amendment type: HAMDT (House), SAMDT (Senate), SUAMDT (Senate - old)")),
		mcp.WithNumber("amendment_number", mcp.Required(), mcp.Description("Amendment number")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of results (1-250, default: 20)")),
		mcp.WithNumber("offset", mcp.Description("Number of results to skip (default: 0)")),
	)
}

func createGetAmendmentCosponsorsTool() mcp.Tool {
	return mcp.NewTool("get_amendment_cosponsors",
		mcp.WithDescription("Get cosponsors of a specific amendment"),
		mcp.WithNumber("congress", mcp.Required(), mcp.Description("Congress number")),
		mcp.WithString("amendment_type", mcp.Required(), mcp.Description("Amendment type: HAMDT (House), SAMDT (Senate), SUAMDT (Senate - old)")),
		mcp.WithNumber("amendment_number", mcp.Required(), mcp.Description("Amendment number")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of results (1-250, default: 20)")),
		mcp.WithNumber("offset", mcp.Description("Number of results to skip (default: 0)")),
	)
}

func createGetAmendmentTextTool() mcp.Tool {
	return mcp.NewTool("get_amendment_text",
		mcp.WithDescription("Get text versions of a specific amendment"),
		mcp.WithNumber("congress", mcp.Required(), mcp.Description("Congress number")),
		mcp.WithString("amendment_type", mcp.Required(), mcp.Description("Amendment type: HAMDT (House), SAMDT (Senate), SUAMDT (Senate - old)")),
		mcp.WithNumber("amendment_number", mcp.Required(), mcp.Description("Amendment number")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of results (1-250, default: 20)")),
		mcp.WithNumber("offset", mcp.Description("Number of results to skip (default: 0)")),
	)
}

func createGetAmendmentsToAmendmentTool() mcp.Tool {
	return mcp.NewTool("get_amendments_to_amendment",
		mcp.WithDescription("Get amendments that amend a specific amendment"),
		mcp.WithNumber("congress", mcp.Required(), mcp.Description("Congress number")),
		mcp.WithString("amendment_type", mcp.Required(), mcp.Description("Amendment type: HAMDT (House), SAMDT (Senate), SUAMDT (Senate - old)")),
		mcp.WithNumber("amendment_number", mcp.Required(), mcp.Description("Amendment number")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of results (1-250, default: 20)")),
		mcp.WithNumber("offset", mcp.Description("Number of results to skip (default: 0)")),
	)
}

func createSearchAmendmentsTool() mcp.Tool {
	return mcp.NewTool("search_amendments",
		mcp.WithDescription("Search amendments by text content in description or purpose"),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query string")),
		mcp.WithNumber("congress", mcp.Description("Congress number to filter by")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of results (1-250, default: 20)")),
	)
}

func createGetAmendmentsBySponsorTool() mcp.Tool {
	return mcp.NewTool("get_amendments_by_sponsor",
		mcp.WithDescription("Get amendments sponsored by a specific member"),
		mcp.WithString("bioguide_id", mcp.Required(), mcp.Description("Bioguide ID of the sponsor (e.g., S001191)")),
		mcp.WithNumber("congress", mcp.Description("Congress number to filter by")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of results (1-250, default: 20)")),
	)
}

func createGetRecentAmendmentsTool() mcp.Tool {
	return mcp.NewTool("get_recent_amendments",
		mcp.WithDescription("Get recently active amendments"),
		mcp.WithNumber("congress", mcp.Description("Congress number to filter by")),
		mcp.WithNumber("days_back", mcp.Description("Number of days to look back (1-365, default: 30)")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of results (1-250, default: 20)")),
	)
}

// --- Utility tools ---

func createGetRateLimitStatusTool() mcp.Tool {
	return mcp.NewTool("get_rate_limit_status",
		mcp.WithDescription("Get the Congress.gov API quota usage for the current rolling hour, including requests made and requests remaining."),
	)
}

func createResetRateLimitTool() mcp.Tool {
	return mcp.NewTool("reset_rate_limit",
		mcp.WithDescription("Reset the local rate limit window. Use this after the Congress.gov quota refreshes."),
	)
}

func createGetVersionTool() mcp.Tool {
	return mcp.NewTool("get_version",
		mcp.WithDescription("Get the Congress MCP server version and status. Use this to verify connectivity."),
	)
}
