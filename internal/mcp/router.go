package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bobmcallan/congress-mcp/internal/common"
	"github.com/bobmcallan/congress-mcp/internal/congress"
)

// action identifies which service operation a generated tool routes to.
type action string

const (
	actionList        action = "list"
	actionDetail      action = "detail"
	actionSubresource action = "subresource"
)

// toolRegistration binds a generated tool name to its resource and action.
type toolRegistration struct {
	resource string
	action   action
}

// Router maps generated tool names onto resource service operations. The
// routing table is built once at startup from the resource definition
// table; no per-call reflection or name parsing is involved.
type Router struct {
	services      map[string]*congress.ResourceService
	registrations map[string]toolRegistration
	logger        *common.Logger
}

// NewRouter builds a router covering every resource definition. Each
// definition contributes three registrations: list_<prefix>,
// get_<prefix>, and get_<prefix>_subresource.
func NewRouter(client *congress.Client, logger *common.Logger) *Router {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	r := &Router{
		services:      congress.BuildResourceServices(client),
		registrations: make(map[string]toolRegistration, 3*len(congress.ResourceDefinitions)),
		logger:        logger,
	}
	for _, definition := range congress.ResourceDefinitions {
		r.registrations["list_"+definition.ToolPrefix] = toolRegistration{resource: definition.Name, action: actionList}
		r.registrations["get_"+definition.ToolPrefix] = toolRegistration{resource: definition.Name, action: actionDetail}
		r.registrations["get_"+definition.ToolPrefix+"_subresource"] = toolRegistration{resource: definition.Name, action: actionSubresource}
	}
	return r
}

// Dispatch resolves a tool name and invokes the mapped service operation.
// Every failure comes back as a *congress.Error so the handler layer can
// render the structured error payload without inspecting error types.
func (r *Router) Dispatch(ctx context.Context, toolName string, args map[string]interface{}) (map[string]interface{}, error) {
	registration, ok := r.registrations[toolName]
	if !ok {
		return nil, congress.NewUnknownToolError(toolName)
	}

	service, ok := r.services[registration.resource]
	if !ok {
		return nil, congress.NewInternalError(fmt.Sprintf("no service registered for resource %s", registration.resource), nil)
	}

	logger := r.logger.WithCorrelationId(uuid.NewString())
	start := time.Now()
	logger.Debug().
		Str("tool", toolName).
		Str("resource", registration.resource).
		Str("action", string(registration.action)).
		Msg("dispatching tool call")

	result, err := r.invoke(ctx, service, registration.action, args)
	if err != nil {
		logger.Debug().
			Str("tool", toolName).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Str("error", err.Error()).
			Msg("tool call failed")
		return nil, err
	}

	logger.Debug().
		Str("tool", toolName).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("tool call completed")
	return result, nil
}

func (r *Router) invoke(ctx context.Context, service *congress.ResourceService, act action, args map[string]interface{}) (map[string]interface{}, error) {
	params, err := extractParams(args)
	if err != nil {
		return nil, err
	}

	switch act {
	case actionList:
		return service.ListResources(ctx, params)
	case actionDetail:
		segments, err := extractSegments(args, true)
		if err != nil {
			return nil, err
		}
		return service.GetResource(ctx, segments, params)
	case actionSubresource:
		segments, err := extractSegments(args, false)
		if err != nil {
			return nil, err
		}
		subresource, err := extractSubresource(args)
		if err != nil {
			return nil, err
		}
		return service.GetSubresource(ctx, segments, subresource, params)
	default:
		return nil, congress.NewUnsupportedActionError(string(act))
	}
}

// extractParams returns the optional query parameter object. An absent or
// nil params argument means no extra query string; any other non-object
// shape is rejected.
func extractParams(args map[string]interface{}) (map[string]interface{}, error) {
	raw, ok := args["params"]
	if !ok || raw == nil {
		return nil, nil
	}
	params, ok := raw.(map[string]interface{})
	if !ok {
		return nil, congress.NewValidationError("params must be an object of query parameters, got %T", raw)
	}
	return params, nil
}

// extractSegments returns pathSegments as the raw atom list. Detail
// lookups require at least one segment; subresource lookups may omit the
// argument entirely.
func extractSegments(args map[string]interface{}, required bool) ([]interface{}, error) {
	raw, ok := args["pathSegments"]
	if !ok || raw == nil {
		if required {
			return nil, congress.NewValidationError("pathSegments must be a non-empty list of path segments")
		}
		return nil, nil
	}
	segments, ok := raw.([]interface{})
	if !ok {
		return nil, congress.NewValidationError("pathSegments must be a list of path segments, got %T", raw)
	}
	if required && len(segments) == 0 {
		return nil, congress.NewValidationError("pathSegments must not be empty")
	}
	return segments, nil
}

func extractSubresource(args map[string]interface{}) (string, error) {
	raw, ok := args["subresource"]
	if !ok || raw == nil {
		return "", congress.NewValidationError("subresource is required")
	}
	subresource, ok := raw.(string)
	if !ok {
		return "", congress.NewValidationError("subresource must be a string, got %T", raw)
	}
	if strings.TrimSpace(subresource) == "" {
		return "", congress.NewValidationError("subresource must be a non-empty string")
	}
	return subresource, nil
}
