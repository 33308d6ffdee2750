package congress

import (
	"context"
	"strings"
)

// ResourceService executes list, detail, and subresource lookups for a
// single resource definition.
type ResourceService struct {
	client     *Client
	definition ResourceDefinition
}

// NewResourceService creates a service bound to one resource definition.
func NewResourceService(client *Client, definition ResourceDefinition) *ResourceService {
	return &ResourceService{
		client:     client,
		definition: definition,
	}
}

// Definition returns the resource definition the service is bound to.
func (s *ResourceService) Definition() ResourceDefinition {
	return s.definition
}

// ListResources fetches the resource collection with optional query
// parameters.
func (s *ResourceService) ListResources(ctx context.Context, params map[string]interface{}) (map[string]interface{}, error) {
	return s.client.Get(ctx, s.definition.Path, sanitizeParams(params))
}

// GetResource fetches a single record addressed by ordered path
// segments.
func (s *ResourceService) GetResource(ctx context.Context, pathSegments []interface{}, params map[string]interface{}) (map[string]interface{}, error) {
	if len(pathSegments) == 0 {
		return nil, NewValidationError("pathSegments must not be empty")
	}
	return s.client.Get(ctx, s.buildEndpoint(pathSegments, ""), sanitizeParams(params))
}

// GetSubresource fetches a nested collection beneath a record, such as
// actions or text versions. The subresource may contain slashes to
// address multi-segment suffixes like "text/rs". Path segments may be
// empty for subresources that hang directly off the base path.
func (s *ResourceService) GetSubresource(ctx context.Context, pathSegments []interface{}, subresource string, params map[string]interface{}) (map[string]interface{}, error) {
	if strings.TrimSpace(subresource) == "" {
		return nil, NewValidationError("subresource must be a non-empty string")
	}
	return s.client.Get(ctx, s.buildEndpoint(pathSegments, subresource), sanitizeParams(params))
}

func (s *ResourceService) buildEndpoint(pathSegments []interface{}, subresource string) string {
	segments := append([]string{s.definition.Path}, normalizeSegments(pathSegments)...)
	if subresource != "" {
		for _, part := range strings.Split(subresource, "/") {
			if part != "" {
				segments = append(segments, part)
			}
		}
	}
	return strings.Join(segments, "/")
}

// normalizeSegments stringifies each segment, strips surrounding
// slashes, and drops nil or empty entries. Normalizing an already
// normalized list yields the same list.
func normalizeSegments(pathSegments []interface{}) []string {
	segments := make([]string, 0, len(pathSegments))
	for _, segment := range pathSegments {
		if segment == nil {
			continue
		}
		value := strings.Trim(stringify(segment), "/")
		if value != "" {
			segments = append(segments, value)
		}
	}
	return segments
}

// sanitizeParams drops keys with nil values and returns nil when
// nothing remains so URL building adds no extra query parameters.
func sanitizeParams(params map[string]interface{}) map[string]interface{} {
	if len(params) == 0 {
		return nil
	}
	query := make(map[string]interface{}, len(params))
	for key, value := range params {
		if value != nil {
			query[key] = value
		}
	}
	if len(query) == 0 {
		return nil
	}
	return query
}

// BuildResourceServices creates one service per catalog entry, keyed by
// resource name.
func BuildResourceServices(client *Client) map[string]*ResourceService {
	services := make(map[string]*ResourceService, len(ResourceDefinitions))
	for _, definition := range ResourceDefinitions {
		services[definition.Name] = NewResourceService(client, definition)
	}
	return services
}
