package congress

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/bobmcallan/congress-mcp/internal/common"
)

const (
	// searchPageSize is the page size used when a search or sponsor
	// filter needs a wide candidate pool.
	searchPageSize = 250

	// recentPageSize is the page size used when filtering by recent
	// activity.
	recentPageSize = 100

	// defaultDaysBack is the default recency window in days.
	defaultDaysBack = 30
)

// AmendmentService provides typed operations over the /v3/amendment
// endpoints. Search, sponsor, and recency operations filter a single
// fetched page client side because the upstream API offers no
// server-side equivalent.
type AmendmentService struct {
	client *Client
	logger *common.Logger
}

// NewAmendmentService creates an amendment service backed by the given
// client.
func NewAmendmentService(client *Client, logger *common.Logger) *AmendmentService {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &AmendmentService{
		client: client,
		logger: logger,
	}
}

// ListAmendments lists amendments, optionally scoped to a congress and
// amendment type. A zero congress, empty type, or zero limit/offset is
// omitted from the request.
func (s *AmendmentService) ListAmendments(ctx context.Context, congress int, amendmentType string, limit, offset int) (*AmendmentsResponse, error) {
	endpoint := "amendment"
	if congress > 0 {
		endpoint = fmt.Sprintf("amendment/%d", congress)
		if amendmentType != "" {
			endpoint = fmt.Sprintf("amendment/%d/%s", congress, amendmentType)
		}
	}

	data, err := s.client.Get(ctx, endpoint, pageParams(limit, offset))
	if err != nil {
		return nil, err
	}

	var response AmendmentsResponse
	if err := decodeResponse(data, &response, "amendments"); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetAmendment fetches the detail record for one amendment.
func (s *AmendmentService) GetAmendment(ctx context.Context, congress int, amendmentType string, amendmentNumber int) (*AmendmentResponse, error) {
	endpoint := fmt.Sprintf("amendment/%d/%s/%d", congress, amendmentType, amendmentNumber)

	data, err := s.client.Get(ctx, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var response AmendmentResponse
	if err := decodeResponse(data, &response, "amendment"); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetAmendmentActions fetches the actions taken on an amendment.
func (s *AmendmentService) GetAmendmentActions(ctx context.Context, congress int, amendmentType string, amendmentNumber, limit, offset int) (*ActionsResponse, error) {
	endpoint := fmt.Sprintf("amendment/%d/%s/%d/actions", congress, amendmentType, amendmentNumber)

	data, err := s.client.Get(ctx, endpoint, pageParams(limit, offset))
	if err != nil {
		return nil, err
	}

	var response ActionsResponse
	if err := decodeResponse(data, &response, "actions"); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetAmendmentCosponsors fetches the cosponsors of an amendment.
func (s *AmendmentService) GetAmendmentCosponsors(ctx context.Context, congress int, amendmentType string, amendmentNumber, limit, offset int) (*CosponsorsResponse, error) {
	endpoint := fmt.Sprintf("amendment/%d/%s/%d/cosponsors", congress, amendmentType, amendmentNumber)

	data, err := s.client.Get(ctx, endpoint, pageParams(limit, offset))
	if err != nil {
		return nil, err
	}

	var response CosponsorsResponse
	if err := decodeResponse(data, &response, "cosponsors"); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetAmendmentText fetches the text versions of an amendment.
func (s *AmendmentService) GetAmendmentText(ctx context.Context, congress int, amendmentType string, amendmentNumber, limit, offset int) (*TextVersionsResponse, error) {
	endpoint := fmt.Sprintf("amendment/%d/%s/%d/text", congress, amendmentType, amendmentNumber)

	data, err := s.client.Get(ctx, endpoint, pageParams(limit, offset))
	if err != nil {
		return nil, err
	}

	var response TextVersionsResponse
	if err := decodeResponse(data, &response, "text versions"); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetAmendmentsToAmendment fetches the amendments filed against an
// amendment.
func (s *AmendmentService) GetAmendmentsToAmendment(ctx context.Context, congress int, amendmentType string, amendmentNumber, limit, offset int) (*AmendmentsToAmendmentResponse, error) {
	endpoint := fmt.Sprintf("amendment/%d/%s/%d/amendments", congress, amendmentType, amendmentNumber)

	data, err := s.client.Get(ctx, endpoint, pageParams(limit, offset))
	if err != nil {
		return nil, err
	}

	var response AmendmentsToAmendmentResponse
	if err := decodeResponse(data, &response, "amendments to amendment"); err != nil {
		return nil, err
	}
	return &response, nil
}

// SearchAmendmentsByText filters amendments whose description or
// purpose contains the query, case insensitive. The match runs over a
// single fetched page.
func (s *AmendmentService) SearchAmendmentsByText(ctx context.Context, query string, congress, limit int) (*AmendmentsResponse, error) {
	fetchLimit := limit
	if fetchLimit <= 0 {
		fetchLimit = searchPageSize
	}

	response, err := s.ListAmendments(ctx, congress, "", fetchLimit, 0)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	matches := make([]Amendment, 0)
	for _, amendment := range response.Amendments {
		switch {
		case amendment.Description != nil && *amendment.Description != "" && strings.Contains(strings.ToLower(*amendment.Description), needle):
			matches = append(matches, amendment)
		case amendment.Purpose != nil && *amendment.Purpose != "" && strings.Contains(strings.ToLower(*amendment.Purpose), needle):
			matches = append(matches, amendment)
		}
	}
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	s.logger.Debug().
		Str("query", query).
		Int("matches", len(matches)).
		Msg("amendment text search completed")

	return &AmendmentsResponse{
		Amendments: matches,
		Pagination: response.Pagination,
		Request:    response.Request,
	}, nil
}

// GetAmendmentsBySponsor filters amendments sponsored by the member
// with the given bioguide ID. The match runs over a single fetched
// page.
func (s *AmendmentService) GetAmendmentsBySponsor(ctx context.Context, bioguideID string, congress, limit int) (*AmendmentsResponse, error) {
	fetchLimit := limit
	if fetchLimit <= 0 {
		fetchLimit = searchPageSize
	}

	response, err := s.ListAmendments(ctx, congress, "", fetchLimit, 0)
	if err != nil {
		return nil, err
	}

	matches := make([]Amendment, 0)
	for _, amendment := range response.Amendments {
		for _, sponsor := range amendment.Sponsors {
			if sponsor.BioguideID == bioguideID {
				matches = append(matches, amendment)
				break
			}
		}
	}
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	s.logger.Debug().
		Str("bioguide_id", bioguideID).
		Int("matches", len(matches)).
		Msg("amendment sponsor filter completed")

	return &AmendmentsResponse{
		Amendments: matches,
		Pagination: response.Pagination,
		Request:    response.Request,
	}, nil
}

// GetRecentAmendments filters amendments whose latest action falls
// within the last daysBack days. Amendments without a parseable action
// date are skipped.
func (s *AmendmentService) GetRecentAmendments(ctx context.Context, congress, daysBack, limit int) (*AmendmentsResponse, error) {
	if daysBack <= 0 {
		daysBack = defaultDaysBack
	}
	fetchLimit := limit
	if fetchLimit <= 0 {
		fetchLimit = recentPageSize
	}

	response, err := s.ListAmendments(ctx, congress, "", fetchLimit, 0)
	if err != nil {
		return nil, err
	}

	cutoff := time.Now().AddDate(0, 0, -daysBack)
	matches := make([]Amendment, 0)
	for _, amendment := range response.Amendments {
		if amendment.LatestAction == nil || amendment.LatestAction.ActionDate == "" {
			continue
		}
		actionDate, err := time.Parse("2006-01-02", amendment.LatestAction.ActionDate)
		if err != nil {
			continue
		}
		if !actionDate.Before(cutoff) {
			matches = append(matches, amendment)
		}
	}
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	s.logger.Debug().
		Int("days_back", daysBack).
		Int("matches", len(matches)).
		Msg("recent amendment filter completed")

	return &AmendmentsResponse{
		Amendments: matches,
		Pagination: response.Pagination,
		Request:    response.Request,
	}, nil
}

// pageParams builds the limit/offset query map, omitting zero values.
func pageParams(limit, offset int) map[string]interface{} {
	params := map[string]interface{}{}
	if limit > 0 {
		params["limit"] = limit
	}
	if offset > 0 {
		params["offset"] = offset
	}
	if len(params) == 0 {
		return nil
	}
	return params
}

// decodeResponse re-marshals a generic JSON object into a typed
// response shape.
func decodeResponse(data map[string]interface{}, out interface{}, shape string) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return NewParseError(fmt.Sprintf("failed to parse %s response: %v", shape, err), err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return NewParseError(fmt.Sprintf("failed to parse %s response: %v", shape, err), err)
	}
	return nil
}
