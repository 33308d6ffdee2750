package congress

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bobmcallan/congress-mcp/internal/common"
	"github.com/bobmcallan/congress-mcp/internal/config"
)

const (
	// requestTimeout bounds every upstream call; the client never retries.
	requestTimeout = 30 * time.Second

	// maxResponseSize caps upstream response bodies (50MB).
	maxResponseSize = 50 * 1024 * 1024

	// defaultRateLimitPerHour is the Congress.gov quota for one API key.
	defaultRateLimitPerHour = 5000

	// defaultPageSize mirrors the Congress.gov default page size.
	defaultPageSize = 20

	// defaultMaxPages caps pagination fan-out per logical request.
	defaultMaxPages = 10
)

// Client issues rate-limited GET requests against the Congress.gov v3 API.
// One Client (and therefore one quota window) is shared by every service
// in the process.
type Client struct {
	baseURL    string
	apiKey     string
	format     string
	pageSize   int
	httpClient *http.Client
	limiter    *rateLimiter
	logger     *common.Logger
}

// NewClient creates a Client from resolved API settings.
func NewClient(cfg config.APIConfig, logger *common.Logger) *Client {
	format := cfg.Format
	if format == "" {
		format = "json"
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	maxPerHour := cfg.RateLimitPerHour
	if maxPerHour <= 0 {
		maxPerHour = defaultRateLimitPerHour
	}
	if logger == nil {
		logger = common.NewSilentLogger()
	}

	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:   cfg.Key,
		format:   format,
		pageSize: pageSize,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		limiter: newRateLimiter(maxPerHour),
		logger:  logger,
	}
}

// Get issues a single GET request and returns the decoded JSON body.
// Every attempt, successful or not, consumes one slot of the hourly quota.
func (c *Client) Get(ctx context.Context, endpoint string, params map[string]interface{}) (map[string]interface{}, error) {
	if err := c.limiter.reserve(); err != nil {
		return nil, err
	}

	requestURL := c.buildURL(endpoint, params)
	safeURL := c.redact(requestURL)

	c.logger.Debug().Str("url", safeURL).Msg("requesting congress.gov endpoint")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, NewRequestError(fmt.Sprintf("failed to build request for %s: %v", safeURL, err), 0, err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, NewRequestError(fmt.Sprintf("request to %s failed: %v", safeURL, err), 0, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, NewRequestError(fmt.Sprintf("failed to read response from %s: %v", safeURL, err), 0, err)
	}

	c.logger.Debug().
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("congress.gov request completed")

	if resp.StatusCode == http.StatusTooManyRequests {
		c.limiter.markLimited()
		return nil, NewRateLimitError("congress.gov rate limit reached (HTTP 429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := fmt.Sprintf("request to %s returned status %d", safeURL, resp.StatusCode)
		if apiMessage := parseAPIError(body); apiMessage != "" {
			message = fmt.Sprintf("%s: %s", message, apiMessage)
		}
		return nil, NewRequestError(message, resp.StatusCode, nil)
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, NewRequestError(fmt.Sprintf("invalid JSON from %s: %v", safeURL, err), 0, err)
	}

	return payload, nil
}

// GetPaginated aggregates the list items of an endpoint across pages,
// advancing offset from 0 by the effective limit until the reported count
// is reached or maxPages pages have been fetched. Responses that carry no
// list under the endpoint's data key are returned verbatim.
func (c *Client) GetPaginated(ctx context.Context, endpoint string, params map[string]interface{}, maxPages int) (map[string]interface{}, error) {
	if maxPages <= 0 {
		maxPages = defaultMaxPages
	}

	limit := intValue(paramValue(params, "limit"))
	if limit <= 0 {
		limit = c.pageSize
	}

	dataKey := dataKeyForEndpoint(endpoint)
	allResults := make([]interface{}, 0, limit)
	offset := 0

	for {
		pageParams := make(map[string]interface{}, len(params)+2)
		for key, value := range params {
			pageParams[key] = value
		}
		pageParams["offset"] = offset
		pageParams["limit"] = limit

		response, err := c.Get(ctx, endpoint, pageParams)
		if err != nil {
			return nil, err
		}

		pageData, ok := response[dataKey].([]interface{})
		if !ok {
			// Single-item response, nothing to aggregate.
			return response, nil
		}
		allResults = append(allResults, pageData...)

		pagination, ok := response["pagination"].(map[string]interface{})
		if !ok {
			break
		}
		if offset+limit >= intValue(pagination["count"]) {
			break
		}
		if len(allResults)/limit >= maxPages {
			break
		}

		offset += limit
	}

	return map[string]interface{}{dataKey: allResults}, nil
}

// RateLimitStatus reports the current hourly budget usage.
func (c *Client) RateLimitStatus() RateLimitStatus {
	return c.limiter.status()
}

// ResetRateLimit clears the rate-limit window. Intended for tests and
// manual operator resets.
func (c *Client) ResetRateLimit() {
	c.limiter.reset()
}

// buildURL joins the base URL with an endpoint and encodes the query,
// always injecting the credential and response format. Caller-supplied
// api_key/format values are overridden and nil-valued keys are dropped.
func (c *Client) buildURL(endpoint string, params map[string]interface{}) string {
	values := url.Values{}
	for key, value := range params {
		if value == nil {
			continue
		}
		values.Set(key, stringify(value))
	}
	values.Set("api_key", c.apiKey)
	values.Set("format", c.format)

	return c.baseURL + "/" + strings.TrimLeft(endpoint, "/") + "?" + values.Encode()
}

// redact strips the API key from a URL so it can be logged or embedded in
// error messages.
func (c *Client) redact(rawURL string) string {
	if c.apiKey == "" {
		return rawURL
	}
	return strings.ReplaceAll(rawURL, url.QueryEscape(c.apiKey), "***")
}

// parseAPIError extracts a human-readable message from a Congress.gov
// error body, which may arrive as {"error": {"message": ...}},
// {"error": "..."}, or {"message": "..."}.
func parseAPIError(body []byte) string {
	var envelope struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	if len(envelope.Error) > 0 {
		var text string
		if json.Unmarshal(envelope.Error, &text) == nil && text != "" {
			return text
		}
		var nested struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(envelope.Error, &nested) == nil && nested.Message != "" {
			return nested.Message
		}
	}
	return envelope.Message
}

// dataKeyForEndpoint resolves the response key holding an endpoint's list
// items. Congress.gov names the array after the resource family.
func dataKeyForEndpoint(endpoint string) string {
	switch {
	case strings.Contains(endpoint, "amendment"):
		return "amendments"
	case strings.Contains(endpoint, "bill"):
		return "bills"
	case strings.Contains(endpoint, "member"):
		return "members"
	default:
		return "results"
	}
}

// stringify renders a parameter or path segment value, avoiding float
// artifacts for integral numbers (JSON decoding yields float64 for every
// numeric argument).
func stringify(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		if v == math.Trunc(v) && !math.IsInf(v, 0) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// paramValue reads a key from a possibly-nil params map.
func paramValue(params map[string]interface{}, key string) interface{} {
	if params == nil {
		return nil
	}
	return params[key]
}

// intValue coerces a JSON-decoded numeric value to int, returning 0 for
// anything non-numeric.
func intValue(value interface{}) int {
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case json.Number:
		n, _ := v.Int64()
		return int(n)
	default:
		return 0
	}
}
