package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"frontdesk-backend/internal/metrics"
)

// Read actions accepted by the sheet API's action query parameter.
const (
	ActionGetSummary       = "getSummary"
	ActionGetDetails       = "getDetails"
	ActionGetEnquiries     = "getEnquiries"
	ActionGetFilterDetails = "getFilterDetails"
	ActionGetHOSSBookings  = "getHOSSBookings"
	ActionGetCalendar      = "getCalendar"
)

// Write actions sent in POST bodies.
const (
	ActionSubmitBooking = "submitBooking"
	ActionRefreshData   = "refreshData"
)

// Queries are retried this many times after the first failure.
const readRetries = 2

// envelope is the sheet API response shape. A non-empty Error field is an
// error even on HTTP 200.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error,omitempty"`
}

// Client talks to the remote spreadsheet-backed API. The service keeps no
// data of its own; everything is read from and written through this client.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a sheet API client for the given endpoint.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Get performs a read action and decodes the data payload into out.
// Failed queries are retried twice with a short backoff before giving up.
func (c *Client) Get(ctx context.Context, action string, out interface{}) error {
	var lastErr error
	for attempt := 0; attempt <= readRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(attempt) * 500 * time.Millisecond):
			}
			log.Printf("[Sheets] Retrying %s (attempt %d/%d)", action, attempt+1, readRetries+1)
		}
		lastErr = c.get(ctx, action, out)
		if lastErr == nil {
			metrics.SheetRequestsTotal.WithLabelValues(action, "ok").Inc()
			return nil
		}
	}
	metrics.SheetRequestsTotal.WithLabelValues(action, "error").Inc()
	return FriendlyError(lastErr)
}

func (c *Client) get(ctx context.Context, action string, out interface{}) error {
	u := fmt.Sprintf("%s?action=%s", c.baseURL, url.QueryEscape(action))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req, out)
}

// Post performs a write action. The payload is merged with the action field
// into the request body. Writes are not retried; the caller decides.
func (c *Client) Post(ctx context.Context, action string, payload map[string]interface{}, out interface{}) error {
	body := make(map[string]interface{}, len(payload)+1)
	for k, v := range payload {
		body[k] = v
	}
	body["action"] = action

	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode %s payload: %w", action, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if err := c.do(req, out); err != nil {
		metrics.SheetRequestsTotal.WithLabelValues(action, "error").Inc()
		return FriendlyError(err)
	}
	metrics.SheetRequestsTotal.WithLabelValues(action, "ok").Inc()
	return nil
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sheet API unreachable: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read sheet API response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sheet API returned status %d: %s", resp.StatusCode, truncate(string(raw), 200))
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("invalid sheet API response: %w", err)
	}
	if env.Error != "" {
		return fmt.Errorf("sheet API error: %s", env.Error)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode %s data: %w", req.URL.Query().Get("action"), err)
		}
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
