package webhook

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrNotConfigured is returned when no webhook endpoint is set. It aborts a
// generate call before any network I/O happens.
var ErrNotConfigured = errors.New("webhook URL is not configured")

// RequestError reports a non-2xx webhook response. The body is truncated for
// display.
type RequestError struct {
	Status int
	Body   string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("webhook request failed: status %d", e.Status)
}

// Client performs the single blocking POST to the external workflow webhook.
// No retries and no cancellation: the call runs until completion, the
// configured timeout, or a network failure.
type Client struct {
	endpoint   string
	authName   string
	authValue  string
	timeout    time.Duration
	httpClient *http.Client
}

// NewClient builds a webhook client. authHeader is a single optional
// "Name: Value" string split on the first colon, matching how the header is
// supplied through configuration.
func NewClient(endpoint, authHeader string, timeout time.Duration) *Client {
	c := &Client{
		endpoint:   endpoint,
		timeout:    timeout,
		httpClient: &http.Client{Timeout: timeout},
	}
	if name, value, ok := strings.Cut(authHeader, ":"); ok {
		c.authName = strings.TrimSpace(name)
		c.authValue = strings.TrimSpace(value)
	}
	return c
}

func (c *Client) Configured() bool {
	return c.endpoint != ""
}

// Send posts the payload and returns the raw response body. Callers decode
// the body separately so a non-JSON reply can still be surfaced to the user.
func (c *Client) Send(payload *Payload) ([]byte, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, c.endpoint, bytes.NewBuffer(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.authName != "" {
		req.Header.Set(c.authName, c.authValue)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var netErr interface{ Timeout() bool }
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil, fmt.Errorf("webhook request timed out after %s: %w", c.timeout, err)
		}
		return nil, fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &RequestError{Status: resp.StatusCode, Body: truncate(string(body), 1000)}
	}

	return body, nil
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
