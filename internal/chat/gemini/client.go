package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout bounds the generateContent round trip.
const DefaultTimeout = 60 * time.Second

// StatusError captures a non-2xx response from Gemini. Detail carries the
// upstream error message when the body was parseable JSON, otherwise the raw
// body text.
type StatusError struct {
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gemini: upstream status %d: %s", e.StatusCode, e.Detail)
}

// Client calls the Gemini generateContent endpoint for a single model.
type Client struct {
	baseURL string
	model   string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, model, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: DefaultTimeout},
	}
}

// Configured reports whether an API key is present. Callers must check this
// before GenerateContent; an unconfigured client never reaches the network.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

func (c *Client) generateURL() string {
	return c.baseURL + "/models/" + c.model + ":generateContent?key=" + url.QueryEscape(c.apiKey)
}

// GenerateContent sends the user message as the sole content part and returns
// the raw envelope body. A non-2xx status yields a *StatusError; transport
// failures come back as wrapped errors.
func (c *Client) GenerateContent(ctx context.Context, message string) ([]byte, error) {
	body, err := json.Marshal(generateContentRequest{
		Contents: []Content{{Parts: []Part{{Text: message}}}},
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.generateURL(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("gemini: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("gemini: read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Detail:     upstreamErrorDetail(resp.StatusCode, raw),
		}
	}

	return raw, nil
}

// upstreamErrorDetail extracts error.message from a Gemini error body, falling
// back to the raw body text when it is not JSON.
func upstreamErrorDetail(status int, raw []byte) string {
	detail := fmt.Sprintf("HTTP error %d from Gemini", status)
	var env errorEnvelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Error.Message != "" {
		return detail + " - " + env.Error.Message
	}
	return detail + " - " + string(raw)
}
