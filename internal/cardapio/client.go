// Package cardapio is the typed client of the external menu API.
package cardapio

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

	"cardapio-admin-svc/internal/config"
	"cardapio-admin-svc/pkg/logger"
)

// Client talks to the menu API. It never retries.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *logger.Logger
}

// NewClient creates a client from the upstream configuration
func NewClient(cfg config.UpstreamConfig, logger *logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

// doJSON sends payload as JSON and decodes the answer into out (when not nil)
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal payload: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out interface{}) error {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return ctxErr
		}
		c.logger.WithError(err).WithFields(map[string]interface{}{
			"method": req.Method,
			"path":   req.URL.Path,
		}).Error("Menu API request failed")
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %v", ErrUnreachable, err)
	}

	c.logger.WithFields(map[string]interface{}{
		"method":      req.Method,
		"path":        req.URL.Path,
		"status_code": resp.StatusCode,
		"latency_ms":  time.Since(start).Milliseconds(),
	}).Debug("Menu API response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(resp.StatusCode, body)
		c.logger.WithFields(map[string]interface{}{
			"method":      req.Method,
			"path":        req.URL.Path,
			"status_code": resp.StatusCode,
			"message":     apiErr.Message,
		}).Warn("Menu API returned an error")
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := decodeBody(body, out); err != nil {
		return fmt.Errorf("failed to parse menu API response: %w", err)
	}
	return nil
}

// decodeBody accepts both bare payloads and payloads wrapped in {"data": ...}
func decodeBody(body []byte, out interface{}) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &envelope); err == nil {
			if data, ok := envelope["data"]; ok && len(data) > 0 && string(data) != "null" {
				return json.Unmarshal(data, out)
			}
		}
	}
	return json.Unmarshal(trimmed, out)
}

func idPath(base string, id uint) string {
	return fmt.Sprintf("%s/%d", base, id)
}

func requireID(id uint, what string) error {
	if id == 0 {
		return Invalid("%s id is required", what)
	}
	return nil
}
