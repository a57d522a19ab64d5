// internal/client/client.go
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"medadmin/internal/auth"
	"medadmin/internal/model"
)

// Client is the single JSON entry point to the admin backend. All resource
// services funnel through Do; multipart uploads go through DoMultipart, which
// is also where the 401-clears-token policy lives.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     auth.TokenStore
	logger     *slog.Logger
}

// New builds a client. timeout of 0 means no client-side timeout, matching
// the original console's behaviour of letting a hung backend hang the call.
func New(baseURL string, tokens auth.TokenStore, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		logger:     logger,
	}
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil)
}

// GetRaw fetches a list endpoint as raw JSON for model.UnwrapList; the shape
// of list responses varies per endpoint so decoding is deferred.
func (c *Client) GetRaw(ctx context.Context, path string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.Do(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Do performs one JSON request. body is marshaled when non-nil; out is
// decoded into when the response carries a body. An empty body (204 or
// Content-Length: 0) and an unparsable success body both resolve without
// error, leaving out zero-valued: absence of content is not a failure.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := parseAPIError(resp.StatusCode, payload)
		c.logger.Debug("request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.String("message", apiErr.Message),
		)
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent || len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		c.logger.Debug("ignoring unparsable success body",
			slog.String("path", path), slog.Any("error", err))
	}
	return nil
}

// parseAPIError extracts a best-effort message from a JSON error body:
// "detail", then "error", then the stringified body, then the status line.
func parseAPIError(status int, payload []byte) *model.APIError {
	var body map[string]any
	if err := json.Unmarshal(payload, &body); err == nil {
		if detail, ok := body["detail"].(string); ok && detail != "" {
			return model.NewAPIError(status, detail)
		}
		if msg, ok := body["error"].(string); ok && msg != "" {
			return model.NewAPIError(status, msg)
		}
	}
	if trimmed := strings.TrimSpace(string(payload)); trimmed != "" {
		return model.NewAPIError(status, trimmed)
	}
	return model.NewAPIError(status, "")
}
