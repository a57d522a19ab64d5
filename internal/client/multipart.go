// internal/client/multipart.go
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
)

// FilePart is the binary part of a multipart request.
type FilePart struct {
	FieldName string
	FileName  string
	Reader    io.Reader
}

// Fields stringifies a payload for multipart submission. Every non-empty,
// non-nil value is kept; empty strings and nil pointers are dropped so the
// backend's partial-update semantics are preserved.
func Fields(payload map[string]any) map[string]string {
	fields := make(map[string]string, len(payload))
	for key, value := range payload {
		switch v := value.(type) {
		case nil:
			continue
		case string:
			if v != "" {
				fields[key] = v
			}
		case bool:
			fields[key] = strconv.FormatBool(v)
		case int:
			fields[key] = strconv.Itoa(v)
		case int64:
			fields[key] = strconv.FormatInt(v, 10)
		case *int:
			if v != nil {
				fields[key] = strconv.Itoa(*v)
			}
		case *int64:
			if v != nil {
				fields[key] = strconv.FormatInt(*v, 10)
			}
		default:
			fields[key] = fmt.Sprintf("%v", v)
		}
	}
	return fields
}

// DoMultipart submits a multipart/form-data request, bypassing the JSON body
// path. On 401 the stored token is cleared before the error is returned;
// this is the one place the auth-expiry policy is applied.
func (c *Client) DoMultipart(ctx context.Context, method, path string, fields map[string]string, file *FilePart, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return fmt.Errorf("writing field %s: %w", key, err)
		}
	}
	if file != nil {
		part, err := writer.CreateFormFile(file.FieldName, file.FileName)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, file.Reader); err != nil {
			return fmt.Errorf("copying file part: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
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

	if resp.StatusCode == http.StatusUnauthorized {
		if err := c.tokens.Clear(); err != nil {
			c.logger.Warn("failed to clear expired token", slog.Any("error", err))
		} else {
			c.logger.Info("stored token cleared after 401, login again")
		}
		return parseAPIError(resp.StatusCode, payload)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseAPIError(resp.StatusCode, payload)
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
