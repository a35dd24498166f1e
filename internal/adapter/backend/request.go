package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"nlistplanet/pkg/errors"
	"nlistplanet/pkg/logger"
)

// envelope is the API's standard response wrapper.
type envelope struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data,omitempty"`
	Error     *errorInfo      `json:"error,omitempty"`
	Timestamp string          `json:"timestamp"`
}

type errorInfo struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// doRequest performs one HTTP request and decodes the response
// envelope. There is no retry: every mutating call is a user-initiated
// financial action and must not be silently repeated, and reads are
// cheap enough for the caller to reissue.
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, body interface{}) (json.RawMessage, error) {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Internal("failed to encode request body", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return nil, errors.Internal("failed to create request", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		// Lets the backend dedupe a resubmitted action instead of
		// applying it twice.
		req.Header.Set("X-Idempotency-Key", uuid.NewString())
	}
	if token := c.tokens.AuthToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Network("request failed", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Network("failed to read response", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, errors.Internal(fmt.Sprintf("malformed response from %s", path), err)
	}

	if resp.StatusCode >= 400 || !env.Success {
		return nil, mapAPIError(resp.StatusCode, env.Error)
	}

	return env.Data, nil
}

// mapAPIError translates an API error response into the local error
// taxonomy. The envelope's code wins when present; otherwise the HTTP
// status decides.
func mapAPIError(status int, info *errorInfo) error {
	code := ""
	message := http.StatusText(status)
	if info != nil {
		code = info.Code
		if info.Message != "" {
			message = info.Message
		}
	}

	switch {
	case status == http.StatusConflict || code == "CONFLICT":
		return errors.Conflict(message)
	case code == "VALIDATION_ERROR" || status == http.StatusUnprocessableEntity:
		return errors.Validation(message)
	case status == http.StatusUnauthorized:
		return errors.Unauthorized(message, nil)
	case status == http.StatusForbidden:
		return errors.Forbidden(message, nil)
	case status == http.StatusNotFound:
		return errors.NotFound("resource", nil)
	case status == http.StatusBadRequest:
		return errors.BadRequest(message, nil)
	case status >= 500:
		return errors.Network(message, nil)
	}

	if code == "" {
		code = "API_ERROR"
	}
	logger.Warn("Unmapped API error: status=%d code=%s", status, code)
	return errors.New(code, message, status, nil)
}

// get performs a GET request and decodes the envelope data into result.
func (c *Client) get(ctx context.Context, path string, query url.Values, result interface{}) error {
	data, err := c.doRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(data, result); err != nil {
		return errors.Internal(fmt.Sprintf("failed to decode response from %s", path), err)
	}
	return nil
}

// post performs a POST request and decodes the envelope data into
// result when one is expected.
func (c *Client) post(ctx context.Context, path string, body, result interface{}) error {
	data, err := c.doRequest(ctx, http.MethodPost, path, nil, body)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(data, result); err != nil {
		return errors.Internal(fmt.Sprintf("failed to decode response from %s", path), err)
	}
	return nil
}

func (c *Client) delete(ctx context.Context, path string) error {
	_, err := c.doRequest(ctx, http.MethodDelete, path, nil, nil)
	return err
}
