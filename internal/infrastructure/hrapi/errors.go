package hrapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var (
	ErrUnauthorized = errors.New("hr api: unauthorized")
	ErrForbidden    = errors.New("hr api: forbidden")
	ErrNotFound     = errors.New("hr api: not found")
	ErrRateLimited  = errors.New("hr api: rate limited")
	// ErrUnavailable covers transport failures and 5xx responses.
	ErrUnavailable = errors.New("hr api: unavailable")
)

// APIError is a non-2xx answer from the HR API.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("hr api: %s %s returned %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("hr api: %s %s returned %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
}

// Unwrap maps well known statuses onto the package sentinels.
func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case e.StatusCode == http.StatusForbidden:
		return ErrForbidden
	case e.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case e.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	case e.StatusCode >= 500:
		return ErrUnavailable
	default:
		return nil
	}
}

func newAPIError(method, path string, resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode, Method: method, Path: path}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(data, &body) == nil {
		if body.Message != "" {
			apiErr.Message = body.Message
		} else {
			apiErr.Message = body.Error
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(data))
	}
	return apiErr
}
