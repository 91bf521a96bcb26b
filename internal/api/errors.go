package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrNotFound is returned for unknown projects or versions
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized is returned when credentials are missing or rejected
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidResponse is returned when a 2xx body is missing required fields
	ErrInvalidResponse = errors.New("invalid response")
)

// APIError is a non-2xx answer from the remote API.
type APIError struct {
	URL        string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api %s: %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
	}

	return fmt.Sprintf("api %s: %d %s: %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode), e.Message)
}

func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	default:
		return nil
	}
}

type errorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func newAPIError(url string, status int, body []byte) *APIError {
	msg := strings.TrimSpace(string(body))

	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Message != "" {
		msg = parsed.Error.Message
	}

	if len(msg) > 200 {
		msg = msg[:197] + "..."
	}

	return &APIError{URL: url, StatusCode: status, Message: msg}
}
