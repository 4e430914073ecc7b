package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// maxErrorBody caps how much of an error response is read
const maxErrorBody = 64 << 10

// StatusError is returned when the backend answers with an unexpected status
type StatusError struct {
	StatusCode int
	Message    string // server-supplied "error" text, if any
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("request failed with status code %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("request failed with status code %d", e.StatusCode)
}

// errorBody is the backend's error payload
type errorBody struct {
	Error string `json:"error"`
}

// newStatusError reads the error payload of a failed response
func newStatusError(statusCode int, body io.Reader) *StatusError {
	statusErr := &StatusError{StatusCode: statusCode}

	data, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil || len(data) == 0 {
		return statusErr
	}

	var payload errorBody
	if json.Unmarshal(data, &payload) == nil {
		statusErr.Message = strings.TrimSpace(payload.Error)
	}
	return statusErr
}

// UserMessage returns the best available text for a user-facing alert:
// the server-supplied error text, falling back to the generic error message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		if statusErr.Message != "" {
			return statusErr.Message
		}
		return statusErr.Error()
	}
	return err.Error()
}

// IsStatus reports whether err is a StatusError with the given code
func IsStatus(err error, code int) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == code
}
