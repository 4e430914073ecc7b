package api

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNewStatusError(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{"json error", `{"error": "File too large"}`, "File too large"},
		{"json without error", `{"detail": "nope"}`, ""},
		{"plain text", "Internal Server Error", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newStatusError(400, strings.NewReader(tt.body))
			if err.Message != tt.expected {
				t.Errorf("Message = %q, expected %q", err.Message, tt.expected)
			}
			if err.StatusCode != 400 {
				t.Errorf("StatusCode = %d, expected 400", err.StatusCode)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil", nil, ""},
		{"server text", &StatusError{StatusCode: 400, Message: "Invalid file type"}, "Invalid file type"},
		{"wrapped server text", fmt.Errorf("upload: %w", &StatusError{StatusCode: 500, Message: "disk full"}), "disk full"},
		{"status only", &StatusError{StatusCode: 502}, "request failed with status code 502"},
		{"transport", errors.New("connection refused"), "connection refused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %q, expected %q", got, tt.expected)
			}
		})
	}
}
