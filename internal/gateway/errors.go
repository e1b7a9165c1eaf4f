package gateway

import (
	"encoding/json"
	"strings"
)

// Error carries the human-readable message extracted from a backend error
// payload, plus the HTTP status it arrived with.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// errorMessageFields are the conventional fields a backend error body may
// carry its message in, checked in order.
var errorMessageFields = []string{"message", "detail", "error", "title"}

// extractErrorMessage pulls a usable message out of a raw error body.
// Returns "" when the body is empty, not JSON, or carries no known field.
func extractErrorMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	for _, field := range errorMessageFields {
		raw, ok := payload[field]
		if !ok {
			continue
		}
		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			continue
		}
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

// newError builds the uniform failure signal for a non-success response:
// the extracted message when present, the operation default otherwise.
func newError(statusCode int, body []byte, defaultMessage string) *Error {
	message := extractErrorMessage(body)
	if message == "" {
		message = defaultMessage
	}
	return &Error{StatusCode: statusCode, Message: message}
}
