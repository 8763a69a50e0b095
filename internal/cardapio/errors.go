package cardapio

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrUnreachable is returned when the menu API could not be reached at all
var ErrUnreachable = errors.New("menu API unreachable, check your connection")

// ValidationError is raised before a request is sent
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Invalid builds a ValidationError
func Invalid(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// APIError is a non-2xx answer from the menu API
type APIError struct {
	StatusCode int
	Message    string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("menu API returned %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 from the menu API
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsValidation reports whether err is a client side validation failure
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

const maxMessageLen = 300

// newAPIError extracts a human message from a JSON or plain text error body
func newAPIError(status int, body []byte) *APIError {
	raw := strings.TrimSpace(string(body))
	msg := ""

	var obj map[string]interface{}
	if err := json.Unmarshal(body, &obj); err == nil {
		for _, key := range []string{"error", "message", "detail", "msg"} {
			if s, ok := obj[key].(string); ok && strings.TrimSpace(s) != "" {
				msg = strings.TrimSpace(s)
				break
			}
			// {"error": {"message": "..."}}
			if nested, ok := obj[key].(map[string]interface{}); ok {
				if s, ok := nested["message"].(string); ok && s != "" {
					msg = s
					break
				}
			}
		}
	} else if raw != "" && !strings.HasPrefix(raw, "<") {
		msg = raw
	}

	if msg == "" {
		msg = http.StatusText(status)
	}
	if r := []rune(msg); len(r) > maxMessageLen {
		msg = string(r[:maxMessageLen]) + "..."
	}
	return &APIError{StatusCode: status, Message: msg, Body: raw}
}
