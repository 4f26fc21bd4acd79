package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// TransportError is a request that never produced an API response: the
// connection failed, timed out, or was cancelled.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError is a failure reported by the backend, either with an HTTP error
// status or with success:false in the envelope.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// IsUnauthorized reports whether err is an API rejection of the credentials.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == 401 || apiErr.Status == 403
	}
	return false
}

// UserMessage returns the text to show for err. Backend messages are shown
// verbatim; transport failures get a generic message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return "could not reach the server, check your connection and retry"
	}
	return err.Error()
}

func checkResponse(status int, body []byte) error {
	if status >= 400 {
		if msg, ok := extractAPIErrorBody(body); ok {
			return &APIError{Status: status, Message: msg}
		}
		text := strings.TrimSpace(string(body))
		if text == "" {
			return &APIError{Status: status, Message: fmt.Sprintf("HTTP %d", status)}
		}
		return &APIError{Status: status, Message: fmt.Sprintf("HTTP %d: %s", status, text)}
	}

	var head struct {
		Success *bool `json:"success"`
	}
	if err := json.Unmarshal(body, &head); err != nil || head.Success == nil || *head.Success {
		return nil
	}
	if msg, ok := extractAPIErrorBody(body); ok {
		return &APIError{Status: status, Message: msg}
	}
	return &APIError{Status: status, Message: "request failed"}
}

// extractAPIErrorBody pulls the human readable message out of an error body.
// message and error are combined when both are present and differ.
func extractAPIErrorBody(body []byte) (string, bool) {
	if len(body) == 0 {
		return "", false
	}
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", false
	}

	message, hasMessage := parseErrorValue(payload["message"])
	detail, hasDetail := parseErrorValue(payload["error"])
	if !hasDetail {
		detail, hasDetail = parseErrorValue(payload["detail"])
	}

	switch {
	case hasMessage && hasDetail && message != detail:
		return message + ": " + detail, true
	case hasMessage:
		return message, true
	case hasDetail:
		return detail, true
	default:
		return "", false
	}
}

func parseErrorValue(raw any) (string, bool) {
	switch value := raw.(type) {
	case string:
		msg := strings.TrimSpace(value)
		return msg, msg != ""
	case []any:
		parts := make([]string, 0, len(value))
		for _, item := range value {
			if msg, ok := parseErrorValue(item); ok {
				parts = append(parts, msg)
			}
		}
		if len(parts) == 0 {
			return "", false
		}
		return strings.Join(parts, ", "), true
	case map[string]any:
		if msg, ok := parseErrorValue(value["message"]); ok {
			return msg, true
		}
		if msg, ok := parseErrorValue(value["msg"]); ok {
			return msg, true
		}
		if len(value) == 0 {
			return "", false
		}
		encoded, err := json.Marshal(value)
		if err != nil {
			return "", false
		}
		return string(encoded), true
	}
	return "", false
}
