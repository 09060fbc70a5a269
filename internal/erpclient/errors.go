package erpclient

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ServerError is a non-2xx answer from the ERP backend.
type ServerError struct {
	Method  string
	Path    string
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend %s %s: status %d", e.Method, e.Path, e.Status)
	}
	return fmt.Sprintf("backend %s %s: status %d: %s", e.Method, e.Path, e.Status, e.Message)
}

func (e *ServerError) UpstreamStatus() int     { return e.Status }
func (e *ServerError) UpstreamMessage() string { return e.Message }

// TransportError means no response was received (network failure, timeout, cancellation).
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("backend %s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error           { return e.Err }
func (e *TransportError) UpstreamStatus() int     { return 0 }
func (e *TransportError) UpstreamMessage() string { return "" }

const maxMessageLen = 500

// errorMessage pulls a readable message out of an error body. The backend answers with
// either a JSON object carrying message/error, a JSON string, or plain text.
func errorMessage(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return ""
	}

	var obj map[string]any
	if json.Unmarshal(body, &obj) == nil {
		for _, key := range []string{"message", "error", "detail"} {
			if s, ok := obj[key].(string); ok && s != "" {
				return truncate(s)
			}
		}
	}

	var s string
	if json.Unmarshal(body, &s) == nil {
		return truncate(s)
	}

	return truncate(trimmed)
}

// truncate keeps at most maxMessageLen bytes and never splits a UTF-8 sequence.
func truncate(s string) string {
	if len(s) <= maxMessageLen {
		return s
	}
	cut := maxMessageLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
