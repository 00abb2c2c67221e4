package api

import (
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/emergency15/internal/common"
)

var (
	ErrUnavailable  = common.ErrorUnavailable
	ErrUnauthorized = common.ErrorUnauthorized
	ErrNotFound     = common.ErrorNotFound
)

// Error is a failure reported by the backend inside the response envelope.
type Error struct {
	Endpoint string
	Code     int
	Message  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (code %d)", e.Endpoint, e.Message, e.Code)
}

// envelope is the response body shape shared by all endpoints.
type envelope struct {
	Code          int             `json:"code"`
	Error         bool            `json:"error"`
	Message       string          `json:"message"`
	ErrorMessages json.RawMessage `json:"error_messages,omitempty"`
	Data          json.RawMessage `json:"data,omitempty"`
}

// errorMessage prefers error_messages when it is a plain string.
func (e envelope) errorMessage() string {
	if len(e.ErrorMessages) > 0 {
		var s string
		if err := json.Unmarshal(e.ErrorMessages, &s); err == nil && s != "" {
			return s
		}
	}
	return e.Message
}
