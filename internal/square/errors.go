package square

import (
	"encoding/json"
	"fmt"
)

type ErrorDetail struct {
	Category string `json:"category"`
	Code     string `json:"code"`
	Detail   string `json:"detail,omitempty"`
	Field    string `json:"field,omitempty"`
}

// APIError is a non-2xx response from the Connect API, carrying whatever
// the service reported. Handlers pass it through; nothing retries.
type APIError struct {
	StatusCode int
	Errors     []ErrorDetail
}

func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		first := e.Errors[0]
		return fmt.Sprintf("square: %d %s: %s", e.StatusCode, first.Code, first.Detail)
	}
	return fmt.Sprintf("square: status %d", e.StatusCode)
}

func decodeAPIError(status int, raw []byte) error {
	var envelope struct {
		Errors []ErrorDetail `json:"errors"`
	}
	// Body may not be JSON at all (proxies, HTML error pages); keep the status.
	_ = json.Unmarshal(raw, &envelope)
	return &APIError{StatusCode: status, Errors: envelope.Errors}
}
