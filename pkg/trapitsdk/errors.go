package trapitsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is a non-success response from the TrapIT API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("trapit: %d: %s", e.StatusCode, e.Message)
}

// parseErrorResponse builds an APIError from a response body. Bodies without
// a message fall back to the status text.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var msg MessageResponse
	if err := json.Unmarshal(body, &msg); err == nil && msg.Message != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: msg.Message}
	}
	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
