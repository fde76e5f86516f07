package plannersdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/planner/pkg/httpx"
)

// APIError is a non-2xx response from the service. The server uses the same
// type to write its error bodies.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Message is the user-facing message, in Portuguese
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("planner api: %d: %s", e.StatusCode, e.Message)
}

// WriteError writes the error as {"message": "..."} with its status code.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, e)
}

// NewAPIError creates an APIError.
func NewAPIError(statusCode int, message string) *APIError {
	return &APIError{StatusCode: statusCode, Message: message}
}

// parseErrorResponse turns an error body into an *APIError, falling back to
// the status text when the body is not the expected shape.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp APIError
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		errResp.StatusCode = resp.StatusCode
		return &errResp
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
