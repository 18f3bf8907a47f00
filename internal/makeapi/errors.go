package makeapi

import (
	"encoding/json"
	"fmt"

	"github.com/makebridge/makebridge/internal/transport"
)

// APIError represents a non-success response from the Make API.
// It is the only structured error surface of the client: every non-2xx
// status becomes an APIError carrying the status code, the status text,
// and whatever detail the response body offered.
type APIError struct {
	// StatusCode is the HTTP status code
	StatusCode int

	// Status is the HTTP status text (e.g., "404 Not Found")
	Status string

	// Message is the detail extracted from the response body, if any
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("make api error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("make api error (status %d): %s", e.StatusCode, e.Status)
}

// parseAPIError converts a non-2xx response into an APIError.
// Returns nil for success statuses.
func parseAPIError(resp *transport.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
	}

	// The API reports failures as {"message": ...} or {"detail": ...}.
	// A body that is not JSON yields an error with no detail attached.
	if len(resp.Body) > 0 {
		var errResp struct {
			Message string `json:"message"`
			Detail  string `json:"detail"`
		}
		if err := json.Unmarshal(resp.Body, &errResp); err == nil {
			if errResp.Message != "" {
				apiErr.Message = errResp.Message
			} else if errResp.Detail != "" {
				apiErr.Message = errResp.Detail
			}
		}
	}

	return apiErr
}
