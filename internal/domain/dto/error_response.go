package dto

import "time"

// ErrorResponse is the standardized JSON error payload returned by the API.
//
// Fields:
//   - Message: human-readable summary of what went wrong.
//   - ErrorDetails: optional detail from the underlying error.
//   - Timestamp: when the error response was built.
type ErrorResponse struct {
	Message      string    `json:"message" example:"no data found"`
	ErrorDetails string    `json:"error,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// Error implements the error interface so an ErrorResponse can travel
// through error-typed plumbing (e.g. gin's c.Error).
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}

// NewErrorResponse builds an ErrorResponse from a message and an optional
// underlying error.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
