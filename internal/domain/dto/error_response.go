package dto

import "time"

// ErrorResponse is the standardized JSON error body returned by every
// failing endpoint.
//
// Fields match the API contract and may differ from internal error types.
// The detail message is always human-readable; ErrorDetails carries the
// underlying error text when one exists.
type ErrorResponse struct {
	Message      string    `json:"detail" example:"Could not validate credentials"`
	ErrorDetails string    `json:"error,omitempty" example:"token is expired"`
	Timestamp    time.Time `json:"timestamp"`
}

// Error implements the error interface so an ErrorResponse can travel
// through gin's error list.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}

// NewErrorResponse builds an ErrorResponse from a message and an optional
// underlying error.
//
// Parameters:
//   - message (string): Human-readable error message.
//   - err (error): Optional underlying error; its text is attached when non-nil.
//
// Returns:
//   - ErrorResponse: The populated response body.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
