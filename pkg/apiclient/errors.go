package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrMissingBaseURL indicates the client was constructed without a backend URL
	ErrMissingBaseURL = errors.New("apiclient.missing_base_url")

	// ErrRequestFailed indicates the request never produced an HTTP response
	ErrRequestFailed = errors.New("apiclient.request_failed")

	// ErrDecodeResponse indicates a 2xx response body could not be decoded
	ErrDecodeResponse = errors.New("apiclient.decode_response")

	// ErrNoAccessToken indicates an authenticated call was attempted without a stored token
	ErrNoAccessToken = errors.New("apiclient.no_access_token")
)

// APIError is a non-2xx backend response. Message carries the backend's own
// error text when the body was decodable, so callers can show it to users.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}

// newAPIError builds an APIError, falling back to the standard status text
// when the backend supplied no message.
func newAPIError(statusCode int, message string) *APIError {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	return &APIError{StatusCode: statusCode, Message: message}
}
