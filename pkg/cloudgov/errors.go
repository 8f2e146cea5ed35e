package cloudgov

import (
	"errors"
	"fmt"
)

// Configuration errors.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrAPIEndpointRequired = errors.New("API endpoint is required")
	ErrMissingCredentials  = errors.New("API key and secret are required")
)

// Operation errors.
var (
	ErrDatasetIDRequired = errors.New("dataset ID is required")
	ErrNoAccessToken     = errors.New("token response contained no access token")
)

// AuthError represents a failed authentication attempt against the OAuth2
// token endpoint. StatusCode and Body are populated when the endpoint
// responded; Err carries the underlying cause when the request never
// completed.
type AuthError struct {
	StatusCode int
	Body       []byte
	Err        error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("authentication failed: status %d: %s", e.StatusCode, string(e.Body))
	}

	if e.Err != nil {
		return fmt.Sprintf("authentication failed: %v", e.Err)
	}

	return "authentication failed"
}

// Unwrap returns the underlying cause, if any.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// RequestError represents a failed API request. StatusCode and Body are
// populated when the API responded with an unexpected status; Err carries
// the underlying cause for transport-level failures.
type RequestError struct {
	Method     string
	Path       string
	StatusCode int
	Body       []byte
	Err        error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s failed: status %d: %s", e.Method, e.Path, e.StatusCode, string(e.Body))
	}

	if e.Err != nil {
		return fmt.Sprintf("%s %s failed: %v", e.Method, e.Path, e.Err)
	}

	return fmt.Sprintf("%s %s failed", e.Method, e.Path)
}

// Unwrap returns the underlying cause, if any.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// LocalResourceError represents a failure to read or parse a local file,
// such as the user metadata file.
type LocalResourceError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *LocalResourceError) Error() string {
	return fmt.Sprintf("reading local resource %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *LocalResourceError) Unwrap() error {
	return e.Err
}

// IsAuthError checks if the error is an authentication failure.
func IsAuthError(err error) bool {
	authErr := &AuthError{}

	return errors.As(err, &authErr)
}

// IsRequestError checks if the error is a failed API request.
func IsRequestError(err error) bool {
	reqErr := &RequestError{}

	return errors.As(err, &reqErr)
}

// IsLocalResourceError checks if the error is a local file failure.
func IsLocalResourceError(err error) bool {
	localErr := &LocalResourceError{}

	return errors.As(err, &localErr)
}
