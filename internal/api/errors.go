package api

import "fmt"

// ValidationError rejects input locally, before any request is sent.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// ServiceError is a non-success response from the stats service. Message holds
// the server-provided error text and may be empty.
type ServiceError struct {
	Status  int
	Message string
}

func (e *ServiceError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("stats service returned status %d", e.Status)
}

// NetworkError wraps a transport failure or an unreadable response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("stats service unreachable: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
