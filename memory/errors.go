package memory

import "fmt"

// NetworkError reports a transport-level failure talking to the store
// (unreachable host, connection reset, timeout from the transport).
type NetworkError struct {
	Op       string
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("memory %s %s: %v", e.Op, e.Endpoint, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DecodeError reports a response body that is not a JSON object.
type DecodeError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("memory response from %s (HTTP %d) is not a JSON object: %v", e.Endpoint, e.StatusCode, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
