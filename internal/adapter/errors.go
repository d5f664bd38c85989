package adapter

import (
	"errors"
	"fmt"
)

// Sentinel errors describing the class of a failed server call.
// Every error returned by [ServerAdapter] for a non-2xx response wraps one
// of these and is a *[ResponseError].
var (
	ErrBadRequest        = errors.New("bad request")
	ErrUnauthorized      = errors.New("client unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrTooManyRequests   = errors.New("too many requests")
	ErrServerUnavailable = errors.New("server unavailable")
)

// ResponseError is a non-2xx answer from the server. Message is the
// server-provided {"message"} text, or the status text when the body
// carries none.
type ResponseError struct {
	StatusCode int
	Message    string
	kind       error
}

func (e *ResponseError) Error() string {
	return e.Message
}

func (e *ResponseError) Unwrap() error {
	return e.kind
}

// ServerMessage returns the server-provided message carried by err, or
// err.Error() when err did not come from a server response.
func ServerMessage(err error) string {
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return respErr.Message
	}
	return err.Error()
}

// transportError marks a request that never got a response (connection
// refused, timeout) as [ErrServerUnavailable].
func transportError(op string, err error) error {
	return fmt.Errorf("%s request: %w: %w", op, ErrServerUnavailable, err)
}
