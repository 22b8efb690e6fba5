package api

import (
	"errors"
	"fmt"
)

// Kind classifies an API failure. The gate and the session engine branch on
// kinds, never on raw status codes.
type Kind uint8

const (
	// KindNetwork is a transport-level failure with no HTTP response.
	KindNetwork Kind = iota
	// KindUnauthorized is a 401: the token is invalid or expired.
	KindUnauthorized
	// KindForbidden is a 403: authenticated but insufficient role.
	KindForbidden
	// KindNotFound is a 404.
	KindNotFound
	// KindServer is any 5xx.
	KindServer
	// KindValidation is any other 4xx, including envelope-level
	// success=false responses.
	KindValidation
)

// Sentinels for errors.Is checks. Every *Error unwraps to exactly one.
var (
	// ErrNetwork is an exported sentinel matched by transport failures.
	ErrNetwork = errors.New("network failure")
	// ErrUnauthorized is an exported sentinel matched by 401 responses.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is an exported sentinel matched by 403 responses.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound is an exported sentinel matched by 404 responses.
	ErrNotFound = errors.New("not found")
	// ErrServer is an exported sentinel matched by 5xx responses.
	ErrServer = errors.New("server error")
	// ErrValidation is an exported sentinel matched by other 4xx responses.
	ErrValidation = errors.New("validation failure")
)

// Error is the concrete failure returned by every endpoint method.
type Error struct {
	Kind      Kind
	Status    int
	Message   string
	RequestID string
	cause     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("metro api: %s: %s", e.sentinel().Error(), e.Message)
	}
	return fmt.Sprintf("metro api: %s", e.sentinel().Error())
}

// Unwrap exposes the kind sentinel (and, for network failures, the
// underlying transport error below it).
func (e *Error) Unwrap() []error {
	if e.cause != nil {
		return []error{e.sentinel(), e.cause}
	}
	return []error{e.sentinel()}
}

func (e *Error) sentinel() error {
	switch e.Kind {
	case KindNetwork:
		return ErrNetwork
	case KindUnauthorized:
		return ErrUnauthorized
	case KindForbidden:
		return ErrForbidden
	case KindNotFound:
		return ErrNotFound
	case KindServer:
		return ErrServer
	default:
		return ErrValidation
	}
}

func classify(status int) Kind {
	switch {
	case status == 401:
		return KindUnauthorized
	case status == 403:
		return KindForbidden
	case status == 404:
		return KindNotFound
	case status >= 500:
		return KindServer
	default:
		return KindValidation
	}
}
