package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so transports can map it to their own status codes.
type Kind int

const (
	// KindInternal is any failure nobody classified. It is the zero value.
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindMethodNotAllowed
	KindPayloadTooLarge
	KindUnsupportedMediaType
	KindRateLimited
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindMethodNotAllowed:
		return "method_not_allowed"
	case KindPayloadTooLarge:
		return "payload_too_large"
	case KindUnsupportedMediaType:
		return "unsupported_media_type"
	case KindRateLimited:
		return "rate_limited"
	default:
		return "internal"
	}
}

// Error is a classified failure. Message is safe to show to callers; Err is the
// underlying cause and is only logged.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Message != "" {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Sentinel errors for the failures the HTTP surface produces on its own.
// Use with errors.Is() for checking and wrap them to add context.
var (
	ErrNotFound             = &Error{Kind: KindNotFound, Message: "not found"}
	ErrMethodNotAllowed     = &Error{Kind: KindMethodNotAllowed, Message: "method not allowed"}
	ErrPayloadTooLarge      = &Error{Kind: KindPayloadTooLarge, Message: "request entity too large"}
	ErrUnsupportedMediaType = &Error{Kind: KindUnsupportedMediaType, Message: "content type must be application/json"}
	ErrRateLimited          = &Error{Kind: KindRateLimited, Message: "too many requests"}
)

// Validation wraps err as a validation failure. The message shown to callers is
// err's own text.
func Validation(err error) *Error {
	return &Error{Kind: KindValidation, Err: err}
}

// NotFound builds a not-found failure with a caller-facing message.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// MethodNotAllowed builds a method-not-allowed failure with a caller-facing message.
func MethodNotAllowed(format string, args ...any) *Error {
	return &Error{Kind: KindMethodNotAllowed, Message: fmt.Sprintf(format, args...)}
}

// UnsupportedMediaType builds an unsupported-media-type failure with a caller-facing message.
func UnsupportedMediaType(format string, args ...any) *Error {
	return &Error{Kind: KindUnsupportedMediaType, Message: fmt.Sprintf(format, args...)}
}

// Internal wraps err as an internal failure. The cause is hidden from callers.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal server error", Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// PublicMessage returns the text a caller may see for err. Internal failures
// never leak their cause.
func PublicMessage(err error) string {
	var de *Error
	if !errors.As(err, &de) {
		return "internal server error"
	}
	if de.Kind == KindInternal {
		if de.Message != "" {
			return de.Message
		}
		return "internal server error"
	}
	if de.Message != "" {
		return de.Message
	}
	if de.Err != nil {
		return de.Err.Error()
	}
	return de.Kind.String()
}
