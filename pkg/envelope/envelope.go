package envelope

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// RequestData is the inbound envelope.
type RequestData struct {
	// ID is an opaque correlation token. Uniqueness is not enforced here.
	ID string `json:"id"`

	// Payload is any JSON value, including null.
	Payload json.RawMessage `json:"payload"`
}

// Validate reports whether a RequestData built in code satisfies the contract.
// A nil Payload means the field slot was never filled.
func (r RequestData) Validate() error {
	if r.Payload == nil {
		return ErrMissingPayload
	}
	if !json.Valid(r.Payload) {
		return fmt.Errorf("%w: payload is not valid JSON", ErrInvalid)
	}
	return nil
}

// ResponseData is the outbound envelope.
type ResponseData struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// HasData reports whether the envelope carries a result. A literal JSON null
// counts as no result.
func (r ResponseData) HasData() bool {
	trimmed := bytes.TrimSpace(r.Data)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// New builds a response envelope. data may be nil.
func New(success bool, message string, data json.RawMessage) ResponseData {
	return ResponseData{
		Success: success,
		Message: message,
		Data:    data,
	}
}

// OK builds a successful response envelope.
func OK(message string, data json.RawMessage) ResponseData {
	return New(true, message, data)
}

// Fail builds a failed response envelope without data.
func Fail(message string) ResponseData {
	return New(false, message, nil)
}

// Reject turns a validation error into a failed response envelope.
func Reject(err error) ResponseData {
	if err == nil {
		return Fail(ErrInvalid.Error())
	}
	return Fail(err.Error())
}

// EncodeData marshals v into a data slot. A nil v yields a nil slot so the
// field is omitted on the wire.
func EncodeData(v any) (json.RawMessage, error) {
	if v == nil {
		return nil, nil
	}
	if raw, ok := v.(json.RawMessage); ok {
		return raw, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode envelope data: %w", err)
	}
	return b, nil
}
