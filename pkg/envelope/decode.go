package envelope

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every envelope validation error.
var ErrInvalid = errors.New("invalid envelope")

var (
	ErrMalformed      = fmt.Errorf("%w: body is not valid JSON", ErrInvalid)
	ErrNotObject      = fmt.Errorf("%w: body must be a JSON object", ErrInvalid)
	ErrMissingID      = fmt.Errorf("%w: id is required", ErrInvalid)
	ErrIDNotString    = fmt.Errorf("%w: id must be a string", ErrInvalid)
	ErrMissingPayload = fmt.Errorf("%w: payload is required", ErrInvalid)
)

// Decode validates raw bytes as a RequestData.
//
// The id field must be present and hold a JSON string. The payload field must
// be present; its value is not inspected.
func Decode(raw []byte) (RequestData, error) {
	var req RequestData

	trimmed := bytes.TrimSpace(raw)
	if !json.Valid(trimmed) {
		return req, ErrMalformed
	}
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return req, ErrNotObject
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return req, ErrMalformed
	}

	rawID, ok := fields["id"]
	if !ok {
		return req, ErrMissingID
	}
	if err := decodeString(rawID, &req.ID); err != nil {
		return req, ErrIDNotString
	}

	payload, ok := fields["payload"]
	if !ok {
		return req, ErrMissingPayload
	}
	req.Payload = payload

	return req, nil
}

func decodeString(raw json.RawMessage, dst *string) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return errors.New("not a string")
	}
	return json.Unmarshal(raw, dst)
}
