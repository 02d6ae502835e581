// Package envelope defines the request and response envelopes exchanged with
// the remote access service.
//
// A RequestData carries an opaque correlation id and an arbitrary JSON payload.
// A ResponseData carries an outcome flag, a human-readable message and an
// optional JSON result. Both are independent of the transport: the HTTP layer
// only moves bytes in and out of them.
//
// Validating an inbound envelope:
//
//	req, err := envelope.Decode(body)
//	if err != nil {
//	    writeJSON(w, http.StatusBadRequest, envelope.Reject(err))
//	    return
//	}
//
// Building an outbound envelope:
//
//	data, err := envelope.EncodeData(map[string]int{"foo": 1})
//	if err != nil {
//	    return err
//	}
//	resp := envelope.OK("ok", data)
//
// Payload and data are kept as json.RawMessage, so the envelope never assumes a
// schema for them.
package envelope
