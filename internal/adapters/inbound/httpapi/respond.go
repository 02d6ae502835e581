package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/sufield/remote-access/internal/assert"
	"github.com/sufield/remote-access/internal/domain"
	"github.com/sufield/remote-access/pkg/envelope"
)

// statusFor maps a failure kind to an HTTP status code.
func statusFor(kind domain.Kind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case domain.KindPayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	case domain.KindUnsupportedMediaType:
		return http.StatusUnsupportedMediaType
	case domain.KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func writeEnvelope(w http.ResponseWriter, status int, resp envelope.ResponseData) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// writeError answers with the status for err's kind and a failed envelope.
func writeError(w http.ResponseWriter, err error) {
	status := statusFor(domain.KindOf(err))
	assert.Invariantf(status >= http.StatusBadRequest, "error mapped to non-error status %d", status)
	writeEnvelope(w, status, envelope.Fail(domain.PublicMessage(err)))
}
