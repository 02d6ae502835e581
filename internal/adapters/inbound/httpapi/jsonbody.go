package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/sufield/remote-access/internal/domain"
)

var (
	errMalformedJSON = errors.New("request body is not valid JSON")
	errStrictJSON    = errors.New("request body must be a JSON object or array")
)

type bodyKey struct{}

// BodyFromContext returns the JSON body parsed by the JSONBody stage. ok is
// false when the request did not carry a JSON content type.
func BodyFromContext(ctx context.Context) (json.RawMessage, bool) {
	raw, ok := ctx.Value(bodyKey{}).(json.RawMessage)
	return raw, ok
}

// JSONBody returns the body parsing stage. Requests declaring
// Content-Type: application/json are read up to limit bytes and checked:
// malformed JSON and top-level scalars are rejected with 400, oversized bodies
// with 413, a non-UTF-8 charset with 415. An empty body parses as {}. Other
// content types pass through.
//
// The body stays readable for the handler.
func JSONBody(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			isJSON, err := jsonContentType(r.Header.Get("Content-Type"))
			if err != nil {
				writeError(w, err)
				return
			}
			if !isJSON {
				next.ServeHTTP(w, r)
				return
			}

			var body []byte
			if r.Body != nil && r.Body != http.NoBody {
				var err error
				body, err = io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
				if err != nil {
					var tooLarge *http.MaxBytesError
					if errors.As(err, &tooLarge) {
						writeError(w, domain.ErrPayloadTooLarge)
						return
					}
					writeError(w, domain.Validation(fmt.Errorf("read request body: %w", err)))
					return
				}
			}

			parsed := bytes.TrimSpace(body)
			if len(parsed) == 0 {
				parsed = []byte("{}")
			}
			if !json.Valid(parsed) {
				writeError(w, domain.Validation(errMalformedJSON))
				return
			}
			if c := parsed[0]; c != '{' && c != '[' {
				writeError(w, domain.Validation(errStrictJSON))
				return
			}

			r.Body = io.NopCloser(bytes.NewReader(body))
			ctx := context.WithValue(r.Context(), bodyKey{}, json.RawMessage(parsed))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// jsonContentType reports whether value declares a JSON body. A JSON body in
// any charset other than UTF-8 is refused with 415.
func jsonContentType(value string) (bool, error) {
	if value == "" {
		return false, nil
	}
	mediaType, params, err := mime.ParseMediaType(value)
	if err != nil || mediaType != "application/json" {
		return false, nil
	}
	if charset, ok := params["charset"]; ok && !strings.EqualFold(charset, "utf-8") {
		return true, domain.UnsupportedMediaType("unsupported charset %q", strings.ToUpper(charset))
	}
	return true, nil
}
