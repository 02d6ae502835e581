package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/sufield/remote-access/internal/domain"
	"github.com/sufield/remote-access/pkg/envelope"
)

// WelcomeMessage is the body served at GET /.
const WelcomeMessage = "Welcome to the Remote Access Project!"

type handlers struct {
	logger *slog.Logger
}

func (h *handlers) welcome(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(WelcomeMessage))
}

// health is used for infra checks.
func (h *handlers) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// echo validates a RequestData and answers with it as the result.
func (h *handlers) echo(w http.ResponseWriter, r *http.Request) {
	raw, ok := BodyFromContext(r.Context())
	if !ok {
		h.fail(w, r, domain.ErrUnsupportedMediaType)
		return
	}

	req, err := envelope.Decode(raw)
	if err != nil {
		h.fail(w, r, domain.Validation(err))
		return
	}

	data, err := envelope.EncodeData(req)
	if err != nil {
		h.fail(w, r, domain.Internal(err))
		return
	}

	h.logger.Debug("envelope accepted",
		"envelope_id", req.ID,
		"request_id", middleware.GetReqID(r.Context()),
	)
	writeEnvelope(w, http.StatusOK, envelope.OK("envelope accepted", data))
}

func (h *handlers) notFound(w http.ResponseWriter, r *http.Request) {
	h.fail(w, r, domain.NotFound("cannot %s %s", r.Method, r.URL.Path))
}

func (h *handlers) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.fail(w, r, domain.MethodNotAllowed("cannot %s %s", r.Method, r.URL.Path))
}

func (h *handlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	if domain.KindOf(err) == domain.KindInternal {
		h.logger.Error("request failed",
			"error", err,
			"path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()),
		)
	}
	writeError(w, err)
}
