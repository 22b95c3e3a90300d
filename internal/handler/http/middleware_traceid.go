package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// traceIDHeader carries the request trace identifier in both directions:
// callers (tokenctl retries in particular) may supply one, and the response
// always echoes the value that ended up in the logs.
const traceIDHeader = "X-Trace-ID"

// withTraceID assigns every request a trace ID, attaches a request-scoped
// child logger carrying it to the context, and echoes it in the response
// header. Handlers retrieve the logger via [logger.FromRequest].
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
