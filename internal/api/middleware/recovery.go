package middleware

import (
	"fmt"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/classtrack/classtrack-api/internal/api/shared"
	"github.com/classtrack/classtrack-api/internal/platform/logger"
	"github.com/classtrack/classtrack-api/internal/redact"
)

// Recovery is the error boundary: it converts any panic raised by later
// stages or the handler into a uniform 500 response and logs it at error
// severity. The response writer is wrapped so the boundary can tell whether
// a stage already produced a response; it only writes when nothing has been
// written yet, which is what keeps a stage from ever double-responding.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			// http.ErrAbortHandler is the server's own abort signal; let it
			// pass through untouched.
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			// Panic values can carry connection strings or credential
			// material from wrapped errors; scrub before logging or
			// responding.
			message := redact.String(fmt.Sprint(rec))
			logger.FromContext(r.Context()).Error("panic recovered",
				"error", message,
				"method", r.Method,
				"path", r.URL.Path)

			if ww.Status() == 0 && ww.BytesWritten() == 0 {
				shared.RespondWithError(ww, r, http.StatusInternalServerError, message)
			}
		}()

		next.ServeHTTP(ww, r)
	})
}
