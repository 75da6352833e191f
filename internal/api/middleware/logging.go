package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-CharterService/pkg/contextkeys"
	"github.com/m04kA/SMC-CharterService/pkg/logger"
)

// TraceHeader заголовок с trace id запроса
const TraceHeader = "X-Trace-ID"

// Logging логирует запрос и кладет в контекст trace id и логгер с ним
// Некорректный или пустой X-Trace-ID заменяется новым uuid
func Logging(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID := r.Header.Get(TraceHeader)
			if _, err := uuid.Parse(traceID); err != nil {
				traceID = uuid.NewString()
			}

			reqLogger := log.With("trace_id", traceID)

			ctx := contextkeys.ContextWithTraceID(r.Context(), traceID)
			ctx = logger.WithContext(ctx, reqLogger)

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			ww.Header().Set(TraceHeader, traceID)
			start := time.Now()

			next.ServeHTTP(ww, r.WithContext(ctx))

			reqLogger.Info("%s %s - %d, %d bytes in %dms",
				r.Method, r.URL.Path, ww.Status(), ww.BytesWritten(), time.Since(start).Milliseconds())
		})
	}
}
