package logger

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// Requests logs one line per served request
func Requests(l *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			lvl := slog.LevelDebug
			if status >= http.StatusInternalServerError {
				lvl = slog.LevelWarn
			}

			l.LogAttrs(r.Context(), lvl, r.Method+" "+r.URL.Path,
				slog.Int("status", status),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("elapsed", time.Since(start)),
			)
		})
	}
}
