package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// RequestLogger пишет строку лога на каждый запрос
func RequestLogger(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r)

			status := rec.Status()
			switch {
			case status >= http.StatusInternalServerError:
				logger.Error("%s %s - status=%d bytes=%d duration=%s", r.Method, r.URL.Path, status, rec.bytes, time.Since(started))
			case status >= http.StatusBadRequest:
				logger.Warn("%s %s - status=%d bytes=%d duration=%s", r.Method, r.URL.Path, status, rec.bytes, time.Since(started))
			default:
				logger.Info("%s %s - status=%d bytes=%d duration=%s", r.Method, r.URL.Path, status, rec.bytes, time.Since(started))
			}
		})
	}
}
