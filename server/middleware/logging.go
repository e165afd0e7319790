package middleware

import (
	"net/http"
	"slices"
	"time"

	"github.com/kbukum/sheetfeed/logger"
)

var quietPaths = []string{"/health", "/version"}

// RequestLogger returns middleware that logs every request with method,
// path, status code, and duration. Health and version probes are skipped.
func RequestLogger(log *logger.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if slices.Contains(quietPaths, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			sw := newStatusWriter(w)
			next.ServeHTTP(sw, r)

			fields := logger.MergeWithDuration(logger.Fields(
				logger.FieldMethod, r.Method,
				"path", r.URL.Path,
				logger.FieldStatus, sw.status,
			), time.Since(start))
			if id := r.Header.Get(HeaderRequestID); id != "" {
				fields[logger.FieldRequestID] = id
			}
			logByStatus(log, fields, sw.status)
		})
	}
}

// logByStatus logs request fields at a level chosen by HTTP status code.
func logByStatus(log *logger.Logger, fields map[string]interface{}, status int) {
	switch {
	case status >= 500:
		log.Error("Request completed", fields)
	case status >= 400:
		log.Warn("Request completed", fields)
	default:
		log.Debug("Request completed", fields)
	}
}
