package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/sechive-dev/sechive-web/internal/logger"
)

const requestIdHeader = "X-Request-Id"

// RequestLogger tags every request with an id and logs method, path, and
// duration at debug level.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId := r.Header.Get(requestIdHeader)
		if requestId == "" {
			requestId = uuid.NewString()
		}
		w.Header().Set(requestIdHeader, requestId)

		start := time.Now()
		next.ServeHTTP(w, r)

		logger.Log.Debug("request handled",
			"request_id", requestId,
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start))
	})
}
