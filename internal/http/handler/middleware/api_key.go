package middleware

import (
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const APIKeyHeader = "X-API-Key"

type APIKeyMiddleware struct {
	logs *zap.SugaredLogger
	hash []byte
}

// NewAPIKeyMiddleware checks callers against a bcrypt hash. An empty hash
// turns the check off.
func NewAPIKeyMiddleware(logger *zap.SugaredLogger, hash string) *APIKeyMiddleware {
	return &APIKeyMiddleware{
		logs: logger,
		hash: []byte(hash),
	}
}

func (m *APIKeyMiddleware) Protect(next http.Handler) http.Handler {
	if len(m.hash) == 0 {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(APIKeyHeader)
		if key == "" {
			reject(w, http.StatusUnauthorized, "Authentication failed", APIKeyHeader+" header is required")
			return
		}

		if err := bcrypt.CompareHashAndPassword(m.hash, []byte(key)); err != nil {
			reject(w, http.StatusUnauthorized, "Authentication failed", "invalid api key")
			m.logs.Warnw("rejected api key",
				"path", r.URL.Path,
				"request_id", RequestIDFrom(r.Context()))
			return
		}

		next.ServeHTTP(w, r)
	})
}
