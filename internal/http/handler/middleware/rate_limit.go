package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net"
	"net/http"
	"strconv"

	"payoutd/pkg/limiter"

	"github.com/go-redis/redis_rate/v10"
	"go.uber.org/zap"
)

type RateLimitMiddleware struct {
	logs    *zap.SugaredLogger
	limiter Limiter
	limit   redis_rate.Limit
}

func NewRateLimitMiddleware(logger *zap.SugaredLogger, limiter Limiter, perMinute int) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		logs:    logger,
		limiter: limiter,
		limit:   redis_rate.PerMinute(perMinute),
	}
}

// Limit counts requests per API key, or per client address without one.
// Limiter outages let the request through.
func (m *RateLimitMiddleware) Limit(next http.Handler) http.Handler {
	if m.limit.Rate <= 0 {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := m.limiter.Allow(r.Context(), clientKey(r), m.limit)

		var limitErr *limiter.LimitError
		switch {
		case errors.As(err, &limitErr):
			w.Header().Set("Retry-After", strconv.Itoa(int(limitErr.RetryAfter.Seconds())+1))
			reject(w, http.StatusTooManyRequests, "Too many requests", err.Error())
			return
		case err != nil:
			m.logs.Warnw("rate limiter unavailable",
				"error", err,
				"request_id", RequestIDFrom(r.Context()))
		}

		next.ServeHTTP(w, r)
	})
}

func clientKey(r *http.Request) string {
	if key := r.Header.Get(APIKeyHeader); key != "" {
		sum := sha256.Sum256([]byte(key))
		return "key:" + hex.EncodeToString(sum[:8])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}
