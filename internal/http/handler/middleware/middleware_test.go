package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	"payoutd/internal/http/handler/middleware"
	"payoutd/internal/http/handler/middleware/fake"
	"payoutd/pkg/limiter"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("Middleware", func() {
	var (
		w      *httptest.ResponseRecorder
		req    *http.Request
		seen   *http.Request
		called int
		next   http.Handler
	)

	BeforeEach(func() {
		w = httptest.NewRecorder()
		req = httptest.NewRequest("POST", "/claims", nil)
		called = 0
		seen = nil
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called++
			seen = r
			w.WriteHeader(http.StatusTeapot)
		})
	})

	Describe("RequestID", func() {
		It("mints an id when the caller sent none", func() {
			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, req)

			id := w.Header().Get(middleware.RequestIDHeader)
			Expect(id).NotTo(BeEmpty())
			Expect(middleware.RequestIDFrom(seen.Context())).To(Equal(id))
		})

		It("keeps the caller's id", func() {
			req.Header.Set(middleware.RequestIDHeader, "abc-123")
			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, req)

			Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal("abc-123"))
			Expect(middleware.RequestIDFrom(seen.Context())).To(Equal("abc-123"))
		})
	})

	Describe("Logging", func() {
		It("passes the response through", func() {
			middleware.NewLoggingMiddleware(zap.NewNop().Sugar()).Logging(next).ServeHTTP(w, req)
			Expect(w.Code).To(Equal(http.StatusTeapot))
			Expect(called).To(Equal(1))
		})
	})

	Describe("APIKey", func() {
		var mw *middleware.APIKeyMiddleware

		BeforeEach(func() {
			hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
			Expect(err).NotTo(HaveOccurred())
			mw = middleware.NewAPIKeyMiddleware(zap.NewNop().Sugar(), string(hash))
		})

		It("lets a valid key through", func() {
			req.Header.Set(middleware.APIKeyHeader, "s3cret")
			mw.Protect(next).ServeHTTP(w, req)
			Expect(w.Code).To(Equal(http.StatusTeapot))
		})

		It("rejects a wrong key", func() {
			req.Header.Set(middleware.APIKeyHeader, "guess")
			mw.Protect(next).ServeHTTP(w, req)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(called).To(BeZero())
		})

		It("rejects a missing key", func() {
			mw.Protect(next).ServeHTTP(w, req)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(w.Body.String()).To(ContainSubstring(middleware.APIKeyHeader))
		})

		It("is off without a hash", func() {
			middleware.NewAPIKeyMiddleware(zap.NewNop().Sugar(), "").Protect(next).ServeHTTP(w, req)
			Expect(w.Code).To(Equal(http.StatusTeapot))
		})
	})

	Describe("RateLimit", func() {
		var (
			fakeLimiter *fake.Limiter
			mw          *middleware.RateLimitMiddleware
		)

		BeforeEach(func() {
			fakeLimiter = new(fake.Limiter)
			mw = middleware.NewRateLimitMiddleware(zap.NewNop().Sugar(), fakeLimiter, 30)
			req.RemoteAddr = "10.0.0.7:5123"
		})

		It("counts requests per client address", func() {
			mw.Limit(next).ServeHTTP(w, req)
			Expect(w.Code).To(Equal(http.StatusTeapot))

			_, key, limit := fakeLimiter.AllowArgsForCall(0)
			Expect(key).To(Equal("ip:10.0.0.7"))
			Expect(limit.Rate).To(Equal(30))
			Expect(limit.Period).To(Equal(time.Minute))
		})

		It("counts requests per api key when one is sent", func() {
			req.Header.Set(middleware.APIKeyHeader, "s3cret")
			mw.Limit(next).ServeHTTP(w, req)

			_, key, _ := fakeLimiter.AllowArgsForCall(0)
			Expect(key).To(HavePrefix("key:"))
			Expect(key).NotTo(ContainSubstring("s3cret"))
		})

		It("answers 429 over the limit", func() {
			fakeLimiter.AllowReturns(&limiter.LimitError{RetryAfter: 1500 * time.Millisecond})
			mw.Limit(next).ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusTooManyRequests))
			Expect(w.Header().Get("Retry-After")).To(Equal("2"))
			Expect(called).To(BeZero())
		})

		It("lets requests through when the limiter fails", func() {
			fakeLimiter.AllowReturns(errors.New("redis down"))
			mw.Limit(next).ServeHTTP(w, req)
			Expect(w.Code).To(Equal(http.StatusTeapot))
		})
	})
})
