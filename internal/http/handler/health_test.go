package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"

	"payoutd/internal/http/handler"
	"payoutd/internal/http/handler/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("HealthHandler", func() {
	var (
		db    *fake.HealthCheck
		redis *fake.HealthCheck
		hh    *handler.HealthHandler
		w     *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		db = new(fake.HealthCheck)
		redis = new(fake.HealthCheck)
		hh = handler.NewHealthHandler(zap.NewNop().Sugar(), map[string]handler.HealthCheck{
			"postgres": db,
			"redis":    redis,
		})
		w = httptest.NewRecorder()
	})

	It("is healthy when every dependency answers", func() {
		hh.HandleHealthz(w, httptest.NewRequest("GET", "/healthz", nil))
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(db.PingCallCount()).To(Equal(1))
		Expect(redis.PingCallCount()).To(Equal(1))
	})

	It("is unavailable when a dependency is down", func() {
		redis.PingReturns(errors.New("connection refused"))
		hh.HandleHealthz(w, httptest.NewRequest("GET", "/healthz", nil))
		Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
		Expect(w.Body.String()).To(ContainSubstring("connection refused"))
	})
})
