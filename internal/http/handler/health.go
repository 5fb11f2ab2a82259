package handler

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

var Healthz = "GET /healthz"

const healthTimeout = 2 * time.Second

type HealthHandler struct {
	logs   *zap.SugaredLogger
	checks map[string]HealthCheck
}

func NewHealthHandler(logger *zap.SugaredLogger, checks map[string]HealthCheck) *HealthHandler {
	return &HealthHandler{
		logs:   logger,
		checks: checks,
	}
}

func (h *HealthHandler) HandleHealthz(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	status := make(map[string]string, len(h.checks))
	code := http.StatusOK
	for name, check := range h.checks {
		if err := check.Ping(ctx); err != nil {
			status[name] = err.Error()
			code = http.StatusServiceUnavailable
			h.logs.Warnw("health check failed",
				"dependency", name,
				"error", err,
				"request_id", requestId)
			continue
		}
		status[name] = "ok"
	}

	respond(h.logs, w, Response{Data: status}, code, requestId)
}
