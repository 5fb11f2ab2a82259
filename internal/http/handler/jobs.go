package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"payoutd/internal/dispatch"

	"go.uber.org/zap"
)

var DeliverJob = "POST /jobs"

const (
	SignatureHeader = "Upstash-Signature"
	maxJobBytes     = 16 << 10
)

// JobHandler receives delayed jobs pushed back by the dispatch service.
// Every job must carry a valid signature. 400 drops the job, any 5xx asks
// for redelivery.
type JobHandler struct {
	logs        *zap.SugaredLogger
	dispatcher  JobDispatcher
	verifier    SignatureVerifier
	callbackURL string
}

func NewJobHandler(logger *zap.SugaredLogger, dispatcher JobDispatcher, verifier SignatureVerifier, callbackURL string) *JobHandler {
	return &JobHandler{
		logs:        logger,
		dispatcher:  dispatcher,
		verifier:    verifier,
		callbackURL: callbackURL,
	}
}

func (h *JobHandler) HandleJob(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxJobBytes))
	if err != nil {
		respond(h.logs, w, Response{Message: "Job rejected", Error: "unreadable body"}, http.StatusBadRequest, requestId)
		return
	}

	if !h.verifier.Enabled() {
		respond(h.logs, w, Response{Message: "Job rejected", Error: "job delivery is not configured"}, http.StatusServiceUnavailable, requestId)
		h.logs.Errorw("job refused, no signing keys configured",
			"handler", DeliverJob,
			"request_id", requestId)
		return
	}

	signature := r.Header.Get(SignatureHeader)
	if signature == "" {
		respond(h.logs, w, Response{Message: "Job rejected", Error: SignatureHeader + " header is required"}, http.StatusUnauthorized, requestId)
		return
	}
	if err := h.verifier.VerifyRequest(signature, h.callbackURL, body); err != nil {
		respond(h.logs, w, Response{Message: "Job rejected", Error: "invalid signature"}, http.StatusUnauthorized, requestId)
		h.logs.Warnw("job signature rejected",
			"error", err,
			"handler", DeliverJob,
			"request_id", requestId)
		return
	}

	var job dispatch.Job
	if err := json.Unmarshal(body, &job); err != nil {
		respond(h.logs, w, Response{Message: "Job rejected", Error: "malformed job"}, http.StatusBadRequest, requestId)
		h.logs.Errorw("dropping malformed job",
			"error", err,
			"handler", DeliverJob,
			"request_id", requestId)
		return
	}

	// The dispatch service may hang up before a payout is settled.
	ctx := context.WithoutCancel(r.Context())
	err = h.dispatcher.Dispatch(ctx, job)
	switch {
	case errors.Is(err, dispatch.ErrMalformedJob):
		respond(h.logs, w, Response{Message: "Job rejected", Error: err.Error()}, http.StatusBadRequest, requestId)
		h.logs.Errorw("dropping malformed job",
			"job_id", job.ID,
			"error", err,
			"handler", DeliverJob,
			"request_id", requestId)
	case err != nil:
		respond(h.logs, w, Response{Message: "Job failed", Error: "retry later"}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("job failed",
			"job_id", job.ID,
			"kind", job.Kind,
			"error", err,
			"handler", DeliverJob,
			"request_id", requestId)
	default:
		respond(h.logs, w, Response{Message: "Job handled"}, http.StatusOK, requestId)
	}
}
