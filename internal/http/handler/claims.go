package handler

import (
	"errors"
	"fmt"
	"net/http"

	"payoutd/internal/claim"
	"payoutd/internal/core"
	"payoutd/internal/http/payload"

	"go.uber.org/zap"
)

var (
	CreateClaim = "POST /claims"
	ClaimStatus = "GET /claims/status"
)

type ClaimHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	claims           ClaimService
}

func NewClaimHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, claimService ClaimService) *ClaimHandler {
	return &ClaimHandler{
		logs:             logger,
		requestValidator: requestValidator,
		claims:           claimService,
	}
}

// HandleCreateClaim waits for the payout outcome unless called with wait=false.
func (h *ClaimHandler) HandleCreateClaim(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.ClaimRequest
	err := h.requestValidator.DecodeJSONPayload(r, &req)
	if err == nil {
		err = req.Validate()
	}
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Claim rejected",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CreateClaim,
			"request_id", requestId)
		return
	}

	var res claim.PayoutResult
	if r.URL.Query().Get("wait") == "false" {
		res, err = h.claims.Submit(r.Context(), req.ToMessage())
	} else {
		res, err = h.claims.Enqueue(r.Context(), req.ToMessage())
	}

	switch {
	case err == nil && res.Status == claim.StatusSuccess:
		h.logs.Infow("claim paid",
			"claim_id", res.ClaimID,
			"tx_hash", res.TxHash,
			"request_id", requestId)
		respond(h.logs, w, res, http.StatusOK, requestId)

	case err == nil, errors.Is(err, core.ErrProcessingTimeout), errors.Is(err, core.ErrRetryScheduled):
		res.Status = claim.StatusProcessing
		respond(h.logs, w, res, http.StatusAccepted, requestId)

	case errors.Is(err, core.ErrInvalidAddress), errors.Is(err, core.ErrUnknownSource):
		respond(h.logs, w, Response{
			Message: "Claim rejected",
			Error:   err.Error(),
		}, http.StatusBadRequest, requestId)

	case errors.Is(err, core.ErrAlreadyClaimed), errors.Is(err, core.ErrClaimInProgress):
		res.Reason = err.Error()
		respond(h.logs, w, res, http.StatusConflict, requestId)

	case errors.Is(err, core.ErrPayoutFailed):
		res.Status = claim.StatusFailed
		if res.Reason == "" {
			res.Reason = err.Error()
		}
		respond(h.logs, w, res, http.StatusInternalServerError, requestId)
		h.logs.Errorw("payout failed",
			"claim_id", res.ClaimID,
			"error", err,
			"handler", CreateClaim,
			"request_id", requestId)

	default:
		respond(h.logs, w, Response{
			Message: oopsErr,
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to accept claim",
			"error", err,
			"handler", CreateClaim,
			"request_id", requestId)
	}
}

func (h *ClaimHandler) HandleClaimStatus(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	query := r.URL.Query()
	req := payload.StatusRequest{
		UserKey: query.Get("userKey"),
		EventID: query.Get("eventId"),
	}
	if err := req.Validate(); err != nil {
		respond(h.logs, w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("validate query parameters: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		return
	}

	res, err := h.claims.Status(r.Context(), req.UserKey, req.EventID)
	if err != nil {
		respond(h.logs, w, Response{
			Message: oopsErr,
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to get claim status",
			"error", err,
			"handler", ClaimStatus,
			"request_id", requestId)
		return
	}

	respond(h.logs, w, res, http.StatusOK, requestId)
}
