package handler

import (
	"context"
	"net/http"

	"payoutd/internal/claim"
	"payoutd/internal/core"
	"payoutd/internal/dispatch"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name ClaimService . ClaimService
type ClaimService interface {
	Enqueue(ctx context.Context, msg core.ClaimMessage) (claim.PayoutResult, error)
	Submit(ctx context.Context, msg core.ClaimMessage) (claim.PayoutResult, error)
	Status(ctx context.Context, userKey, eventID string) (claim.PayoutResult, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name JobDispatcher . JobDispatcher
type JobDispatcher interface {
	Dispatch(ctx context.Context, job dispatch.Job) error
}

//counterfeiter:generate -o fake -fake-name SignatureVerifier . SignatureVerifier
type SignatureVerifier interface {
	Enabled() bool
	VerifyRequest(token, url string, body []byte) error
}

//counterfeiter:generate -o fake -fake-name HealthCheck . HealthCheck
type HealthCheck interface {
	Ping(ctx context.Context) error
}
