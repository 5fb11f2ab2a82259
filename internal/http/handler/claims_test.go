package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"payoutd/internal/claim"
	"payoutd/internal/core"
	"payoutd/internal/http/handler"
	"payoutd/internal/http/handler/fake"
	"payoutd/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("ClaimHandler", func() {
	var (
		ch          *handler.ClaimHandler
		fakeClaims  *fake.ClaimService
		w           *httptest.ResponseRecorder
		req         *http.Request
		body        string
		target      string
		result      claim.PayoutResult
		fakeErr     error
	)

	decodeResult := func() claim.PayoutResult {
		var res claim.PayoutResult
		Expect(json.NewDecoder(w.Body).Decode(&res)).To(Succeed())
		return res
	}

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeClaims = new(fake.ClaimService)
		w = httptest.NewRecorder()
		ch = handler.NewClaimHandler(zap.NewNop().Sugar(), payload.Decoder{}, fakeClaims)
	})

	Describe("HandleCreateClaim", func() {
		BeforeEach(func() {
			target = "/claims"
			body = `{"userKey":"user-1","recipientAddress":"0x00000000000000000000000000000000000000a1","eventId":"launch","source":"web"}`
			result = claim.PayoutResult{ClaimID: "c1", Status: claim.StatusSuccess, TxHash: "0xpaid"}
			fakeClaims.EnqueueReturns(result, nil)
		})

		JustBeforeEach(func() {
			req = httptest.NewRequest("POST", target, strings.NewReader(body))
			ch.HandleCreateClaim(w, req)
		})

		When("the payout confirms in time", func() {
			It("returns 200 with the hash", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(decodeResult()).To(Equal(result))

				_, msg := fakeClaims.EnqueueArgsForCall(0)
				Expect(msg).To(Equal(core.ClaimMessage{
					UserKey:          "user-1",
					RecipientAddress: "0x00000000000000000000000000000000000000a1",
					EventID:          "launch",
					Source:           "web",
				}))
			})
		})

		When("the caller does not wait", func() {
			BeforeEach(func() {
				target = "/claims?wait=false"
				fakeClaims.SubmitReturns(claim.PayoutResult{ClaimID: "c1", Status: claim.StatusProcessing}, nil)
			})

			It("returns 202 with the claim id", func() {
				Expect(w.Code).To(Equal(http.StatusAccepted))
				Expect(decodeResult().ClaimID).To(Equal("c1"))
				Expect(fakeClaims.EnqueueCallCount()).To(BeZero())
				Expect(fakeClaims.SubmitCallCount()).To(Equal(1))
			})
		})

		DescribeTable("outcome mapping",
			func(err error, code int) {
				fakeClaims.EnqueueReturns(claim.PayoutResult{ClaimID: "c1", Status: claim.StatusProcessing}, err)
				r := httptest.NewRequest("POST", "/claims", strings.NewReader(body))
				rec := httptest.NewRecorder()
				ch.HandleCreateClaim(rec, r)
				Expect(rec.Code).To(Equal(code))
			},
			Entry("still processing", core.ErrProcessingTimeout, http.StatusAccepted),
			Entry("handed to recovery", core.ErrRetryScheduled, http.StatusAccepted),
			Entry("already claimed", core.ErrAlreadyClaimed, http.StatusConflict),
			Entry("in progress", core.ErrClaimInProgress, http.StatusConflict),
			Entry("bad address", fmt.Errorf("%w: %q", core.ErrInvalidAddress, "0x0"), http.StatusBadRequest),
			Entry("unknown source", core.ErrUnknownSource, http.StatusBadRequest),
			Entry("payout failed", fmt.Errorf("%w: insufficient token balance", core.ErrPayoutFailed), http.StatusInternalServerError),
			Entry("store down", errors.New("redis down"), http.StatusInternalServerError),
		)

		When("the claim was already paid", func() {
			BeforeEach(func() {
				fakeClaims.EnqueueReturns(claim.PayoutResult{Status: claim.StatusAlreadyClaimed}, core.ErrAlreadyClaimed)
			})

			It("explains the conflict", func() {
				Expect(w.Code).To(Equal(http.StatusConflict))
				res := decodeResult()
				Expect(res.Status).To(Equal(claim.StatusAlreadyClaimed))
				Expect(res.Reason).To(Equal(core.ErrAlreadyClaimed.Error()))
			})
		})

		When("something unexpected fails", func() {
			BeforeEach(func() {
				fakeClaims.EnqueueReturns(claim.PayoutResult{}, fakeErr)
			})

			It("does not leak the error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})

		When("the payload is invalid", func() {
			BeforeEach(func() {
				body = `{"userKey":"user-1","recipientAddress":"nope","eventId":"launch","source":"web"}`
			})

			It("returns 400 without touching the queue", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeClaims.EnqueueCallCount()).To(BeZero())
			})
		})

		When("the payload has unknown fields", func() {
			BeforeEach(func() {
				body = `{"userKey":"user-1","amount":"1000"}`
			})

			It("returns 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("the validator fails", func() {
			var fakeValidator *fake.RequestValidator

			BeforeEach(func() {
				fakeValidator = new(fake.RequestValidator)
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
				ch = handler.NewClaimHandler(zap.NewNop().Sugar(), fakeValidator, fakeClaims)
			})

			It("returns 400 with the reason", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
				argReq, _ := fakeValidator.DecodeJSONPayloadArgsForCall(0)
				Expect(argReq).To(Equal(req))
			})
		})
	})

	Describe("HandleClaimStatus", func() {
		BeforeEach(func() {
			target = "/claims/status?userKey=user-1&eventId=launch"
			fakeClaims.StatusReturns(claim.PayoutResult{ClaimID: "c1", Status: claim.StatusProcessing}, nil)
		})

		JustBeforeEach(func() {
			req = httptest.NewRequest("GET", target, nil)
			ch.HandleClaimStatus(w, req)
		})

		It("reports the claim status", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decodeResult().Status).To(Equal(claim.StatusProcessing))

			_, userKey, eventID := fakeClaims.StatusArgsForCall(0)
			Expect(userKey).To(Equal("user-1"))
			Expect(eventID).To(Equal("launch"))
		})

		When("a parameter is missing", func() {
			BeforeEach(func() {
				target = "/claims/status?userKey=user-1"
			})

			It("returns 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeClaims.StatusCallCount()).To(BeZero())
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeClaims.StatusReturns(claim.PayoutResult{}, fakeErr)
			})

			It("returns 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})
})
