package payload_test

import (
	"net/http/httptest"
	"strings"

	"payoutd/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ClaimRequest", func() {
	var req payload.ClaimRequest

	BeforeEach(func() {
		req = payload.ClaimRequest{
			UserKey:          "user-1",
			RecipientAddress: "0x00000000000000000000000000000000000000a1",
			EventID:          "launch",
			Source:           "web",
		}
	})

	It("accepts a complete claim", func() {
		Expect(req.Validate()).To(Succeed())
	})

	DescribeTable("rejects",
		func(mutate func(*payload.ClaimRequest)) {
			mutate(&req)
			Expect(req.Validate()).NotTo(Succeed())
		},
		Entry("a missing user key", func(r *payload.ClaimRequest) { r.UserKey = "" }),
		Entry("a missing event", func(r *payload.ClaimRequest) { r.EventID = "" }),
		Entry("a missing source", func(r *payload.ClaimRequest) { r.Source = "" }),
		Entry("a short address", func(r *payload.ClaimRequest) { r.RecipientAddress = "0xa1" }),
		Entry("an address without prefix", func(r *payload.ClaimRequest) {
			r.RecipientAddress = "00000000000000000000000000000000000000a1"
		}),
		Entry("an oversized user key", func(r *payload.ClaimRequest) { r.UserKey = strings.Repeat("u", 129) }),
	)

	It("converts to a claim message", func() {
		req.Metadata = map[string]string{"campaign": "spring"}
		msg := req.ToMessage()
		Expect(msg.UserKey).To(Equal("user-1"))
		Expect(msg.RecipientAddress).To(Equal(req.RecipientAddress))
		Expect(msg.Metadata).To(HaveKeyWithValue("campaign", "spring"))
	})
})

var _ = Describe("StatusRequest", func() {
	It("needs both keys", func() {
		Expect(payload.StatusRequest{UserKey: "u", EventID: "e"}.Validate()).To(Succeed())
		Expect(payload.StatusRequest{UserKey: "u"}.Validate()).NotTo(Succeed())
		Expect(payload.StatusRequest{EventID: "e"}.Validate()).NotTo(Succeed())
	})
})

var _ = Describe("Decoder", func() {
	var decoder payload.Decoder

	It("decodes a known payload", func() {
		r := httptest.NewRequest("POST", "/claims", strings.NewReader(`{"userKey":"u","eventId":"e"}`))
		var req payload.ClaimRequest
		Expect(decoder.DecodeJSONPayload(r, &req)).To(Succeed())
		Expect(req.UserKey).To(Equal("u"))
		Expect(req.EventID).To(Equal("e"))
	})

	It("rejects unknown fields", func() {
		r := httptest.NewRequest("POST", "/claims", strings.NewReader(`{"userKey":"u","amount":"100"}`))
		var req payload.ClaimRequest
		Expect(decoder.DecodeJSONPayload(r, &req)).NotTo(Succeed())
	})

	It("rejects broken json", func() {
		r := httptest.NewRequest("POST", "/claims", strings.NewReader(`{"userKey":`))
		var req payload.ClaimRequest
		Expect(decoder.DecodeJSONPayload(r, &req)).NotTo(Succeed())
	})

	It("rejects oversized bodies", func() {
		body := `{"userKey":"` + strings.Repeat("u", 70<<10) + `"}`
		r := httptest.NewRequest("POST", "/claims", strings.NewReader(body))
		var req payload.ClaimRequest
		Expect(decoder.DecodeJSONPayload(r, &req)).NotTo(Succeed())
	})
})
