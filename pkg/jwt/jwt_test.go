package jwt_test

import (
	"crypto/sha256"
	"encoding/base64"
	"time"

	"payoutd/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	const url = "https://payout.example.com/jobs"

	var (
		current []byte
		next    []byte
		signer  []byte
		body    []byte
	)

	BeforeEach(func() {
		current = []byte("current-key")
		next = []byte("next-key")
		signer = current
		body = []byte(`{"id":"1","kind":"batch_trigger","batchTrigger":{"source":"web"}}`)
	})

	Describe("VerifyRequest", func() {
		var (
			verifier *jwt.JWTService
			info     tokenInfo
		)

		BeforeEach(func() {
			verifier = jwt.NewJWTService(current, next)
			info = tokenInfo{Issuer: jwt.Issuer, Subject: url, Body: body, Expiration: 5 * time.Minute}
		})

		It("accepts a matching signature", func() {
			Expect(verifier.VerifyRequest(sign(signer, info), url, body)).To(Succeed())
		})

		It("accepts a signature made with the next key", func() {
			Expect(verifier.VerifyRequest(sign(next, info), url, body)).To(Succeed())
		})

		It("rejects an unknown key", func() {
			err := verifier.VerifyRequest(sign([]byte("other"), info), url, body)
			Expect(err).To(MatchError(jwt.ErrTokenNotValid))
		})

		It("rejects a tampered body", func() {
			err := verifier.VerifyRequest(sign(signer, info), url, []byte(`{}`))
			Expect(err).To(MatchError(jwt.ErrSignatureMismatch))
		})

		It("rejects a different destination", func() {
			err := verifier.VerifyRequest(sign(signer, info), "https://evil.example.com/jobs", body)
			Expect(err).To(MatchError(jwt.ErrSignatureMismatch))
		})

		It("rejects another issuer", func() {
			info.Issuer = "someone"
			err := verifier.VerifyRequest(sign(signer, info), url, body)
			Expect(err).To(MatchError(jwt.ErrSignatureMismatch))
		})

		It("rejects an expired signature", func() {
			info.Expiration = -time.Minute
			err := verifier.VerifyRequest(sign(signer, info), url, body)
			Expect(err).To(MatchError(jwt.ErrTokenNotValid))
		})

		It("accepts a padded body hash", func() {
			sum := sha256.Sum256(body)
			claims := gojwt.MapClaims{
				"iss":  jwt.Issuer,
				"sub":  url,
				"exp":  time.Now().Add(time.Minute).Unix(),
				"body": base64.URLEncoding.EncodeToString(sum[:]),
			}
			token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString(signer)
			Expect(err).NotTo(HaveOccurred())

			Expect(verifier.VerifyRequest(token, url, body)).To(Succeed())
		})
	})

	Describe("Enabled", func() {
		It("ignores empty keys", func() {
			Expect(jwt.NewJWTService(nil, []byte{}).Enabled()).To(BeFalse())
			Expect(jwt.NewJWTService(nil, next).Enabled()).To(BeTrue())
		})
	})
})
