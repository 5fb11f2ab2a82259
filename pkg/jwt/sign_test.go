package jwt_test

import (
	"time"

	"payoutd/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	. "github.com/onsi/gomega"
)

type tokenInfo struct {
	Issuer     string
	Subject    string
	Body       []byte
	Expiration time.Duration
}

// sign builds a signature the way QStash does for a delivery.
func sign(key []byte, info tokenInfo) string {
	now := time.Now()
	claims := gojwt.MapClaims{
		"iss":  info.Issuer,
		"sub":  info.Subject,
		"iat":  now.Unix(),
		"nbf":  now.Unix(),
		"exp":  now.Add(info.Expiration).Unix(),
		"jti":  uuid.NewString(),
		"body": jwt.BodyHash(info.Body),
	}

	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString(key)
	Expect(err).NotTo(HaveOccurred())
	return token
}
