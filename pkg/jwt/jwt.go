package jwt

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
)

// Issuer is the iss claim QStash puts on its signatures.
const Issuer = "Upstash"

var TimeNow = time.Now
var ErrTokenNotValid error = errors.New("token is not valid")
var ErrTokenExpired error = errors.New("token expired")
var ErrSignatureMismatch error = errors.New("signature does not match request")

// JWTService verifies HS256 request signatures against any of the configured
// keys, so keys can be rotated.
type JWTService struct {
	secrets [][]byte
}

func NewJWTService(secrets ...[]byte) *JWTService {
	keys := make([][]byte, 0, len(secrets))
	for _, s := range secrets {
		if len(s) > 0 {
			keys = append(keys, s)
		}
	}
	return &JWTService{
		secrets: keys,
	}
}

// Enabled reports whether at least one key is configured.
func (gen *JWTService) Enabled() bool {
	return len(gen.secrets) > 0
}

func (gen *JWTService) Validate(token string) (jwt.MapClaims, error) {
	var errs error
	for _, secret := range gen.secrets {
		claims, err := validate(token, secret)
		if err == nil {
			return claims, nil
		}
		errs = errors.Join(errs, err)
	}
	if errs == nil {
		return nil, ErrTokenNotValid
	}
	return nil, errs
}

// VerifyRequest checks a callback signature against the destination URL and
// the raw request body.
func (gen *JWTService) VerifyRequest(token, url string, body []byte) error {
	claims, err := gen.Validate(token)
	if err != nil {
		return err
	}

	if iss, _ := claims["iss"].(string); iss != Issuer {
		return fmt.Errorf("%w: issuer %q", ErrSignatureMismatch, iss)
	}
	if sub, _ := claims["sub"].(string); url != "" && sub != url {
		return fmt.Errorf("%w: subject %q", ErrSignatureMismatch, sub)
	}

	hash, _ := claims["body"].(string)
	if strings.TrimRight(hash, "=") != BodyHash(body) {
		return fmt.Errorf("%w: body hash", ErrSignatureMismatch)
	}
	return nil
}

// BodyHash is the unpadded base64url SHA-256 of body.
func BodyHash(body []byte) string {
	sum := sha256.Sum256(body)
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

func validate(token string, secret []byte) (jwt.MapClaims, error) {
	jwtToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("jwt parse: %w: %w", err, ErrTokenNotValid)
	}

	if !jwtToken.Valid {
		return nil, ErrTokenNotValid
	}

	claims, ok := jwtToken.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("jwt claims type assertion failed")
	}

	if expVal, ok := claims["exp"].(float64); ok {
		if int64(expVal) < TimeNow().Unix() {
			return nil, fmt.Errorf("token expired at %v: %w", time.Unix(int64(expVal), 0), ErrTokenExpired)
		}
	}

	return claims, nil
}
