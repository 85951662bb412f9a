// Package token issues and verifies the HS256 bearer tokens that carry an
// account's identity between login and protected requests. Verification is a
// pure computation over the shared secret, so any replica can verify a token
// issued by any other.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the validity window applied when none is configured.
const DefaultTTL = time.Hour

// Verification failure classes. Clients see all three as "unauthenticated";
// the distinction exists for logs and tests.
var (
	ErrMalformed        = errors.New("token malformed")
	ErrSignatureInvalid = errors.New("token signature invalid")
	ErrExpired          = errors.New("token expired")
)

// Claim is the decoded payload of a verified token.
type Claim struct {
	Subject  string // account id
	Username string
	Role     string
}

type tokenClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Codec signs and verifies tokens with a shared symmetric secret. The secret
// is injected once at construction; rotating it invalidates every
// outstanding token.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// Issue signs a claim for the given identity, valid for the codec's TTL.
func (c *Codec) Issue(subject, username, role string) (string, error) {
	now := time.Now().UTC()
	claims := tokenClaims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify parses raw, checks the signature and expiry against the shared
// secret, and returns the embedded claim. Failures are classified as
// ErrMalformed, ErrSignatureInvalid, or ErrExpired.
func (c *Codec) Verify(raw string) (*Claim, error) {
	var claims tokenClaims
	tkn, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrSignatureInvalid
		default:
			return nil, ErrMalformed
		}
	}
	if !tkn.Valid {
		return nil, ErrSignatureInvalid
	}

	return &Claim{
		Subject:  claims.Subject,
		Username: claims.Username,
		Role:     claims.Role,
	}, nil
}
