// Package token issues and verifies the stateless bearer tokens used for
// authentication. Tokens are HS256 JWTs signed with a process-wide secret;
// validity is purely a function of signature and expiry, recomputed on every
// request — there is no server-side session record and no revocation.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/whiskerworks/cat-registry/internal/core/domain"
)

// ErrInvalidToken covers bad signature, malformed structure, and expiry.
// Callers get no finer distinction at this layer.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the identity payload carried by every token.
type Claims struct {
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Principal converts verified claims into the request principal.
func (c *Claims) Principal() domain.Principal {
	return domain.Principal{
		ID:    c.Subject,
		Email: c.Email,
		Role:  c.Role,
	}
}

// Issuer signs tokens with a fixed secret and TTL.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue returns a signed token for the given identity. Any process holding
// the same secret can verify it.
func (i *Issuer) Issue(id, email string, role domain.Role) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verifier checks token signatures and expiry.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify parses and validates raw, returning its claims. Every failure mode
// collapses to ErrInvalidToken.
func (v *Verifier) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
