package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/whiskerworks/cat-registry/internal/core/domain"
)

func TestIssueAndVerify(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)
	verifier := NewVerifier("secret")

	raw, err := issuer.Issue("42", "ana@example.com", domain.RoleUser)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := verifier.Verify(raw)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.Subject != "42" {
		t.Fatalf("expected subject 42, got %q", claims.Subject)
	}
	if claims.Email != "ana@example.com" {
		t.Fatalf("unexpected email claim: %q", claims.Email)
	}
	if claims.Role != domain.RoleUser {
		t.Fatalf("unexpected role claim: %q", claims.Role)
	}

	p := claims.Principal()
	if p.ID != "42" || p.Email != "ana@example.com" || p.Role != domain.RoleUser {
		t.Fatalf("unexpected principal: %+v", p)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := NewIssuer("secret-a", time.Hour)
	verifier := NewVerifier("secret-b")

	raw, err := issuer.Issue("1", "a@x.com", domain.RoleUser)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := verifier.Verify(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_Expired(t *testing.T) {
	// NewIssuer clamps non-positive TTLs, so build the expired token by hand.
	now := time.Now().UTC()
	claims := Claims{
		Email: "a@x.com",
		Role:  domain.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := NewVerifier("secret").Verify(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	verifier := NewVerifier("secret")
	for _, raw := range []string{"", "garbage", "a.b.c"} {
		if _, err := verifier.Verify(raw); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", raw, err)
		}
	}
}

func TestVerify_RejectsUnexpectedAlgorithm(t *testing.T) {
	// alg=none must never validate, regardless of payload.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "1"})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := NewVerifier("secret").Verify(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for alg=none, got %v", err)
	}
}
