package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/whiskerworks/cat-registry/internal/api/policy"
	"github.com/whiskerworks/cat-registry/internal/core/domain"
	"github.com/whiskerworks/cat-registry/internal/pkg/token"
)

func testPolicies() *policy.Registry {
	r := policy.NewRegistry()
	r.MarkPublic("POST /auth/login")
	r.RequireRole("cats", domain.RoleUser)
	return r
}

func newAuthContext(e *echo.Echo, method, routePath, header string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(routePath)
	return c, rec
}

func TestAuth_PublicRouteSkipsTokenInspection(t *testing.T) {
	e := echo.New()
	// A verifier with a secret no token was signed with: if the middleware
	// inspected tokens on public routes, the garbage header would fail.
	mw := Auth(token.NewVerifier("unused"), testPolicies())
	c, rec := newAuthContext(e, http.MethodPost, "/auth/login", "Bearer garbage")

	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		if c.Get(PrincipalKey) != nil {
			t.Fatalf("public route must not attach a principal")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	e := echo.New()
	mw := Auth(token.NewVerifier("secret"), testPolicies())
	c, rec := newAuthContext(e, http.MethodGet, "/cats", "")

	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	e := echo.New()
	mw := Auth(token.NewVerifier("secret"), testPolicies())
	c, rec := newAuthContext(e, http.MethodGet, "/cats", "Token abc")

	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	e := echo.New()
	mw := Auth(token.NewVerifier("secret"), testPolicies())
	c, rec := newAuthContext(e, http.MethodGet, "/cats", "Bearer not-a-token")

	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_ValidTokenAttachesPrincipal(t *testing.T) {
	e := echo.New()
	signed, err := token.NewIssuer("secret", time.Hour).Issue("42", "ana@x.com", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	mw := Auth(token.NewVerifier("secret"), testPolicies())
	c, rec := newAuthContext(e, http.MethodGet, "/cats", "Bearer "+signed)

	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		p, ok := c.Get(PrincipalKey).(domain.Principal)
		if !ok {
			t.Fatalf("principal not attached")
		}
		if p.ID != "42" || p.Email != "ana@x.com" || p.Role != domain.RoleUser {
			t.Fatalf("unexpected principal: %+v", p)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
