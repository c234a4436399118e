package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/whiskerworks/cat-registry/internal/core/domain"
	"github.com/whiskerworks/cat-registry/internal/core/ports"
	"github.com/whiskerworks/cat-registry/internal/pkg/token"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = user.Email
	}
	r.users[copy.Email] = cloneUser(copy)
	return cloneUser(copy), nil
}

func newAuthService(repo ports.UserRepository) *AuthService {
	return NewAuthService(repo, token.NewIssuer("secret", time.Hour), zerolog.Nop())
}

func TestAuthService_Signup_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	user, err := svc.Signup(context.Background(), ports.SignupInput{
		Name:     "Ana",
		Email:    "a@x.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role user, got %q", user.Role)
	}
	if user.PasswordHash != "" {
		t.Fatalf("returned user must not carry the password hash")
	}

	stored := repo.users["a@x.com"]
	if stored.PasswordHash == "secret1" {
		t.Fatalf("expected password to be hashed in the store")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Signup_ExplicitAdminRole(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	user, err := svc.Signup(context.Background(), ports.SignupInput{
		Name:     "Root",
		Email:    "root@x.com",
		Password: "secret1",
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if user.Role != domain.RoleAdmin {
		t.Fatalf("expected role admin, got %q", user.Role)
	}
}

func TestAuthService_Signup_UnknownRole(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if _, err := svc.Signup(context.Background(), ports.SignupInput{
		Name:     "Bad",
		Email:    "bad@x.com",
		Password: "secret1",
		Role:     "superuser",
	}); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown role, got %v", err)
	}
}

func TestAuthService_Signup_Duplicate(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if _, err := svc.Signup(context.Background(), ports.SignupInput{Name: "Ana", Email: "a@x.com", Password: "secret1"}); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}
	if _, err := svc.Signup(context.Background(), ports.SignupInput{Name: "Ana2", Email: "a@x.com", Password: "other"}); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if _, err := svc.Signup(context.Background(), ports.SignupInput{Name: "Ana", Email: "a@x.com", Password: "secret1"}); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	tkn, err := svc.Login(context.Background(), "a@x.com", "secret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if tkn == "" {
		t.Fatalf("expected token, got empty string")
	}

	claims, err := token.NewVerifier("secret").Verify(tkn)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.Email != "a@x.com" {
		t.Fatalf("expected email claim a@x.com, got %q", claims.Email)
	}
	if claims.Role != domain.RoleUser {
		t.Fatalf("expected role claim user, got %q", claims.Role)
	}
}

func TestAuthService_Login_IndistinguishableFailures(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if _, err := svc.Signup(context.Background(), ports.SignupInput{Name: "Ana", Email: "a@x.com", Password: "secret1"}); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	_, wrongPass := svc.Login(context.Background(), "a@x.com", "wrong")
	_, unknownUser := svc.Login(context.Background(), "ghost@x.com", "whatever")

	if wrongPass != domain.ErrInvalidCredentials {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if unknownUser != domain.ErrInvalidCredentials {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownUser)
	}
	if wrongPass.Error() != unknownUser.Error() {
		t.Fatalf("failure messages must be identical: %q vs %q", wrongPass, unknownUser)
	}
}

func TestAuthService_Profile(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	created, err := svc.Signup(context.Background(), ports.SignupInput{Name: "Ana", Email: "a@x.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	user, err := svc.Profile(context.Background(), domain.Principal{ID: created.ID, Email: "a@x.com", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("profile failed: %v", err)
	}
	if user.Email != "a@x.com" || user.Name != "Ana" {
		t.Fatalf("unexpected profile: %+v", user)
	}
	if user.PasswordHash != "" {
		t.Fatalf("profile must not expose the password hash")
	}
}
