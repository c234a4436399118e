package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/whiskerworks/cat-registry/internal/core/domain"
	"github.com/whiskerworks/cat-registry/internal/core/ports"
	"github.com/whiskerworks/cat-registry/internal/pkg/password"
	"github.com/whiskerworks/cat-registry/internal/pkg/token"
)

// AuthService implements signup, login, and profile lookup.
type AuthService struct {
	repo   ports.UserRepository
	tokens *token.Issuer
	log    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens *token.Issuer, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, log: log}
}

// Signup creates a new credential record. The duplicate-email lookup here is
// best effort; the repository's unique index is the authoritative backstop
// for two concurrent signups racing on the same email.
func (s *AuthService) Signup(ctx context.Context, in ports.SignupInput) (*domain.User, error) {
	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidCredentials
	}

	existing, err := s.repo.FindByEmail(ctx, in.Email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUserExists
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", created.Email).Str("role", string(created.Role)).Msg("user signed up")

	created.PasswordHash = ""
	return created, nil
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password collapse to the same ErrInvalidCredentials so a caller
// cannot probe which emails exist.
func (s *AuthService) Login(ctx context.Context, email, pass string) (string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !password.Verify(pass, user.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	tkn, err := s.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return "", err
	}

	s.log.Info().Str("email", user.Email).Msg("user logged in")
	return tkn, nil
}

// Profile returns the stored record behind the authenticated principal,
// hash stripped.
func (s *AuthService) Profile(ctx context.Context, p domain.Principal) (*domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, p.Email)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}
