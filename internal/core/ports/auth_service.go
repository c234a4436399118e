package ports

import (
	"context"

	"github.com/whiskerworks/cat-registry/internal/core/domain"
)

// SignupInput carries the fields accepted at signup. Role is optional and
// defaults to domain.RoleUser.
type SignupInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

type AuthService interface {
	// Signup creates a credential record. The returned user never carries
	// the password hash.
	Signup(ctx context.Context, in SignupInput) (*domain.User, error)
	// Login verifies credentials and returns a signed bearer token. Unknown
	// email and wrong password fail identically with ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, error)
	// Profile returns the stored record for the authenticated principal.
	Profile(ctx context.Context, p domain.Principal) (*domain.User, error)
}
