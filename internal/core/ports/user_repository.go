package ports

import (
	"context"

	"github.com/whiskerworks/cat-registry/internal/core/domain"
)

// UserRepository defines persistence for credential records.
//
// The store owns the real uniqueness guarantee for email: the service-level
// duplicate check before Create is a best-effort early rejection, and Create
// must return domain.ErrUserExists when the unique constraint fires.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
