package ports

import (
	"context"

	"github.com/whiskerworks/cat-registry/internal/core/domain"
)

// CreateCatInput carries the fields accepted when registering a cat. The
// owner is always the authenticated principal, never client-supplied.
type CreateCatInput struct {
	Name  string
	Age   int
	Breed string
}

// UpdateCatInput carries a partial update; nil fields are left unchanged.
type UpdateCatInput struct {
	Name  *string
	Age   *int
	Breed *string
}

// CatService defines the owned-resource use cases. Every operation receives
// the principal attached by the auth middleware; ownership is re-checked
// against the loaded record, not inferred from role.
type CatService interface {
	Create(ctx context.Context, p domain.Principal, in CreateCatInput) (*domain.Cat, error)
	// List filters by ownership: non-admins see only their own cats and get
	// ErrNoCatsFound when they own none; admins see everything.
	List(ctx context.Context, p domain.Principal) ([]*domain.Cat, error)
	Get(ctx context.Context, p domain.Principal, id string) (*domain.Cat, error)
	Update(ctx context.Context, p domain.Principal, id string, in UpdateCatInput) (*domain.Cat, error)
	Delete(ctx context.Context, p domain.Principal, id string) error
}
