package ports

import (
	"context"

	"github.com/whiskerworks/cat-registry/internal/core/domain"
)

// CatRepository defines persistence operations for cats. All reads exclude
// soft-deleted documents.
type CatRepository interface {
	Create(ctx context.Context, cat *domain.Cat) (*domain.Cat, error)
	FindByID(ctx context.Context, id string) (*domain.Cat, error)
	// List returns cats for one owner when ownerEmail is non-empty, or all
	// cats when it is empty (admin scope).
	List(ctx context.Context, ownerEmail string) ([]*domain.Cat, error)
	Update(ctx context.Context, cat *domain.Cat) (*domain.Cat, error)
	// SoftDelete stamps deleted_at; the document is never removed.
	SoftDelete(ctx context.Context, id string) error
}
