package ports

import (
	"context"

	"github.com/whiskerworks/cat-registry/internal/core/domain"
)

// BreedService defines the shared-resource use cases. Breeds carry no owner;
// access control is handled entirely by the role middleware upstream.
type BreedService interface {
	Create(ctx context.Context, name string) (*domain.Breed, error)
	List(ctx context.Context) ([]*domain.Breed, error)
	Get(ctx context.Context, id string) (*domain.Breed, error)
	Update(ctx context.Context, id, name string) (*domain.Breed, error)
	Delete(ctx context.Context, id string) error
}
