package ports

import (
	"context"

	"github.com/whiskerworks/cat-registry/internal/core/domain"
)

// BreedRepository defines persistence operations for breeds.
type BreedRepository interface {
	Create(ctx context.Context, breed *domain.Breed) (*domain.Breed, error)
	FindByID(ctx context.Context, id string) (*domain.Breed, error)
	FindByName(ctx context.Context, name string) (*domain.Breed, error)
	List(ctx context.Context) ([]*domain.Breed, error)
	Update(ctx context.Context, breed *domain.Breed) (*domain.Breed, error)
	SoftDelete(ctx context.Context, id string) error
}

// BreedCache is a read-through cache over the breed list. Implementations
// must treat a miss and an unavailable cache identically: the service falls
// back to the repository either way.
type BreedCache interface {
	GetAll(ctx context.Context) ([]*domain.Breed, bool)
	SetAll(ctx context.Context, breeds []*domain.Breed)
	Invalidate(ctx context.Context)
}
