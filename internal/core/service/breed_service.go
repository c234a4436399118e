package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/whiskerworks/cat-registry/internal/core/domain"
	"github.com/whiskerworks/cat-registry/internal/core/ports"
)

// BreedService implements breed CRUD with a read-through cache on the list.
// Breeds are shared across users; role gating happens upstream.
type BreedService struct {
	repo  ports.BreedRepository
	cache ports.BreedCache
	log   zerolog.Logger
}

// NewBreedService returns a BreedService. cache may be nil, in which case
// every list goes to the repository.
func NewBreedService(repo ports.BreedRepository, cache ports.BreedCache, log zerolog.Logger) *BreedService {
	return &BreedService{repo: repo, cache: cache, log: log}
}

func (s *BreedService) Create(ctx context.Context, name string) (*domain.Breed, error) {
	if existing, err := s.repo.FindByName(ctx, name); err == nil && existing != nil {
		return nil, domain.ErrBreedExists
	} else if err != nil && !errors.Is(err, domain.ErrBreedNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Breed{
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.log.Info().Str("breed_id", created.ID).Str("name", created.Name).Msg("breed created")
	return created, nil
}

func (s *BreedService) List(ctx context.Context) ([]*domain.Breed, error) {
	if s.cache != nil {
		if breeds, ok := s.cache.GetAll(ctx); ok {
			return breeds, nil
		}
	}

	breeds, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetAll(ctx, breeds)
	}
	return breeds, nil
}

func (s *BreedService) Get(ctx context.Context, id string) (*domain.Breed, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *BreedService) Update(ctx context.Context, id, name string) (*domain.Breed, error) {
	breed, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	breed.Name = name
	breed.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, breed)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.log.Info().Str("breed_id", id).Msg("breed updated")
	return updated, nil
}

func (s *BreedService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx)
	s.log.Info().Str("breed_id", id).Msg("breed deleted")
	return nil
}

func (s *BreedService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}
