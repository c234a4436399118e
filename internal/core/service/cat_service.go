package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/whiskerworks/cat-registry/internal/core/domain"
	"github.com/whiskerworks/cat-registry/internal/core/ports"
)

// CatService implements the owned-resource use cases. The ownership check
// runs after the record is loaded: the owner field is only known once the
// record exists, and role alone is not sufficient at that point.
type CatService struct {
	cats   ports.CatRepository
	breeds ports.BreedRepository
	log    zerolog.Logger
}

func NewCatService(cats ports.CatRepository, breeds ports.BreedRepository, log zerolog.Logger) *CatService {
	return &CatService{cats: cats, breeds: breeds, log: log}
}

// Create registers a cat owned by the calling principal. The referenced
// breed must exist.
func (s *CatService) Create(ctx context.Context, p domain.Principal, in ports.CreateCatInput) (*domain.Cat, error) {
	breed, err := s.breeds.FindByName(ctx, in.Breed)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	cat := &domain.Cat{
		Name:       in.Name,
		Age:        in.Age,
		Breed:      breed.Name,
		OwnerEmail: p.Email,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.cats.Create(ctx, cat)
	if err != nil {
		s.log.Error().Err(err).Str("owner", p.Email).Msg("failed to create cat")
		return nil, err
	}

	s.log.Info().Str("cat_id", created.ID).Str("owner", created.OwnerEmail).Msg("cat created")
	return created, nil
}

// List returns the caller's cats, or every cat for an admin. A non-admin
// with no cats gets ErrNoCatsFound — a "you have none", not a denial.
func (s *CatService) List(ctx context.Context, p domain.Principal) ([]*domain.Cat, error) {
	owner := p.Email
	if p.IsAdmin() {
		owner = ""
	}

	cats, err := s.cats.List(ctx, owner)
	if err != nil {
		return nil, err
	}
	if len(cats) == 0 && !p.IsAdmin() {
		return nil, fmt.Errorf("%w for owner %s", domain.ErrNoCatsFound, p.Email)
	}
	return cats, nil
}

// Get loads a single cat and enforces owner-or-admin.
func (s *CatService) Get(ctx context.Context, p domain.Principal, id string) (*domain.Cat, error) {
	cat, err := s.cats.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.CheckOwnership(p, cat.OwnerEmail); err != nil {
		return nil, err
	}
	return cat, nil
}

// Update applies a partial update after the ownership check. Reassigning the
// breed revalidates it against the breed store.
func (s *CatService) Update(ctx context.Context, p domain.Principal, id string, in ports.UpdateCatInput) (*domain.Cat, error) {
	cat, err := s.cats.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.CheckOwnership(p, cat.OwnerEmail); err != nil {
		return nil, err
	}

	if in.Name != nil {
		cat.Name = *in.Name
	}
	if in.Age != nil {
		cat.Age = *in.Age
	}
	if in.Breed != nil {
		breed, err := s.breeds.FindByName(ctx, *in.Breed)
		if err != nil {
			return nil, err
		}
		cat.Breed = breed.Name
	}
	cat.UpdatedAt = time.Now().UTC()

	updated, err := s.cats.Update(ctx, cat)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("cat_id", id).Str("actor", p.Email).Msg("cat updated")
	return updated, nil
}

// Delete soft-deletes a cat after the ownership check.
func (s *CatService) Delete(ctx context.Context, p domain.Principal, id string) error {
	cat, err := s.cats.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := domain.CheckOwnership(p, cat.OwnerEmail); err != nil {
		return err
	}

	if err := s.cats.SoftDelete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("cat_id", id).Str("actor", p.Email).Msg("cat deleted")
	return nil
}
