package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/whiskerworks/cat-registry/internal/core/domain"
)

type stubBreedCache struct {
	breeds      []*domain.Breed
	hit         bool
	sets        int
	invalidated int
}

func (c *stubBreedCache) GetAll(_ context.Context) ([]*domain.Breed, bool) {
	return c.breeds, c.hit
}

func (c *stubBreedCache) SetAll(_ context.Context, breeds []*domain.Breed) {
	c.breeds = breeds
	c.sets++
}

func (c *stubBreedCache) Invalidate(_ context.Context) {
	c.breeds = nil
	c.hit = false
	c.invalidated++
}

func TestBreedService_Create_And_Duplicate(t *testing.T) {
	svc := NewBreedService(newStubBreedRepo(), nil, zerolog.Nop())

	created, err := svc.Create(context.Background(), "siamese")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.Name != "siamese" {
		t.Fatalf("unexpected breed: %+v", created)
	}

	if _, err := svc.Create(context.Background(), "siamese"); !errors.Is(err, domain.ErrBreedExists) {
		t.Fatalf("expected ErrBreedExists, got %v", err)
	}
}

func TestBreedService_List_CacheMissThenSet(t *testing.T) {
	cache := &stubBreedCache{}
	svc := NewBreedService(newStubBreedRepo("siamese", "persian"), cache, zerolog.Nop())

	breeds, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(breeds) != 2 {
		t.Fatalf("expected 2 breeds, got %d", len(breeds))
	}
	if cache.sets != 1 {
		t.Fatalf("expected list to populate the cache, sets=%d", cache.sets)
	}
}

func TestBreedService_List_CacheHitSkipsRepo(t *testing.T) {
	cached := []*domain.Breed{{ID: "9", Name: "bengal"}}
	cache := &stubBreedCache{breeds: cached, hit: true}
	// Empty repo: a result can only come from the cache.
	svc := NewBreedService(newStubBreedRepo(), cache, zerolog.Nop())

	breeds, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(breeds) != 1 || breeds[0].Name != "bengal" {
		t.Fatalf("expected cached breeds, got %+v", breeds)
	}
}

func TestBreedService_WritesInvalidateCache(t *testing.T) {
	cache := &stubBreedCache{}
	svc := NewBreedService(newStubBreedRepo("siamese"), cache, zerolog.Nop())

	created, err := svc.Create(context.Background(), "persian")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Update(context.Background(), created.ID, "persian longhair"); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if cache.invalidated != 3 {
		t.Fatalf("expected 3 invalidations (create/update/delete), got %d", cache.invalidated)
	}
}

func TestBreedService_Get_NotFound(t *testing.T) {
	svc := NewBreedService(newStubBreedRepo(), nil, zerolog.Nop())

	if _, err := svc.Get(context.Background(), "404"); !errors.Is(err, domain.ErrBreedNotFound) {
		t.Fatalf("expected ErrBreedNotFound, got %v", err)
	}
}

func TestBreedService_Update_NotFound(t *testing.T) {
	svc := NewBreedService(newStubBreedRepo(), nil, zerolog.Nop())

	if _, err := svc.Update(context.Background(), "404", "x"); !errors.Is(err, domain.ErrBreedNotFound) {
		t.Fatalf("expected ErrBreedNotFound, got %v", err)
	}
}
