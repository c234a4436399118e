package domain

import (
	"errors"
	"time"
)

var (
	ErrBreedNotFound = errors.New("breed not found")
	ErrBreedExists   = errors.New("breed already exists")
)

// Breed is shared across users; there is no ownership dimension, access is
// role-gated only.
type Breed struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"`
}
