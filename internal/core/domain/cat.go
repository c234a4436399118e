package domain

import (
	"errors"
	"time"
)

var (
	ErrCatNotFound = errors.New("cat not found")
	// ErrNoCatsFound is the list-scope outcome for a caller that owns
	// nothing: "you have none", distinct from "you are denied".
	ErrNoCatsFound = errors.New("no cats found")
)

// Cat is an owned resource. OwnerEmail is set from the creating principal
// and only an admin-level update may reassign it.
type Cat struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Age        int        `json:"age"`
	Breed      string     `json:"breed"`
	OwnerEmail string     `json:"owner_email"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	DeletedAt  *time.Time `json:"-"`
}
