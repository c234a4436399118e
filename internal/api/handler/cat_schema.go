package handler

import "time"

type createCatRequest struct {
	Name  string `json:"name"  validate:"required,min=3"`
	Age   int    `json:"age"   validate:"required,gt=0"`
	Breed string `json:"breed" validate:"required"`
}

type updateCatRequest struct {
	Name  *string `json:"name,omitempty"  validate:"omitempty,min=3"`
	Age   *int    `json:"age,omitempty"   validate:"omitempty,gt=0"`
	Breed *string `json:"breed,omitempty"`
}

type catResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Age        int       `json:"age"`
	Breed      string    `json:"breed"`
	OwnerEmail string    `json:"owner_email"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type listCatsResponse struct {
	Data []catResponse `json:"data"`
}
