package handler

import "time"

type createBreedRequest struct {
	Name string `json:"name" validate:"required,min=3"`
}

type updateBreedRequest struct {
	Name string `json:"name" validate:"required,min=3"`
}

type breedResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type listBreedsResponse struct {
	Data []breedResponse `json:"data"`
}
