package handler

import (
	"github.com/whiskerworks/cat-registry/internal/core/domain"
)

func toCatResponse(cat *domain.Cat) catResponse {
	return catResponse{
		ID:         cat.ID,
		Name:       cat.Name,
		Age:        cat.Age,
		Breed:      cat.Breed,
		OwnerEmail: cat.OwnerEmail,
		CreatedAt:  cat.CreatedAt,
		UpdatedAt:  cat.UpdatedAt,
	}
}

func toListCatsResponse(cats []*domain.Cat) listCatsResponse {
	out := listCatsResponse{Data: make([]catResponse, 0, len(cats))}
	for _, cat := range cats {
		out.Data = append(out.Data, toCatResponse(cat))
	}
	return out
}

func toBreedResponse(breed *domain.Breed) breedResponse {
	return breedResponse{
		ID:        breed.ID,
		Name:      breed.Name,
		CreatedAt: breed.CreatedAt,
		UpdatedAt: breed.UpdatedAt,
	}
}

func toListBreedsResponse(breeds []*domain.Breed) listBreedsResponse {
	out := listBreedsResponse{Data: make([]breedResponse, 0, len(breeds))}
	for _, breed := range breeds {
		out.Data = append(out.Data, toBreedResponse(breed))
	}
	return out
}
