package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/whiskerworks/cat-registry/internal/core/ports"
)

type BreedHandler struct {
	breedService ports.BreedService
}

func NewBreedHandler(breedService ports.BreedService) *BreedHandler {
	return &BreedHandler{breedService: breedService}
}

// Create adds a breed to the shared catalogue.
//
// @Summary      Create a breed
// @Tags         breeds
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBreedRequest  true  "Breed details"
// @Success      201   {object}  breedResponse
// @Failure      400   {object}  errorResponse
// @Router       /breeds [post]
func (h *BreedHandler) Create(c echo.Context) error {
	var req createBreedRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	breed, err := h.breedService.Create(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toBreedResponse(breed))
}

// List returns every breed.
//
// @Summary      List breeds
// @Tags         breeds
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listBreedsResponse
// @Router       /breeds [get]
func (h *BreedHandler) List(c echo.Context) error {
	breeds, err := h.breedService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListBreedsResponse(breeds))
}

// Get returns a single breed.
//
// @Summary      Get a breed
// @Tags         breeds
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Breed ID"
// @Success      200  {object}  breedResponse
// @Failure      404  {object}  errorResponse
// @Router       /breeds/{id} [get]
func (h *BreedHandler) Get(c echo.Context) error {
	breed, err := h.breedService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBreedResponse(breed))
}

// Update renames a breed. Admin only (enforced by the RBAC middleware).
//
// @Summary      Update a breed
// @Tags         breeds
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Breed ID"
// @Param        body  body      updateBreedRequest  true  "New name"
// @Success      200   {object}  breedResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /breeds/{id} [patch]
func (h *BreedHandler) Update(c echo.Context) error {
	var req updateBreedRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	breed, err := h.breedService.Update(c.Request().Context(), c.Param("id"), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBreedResponse(breed))
}

// Delete soft-deletes a breed. Admin only (enforced by the RBAC middleware).
//
// @Summary      Delete a breed
// @Tags         breeds
// @Security     BearerAuth
// @Param        id  path  string  true  "Breed ID"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /breeds/{id} [delete]
func (h *BreedHandler) Delete(c echo.Context) error {
	if err := h.breedService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
