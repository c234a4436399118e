package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/whiskerworks/cat-registry/internal/core/ports"
)

type CatHandler struct {
	catService ports.CatService
}

func NewCatHandler(catService ports.CatService) *CatHandler {
	return &CatHandler{catService: catService}
}

// Create registers a new cat owned by the caller.
//
// @Summary      Create a cat
// @Tags         cats
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCatRequest  true  "Cat details"
// @Success      201   {object}  catResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /cats [post]
func (h *CatHandler) Create(c echo.Context) error {
	p, err := Principal(c)
	if err != nil {
		return err
	}

	var req createCatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cat, err := h.catService.Create(c.Request().Context(), p, ports.CreateCatInput{
		Name:  req.Name,
		Age:   req.Age,
		Breed: req.Breed,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toCatResponse(cat))
}

// List returns the caller's cats; admins see every cat.
//
// @Summary      List cats
// @Tags         cats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listCatsResponse
// @Failure      404  {object}  errorResponse
// @Router       /cats [get]
func (h *CatHandler) List(c echo.Context) error {
	p, err := Principal(c)
	if err != nil {
		return err
	}

	cats, err := h.catService.List(c.Request().Context(), p)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListCatsResponse(cats))
}

// Get returns a single cat, owner or admin only.
//
// @Summary      Get a cat
// @Tags         cats
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Cat ID"
// @Success      200  {object}  catResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /cats/{id} [get]
func (h *CatHandler) Get(c echo.Context) error {
	p, err := Principal(c)
	if err != nil {
		return err
	}

	cat, err := h.catService.Get(c.Request().Context(), p, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toCatResponse(cat))
}

// Update partially updates a cat, owner or admin only.
//
// @Summary      Update a cat
// @Tags         cats
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Cat ID"
// @Param        body  body      updateCatRequest  true  "Fields to change"
// @Success      200   {object}  catResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /cats/{id} [patch]
func (h *CatHandler) Update(c echo.Context) error {
	p, err := Principal(c)
	if err != nil {
		return err
	}

	var req updateCatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cat, err := h.catService.Update(c.Request().Context(), p, c.Param("id"), ports.UpdateCatInput{
		Name:  req.Name,
		Age:   req.Age,
		Breed: req.Breed,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toCatResponse(cat))
}

// Delete soft-deletes a cat, owner or admin only.
//
// @Summary      Delete a cat
// @Tags         cats
// @Security     BearerAuth
// @Param        id  path  string  true  "Cat ID"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /cats/{id} [delete]
func (h *CatHandler) Delete(c echo.Context) error {
	p, err := Principal(c)
	if err != nil {
		return err
	}

	if err := h.catService.Delete(c.Request().Context(), p, c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
