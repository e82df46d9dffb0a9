package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/timekeeper/inventory-system/internal/core/ports"
)

type CategoryHandler struct {
	categoryService ports.CategoryService
}

func NewCategoryHandler(categoryService ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// List returns all categories. Public.
//
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200  {object}  response
// @Router       /categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.categoryService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", categories)
}

// Get returns a single category. Public.
//
// @Summary      Get category
// @Tags         categories
// @Produce      json
// @Param        id   path      string  true  "Category ID"
// @Success      200  {object}  response
// @Failure      404  {object}  response
// @Router       /categories/{id} [get]
func (h *CategoryHandler) Get(c echo.Context) error {
	category, err := h.categoryService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", category)
}

// Create adds a category. ADMIN or MANAGER.
//
// @Summary      Create category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      nameRequest  true  "Category name"
// @Success      201   {object}  response
// @Failure      400   {object}  response
// @Router       /categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req nameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	category, err := h.categoryService.Create(c.Request().Context(), identity.Email, req.Name)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "category created successfully", category)
}

// Update renames a category. ADMIN or MANAGER.
//
// @Summary      Update category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Category ID"
// @Param        body  body      nameRequest  true  "New name"
// @Success      200   {object}  response
// @Failure      400   {object}  response
// @Failure      404   {object}  response
// @Router       /categories/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req nameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	category, err := h.categoryService.Update(c.Request().Context(), identity.Email, c.Param("id"), req.Name)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "category updated successfully", category)
}

// Delete removes a category with no products assigned. ADMIN only.
//
// @Summary      Delete category
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Category ID"
// @Success      200  {object}  response
// @Failure      400  {object}  response
// @Failure      404  {object}  response
// @Router       /categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.categoryService.Delete(c.Request().Context(), identity.Email, c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "category deleted successfully", nil)
}
