package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/timekeeper/inventory-system/internal/core/ports"
)

type BrandHandler struct {
	brandService ports.BrandService
}

func NewBrandHandler(brandService ports.BrandService) *BrandHandler {
	return &BrandHandler{brandService: brandService}
}

// List returns all brands. Public.
//
// @Summary      List brands
// @Tags         brands
// @Produce      json
// @Success      200  {object}  response
// @Router       /brands [get]
func (h *BrandHandler) List(c echo.Context) error {
	brands, err := h.brandService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", brands)
}

// Get returns a single brand. Public.
//
// @Summary      Get brand
// @Tags         brands
// @Produce      json
// @Param        id   path      string  true  "Brand ID"
// @Success      200  {object}  response
// @Failure      404  {object}  response
// @Router       /brands/{id} [get]
func (h *BrandHandler) Get(c echo.Context) error {
	brand, err := h.brandService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", brand)
}

// Create adds a brand. ADMIN or MANAGER.
//
// @Summary      Create brand
// @Tags         brands
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      nameRequest  true  "Brand name"
// @Success      201   {object}  response
// @Failure      400   {object}  response
// @Router       /brands [post]
func (h *BrandHandler) Create(c echo.Context) error {
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

	brand, err := h.brandService.Create(c.Request().Context(), identity.Email, req.Name)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "brand created successfully", brand)
}

// Update renames a brand. ADMIN or MANAGER.
//
// @Summary      Update brand
// @Tags         brands
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Brand ID"
// @Param        body  body      nameRequest  true  "New name"
// @Success      200   {object}  response
// @Failure      400   {object}  response
// @Failure      404   {object}  response
// @Router       /brands/{id} [put]
func (h *BrandHandler) Update(c echo.Context) error {
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

	brand, err := h.brandService.Update(c.Request().Context(), identity.Email, c.Param("id"), req.Name)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "brand updated successfully", brand)
}

// Delete removes a brand with no products assigned. ADMIN only.
//
// @Summary      Delete brand
// @Tags         brands
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Brand ID"
// @Success      200  {object}  response
// @Failure      400  {object}  response
// @Failure      404  {object}  response
// @Router       /brands/{id} [delete]
func (h *BrandHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.brandService.Delete(c.Request().Context(), identity.Email, c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "brand deleted successfully", nil)
}
