package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/timekeeper/inventory-system/internal/api/metrics"
	"github.com/timekeeper/inventory-system/internal/core/ports"
)

type ProductHandler struct {
	productService ports.ProductService
}

func NewProductHandler(productService ports.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List returns the full product catalog. Public.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Success      200  {object}  response
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.productService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", products)
}

// Get returns a single product by ID. Public.
//
// @Summary      Get product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  response
// @Failure      404  {object}  response
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.productService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", product)
}

// Create adds a product to the catalog. ADMIN or MANAGER.
//
// @Summary      Create product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  response
// @Failure      400   {object}  response
// @Failure      409   {object}  response
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.productService.Create(c.Request().Context(), identity.Email, ports.CreateProductInput{
		Name:          req.Name,
		SKU:           req.SKU,
		Barcode:       req.Barcode,
		Description:   req.Description,
		Status:        req.Status,
		MRP:           req.MRP,
		SellingPrice:  req.SellingPrice,
		GSTPercentage: req.GSTPercentage,
		HSNCode:       req.HSNCode,
		Unit:          req.Unit,
		OpeningStock:  req.OpeningStock,
		MinStockLevel: req.MinStockLevel,
		CategoryID:    req.CategoryID,
		BrandID:       req.BrandID,
	})
	if err != nil {
		return err
	}

	metrics.ProductsCreatedTotal.Inc()
	return respond(c, http.StatusCreated, "product created successfully", product)
}

// Update patches a product. ADMIN or MANAGER.
//
// @Summary      Update product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Product ID"
// @Param        body  body      updateProductRequest  true  "Fields to update"
// @Success      200   {object}  response
// @Failure      400   {object}  response
// @Failure      404   {object}  response
// @Failure      409   {object}  response
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.productService.Update(c.Request().Context(), identity.Email, c.Param("id"), ports.ProductPatch{
		Name:          req.Name,
		SKU:           req.SKU,
		Barcode:       req.Barcode,
		Description:   req.Description,
		Status:        req.Status,
		MRP:           req.MRP,
		SellingPrice:  req.SellingPrice,
		GSTPercentage: req.GSTPercentage,
		HSNCode:       req.HSNCode,
		Unit:          req.Unit,
		OpeningStock:  req.OpeningStock,
		MinStockLevel: req.MinStockLevel,
		CategoryID:    req.CategoryID,
		BrandID:       req.BrandID,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "product updated successfully", product)
}

// Delete removes a product. ADMIN only.
//
// @Summary      Delete product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  response
// @Failure      404  {object}  response
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.productService.Delete(c.Request().Context(), identity.Email, c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "product deleted successfully", nil)
}
