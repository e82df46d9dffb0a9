package handler

import "github.com/labstack/echo/v4"

// response is the envelope every successful API reply uses.
type response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func respond(c echo.Context, code int, message string, data any) error {
	return c.JSON(code, response{Success: true, Message: message, Data: data})
}

// --- Auth ---

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name"`
	Role     string `json:"role"     validate:"omitempty,oneof=ADMIN MANAGER"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Users ---

type updateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" validate:"omitempty,email"`
	Role  *string `json:"role"  validate:"omitempty,oneof=ADMIN MANAGER"`
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=ADMIN MANAGER"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=ACTIVE INACTIVE"`
}

// --- Products ---

type createProductRequest struct {
	Name          string  `json:"name"           validate:"required,min=2"`
	SKU           string  `json:"sku"            validate:"required"`
	Barcode       string  `json:"barcode"`
	Description   string  `json:"description"`
	Status        *bool   `json:"status"`
	MRP           float64 `json:"mrp"            validate:"required,gt=0"`
	SellingPrice  float64 `json:"selling_price"  validate:"required,gt=0"`
	GSTPercentage float64 `json:"gst_percentage" validate:"gte=0"`
	HSNCode       string  `json:"hsn_code"`
	Unit          string  `json:"unit"           validate:"required"`
	OpeningStock  int     `json:"opening_stock"  validate:"gte=0"`
	MinStockLevel int     `json:"min_stock_level" validate:"gte=0"`
	CategoryID    string  `json:"category_id"    validate:"required"`
	BrandID       string  `json:"brand_id"       validate:"required"`
}

type updateProductRequest struct {
	Name          *string  `json:"name"           validate:"omitempty,min=2"`
	SKU           *string  `json:"sku"            validate:"omitempty,min=1"`
	Barcode       *string  `json:"barcode"`
	Description   *string  `json:"description"`
	Status        *bool    `json:"status"`
	MRP           *float64 `json:"mrp"            validate:"omitempty,gt=0"`
	SellingPrice  *float64 `json:"selling_price"  validate:"omitempty,gt=0"`
	GSTPercentage *float64 `json:"gst_percentage" validate:"omitempty,gte=0"`
	HSNCode       *string  `json:"hsn_code"`
	Unit          *string  `json:"unit"           validate:"omitempty,min=1"`
	OpeningStock  *int     `json:"opening_stock"  validate:"omitempty,gte=0"`
	MinStockLevel *int     `json:"min_stock_level" validate:"omitempty,gte=0"`
	CategoryID    *string  `json:"category_id"    validate:"omitempty,min=1"`
	BrandID       *string  `json:"brand_id"       validate:"omitempty,min=1"`
}

// --- Categories & Brands ---

type nameRequest struct {
	Name string `json:"name" validate:"required,min=2"`
}
