package domain

import "time"

// Product is the core inventory aggregate. SKU is unique across the catalog.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	SKU           string    `json:"sku"`
	Barcode       string    `json:"barcode,omitempty"`
	Description   string    `json:"description,omitempty"`
	Status        bool      `json:"status"`
	MRP           float64   `json:"mrp"`
	SellingPrice  float64   `json:"selling_price"`
	GSTPercentage float64   `json:"gst_percentage"`
	HSNCode       string    `json:"hsn_code,omitempty"`
	Unit          string    `json:"unit"`
	OpeningStock  int       `json:"opening_stock"`
	MinStockLevel int       `json:"min_stock_level"`
	CategoryID    string    `json:"category_id"`
	BrandID       string    `json:"brand_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// LowStock reports whether the product is at or below its minimum stock level.
func (p Product) LowStock() bool {
	return p.OpeningStock <= p.MinStockLevel
}
