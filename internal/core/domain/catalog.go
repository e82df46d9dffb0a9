package domain

import "time"

// Category groups products. IDs are friendly sequential identifiers
// (CAT001, CAT002, ...) allocated by the persistence layer.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Brand identifies a product manufacturer. IDs follow the BRN001 scheme.
type Brand struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
