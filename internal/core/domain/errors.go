package domain

import "errors"

var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrForbidden          = errors.New("access forbidden")
	ErrSelfDeletion       = errors.New("cannot delete own account")
	ErrInvalidInput       = errors.New("invalid input")

	ErrProductNotFound  = errors.New("product not found")
	ErrDuplicateSKU     = errors.New("product sku already exists")
	ErrInvalidReference = errors.New("invalid category or brand reference")

	ErrCategoryNotFound = errors.New("category not found")
	ErrBrandNotFound    = errors.New("brand not found")
	ErrHasProducts      = errors.New("record still referenced by products")
)
