package domain

import "time"

// Role restricts an account to one of the closed set of roles.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
)

// Valid reports whether the role belongs to the closed enumeration.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleManager
}

// UserStatus marks an account as active or disabled.
type UserStatus string

const (
	StatusActive   UserStatus = "ACTIVE"
	StatusInactive UserStatus = "INACTIVE"
)

func (s UserStatus) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// User models an authenticated actor in the system. PasswordHash is never
// serialized into an API response.
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name,omitempty"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	Status       UserStatus `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
