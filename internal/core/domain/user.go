package domain

import (
	"errors"
	"time"
)

const (
	RoleClient   = "client"
	RoleExpert   = "expert"
	RoleBusiness = "business"
)

var ErrMissingCredentials = errors.New("email, password, and role are required")
var ErrInvalidRole = errors.New("role must be client, expert, or business")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")

// ValidRole reports whether role is one of the registrable roles.
func ValidRole(role string) bool {
	switch role {
	case RoleClient, RoleExpert, RoleBusiness:
		return true
	}
	return false
}

// User models an authenticated actor: a client posting needs, an expert
// sending offers, or a business account.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
