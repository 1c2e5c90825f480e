package models

import "github.com/golang-jwt/jwt/v5"

type Role string

const (
	RoleStoreOwner Role = "STORE_OWNER"
	RoleAdmin      Role = "ADMIN"
)

type User struct {
	ID             string          `json:"id,omitempty"`
	Username       string          `json:"username"`
	Role           Role            `json:"role,omitempty"`
	ContactDetails *ContactDetails `json:"contactDetails,omitempty"`
	RetailStore    *Store          `json:"retailStore,omitempty"`
}

type Credentials struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	User Credentials `json:"user" validate:"required"`
}

// LoginResult is the backend's login response: the authenticated user,
// optionally the directly-related store, and a bearer token.
type LoginResult struct {
	User        *User  `json:"user"`
	RetailStore *Store `json:"retailStore,omitempty"`
	Token       string `json:"token,omitempty"`
}

type RegisterUser struct {
	Username       string         `json:"username" validate:"required,min=3"`
	Password       string         `json:"password" validate:"required,min=6"`
	ContactDetails ContactDetails `json:"contactDetails" validate:"required"`
}

type RegisterStoreRequest struct {
	User      RegisterUser `json:"user" validate:"required"`
	StoreName string       `json:"storeName" validate:"required,min=2"`
}

type RegisterAdminRequest struct {
	User RegisterUser `json:"user" validate:"required"`
}

// Claims mirrors the token payload issued by the backend. The client parses
// them for display and expiry checks; signature verification happens
// server-side.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
