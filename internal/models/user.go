package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// User as persisted in the users JSON file. PasswordHash is a bcrypt hash;
// it never leaves the process in API responses.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"password"`
	Name         string `json:"name"`
}

type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name"     validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type AuthResponse struct {
	UserID    string       `json:"userId"`
	User      UserResponse `json:"user"`
	Token     string       `json:"token,omitempty"`
	ExpiresIn int          `json:"expires_in,omitempty"`
	Message   string       `json:"message,omitempty"`
}

// JWT claims carried in the Bearer token.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
