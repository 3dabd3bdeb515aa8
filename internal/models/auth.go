package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// LoginRequest is the credential payload for authentication. Email is only
// required, not format-checked: the bootstrap admin address carries no
// public TLD, and an unknown address must surface as a credential error
// rather than a validation one.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued token and the authenticated identity.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresIn   int64     `json:"expires_in"`
	IssuedAt    time.Time `json:"issued_at"`
	User        UserInfo  `json:"user"`
}

// SignupRequest creates a student account: a User and its Student profile
// together. Only email, password and roll are mandatory; legacy behavior
// kept the rest optional.
type SignupRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" validate:"required"`
	Roll     string `json:"roll" validate:"required"`
	Program  string `json:"program"`
}

// SignupResponse returns the created pair.
type SignupResponse struct {
	User    UserInfo `json:"user"`
	Student Student  `json:"student"`
}

// JWTClaims is the access token payload.
type JWTClaims struct {
	UserID   string   `json:"user_id"`
	Role     UserRole `json:"role"`
	Email    string   `json:"email"`
	FullName string   `json:"full_name"`
	jwt.RegisteredClaims
}
