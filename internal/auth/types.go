package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// represents the claims of a Supabase access token
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// context keys set by the middleware
const (
	ContextUserID    = "user_id"
	ContextUserEmail = "user_email"
)

// audience Supabase puts on tokens of signed-in users
const audienceAuthenticated = "authenticated"
