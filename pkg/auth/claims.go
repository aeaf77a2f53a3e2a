package auth

import "github.com/golang-jwt/jwt/v5"

// SessionPayload captures the identity data available when minting a JWT.
// Services below the auth layer only ever see the resolved user id.
type SessionPayload struct {
	UserID string
	Email  string
	Name   string
	Image  string
	JTI    string
}

// SessionClaims represents the typed JWT issued to clients. Profile fields are
// embedded so resolving a session needs no store round-trip.
type SessionClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	Image  string `json:"image,omitempty"`
	jwt.RegisteredClaims
}
