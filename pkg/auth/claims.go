package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/caterstock/caterstock-backend/pkg/enums"
)

// AccessTokenPayload carries the identity minted into a token.
type AccessTokenPayload struct {
	UserID uuid.UUID
	Name   string
	Role   enums.UserRole
	JTI    string
}

// AccessTokenClaims is the typed JWT claim set used across the API.
type AccessTokenClaims struct {
	UserID uuid.UUID      `json:"uid"`
	Name   string         `json:"name"`
	Role   enums.UserRole `json:"role"`
	jwt.RegisteredClaims
}
