package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// RefreshTokenType is the value of the "type" claim carried only by refresh
// tokens. Access tokens have no type claim.
const RefreshTokenType = "refresh"

// Claims is the JWT claim set shared by access and refresh tokens.
//
// It embeds [jwt.RegisteredClaims] for the standard claims (iss, exp, iat,
// jti) and adds the identity the token was issued for.
type Claims struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`

	// Type is RefreshTokenType for refresh tokens and empty otherwise.
	Type string `json:"type,omitempty"`

	jwt.RegisteredClaims
}

// Identity returns the principal the claims were issued for.
func (c Claims) Identity() Identity {
	return Identity{UserID: c.UserID, Username: c.Username, Role: c.Role}
}

// IsRefresh reports whether the claims belong to a refresh token.
func (c Claims) IsRefresh() bool {
	return c.Type == RefreshTokenType
}

// TokenPair is the result of a successful login.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
