package dto

import (
	"time"

	"storecore/internal/core/appctx"
	"storecore/internal/domain/auth"
)

// LoginRequest for authentication.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries an issued access token.
type TokenResponse struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// FromToken creates TokenResponse from a token.
func FromToken(t *auth.Token) TokenResponse {
	return TokenResponse{
		AccessToken: t.AccessToken,
		TokenType:   t.TokenType,
		ExpiresAt:   t.ExpiresAt,
	}
}

// MeResponse describes the authenticated caller.
type MeResponse struct {
	Username string `json:"username"`
	Role     string `json:"role,omitempty"`
}

// FromUserContext creates MeResponse from the request user context.
func FromUserContext(u appctx.UserContext) MeResponse {
	return MeResponse{
		Username: u.Username,
		Role:     u.Role,
	}
}
