package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// LoginRequest accepts a login identifier and password. Blank/short values
// are rejected by validation.LoginValidator before any credential check.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}

type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	Login        string    `json:"login"`
	Email        string    `json:"email"`
	Nome         string    `json:"nome"`
	Role         string    `json:"role,omitempty"`
	Ativo        *bool     `json:"ativo,omitempty"`
	CriadoEm     time.Time `json:"criadoEm"`
	AtualizadoEm time.Time `json:"atualizadoEm"`
}
