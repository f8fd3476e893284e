package dto

import "time"

// Request DTOs

type DentistaRequest struct {
	Nome          string `json:"nome" validate:"required,min=2"`
	CRO           string `json:"cro" validate:"required"`
	Especialidade string `json:"especialidade" validate:"omitempty"`
	Telefone      string `json:"telefone" validate:"omitempty,min=8,max=20"`
	Email         string `json:"email" validate:"required,email"`
}

type UpdateDentistaRequest struct {
	Nome          string `json:"nome" validate:"omitempty,min=2"`
	CRO           string `json:"cro" validate:"omitempty"`
	Especialidade string `json:"especialidade" validate:"omitempty"`
	Telefone      string `json:"telefone" validate:"omitempty,min=8,max=20"`
	Email         string `json:"email" validate:"omitempty,email"`
	Ativo         *bool  `json:"ativo" validate:"omitempty"`
}

// Response DTOs

type DentistaResponse struct {
	ID            uint      `json:"id"`
	Nome          string    `json:"nome"`
	CRO           string    `json:"cro"`
	Especialidade string    `json:"especialidade,omitempty"`
	Telefone      string    `json:"telefone,omitempty"`
	Email         string    `json:"email"`
	Ativo         *bool     `json:"ativo"`
	CriadoEm      time.Time `json:"criadoEm"`
	AtualizadoEm  time.Time `json:"atualizadoEm"`
}
