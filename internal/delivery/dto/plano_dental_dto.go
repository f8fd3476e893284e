package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type PlanoDentalRequest struct {
	PacienteID   uint            `json:"pacienteId" validate:"required,min=1"`
	DentistaID   uint            `json:"dentistaId" validate:"required,min=1"`
	Dente        string          `json:"dente" validate:"required,min=2,max=5"`
	Procedimento string          `json:"procedimento" validate:"required"`
	Valor        decimal.Decimal `json:"valor" validate:"required"`
	Observacoes  string          `json:"observacoes" validate:"omitempty"`
}

// Response DTOs

type PlanoDentalResponse struct {
	ID           uint            `json:"id"`
	PacienteID   uint            `json:"pacienteId"`
	DentistaID   uint            `json:"dentistaId"`
	Dente        string          `json:"dente"`
	Procedimento string          `json:"procedimento"`
	Valor        decimal.Decimal `json:"valor"`
	Observacoes  string          `json:"observacoes,omitempty"`
	Status       string          `json:"status"`
	CriadoEm     time.Time       `json:"criadoEm"`
	AtualizadoEm time.Time       `json:"atualizadoEm"`

	Paciente *PacienteResponse `json:"paciente,omitempty"`
	Dentista *DentistaResponse `json:"dentista,omitempty"`
}
