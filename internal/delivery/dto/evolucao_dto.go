package dto

import "time"

// Request DTOs

type EvolucaoRequest struct {
	PacienteID    uint   `json:"pacienteId" validate:"required,min=1"`
	DentistaID    uint   `json:"dentistaId" validate:"required,min=1"`
	PlanoDentalID *uint  `json:"planoDentalId" validate:"omitempty,min=1"`
	Data          string `json:"data" validate:"required"` // YYYY-MM-DD
	Descricao     string `json:"descricao" validate:"required"`
}

// Response DTOs

type EvolucaoResponse struct {
	ID            uint      `json:"id"`
	PacienteID    uint      `json:"pacienteId"`
	DentistaID    uint      `json:"dentistaId"`
	PlanoDentalID *uint     `json:"planoDentalId,omitempty"`
	Data          string    `json:"data"`
	Descricao     string    `json:"descricao"`
	CriadoPor     string    `json:"criadoPor,omitempty"`
	CriadoEm      time.Time `json:"criadoEm"`

	Dentista *DentistaResponse `json:"dentista,omitempty"`
}
