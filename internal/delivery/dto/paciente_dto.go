package dto

import "time"

// Request DTOs

type PacienteRequest struct {
	Nome           string `json:"nome" validate:"required,min=2"`
	CPF            string `json:"cpf" validate:"required,len=11,numeric"`
	DataNascimento string `json:"dataNascimento" validate:"omitempty"` // YYYY-MM-DD
	Telefone       string `json:"telefone" validate:"omitempty,min=8,max=20"`
	Email          string `json:"email" validate:"omitempty,email"`
	Endereco       string `json:"endereco" validate:"omitempty"`
	Convenio       string `json:"convenio" validate:"omitempty"`
	Observacoes    string `json:"observacoes" validate:"omitempty"`
}

type UpdatePacienteRequest struct {
	Nome           string `json:"nome" validate:"omitempty,min=2"`
	CPF            string `json:"cpf" validate:"omitempty,len=11,numeric"`
	DataNascimento string `json:"dataNascimento" validate:"omitempty"`
	Telefone       string `json:"telefone" validate:"omitempty,min=8,max=20"`
	Email          string `json:"email" validate:"omitempty,email"`
	Endereco       string `json:"endereco" validate:"omitempty"`
	Convenio       string `json:"convenio" validate:"omitempty"`
	Observacoes    string `json:"observacoes" validate:"omitempty"`
	Ativo          *bool  `json:"ativo" validate:"omitempty"`
}

// Response DTOs

type PacienteResponse struct {
	ID             uint      `json:"id"`
	Nome           string    `json:"nome"`
	CPF            string    `json:"cpf"`
	DataNascimento *string   `json:"dataNascimento,omitempty"`
	Telefone       string    `json:"telefone,omitempty"`
	Email          string    `json:"email,omitempty"`
	Endereco       string    `json:"endereco,omitempty"`
	Convenio       string    `json:"convenio,omitempty"`
	Observacoes    string    `json:"observacoes,omitempty"`
	Ativo          *bool     `json:"ativo"`
	CriadoEm       time.Time `json:"criadoEm"`
	AtualizadoEm   time.Time `json:"atualizadoEm"`
}
