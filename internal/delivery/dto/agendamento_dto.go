package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

// AgendamentoRequest carries the full appointment payload for create and
// update. Field presence and ordering rules are enforced by
// validation.AgendamentoValidator before any persistence happens, so no
// validate tags here.
type AgendamentoRequest struct {
	DentistaID       int64            `json:"dentistaId"`
	PacienteID       int64            `json:"pacienteId"`
	DataConsulta     string           `json:"dataConsulta"` // YYYY-MM-DD
	HoraInicio       string           `json:"horaInicio"`   // HH:MM
	HoraFim          string           `json:"horaFim"`      // HH:MM
	TipoProcedimento string           `json:"tipoProcedimento"`
	ValorConsulta    *decimal.Decimal `json:"valorConsulta,omitempty"`
	Observacoes      string           `json:"observacoes,omitempty"`
}

// DisponibilidadeRequest is bound from the verificar-disponibilidade query
type DisponibilidadeRequest struct {
	DentistaID         int64
	Data               string
	HoraInicio         string
	HoraFim            string
	IgnorarAgendamento uint // excluded from the overlap check on update
}

// Response DTOs

type AgendamentoResponse struct {
	ID               uint             `json:"id"`
	DentistaID       uint             `json:"dentistaId"`
	PacienteID       uint             `json:"pacienteId"`
	DataConsulta     string           `json:"dataConsulta"`
	HoraInicio       string           `json:"horaInicio"`
	HoraFim          string           `json:"horaFim"`
	TipoProcedimento string           `json:"tipoProcedimento"`
	ValorConsulta    *decimal.Decimal `json:"valorConsulta,omitempty"`
	Observacoes      string           `json:"observacoes,omitempty"`
	Status           string           `json:"status"`

	CriadoEm           time.Time  `json:"criadoEm"`
	CriadoPor          string     `json:"criadoPor,omitempty"`
	AtualizadoEm       time.Time  `json:"atualizadoEm"`
	AtualizadoPor      string     `json:"atualizadoPor,omitempty"`
	ConfirmadoEm       *time.Time `json:"confirmadoEm,omitempty"`
	CanceladoEm        *time.Time `json:"canceladoEm,omitempty"`
	CanceladoPor       string     `json:"canceladoPor,omitempty"`
	MotivoCancelamento string     `json:"motivoCancelamento,omitempty"`
	LembreteEnviado    bool       `json:"lembreteEnviado"`
	LembreteEnviadoEm  *time.Time `json:"lembreteEnviadoEm,omitempty"`

	Dentista *DentistaResponse `json:"dentista,omitempty"`
	Paciente *PacienteResponse `json:"paciente,omitempty"`
}

// DisponibilidadeResponse is the availability check result
type DisponibilidadeResponse struct {
	Disponivel bool `json:"disponivel"`
}
