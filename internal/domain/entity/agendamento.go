package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusAgendamento represents the lifecycle status of an appointment
type StatusAgendamento string

const (
	StatusAgendado      StatusAgendamento = "AGENDADO"
	StatusConfirmado    StatusAgendamento = "CONFIRMADO"
	StatusEmAtendimento StatusAgendamento = "EM_ATENDIMENTO"
	StatusConcluido     StatusAgendamento = "CONCLUIDO"
	StatusCancelado     StatusAgendamento = "CANCELADO"
	StatusFaltou        StatusAgendamento = "FALTOU"
)

// Procedure categories accepted by tipoProcedimento
const (
	ProcedimentoConsulta    = "CONSULTA"
	ProcedimentoLimpeza     = "LIMPEZA"
	ProcedimentoRestauracao = "RESTAURACAO"
	ProcedimentoExtracao    = "EXTRACAO"
	ProcedimentoCanal       = "CANAL"
	ProcedimentoOrtodontia  = "ORTODONTIA"
	ProcedimentoProtese     = "PROTESE"
	ProcedimentoOutro       = "OUTRO"
)

// Agendamento represents a scheduled visit of one patient with one dentist
// in a fixed time window. Audit fields are written only by this service,
// never accepted from request payloads.
type Agendamento struct {
	ID               uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	DentistaID       uint              `gorm:"not null;index" json:"dentistaId"`
	PacienteID       uint              `gorm:"not null;index" json:"pacienteId"`
	DataConsulta     time.Time         `gorm:"type:date;not null;index" json:"dataConsulta"`
	HoraInicio       string            `gorm:"type:time;not null" json:"horaInicio"`
	HoraFim          string            `gorm:"type:time;not null" json:"horaFim"`
	TipoProcedimento string            `gorm:"type:varchar(50);not null" json:"tipoProcedimento"`
	ValorConsulta    *decimal.Decimal  `gorm:"type:decimal(10,2)" json:"valorConsulta,omitempty"`
	Observacoes      string            `gorm:"type:text" json:"observacoes,omitempty"`
	Status           StatusAgendamento `gorm:"type:varchar(20);not null;default:'AGENDADO';index" json:"status"`

	CriadoEm           time.Time  `gorm:"autoCreateTime" json:"criadoEm"`
	CriadoPor          string     `gorm:"type:varchar(100)" json:"criadoPor,omitempty"`
	AtualizadoEm       time.Time  `gorm:"autoUpdateTime" json:"atualizadoEm"`
	AtualizadoPor      string     `gorm:"type:varchar(100)" json:"atualizadoPor,omitempty"`
	ConfirmadoEm       *time.Time `json:"confirmadoEm,omitempty"`
	CanceladoEm        *time.Time `json:"canceladoEm,omitempty"`
	CanceladoPor       string     `gorm:"type:varchar(100)" json:"canceladoPor,omitempty"`
	MotivoCancelamento string     `gorm:"type:text" json:"motivoCancelamento,omitempty"`
	LembreteEnviado    bool       `gorm:"not null;default:false" json:"lembreteEnviado"`
	LembreteEnviadoEm  *time.Time `json:"lembreteEnviadoEm,omitempty"`

	// Relationships
	Dentista Dentista `gorm:"foreignKey:DentistaID" json:"dentista,omitempty"`
	Paciente Paciente `gorm:"foreignKey:PacienteID" json:"paciente,omitempty"`
}

func (Agendamento) TableName() string {
	return "agendamentos"
}

// IsTerminal reports whether the appointment reached a final status.
// Terminal appointments reject every transition and full update.
func (a *Agendamento) IsTerminal() bool {
	switch a.Status {
	case StatusConcluido, StatusCancelado, StatusFaltou:
		return true
	}
	return false
}

// Confirmar moves AGENDADO -> CONFIRMADO and stamps confirmadoEm.
func (a *Agendamento) Confirmar(usuario string, quando time.Time) bool {
	if a.Status != StatusAgendado {
		return false
	}
	a.Status = StatusConfirmado
	a.ConfirmadoEm = &quando
	a.AtualizadoPor = usuario
	return true
}

// IniciarAtendimento moves CONFIRMADO -> EM_ATENDIMENTO.
func (a *Agendamento) IniciarAtendimento(usuario string) bool {
	if a.Status != StatusConfirmado {
		return false
	}
	a.Status = StatusEmAtendimento
	a.AtualizadoPor = usuario
	return true
}

// Concluir moves EM_ATENDIMENTO -> CONCLUIDO.
func (a *Agendamento) Concluir(usuario string) bool {
	if a.Status != StatusEmAtendimento {
		return false
	}
	a.Status = StatusConcluido
	a.AtualizadoPor = usuario
	return true
}

// Cancelar moves AGENDADO/CONFIRMADO -> CANCELADO storing reason and canceller.
// The non-blank motivo check belongs to the usecase; the guard here is the
// status alone.
func (a *Agendamento) Cancelar(motivo, usuario string, quando time.Time) bool {
	if a.Status != StatusAgendado && a.Status != StatusConfirmado {
		return false
	}
	a.Status = StatusCancelado
	a.MotivoCancelamento = motivo
	a.CanceladoPor = usuario
	a.CanceladoEm = &quando
	a.AtualizadoPor = usuario
	return true
}

// MarcarFalta moves AGENDADO/CONFIRMADO -> FALTOU.
func (a *Agendamento) MarcarFalta(usuario string) bool {
	if a.Status != StatusAgendado && a.Status != StatusConfirmado {
		return false
	}
	a.Status = StatusFaltou
	a.AtualizadoPor = usuario
	return true
}

// MarcarLembreteEnviado stamps the reminder audit fields.
func (a *Agendamento) MarcarLembreteEnviado(quando time.Time) {
	a.LembreteEnviado = true
	a.LembreteEnviadoEm = &quando
}
