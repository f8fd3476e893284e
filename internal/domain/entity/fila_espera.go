package entity

import "time"

// StatusFilaEspera represents the lifecycle status of a waiting list entry
type StatusFilaEspera string

const (
	FilaAguardando StatusFilaEspera = "AGUARDANDO"
	FilaNotificado StatusFilaEspera = "NOTIFICADO"
	FilaConfirmado StatusFilaEspera = "CONFIRMADO"
	FilaConvertido StatusFilaEspera = "CONVERTIDO"
	FilaCancelado  StatusFilaEspera = "CANCELADO"
	FilaExpirado   StatusFilaEspera = "EXPIRADO"
)

// PeriodoPreferencial enumerates the preferred period of day for a slot
type PeriodoPreferencial string

const (
	PeriodoManha    PeriodoPreferencial = "MANHA"
	PeriodoTarde    PeriodoPreferencial = "TARDE"
	PeriodoNoite    PeriodoPreferencial = "NOITE"
	PeriodoQualquer PeriodoPreferencial = "QUALQUER"
)

// Priority bounds for a waiting list entry (inclusive)
const (
	PrioridadeMinima = 0
	PrioridadeMaxima = 10
)

// FilaEspera represents a patient waiting for an appointment slot that does
// not yet exist. DentistaID absent means any dentist. PosicaoFila and
// DiasNaFila are computed at query time and never persisted.
type FilaEspera struct {
	ID                     uint                `gorm:"primaryKey;autoIncrement" json:"id"`
	PacienteID             uint                `gorm:"not null;index" json:"pacienteId"`
	DentistaID             *uint               `gorm:"index" json:"dentistaId,omitempty"`
	TipoProcedimento       string              `gorm:"type:varchar(50)" json:"tipoProcedimento,omitempty"`
	PeriodoPreferencial    PeriodoPreferencial `gorm:"type:varchar(20);not null;default:'QUALQUER'" json:"periodoPreferencial"`
	DataPreferencial       *time.Time          `gorm:"type:date" json:"dataPreferencial,omitempty"`
	Prioridade             int                 `gorm:"not null;default:0" json:"prioridade"`
	AceitaQualquerHorario  bool                `gorm:"not null;default:false" json:"aceitaQualquerHorario"`
	AceitaQualquerDentista bool                `gorm:"not null;default:false" json:"aceitaQualquerDentista"`
	Observacoes            string              `gorm:"type:text" json:"observacoes,omitempty"`
	Status                 StatusFilaEspera    `gorm:"type:varchar(20);not null;default:'AGUARDANDO';index" json:"status"`

	AgendamentoID     *uint      `gorm:"index" json:"agendamentoId,omitempty"`
	TentativasContato int        `gorm:"not null;default:0" json:"tentativasContato"`
	UltimoContatoEm   *time.Time `json:"ultimoContatoEm,omitempty"`
	CriadoEm          time.Time  `gorm:"autoCreateTime" json:"criadoEm"`
	AtualizadoEm      time.Time  `gorm:"autoUpdateTime" json:"atualizadoEm"`

	// Computed by the repository, not stored
	PosicaoFila int `gorm:"-" json:"posicaoFila,omitempty"`

	// Relationships
	Paciente    Paciente     `gorm:"foreignKey:PacienteID" json:"paciente,omitempty"`
	Dentista    *Dentista    `gorm:"foreignKey:DentistaID" json:"dentista,omitempty"`
	Agendamento *Agendamento `gorm:"foreignKey:AgendamentoID" json:"agendamento,omitempty"`
}

func (FilaEspera) TableName() string {
	return "fila_espera"
}

// IsTerminal reports whether the entry reached a final status
func (f *FilaEspera) IsTerminal() bool {
	switch f.Status {
	case FilaConvertido, FilaCancelado, FilaExpirado:
		return true
	}
	return false
}

// Notificar moves AGUARDANDO -> NOTIFICADO. Re-notifying while already
// NOTIFICADO is allowed; each call bumps the contact counter.
func (f *FilaEspera) Notificar(quando time.Time) bool {
	if f.Status != FilaAguardando && f.Status != FilaNotificado {
		return false
	}
	f.Status = FilaNotificado
	f.TentativasContato++
	f.UltimoContatoEm = &quando
	return true
}

// ConfirmarInteresse moves NOTIFICADO -> CONFIRMADO (patient accepted a slot).
func (f *FilaEspera) ConfirmarInteresse() bool {
	if f.Status != FilaNotificado {
		return false
	}
	f.Status = FilaConfirmado
	return true
}

// Converter links the entry to an appointment created by the caller and moves
// it to the terminal CONVERTIDO status.
func (f *FilaEspera) Converter(agendamentoID uint) bool {
	if f.IsTerminal() {
		return false
	}
	f.Status = FilaConvertido
	f.AgendamentoID = &agendamentoID
	return true
}

// Cancelar moves any non-terminal status -> CANCELADO.
func (f *FilaEspera) Cancelar() bool {
	if f.IsTerminal() {
		return false
	}
	f.Status = FilaCancelado
	return true
}

// DiasNaFila returns the age of the entry in whole days.
func (f *FilaEspera) DiasNaFila(agora time.Time) int {
	return int(agora.Sub(f.CriadoEm).Hours() / 24)
}
