package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusPlano represents the lifecycle status of a treatment plan item
type StatusPlano string

const (
	PlanoPendente    StatusPlano = "PENDENTE"
	PlanoEmAndamento StatusPlano = "EM_ANDAMENTO"
	PlanoConcluido   StatusPlano = "CONCLUIDO"
	PlanoCancelado   StatusPlano = "CANCELADO"
)

// PlanoDental is a priced, tooth-specific procedure proposal. Dente uses the
// FDI two-digit tooth notation (11-48, 51-85).
type PlanoDental struct {
	ID           uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	PacienteID   uint            `gorm:"not null;index" json:"pacienteId"`
	DentistaID   uint            `gorm:"not null;index" json:"dentistaId"`
	Dente        string          `gorm:"type:varchar(5);not null" json:"dente"`
	Procedimento string          `gorm:"type:varchar(255);not null" json:"procedimento"`
	Valor        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"valor"`
	Observacoes  string          `gorm:"type:text" json:"observacoes,omitempty"`
	Status       StatusPlano     `gorm:"type:varchar(20);not null;default:'PENDENTE';index" json:"status"`
	CriadoEm     time.Time       `gorm:"autoCreateTime" json:"criadoEm"`
	AtualizadoEm time.Time       `gorm:"autoUpdateTime" json:"atualizadoEm"`

	// Relationships
	Paciente Paciente `gorm:"foreignKey:PacienteID" json:"paciente,omitempty"`
	Dentista Dentista `gorm:"foreignKey:DentistaID" json:"dentista,omitempty"`
}

func (PlanoDental) TableName() string {
	return "planos_dentais"
}

// IsTerminal reports whether the plan item reached a final status
func (p *PlanoDental) IsTerminal() bool {
	return p.Status == PlanoConcluido || p.Status == PlanoCancelado
}

// Iniciar moves PENDENTE -> EM_ANDAMENTO.
func (p *PlanoDental) Iniciar() bool {
	if p.Status != PlanoPendente {
		return false
	}
	p.Status = PlanoEmAndamento
	return true
}

// Concluir moves EM_ANDAMENTO -> CONCLUIDO.
func (p *PlanoDental) Concluir() bool {
	if p.Status != PlanoEmAndamento {
		return false
	}
	p.Status = PlanoConcluido
	return true
}

// Cancelar moves any non-terminal status -> CANCELADO.
func (p *PlanoDental) Cancelar() bool {
	if p.IsTerminal() {
		return false
	}
	p.Status = PlanoCancelado
	return true
}
