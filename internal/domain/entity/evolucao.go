package entity

import "time"

// EvolucaoTratamento is a treatment-evolution note appended to a patient's
// clinical record, optionally linked to a treatment plan item.
type EvolucaoTratamento struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PacienteID    uint      `gorm:"not null;index" json:"pacienteId"`
	DentistaID    uint      `gorm:"not null;index" json:"dentistaId"`
	PlanoDentalID *uint     `gorm:"index" json:"planoDentalId,omitempty"`
	Data          time.Time `gorm:"type:date;not null" json:"data"`
	Descricao     string    `gorm:"type:text;not null" json:"descricao"`
	CriadoPor     string    `gorm:"type:varchar(100)" json:"criadoPor,omitempty"`
	CriadoEm      time.Time `gorm:"autoCreateTime" json:"criadoEm"`

	// Relationships
	Paciente Paciente     `gorm:"foreignKey:PacienteID" json:"paciente,omitempty"`
	Dentista Dentista     `gorm:"foreignKey:DentistaID" json:"dentista,omitempty"`
	Plano    *PlanoDental `gorm:"foreignKey:PlanoDentalID" json:"plano,omitempty"`
}

func (EvolucaoTratamento) TableName() string {
	return "evolucoes_tratamento"
}
