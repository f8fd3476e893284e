package entity

import "time"

// Dentista represents a clinical provider registered in the clinic.
// CRO is the regional dental council registration number, unique per dentist.
type Dentista struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Nome          string    `gorm:"type:varchar(255);not null" json:"nome"`
	CRO           string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"cro"`
	Especialidade string    `gorm:"type:varchar(100);index" json:"especialidade,omitempty"`
	Telefone      string    `gorm:"type:varchar(20)" json:"telefone,omitempty"`
	Email         string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Ativo         *bool     `gorm:"not null;default:true;index" json:"ativo"`
	CriadoEm      time.Time `gorm:"autoCreateTime" json:"criadoEm"`
	AtualizadoEm  time.Time `gorm:"autoUpdateTime" json:"atualizadoEm"`

	// Relationships
	Agendamentos []Agendamento `gorm:"foreignKey:DentistaID" json:"agendamentos,omitempty"`
}

func (Dentista) TableName() string {
	return "dentistas"
}
