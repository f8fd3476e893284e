package entity

import "time"

// Paciente represents a care recipient and the holder of clinical records.
type Paciente struct {
	ID             uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Nome           string     `gorm:"type:varchar(255);not null" json:"nome"`
	CPF            string     `gorm:"type:char(11);uniqueIndex;not null" json:"cpf"`
	DataNascimento *time.Time `gorm:"type:date" json:"dataNascimento,omitempty"`
	Telefone       string     `gorm:"type:varchar(20)" json:"telefone,omitempty"`
	Email          string     `gorm:"type:varchar(255)" json:"email,omitempty"`
	Endereco       string     `gorm:"type:text" json:"endereco,omitempty"`
	Convenio       string     `gorm:"type:varchar(100)" json:"convenio,omitempty"`
	Observacoes    string     `gorm:"type:text" json:"observacoes,omitempty"`
	Ativo          *bool      `gorm:"not null;default:true;index" json:"ativo"`
	CriadoEm       time.Time  `gorm:"autoCreateTime" json:"criadoEm"`
	AtualizadoEm   time.Time  `gorm:"autoUpdateTime" json:"atualizadoEm"`

	// Relationships
	Agendamentos []Agendamento        `gorm:"foreignKey:PacienteID" json:"agendamentos,omitempty"`
	Planos       []PlanoDental        `gorm:"foreignKey:PacienteID" json:"planos,omitempty"`
	Evolucoes    []EvolucaoTratamento `gorm:"foreignKey:PacienteID" json:"evolucoes,omitempty"`
}

func (Paciente) TableName() string {
	return "pacientes"
}
