package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a staff account able to authenticate against the API.
// Dentists and patients are registry entities, not login users.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RoleID       int       `gorm:"not null;index" json:"roleId"`
	Login        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"login"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password     string    `gorm:"type:text;not null" json:"-"`
	Nome         string    `gorm:"type:varchar(255);not null" json:"nome"`
	Ativo        *bool     `gorm:"not null;default:true;index" json:"ativo"`
	CriadoEm     time.Time `gorm:"autoCreateTime" json:"criadoEm"`
	AtualizadoEm time.Time `gorm:"autoUpdateTime" json:"atualizadoEm"`

	// Relationships
	Role Role `gorm:"foreignKey:RoleID" json:"role,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// IsAtivo treats a nil flag as active for rows created before the column
func (u *User) IsAtivo() bool {
	return u.Ativo == nil || *u.Ativo
}
