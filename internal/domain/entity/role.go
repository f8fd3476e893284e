package entity

// Role represents a staff role in the system
type Role struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleName    string `gorm:"type:varchar(50);uniqueIndex;not null" json:"roleName"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Relationships
	Users []User `gorm:"foreignKey:RoleID" json:"users,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// Role ID constants
const (
	RoleIDAdmin    = 1
	RoleIDDentista = 2
	RoleIDRecepcao = 3
)

// Role name constants
const (
	RoleAdmin    = "admin"
	RoleDentista = "dentista"
	RoleRecepcao = "recepcao"
)
