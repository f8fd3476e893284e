package repository

import (
	"github.com/EduardoMSouza/consultorio-api/internal/domain/entity"

	"gorm.io/gorm"
)

type PacienteRepository interface {
	Create(db *gorm.DB, paciente *entity.Paciente) error
	FindByID(db *gorm.DB, id uint) (*entity.Paciente, error)
	FindPage(db *gorm.DB, filter *entity.RegistroFilter) ([]entity.Paciente, int64, error)
	Update(db *gorm.DB, paciente *entity.Paciente) error
	Delete(db *gorm.DB, id uint) error
}
