package repository

import (
	"github.com/EduardoMSouza/consultorio-api/internal/domain/entity"

	"gorm.io/gorm"
)

type EvolucaoRepository interface {
	Create(db *gorm.DB, evolucao *entity.EvolucaoTratamento) error
	FindByID(db *gorm.DB, id uint) (*entity.EvolucaoTratamento, error)
	FindByPacienteID(db *gorm.DB, pacienteID uint) ([]entity.EvolucaoTratamento, error)
	Delete(db *gorm.DB, id uint) error
}
