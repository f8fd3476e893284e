package repository

import (
	"errors"

	"github.com/EduardoMSouza/consultorio-api/internal/domain/entity"
	domainRepo "github.com/EduardoMSouza/consultorio-api/internal/domain/repository"

	"gorm.io/gorm"
)

type evolucaoRepository struct{}

func NewEvolucaoRepository() domainRepo.EvolucaoRepository {
	return &evolucaoRepository{}
}

func (r *evolucaoRepository) Create(db *gorm.DB, evolucao *entity.EvolucaoTratamento) error {
	return db.Create(evolucao).Error
}

func (r *evolucaoRepository) FindByID(db *gorm.DB, id uint) (*entity.EvolucaoTratamento, error) {
	var evolucao entity.EvolucaoTratamento
	err := db.Where("id = ?", id).First(&evolucao).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &evolucao, nil
}

func (r *evolucaoRepository) FindByPacienteID(db *gorm.DB, pacienteID uint) ([]entity.EvolucaoTratamento, error) {
	var evolucoes []entity.EvolucaoTratamento
	err := db.Preload("Dentista").
		Where("paciente_id = ?", pacienteID).
		Order("data DESC, criado_em DESC").
		Find(&evolucoes).Error
	if err != nil {
		return nil, err
	}
	return evolucoes, nil
}

func (r *evolucaoRepository) Delete(db *gorm.DB, id uint) error {
	return db.Delete(&entity.EvolucaoTratamento{}, id).Error
}
