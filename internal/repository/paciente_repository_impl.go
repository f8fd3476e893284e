package repository

import (
	"errors"

	"github.com/EduardoMSouza/consultorio-api/internal/domain/entity"
	domainRepo "github.com/EduardoMSouza/consultorio-api/internal/domain/repository"

	"gorm.io/gorm"
)

type pacienteRepository struct{}

func NewPacienteRepository() domainRepo.PacienteRepository {
	return &pacienteRepository{}
}

func (r *pacienteRepository) Create(db *gorm.DB, paciente *entity.Paciente) error {
	return db.Create(paciente).Error
}

func (r *pacienteRepository) FindByID(db *gorm.DB, id uint) (*entity.Paciente, error) {
	var paciente entity.Paciente
	err := db.Where("id = ?", id).First(&paciente).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &paciente, nil
}

func (r *pacienteRepository) FindPage(db *gorm.DB, filter *entity.RegistroFilter) ([]entity.Paciente, int64, error) {
	query := db.Model(&entity.Paciente{})

	if filter.Nome != "" {
		query = query.Where("nome ILIKE ?", "%"+filter.Nome+"%")
	}
	if filter.Ativo != nil {
		query = query.Where("ativo = ?", *filter.Ativo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var pacientes []entity.Paciente
	err := query.Order("nome ASC").
		Limit(filter.Size).
		Offset(filter.Page * filter.Size).
		Find(&pacientes).Error
	if err != nil {
		return nil, 0, err
	}
	return pacientes, total, nil
}

func (r *pacienteRepository) Update(db *gorm.DB, paciente *entity.Paciente) error {
	return db.Save(paciente).Error
}

func (r *pacienteRepository) Delete(db *gorm.DB, id uint) error {
	return db.Delete(&entity.Paciente{}, id).Error
}
