package repository

import (
	"errors"

	"github.com/EduardoMSouza/consultorio-api/internal/domain/entity"
	domainRepo "github.com/EduardoMSouza/consultorio-api/internal/domain/repository"

	"gorm.io/gorm"
)

type planoDentalRepository struct{}

func NewPlanoDentalRepository() domainRepo.PlanoDentalRepository {
	return &planoDentalRepository{}
}

func (r *planoDentalRepository) Create(db *gorm.DB, plano *entity.PlanoDental) error {
	return db.Create(plano).Error
}

func (r *planoDentalRepository) FindByID(db *gorm.DB, id uint) (*entity.PlanoDental, error) {
	var plano entity.PlanoDental
	err := db.Preload("Paciente").Preload("Dentista").Where("id = ?", id).First(&plano).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plano, nil
}

func (r *planoDentalRepository) FindPage(db *gorm.DB, filter *entity.PlanoDentalFilter) ([]entity.PlanoDental, int64, error) {
	query := db.Model(&entity.PlanoDental{})

	if filter.PacienteID != 0 {
		query = query.Where("paciente_id = ?", filter.PacienteID)
	}
	if filter.DentistaID != 0 {
		query = query.Where("dentista_id = ?", filter.DentistaID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var planos []entity.PlanoDental
	err := query.Preload("Paciente").Preload("Dentista").
		Order("criado_em DESC").
		Limit(filter.Size).
		Offset(filter.Page * filter.Size).
		Find(&planos).Error
	if err != nil {
		return nil, 0, err
	}
	return planos, total, nil
}

func (r *planoDentalRepository) Update(db *gorm.DB, plano *entity.PlanoDental) error {
	return db.Save(plano).Error
}

func (r *planoDentalRepository) Delete(db *gorm.DB, id uint) error {
	return db.Delete(&entity.PlanoDental{}, id).Error
}
