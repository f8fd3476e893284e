package repository

import (
	"errors"

	"github.com/EduardoMSouza/consultorio-api/internal/domain/entity"
	domainRepo "github.com/EduardoMSouza/consultorio-api/internal/domain/repository"

	"gorm.io/gorm"
)

type dentistaRepository struct{}

func NewDentistaRepository() domainRepo.DentistaRepository {
	return &dentistaRepository{}
}

func (r *dentistaRepository) Create(db *gorm.DB, dentista *entity.Dentista) error {
	return db.Create(dentista).Error
}

func (r *dentistaRepository) FindByID(db *gorm.DB, id uint) (*entity.Dentista, error) {
	var dentista entity.Dentista
	err := db.Where("id = ?", id).First(&dentista).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dentista, nil
}

func (r *dentistaRepository) FindPage(db *gorm.DB, filter *entity.RegistroFilter) ([]entity.Dentista, int64, error) {
	query := db.Model(&entity.Dentista{})

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

	var dentistas []entity.Dentista
	err := query.Order("nome ASC").
		Limit(filter.Size).
		Offset(filter.Page * filter.Size).
		Find(&dentistas).Error
	if err != nil {
		return nil, 0, err
	}
	return dentistas, total, nil
}

func (r *dentistaRepository) Update(db *gorm.DB, dentista *entity.Dentista) error {
	return db.Save(dentista).Error
}

func (r *dentistaRepository) Delete(db *gorm.DB, id uint) error {
	return db.Delete(&entity.Dentista{}, id).Error
}
