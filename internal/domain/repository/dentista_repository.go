package repository

import (
	"github.com/EduardoMSouza/consultorio-api/internal/domain/entity"

	"gorm.io/gorm"
)

type DentistaRepository interface {
	Create(db *gorm.DB, dentista *entity.Dentista) error
	FindByID(db *gorm.DB, id uint) (*entity.Dentista, error)
	FindPage(db *gorm.DB, filter *entity.RegistroFilter) ([]entity.Dentista, int64, error)
	Update(db *gorm.DB, dentista *entity.Dentista) error
	Delete(db *gorm.DB, id uint) error
}
