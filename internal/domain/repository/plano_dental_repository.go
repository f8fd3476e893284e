package repository

import (
	"github.com/EduardoMSouza/consultorio-api/internal/domain/entity"

	"gorm.io/gorm"
)

type PlanoDentalRepository interface {
	Create(db *gorm.DB, plano *entity.PlanoDental) error
	FindByID(db *gorm.DB, id uint) (*entity.PlanoDental, error)
	FindPage(db *gorm.DB, filter *entity.PlanoDentalFilter) ([]entity.PlanoDental, int64, error)
	Update(db *gorm.DB, plano *entity.PlanoDental) error
	Delete(db *gorm.DB, id uint) error
}
