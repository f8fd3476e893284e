package repository

import (
	"time"

	"github.com/EduardoMSouza/consultorio-api/internal/domain/entity"

	"gorm.io/gorm"
)

type AgendamentoRepository interface {
	Create(db *gorm.DB, agendamento *entity.Agendamento) error
	FindByID(db *gorm.DB, id uint) (*entity.Agendamento, error)
	FindPage(db *gorm.DB, filter *entity.AgendamentoFilter) ([]entity.Agendamento, int64, error)
	Update(db *gorm.DB, agendamento *entity.Agendamento) error
	Delete(db *gorm.DB, id uint) error
	// CountOverlapping counts non-terminal appointments of the dentist on the
	// given date whose [horaInicio, horaFim) interval intersects the one
	// passed in. ignorarID excludes one appointment (the one being updated).
	CountOverlapping(db *gorm.DB, dentistaID uint, data time.Time, horaInicio, horaFim string, ignorarID uint) (int64, error)
}
