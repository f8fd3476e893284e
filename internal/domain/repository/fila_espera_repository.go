package repository

import (
	"time"

	"github.com/EduardoMSouza/consultorio-api/internal/domain/entity"

	"gorm.io/gorm"
)

type FilaEsperaRepository interface {
	Create(db *gorm.DB, entrada *entity.FilaEspera) error
	FindByID(db *gorm.DB, id uint) (*entity.FilaEspera, error)
	FindPage(db *gorm.DB, filter *entity.FilaEsperaFilter) ([]entity.FilaEspera, int64, error)
	Update(db *gorm.DB, entrada *entity.FilaEspera) error
	Delete(db *gorm.DB, id uint) error
	// PosicaoNaFila returns the 1-based rank of an active entry, ordered by
	// prioridade descending and criadoEm ascending.
	PosicaoNaFila(db *gorm.DB, entrada *entity.FilaEspera) (int, error)
	// ExpireStale atomically moves AGUARDANDO entries created before the
	// cutoff to EXPIRADO and returns how many rows changed.
	ExpireStale(db *gorm.DB, cutoff time.Time) (int64, error)
}
