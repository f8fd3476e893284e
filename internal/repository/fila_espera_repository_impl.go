package repository

import (
	"errors"
	"time"

	"github.com/EduardoMSouza/consultorio-api/internal/domain/entity"
	domainRepo "github.com/EduardoMSouza/consultorio-api/internal/domain/repository"

	"gorm.io/gorm"
)

// Statuses considered "in the queue" for ranking purposes
var filaAtiva = []entity.StatusFilaEspera{
	entity.FilaAguardando,
	entity.FilaNotificado,
	entity.FilaConfirmado,
}

type filaEsperaRepository struct{}

func NewFilaEsperaRepository() domainRepo.FilaEsperaRepository {
	return &filaEsperaRepository{}
}

func (r *filaEsperaRepository) Create(db *gorm.DB, entrada *entity.FilaEspera) error {
	return db.Create(entrada).Error
}

func (r *filaEsperaRepository) FindByID(db *gorm.DB, id uint) (*entity.FilaEspera, error) {
	var entrada entity.FilaEspera
	err := db.Preload("Paciente").Preload("Dentista").Where("id = ?", id).First(&entrada).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entrada, nil
}

func (r *filaEsperaRepository) FindPage(db *gorm.DB, filter *entity.FilaEsperaFilter) ([]entity.FilaEspera, int64, error) {
	query := db.Model(&entity.FilaEspera{})

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

	var entradas []entity.FilaEspera
	err := query.Preload("Paciente").Preload("Dentista").
		Order("prioridade DESC, criado_em ASC").
		Limit(filter.Size).
		Offset(filter.Page * filter.Size).
		Find(&entradas).Error
	if err != nil {
		return nil, 0, err
	}
	return entradas, total, nil
}

func (r *filaEsperaRepository) Update(db *gorm.DB, entrada *entity.FilaEspera) error {
	return db.Save(entrada).Error
}

func (r *filaEsperaRepository) Delete(db *gorm.DB, id uint) error {
	return db.Delete(&entity.FilaEspera{}, id).Error
}

func (r *filaEsperaRepository) PosicaoNaFila(db *gorm.DB, entrada *entity.FilaEspera) (int, error) {
	if entrada.IsTerminal() {
		return 0, nil
	}

	var ahead int64
	err := db.Model(&entity.FilaEspera{}).
		Where("status IN ?", filaAtiva).
		Where("prioridade > ? OR (prioridade = ? AND criado_em < ?)",
			entrada.Prioridade, entrada.Prioridade, entrada.CriadoEm).
		Count(&ahead).Error
	if err != nil {
		return 0, err
	}
	return int(ahead) + 1, nil
}

// ExpireStale is a guarded bulk update so two concurrent sweeps cannot
// double-expire: only AGUARDANDO rows older than the cutoff change.
func (r *filaEsperaRepository) ExpireStale(db *gorm.DB, cutoff time.Time) (int64, error) {
	result := db.Model(&entity.FilaEspera{}).
		Where("status = ? AND criado_em < ?", entity.FilaAguardando, cutoff).
		Update("status", entity.FilaExpirado)
	return result.RowsAffected, result.Error
}
