package repository

import (
	"errors"
	"time"

	"github.com/EduardoMSouza/consultorio-api/internal/domain/entity"
	domainRepo "github.com/EduardoMSouza/consultorio-api/internal/domain/repository"

	"gorm.io/gorm"
)

type agendamentoRepository struct{}

func NewAgendamentoRepository() domainRepo.AgendamentoRepository {
	return &agendamentoRepository{}
}

func (r *agendamentoRepository) Create(db *gorm.DB, agendamento *entity.Agendamento) error {
	return db.Create(agendamento).Error
}

func (r *agendamentoRepository) FindByID(db *gorm.DB, id uint) (*entity.Agendamento, error) {
	var agendamento entity.Agendamento
	err := db.Preload("Dentista").Preload("Paciente").Where("id = ?", id).First(&agendamento).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &agendamento, nil
}

func (r *agendamentoRepository) FindPage(db *gorm.DB, filter *entity.AgendamentoFilter) ([]entity.Agendamento, int64, error) {
	query := db.Model(&entity.Agendamento{})

	if filter.DentistaID != 0 {
		query = query.Where("dentista_id = ?", filter.DentistaID)
	}
	if filter.PacienteID != 0 {
		query = query.Where("paciente_id = ?", filter.PacienteID)
	}
	if filter.Data != "" {
		query = query.Where("data_consulta = ?", filter.Data)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var agendamentos []entity.Agendamento
	err := query.Preload("Dentista").Preload("Paciente").
		Order("data_consulta ASC, hora_inicio ASC").
		Limit(filter.Size).
		Offset(filter.Page * filter.Size).
		Find(&agendamentos).Error
	if err != nil {
		return nil, 0, err
	}
	return agendamentos, total, nil
}

func (r *agendamentoRepository) Update(db *gorm.DB, agendamento *entity.Agendamento) error {
	return db.Save(agendamento).Error
}

func (r *agendamentoRepository) Delete(db *gorm.DB, id uint) error {
	return db.Delete(&entity.Agendamento{}, id).Error
}

func (r *agendamentoRepository) CountOverlapping(db *gorm.DB, dentistaID uint, data time.Time, horaInicio, horaFim string, ignorarID uint) (int64, error) {
	query := db.Model(&entity.Agendamento{}).
		Where("dentista_id = ? AND data_consulta = ?", dentistaID, data).
		Where("status NOT IN ?", []entity.StatusAgendamento{entity.StatusCancelado, entity.StatusFaltou}).
		// Half-open interval intersection: [a, b) overlaps [c, d) iff a < d and b > c
		Where("hora_inicio < ? AND hora_fim > ?", horaFim, horaInicio)

	if ignorarID != 0 {
		query = query.Where("id != ?", ignorarID)
	}

	var count int64
	err := query.Count(&count).Error
	return count, err
}
