package repository

import (
	"github.com/EduardoMSouza/consultorio-api/internal/domain/entity"
	domainRepo "github.com/EduardoMSouza/consultorio-api/internal/domain/repository"

	"gorm.io/gorm"
)

type auditLogRepository struct{}

func NewAuditLogRepository() domainRepo.AuditLogRepository {
	return &auditLogRepository{}
}

func (r *auditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	return db.Create(log).Error
}

func (r *auditLogRepository) FindPage(db *gorm.DB, filter *entity.PageFilter) ([]entity.AuditLog, int64, error) {
	var total int64
	if err := db.Model(&entity.AuditLog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []entity.AuditLog
	err := db.Order("created_at DESC").
		Limit(filter.Size).
		Offset(filter.Page * filter.Size).
		Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
