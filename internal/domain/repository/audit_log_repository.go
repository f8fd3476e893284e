package repository

import (
	"github.com/EduardoMSouza/consultorio-api/internal/domain/entity"

	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(db *gorm.DB, log *entity.AuditLog) error
	FindPage(db *gorm.DB, filter *entity.PageFilter) ([]entity.AuditLog, int64, error)
}
