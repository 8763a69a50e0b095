package repository

import (
	"cardapio-admin-svc/internal/models"

	"gorm.io/gorm"
)

// OperationLogFilter narrows List
type OperationLogFilter struct {
	OperationCode string
	Status        string
	BarID         uint
}

// OperationLogRepository defines the interface for operation log data operations
type OperationLogRepository interface {
	Create(log *models.OperationLog) error
	UpdateStatus(documentID, status, message, summary string) error
	GetByDocumentID(documentID string) (*models.OperationLog, error)
	List(filter OperationLogFilter, limit, offset int) ([]models.OperationLog, int64, error)
}

// operationLogRepository implements OperationLogRepository
type operationLogRepository struct {
	db *gorm.DB
}

// NewOperationLogRepository creates a new instance of OperationLogRepository
func NewOperationLogRepository(db *gorm.DB) OperationLogRepository {
	return &operationLogRepository{
		db: db,
	}
}

// Create creates a new operation log record
func (r *operationLogRepository) Create(log *models.OperationLog) error {
	return r.db.Create(log).Error
}

// UpdateStatus sets the final status of an operation
func (r *operationLogRepository) UpdateStatus(documentID, status, message, summary string) error {
	return r.db.Model(&models.OperationLog{}).
		Where("document_id = ?", documentID).
		Updates(map[string]interface{}{
			"status":  status,
			"message": message,
			"summary": summary,
		}).Error
}

// GetByDocumentID returns one operation log
func (r *operationLogRepository) GetByDocumentID(documentID string) (*models.OperationLog, error) {
	var log models.OperationLog
	if err := r.db.Where("document_id = ?", documentID).First(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

// List returns the most recent operation logs with the total count
func (r *operationLogRepository) List(filter OperationLogFilter, limit, offset int) ([]models.OperationLog, int64, error) {
	var logs []models.OperationLog
	var total int64

	query := r.db.Model(&models.OperationLog{})
	if filter.OperationCode != "" {
		query = query.Where("operation_code = ?", filter.OperationCode)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.BarID != 0 {
		query = query.Where("bar_id = ?", filter.BarID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&logs).Error; err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
