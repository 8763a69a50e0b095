package service

import (
	"fmt"

	"cardapio-admin-svc/internal/models"
	"cardapio-admin-svc/internal/repository"
)

// OperationLogService defines the interface for reading the operation log
type OperationLogService interface {
	List(filter repository.OperationLogFilter, page, limit int) ([]models.OperationLog, int64, error)
	Get(documentID string) (*models.OperationLog, error)
}

// operationLogService implements OperationLogService
type operationLogService struct {
	repo repository.OperationLogRepository
}

// NewOperationLogService creates a new instance of OperationLogService
func NewOperationLogService(repo repository.OperationLogRepository) OperationLogService {
	return &operationLogService{repo: repo}
}

// List returns one page of operation logs, newest first
func (s *operationLogService) List(filter repository.OperationLogFilter, page, limit int) ([]models.OperationLog, int64, error) {
	offset := (page - 1) * limit
	logs, total, err := s.repo.List(filter, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list operation logs: %w", err)
	}
	return logs, total, nil
}

// Get returns the log of one operation
func (s *operationLogService) Get(documentID string) (*models.OperationLog, error) {
	log, err := s.repo.GetByDocumentID(documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get operation log: %w", err)
	}
	return log, nil
}
