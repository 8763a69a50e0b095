package service

import (
	"encoding/json"
	"fmt"

	"cardapio-admin-svc/internal/models"
	"cardapio-admin-svc/internal/repository"
	"cardapio-admin-svc/pkg/logger"

	"github.com/google/uuid"
)

// Auditor records multi-step admin operations in the operation log.
// Storage failures are logged and never fail the audited operation.
type Auditor struct {
	repo   repository.OperationLogRepository
	logger *logger.Logger
}

// NewAuditor creates a new Auditor. A nil repo disables persistence.
func NewAuditor(repo repository.OperationLogRepository, logger *logger.Logger) *Auditor {
	return &Auditor{repo: repo, logger: logger}
}

// Operation is one audited run
type Operation struct {
	auditor    *Auditor
	DocumentID string
	Code       string
}

// Start logs the START status and returns the running operation
func (a *Auditor) Start(code, message string, barID uint) *Operation {
	op := &Operation{auditor: a, DocumentID: uuid.New().String(), Code: code}
	entry := &models.OperationLog{
		DocumentID:    op.DocumentID,
		OperationCode: code,
		Status:        models.OperationStart,
		Message:       message,
	}
	if barID != 0 {
		entry.BarID = &barID
	}
	if a.repo != nil {
		if err := a.repo.Create(entry); err != nil {
			a.logger.WithError(err).WithField("operation_code", code).Error("Failed to create operation log entry")
		}
	}
	a.logger.WithFields(map[string]interface{}{
		"operation_code": code,
		"document_id":    op.DocumentID,
	}).Info(message)
	return op
}

// Finish stores the final status with a JSON summary of result
func (op *Operation) Finish(status, message string, result interface{}) {
	a := op.auditor
	summary := ""
	if result != nil {
		if b, err := json.Marshal(result); err == nil {
			summary = string(b)
		}
	}
	if a.repo != nil {
		if err := a.repo.UpdateStatus(op.DocumentID, status, message, summary); err != nil {
			a.logger.WithError(err).WithField("document_id", op.DocumentID).Error("Failed to update operation log entry")
		}
	}
	entry := a.logger.WithFields(map[string]interface{}{
		"operation_code": op.Code,
		"document_id":    op.DocumentID,
		"status":         status,
	})
	if status == models.OperationSuccess {
		entry.Info(message)
		return
	}
	entry.Warn(message)
}

// Fail stores FAILED with err as the message
func (op *Operation) Fail(err error) {
	op.Finish(models.OperationFailed, fmt.Sprintf("%s failed: %v", op.Code, err), nil)
}

// statusFor picks SUCCESS, PARTIAL or FAILED from success and failure counts
func statusFor(succeeded, failed int) string {
	switch {
	case failed == 0:
		return models.OperationSuccess
	case succeeded == 0:
		return models.OperationFailed
	default:
		return models.OperationPartial
	}
}
