package models

import (
	"time"
)

// Operation statuses
const (
	OperationStart   = "START"
	OperationSuccess = "SUCCESS"
	OperationPartial = "PARTIAL"
	OperationFailed  = "FAILED"
)

// Operation codes
const (
	OpQuickEditSave  = "QUICK_EDIT_SAVE"
	OpGuestImport    = "GUEST_IMPORT"
	OpBulkDelete     = "BULK_DELETE"
	OpBulkVisibility = "BULK_VISIBILITY"
	OpGalleryRefresh = "GALLERY_REFRESH"
)

// OperationLog represents the admin_operation_logs table
type OperationLog struct {
	ID            uint      `json:"id" gorm:"primarykey"`
	DocumentID    string    `json:"document_id" gorm:"column:document_id;size:36;index"`
	OperationCode string    `json:"operation_code" gorm:"column:operation_code;size:64;index"`
	Status        string    `json:"status" gorm:"column:status;size:16"`
	Message       string    `json:"message" gorm:"column:message;type:text"`
	Summary       string    `json:"summary" gorm:"column:summary;type:text"`
	BarID         *uint     `json:"bar_id" gorm:"column:bar_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName sets the insert table name for OperationLog
func (OperationLog) TableName() string {
	return "admin_operation_logs"
}
