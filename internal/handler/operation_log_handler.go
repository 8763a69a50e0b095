package handler

import (
	"errors"

	"cardapio-admin-svc/internal/repository"
	"cardapio-admin-svc/internal/service"
	"cardapio-admin-svc/pkg/logger"
	"cardapio-admin-svc/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// OperationLogHandler exposes the audit trail of bulk admin operations
type OperationLogHandler struct {
	operationLogService service.OperationLogService
	logger              *logger.Logger
}

// NewOperationLogHandler creates a new OperationLogHandler instance
func NewOperationLogHandler(operationLogService service.OperationLogService, logger *logger.Logger) *OperationLogHandler {
	return &OperationLogHandler{
		operationLogService: operationLogService,
		logger:              logger,
	}
}

// List returns operation logs, newest first
// @Summary List operation logs
// @Tags operations
// @Produce json
// @Param code query string false "Operation code" Enums(QUICK_EDIT_SAVE, GUEST_IMPORT, BULK_DELETE, BULK_VISIBILITY, GALLERY_REFRESH)
// @Param status query string false "Status" Enums(START, SUCCESS, PARTIAL, FAILED)
// @Param barId query int false "Bar ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} utils.PaginatedResponse{data=[]models.OperationLog}
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/operations [get]
func (h *OperationLogHandler) List(c *gin.Context) {
	barID, err := utils.GetOptionalUintQuery(c, "barId")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid barId", err)
		return
	}
	page, limit := utils.GetPaginationParams(c)
	filter := repository.OperationLogFilter{
		OperationCode: c.Query("code"),
		Status:        c.Query("status"),
		BarID:         barID,
	}

	logs, total, err := h.operationLogService.List(filter, page, limit)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list operation logs")
		utils.InternalServerErrorResponse(c, "Failed to list operation logs", err)
		return
	}
	utils.PaginatedSuccessResponse(c, "Operation logs retrieved successfully", logs, page, limit, total)
}

// Get returns the log of one operation
// @Summary Get operation log
// @Tags operations
// @Produce json
// @Param documentId path string true "Document ID"
// @Success 200 {object} utils.APIResponse{data=models.OperationLog}
// @Failure 404 {object} utils.APIResponse "Operation not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/operations/{documentId} [get]
func (h *OperationLogHandler) Get(c *gin.Context) {
	log, err := h.operationLogService.Get(c.Param("documentId"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.NotFoundResponse(c, "Operation not found")
		return
	}
	if err != nil {
		h.logger.WithError(err).Error("Failed to get operation log")
		utils.InternalServerErrorResponse(c, "Failed to get operation log", err)
		return
	}
	utils.SuccessResponse(c, "Operation log retrieved successfully", log)
}
