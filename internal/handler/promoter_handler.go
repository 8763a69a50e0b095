package handler

import (
	"fmt"
	"net/http"

	"cardapio-admin-svc/internal/models"
	"cardapio-admin-svc/internal/service"
	"cardapio-admin-svc/pkg/logger"
	"cardapio-admin-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ImportGuestsRequest is a pasted guest list
type ImportGuestsRequest struct {
	Text string `json:"text" binding:"required" example:"Ana, 11999990000\nBruno\nCarla - (11) 98888-7777"`
}

// PromoterHandler handles the promoter dashboard
type PromoterHandler struct {
	promoterService service.PromoterService
	logger          *logger.Logger
}

// NewPromoterHandler creates a new PromoterHandler instance
func NewPromoterHandler(promoterService service.PromoterService, logger *logger.Logger) *PromoterHandler {
	return &PromoterHandler{
		promoterService: promoterService,
		logger:          logger,
	}
}

// ListEvents returns the promoter's events
// @Summary List promoter events
// @Tags promoter
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]models.PromoterEvent}
// @Router /api/v1/promoter/events [get]
func (h *PromoterHandler) ListEvents(c *gin.Context) {
	events, err := h.promoterService.ListEvents(c.Request.Context())
	if err != nil {
		handleError(c, h.logger, "Failed to list promoter events", err)
		return
	}
	utils.SuccessResponse(c, "Promoter events retrieved successfully", events)
}

// ListGuests returns the guests of a list
// @Summary List guests
// @Tags promoter
// @Produce json
// @Param id path int true "Guest list ID"
// @Success 200 {object} utils.APIResponse{data=[]models.Guest}
// @Router /api/v1/promoter/guest-lists/{id}/guests [get]
func (h *PromoterHandler) ListGuests(c *gin.Context) {
	listID, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid guest list ID", err)
		return
	}
	guests, err := h.promoterService.ListGuests(c.Request.Context(), listID)
	if err != nil {
		handleError(c, h.logger, "Failed to list guests", err)
		return
	}
	utils.SuccessResponse(c, "Guests retrieved successfully", guests)
}

// AddGuest adds one guest
// @Summary Add guest
// @Tags promoter
// @Accept json
// @Produce json
// @Param id path int true "Guest list ID"
// @Param request body models.Guest true "Guest"
// @Success 201 {object} utils.APIResponse{data=models.Guest}
// @Router /api/v1/promoter/guest-lists/{id}/guests [post]
func (h *PromoterHandler) AddGuest(c *gin.Context) {
	listID, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid guest list ID", err)
		return
	}
	var guest models.Guest
	if err := c.ShouldBindJSON(&guest); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}
	created, err := h.promoterService.AddGuest(c.Request.Context(), listID, &guest)
	if err != nil {
		handleError(c, h.logger, "Failed to add guest", err)
		return
	}
	utils.CreatedResponse(c, "Guest added successfully", created)
}

// PreviewImport parses a pasted list without importing it
// @Summary Preview guest import
// @Tags promoter
// @Accept json
// @Produce json
// @Param request body ImportGuestsRequest true "Pasted list"
// @Success 200 {object} utils.APIResponse{data=guestimport.Result}
// @Router /api/v1/promoter/guests/preview [post]
func (h *PromoterHandler) PreviewImport(c *gin.Context) {
	var req ImportGuestsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must contain the pasted text", err)
		return
	}
	utils.SuccessResponse(c, "Guest list parsed successfully", h.promoterService.PreviewImport(req.Text))
}

// ImportGuests adds every guest of a pasted list
// @Summary Import guests
// @Description Each guest is added individually; earlier successes are kept when one fails. Answers 207 on partial failure.
// @Tags promoter
// @Accept json
// @Produce json
// @Param id path int true "Guest list ID"
// @Param request body ImportGuestsRequest true "Pasted list"
// @Success 200 {object} utils.APIResponse{data=service.ImportResult}
// @Success 207 {object} utils.APIResponse{data=service.ImportResult}
// @Failure 400 {object} utils.APIResponse "No guests found"
// @Router /api/v1/promoter/guest-lists/{id}/import [post]
func (h *PromoterHandler) ImportGuests(c *gin.Context) {
	listID, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid guest list ID", err)
		return
	}
	var req ImportGuestsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must contain the pasted text", err)
		return
	}
	res, err := h.promoterService.ImportGuests(c.Request.Context(), listID, req.Text)
	if err != nil {
		handleError(c, h.logger, "Failed to import guests", err)
		return
	}

	h.logger.WithFields(map[string]interface{}{
		"guest_list_id": listID,
		"parsed":        res.Parsed,
		"imported":      res.Imported,
		"failed":        res.Failed,
	}).Info("Guest import finished")

	if res.Failed > 0 {
		utils.MultiStatusResponse(c, "Guests imported with failures", res)
		return
	}
	utils.SuccessResponse(c, "Guests imported successfully", res)
}

// Summary counts the guests of a list
// @Summary Guest list summary
// @Tags promoter
// @Produce json
// @Param id path int true "Guest list ID"
// @Success 200 {object} utils.APIResponse{data=models.GuestListSummary}
// @Router /api/v1/promoter/guest-lists/{id}/summary [get]
func (h *PromoterHandler) Summary(c *gin.Context) {
	listID, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid guest list ID", err)
		return
	}
	sum, err := h.promoterService.Summary(c.Request.Context(), listID)
	if err != nil {
		handleError(c, h.logger, "Failed to summarize guest list", err)
		return
	}
	utils.SuccessResponse(c, "Guest list summary retrieved successfully", sum)
}

// ExportGuests downloads a guest list as an Excel workbook
// @Summary Export guest list to Excel
// @Tags promoter
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path int true "Guest list ID"
// @Success 200 {file} binary "Excel file"
// @Failure 400 {object} utils.APIResponse
// @Router /api/v1/promoter/guest-lists/{id}/export [get]
func (h *PromoterHandler) ExportGuests(c *gin.Context) {
	listID, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid guest list ID", err)
		return
	}
	data, filename, err := h.promoterService.ExportGuests(c.Request.Context(), listID)
	if err != nil {
		handleError(c, h.logger, "Failed to export guest list", err)
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Transfer-Encoding", "binary")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
