package handler

import (
	"cardapio-admin-svc/internal/service"
	"cardapio-admin-svc/internal/subcategory"
	"cardapio-admin-svc/pkg/logger"
	"cardapio-admin-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

// QuickEditRequest is the edited subcategory list of a category
type QuickEditRequest struct {
	BarID   uint               `json:"barId" example:"1"`
	Entries []subcategory.Edit `json:"entries" binding:"required,dive"`
}

// QuickEditHandler handles the subcategory quick edit
type QuickEditHandler struct {
	quickEditService service.QuickEditService
	logger           *logger.Logger
}

// NewQuickEditHandler creates a new QuickEditHandler instance
func NewQuickEditHandler(quickEditService service.QuickEditService, logger *logger.Logger) *QuickEditHandler {
	return &QuickEditHandler{
		quickEditService: quickEditService,
		logger:           logger,
	}
}

// Load returns the merged subcategory list of a category
// @Summary Load subcategory quick edit
// @Description Merges subcategories found on items with the stored subcategory records.
// @Tags subcategories
// @Produce json
// @Param id path int true "Category ID"
// @Param barId query int false "Bar ID"
// @Success 200 {object} utils.APIResponse{data=service.QuickEditView}
// @Router /api/v1/categories/{id}/subcategories [get]
func (h *QuickEditHandler) Load(c *gin.Context) {
	categoryID, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid category ID", err)
		return
	}
	barID, err := utils.GetOptionalUintQuery(c, "barId")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid barId", err)
		return
	}
	view, err := h.quickEditService.Load(c.Request.Context(), barID, categoryID)
	if err != nil {
		handleError(c, h.logger, "Failed to load subcategories", err)
		return
	}
	utils.SuccessResponse(c, "Subcategories retrieved successfully", view)
}

// Save applies renames, additions and the new order
// @Summary Save subcategory quick edit
// @Description Renames rewrite every item of the old name. Answers 207 when some steps failed.
// @Tags subcategories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param request body QuickEditRequest true "Edited list"
// @Success 200 {object} utils.APIResponse{data=service.QuickEditResult}
// @Success 207 {object} utils.APIResponse{data=service.QuickEditResult}
// @Failure 400 {object} utils.APIResponse "Rejected edit"
// @Router /api/v1/categories/{id}/subcategories [put]
func (h *QuickEditHandler) Save(c *gin.Context) {
	categoryID, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid category ID", err)
		return
	}
	var req QuickEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must list subcategory entries", err)
		return
	}
	res, err := h.quickEditService.Save(c.Request.Context(), req.BarID, categoryID, req.Entries)
	if err != nil {
		handleError(c, h.logger, "Failed to save subcategories", err)
		return
	}
	if res.Failed > 0 {
		utils.MultiStatusResponse(c, "Subcategories saved with failures", res)
		return
	}
	utils.SuccessResponse(c, "Subcategories saved successfully", res)
}
