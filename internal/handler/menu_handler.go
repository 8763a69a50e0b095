package handler

import (
	"cardapio-admin-svc/internal/cardapio"
	"cardapio-admin-svc/internal/models"
	"cardapio-admin-svc/internal/service"
	"cardapio-admin-svc/pkg/logger"
	"cardapio-admin-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

// BulkIDsRequest represents a request acting on many items
type BulkIDsRequest struct {
	IDs []uint `json:"ids" binding:"required,min=1"`
}

// BulkVisibilityRequest represents a request setting the visibility of many items
type BulkVisibilityRequest struct {
	IDs     []uint            `json:"ids" binding:"required,min=1"`
	Visible models.Visibility `json:"visible" binding:"required" swaggertype:"string" enums:"VISIBLE,PAUSED"`
}

// MenuHandler handles bars, categories, items, trash and seals
type MenuHandler struct {
	menuService service.MenuService
	logger      *logger.Logger
}

// NewMenuHandler creates a new MenuHandler instance
func NewMenuHandler(menuService service.MenuService, logger *logger.Logger) *MenuHandler {
	return &MenuHandler{
		menuService: menuService,
		logger:      logger,
	}
}

// ListBars returns every bar
// @Summary List bars
// @Tags bars
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]models.Bar}
// @Failure 503 {object} utils.APIResponse "Menu API unreachable"
// @Router /api/v1/bars [get]
func (h *MenuHandler) ListBars(c *gin.Context) {
	bars, err := h.menuService.ListBars(c.Request.Context())
	if err != nil {
		handleError(c, h.logger, "Failed to list bars", err)
		return
	}
	utils.SuccessResponse(c, "Bars retrieved successfully", bars)
}

// GetBar returns one bar with resolved images and its seal palette
// @Summary Get bar
// @Tags bars
// @Produce json
// @Param id path int true "Bar ID"
// @Success 200 {object} utils.APIResponse{data=service.BarView}
// @Failure 400 {object} utils.APIResponse "Invalid bar ID"
// @Failure 404 {object} utils.APIResponse "Bar not found"
// @Router /api/v1/bars/{id} [get]
func (h *MenuHandler) GetBar(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid bar ID", err)
		return
	}
	bar, err := h.menuService.GetBar(c.Request.Context(), id)
	if err != nil {
		handleError(c, h.logger, "Failed to get bar", err)
		return
	}
	utils.SuccessResponse(c, "Bar retrieved successfully", bar)
}

// CreateBar creates a bar
// @Summary Create bar
// @Tags bars
// @Accept json
// @Produce json
// @Param request body models.Bar true "Bar"
// @Success 201 {object} utils.APIResponse{data=models.Bar}
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Router /api/v1/bars [post]
func (h *MenuHandler) CreateBar(c *gin.Context) {
	var bar models.Bar
	if err := c.ShouldBindJSON(&bar); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}
	created, err := h.menuService.CreateBar(c.Request.Context(), &bar)
	if err != nil {
		handleError(c, h.logger, "Failed to create bar", err)
		return
	}
	utils.CreatedResponse(c, "Bar created successfully", created)
}

// UpdateBar replaces a bar
// @Summary Update bar
// @Tags bars
// @Accept json
// @Produce json
// @Param id path int true "Bar ID"
// @Param request body models.Bar true "Bar"
// @Success 200 {object} utils.APIResponse{data=models.Bar}
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Router /api/v1/bars/{id} [put]
func (h *MenuHandler) UpdateBar(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid bar ID", err)
		return
	}
	var bar models.Bar
	if err := c.ShouldBindJSON(&bar); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}
	bar.ID = id
	updated, err := h.menuService.UpdateBar(c.Request.Context(), &bar)
	if err != nil {
		handleError(c, h.logger, "Failed to update bar", err)
		return
	}
	utils.SuccessResponse(c, "Bar updated successfully", updated)
}

// DeleteBar deletes a bar
// @Summary Delete bar
// @Tags bars
// @Produce json
// @Param id path int true "Bar ID"
// @Success 200 {object} utils.APIResponse
// @Router /api/v1/bars/{id} [delete]
func (h *MenuHandler) DeleteBar(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid bar ID", err)
		return
	}
	if err := h.menuService.DeleteBar(c.Request.Context(), id); err != nil {
		handleError(c, h.logger, "Failed to delete bar", err)
		return
	}
	utils.SuccessResponse(c, "Bar deleted successfully", nil)
}

// ListCategories returns the categories of a bar
// @Summary List categories
// @Tags categories
// @Produce json
// @Param barId query int false "Bar ID"
// @Success 200 {object} utils.APIResponse{data=[]models.Category}
// @Router /api/v1/categories [get]
func (h *MenuHandler) ListCategories(c *gin.Context) {
	barID, err := utils.GetOptionalUintQuery(c, "barId")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid barId", err)
		return
	}
	categories, err := h.menuService.ListCategories(c.Request.Context(), barID)
	if err != nil {
		handleError(c, h.logger, "Failed to list categories", err)
		return
	}
	utils.SuccessResponse(c, "Categories retrieved successfully", categories)
}

// CreateCategory creates a category
// @Summary Create category
// @Tags categories
// @Accept json
// @Produce json
// @Param request body models.Category true "Category"
// @Success 201 {object} utils.APIResponse{data=models.Category}
// @Router /api/v1/categories [post]
func (h *MenuHandler) CreateCategory(c *gin.Context) {
	var category models.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}
	created, err := h.menuService.CreateCategory(c.Request.Context(), &category)
	if err != nil {
		handleError(c, h.logger, "Failed to create category", err)
		return
	}
	utils.CreatedResponse(c, "Category created successfully", created)
}

// UpdateCategory replaces a category
// @Summary Update category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param request body models.Category true "Category"
// @Success 200 {object} utils.APIResponse{data=models.Category}
// @Router /api/v1/categories/{id} [put]
func (h *MenuHandler) UpdateCategory(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid category ID", err)
		return
	}
	var category models.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}
	category.ID = id
	updated, err := h.menuService.UpdateCategory(c.Request.Context(), &category)
	if err != nil {
		handleError(c, h.logger, "Failed to update category", err)
		return
	}
	utils.SuccessResponse(c, "Category updated successfully", updated)
}

// DeleteCategory deletes a category
// @Summary Delete category
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} utils.APIResponse
// @Router /api/v1/categories/{id} [delete]
func (h *MenuHandler) DeleteCategory(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid category ID", err)
		return
	}
	if err := h.menuService.DeleteCategory(c.Request.Context(), id); err != nil {
		handleError(c, h.logger, "Failed to delete category", err)
		return
	}
	utils.SuccessResponse(c, "Category deleted successfully", nil)
}

// ListItems returns menu items with display fields
// @Summary List menu items
// @Tags items
// @Produce json
// @Param barId query int false "Bar ID"
// @Param categoryId query int false "Category ID"
// @Success 200 {object} utils.APIResponse{data=[]service.ItemView}
// @Failure 503 {object} utils.APIResponse "Menu API unreachable"
// @Router /api/v1/items [get]
func (h *MenuHandler) ListItems(c *gin.Context) {
	barID, err := utils.GetOptionalUintQuery(c, "barId")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid barId", err)
		return
	}
	categoryID, err := utils.GetOptionalUintQuery(c, "categoryId")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid categoryId", err)
		return
	}
	items, err := h.menuService.ListItems(c.Request.Context(), cardapio.ItemFilter{BarID: barID, CategoryID: categoryID})
	if err != nil {
		handleError(c, h.logger, "Failed to list items", err)
		return
	}
	utils.SuccessResponse(c, "Items retrieved successfully", items)
}

// GetItem returns one menu item
// @Summary Get menu item
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} utils.APIResponse{data=service.ItemView}
// @Failure 404 {object} utils.APIResponse "Item not found"
// @Router /api/v1/items/{id} [get]
func (h *MenuHandler) GetItem(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid item ID", err)
		return
	}
	item, err := h.menuService.GetItem(c.Request.Context(), id)
	if err != nil {
		handleError(c, h.logger, "Failed to get item", err)
		return
	}
	utils.SuccessResponse(c, "Item retrieved successfully", item)
}

// CreateItem creates a menu item
// @Summary Create menu item
// @Description Price -1 means "Sob Consulta". Visibility defaults to VISIBLE.
// @Tags items
// @Accept json
// @Produce json
// @Param request body models.MenuItem true "Menu item"
// @Success 201 {object} utils.APIResponse{data=models.MenuItem}
// @Failure 400 {object} utils.APIResponse "Missing required field"
// @Router /api/v1/items [post]
func (h *MenuHandler) CreateItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}
	created, err := h.menuService.CreateItem(c.Request.Context(), &item)
	if err != nil {
		handleError(c, h.logger, "Failed to create item", err)
		return
	}
	utils.CreatedResponse(c, "Item created successfully", created)
}

// UpdateItem replaces a menu item
// @Summary Update menu item
// @Tags items
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param request body models.MenuItem true "Menu item"
// @Success 200 {object} utils.APIResponse{data=models.MenuItem}
// @Failure 400 {object} utils.APIResponse "Missing required field"
// @Router /api/v1/items/{id} [put]
func (h *MenuHandler) UpdateItem(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid item ID", err)
		return
	}
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}
	item.ID = id
	updated, err := h.menuService.UpdateItem(c.Request.Context(), &item)
	if err != nil {
		handleError(c, h.logger, "Failed to update item", err)
		return
	}
	utils.SuccessResponse(c, "Item updated successfully", updated)
}

// DeleteItem moves a menu item to the trash
// @Summary Delete menu item
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} utils.APIResponse
// @Router /api/v1/items/{id} [delete]
func (h *MenuHandler) DeleteItem(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid item ID", err)
		return
	}
	if err := h.menuService.DeleteItem(c.Request.Context(), id); err != nil {
		handleError(c, h.logger, "Failed to delete item", err)
		return
	}
	utils.SuccessResponse(c, "Item deleted successfully", nil)
}

// ToggleVisibility flips an item between VISIBLE and PAUSED
// @Summary Toggle item visibility
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} utils.APIResponse{data=models.MenuItem}
// @Router /api/v1/items/{id}/toggle-visibility [post]
func (h *MenuHandler) ToggleVisibility(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid item ID", err)
		return
	}
	item, err := h.menuService.ToggleVisibility(c.Request.Context(), id)
	if err != nil {
		handleError(c, h.logger, "Failed to toggle item visibility", err)
		return
	}
	utils.SuccessResponse(c, "Item visibility updated successfully", item)
}

// BulkDelete deletes many items
// @Summary Bulk delete items
// @Description Deletes every id concurrently. Answers 207 when some deletions failed.
// @Tags items
// @Accept json
// @Produce json
// @Param request body BulkIDsRequest true "Item IDs"
// @Success 200 {object} utils.APIResponse{data=service.BulkResult}
// @Success 207 {object} utils.APIResponse{data=service.BulkResult}
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Router /api/v1/items/bulk-delete [post]
func (h *MenuHandler) BulkDelete(c *gin.Context) {
	var req BulkIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must list item ids", err)
		return
	}
	res := h.menuService.BulkDelete(c.Request.Context(), req.IDs)
	h.respondBulk(c, "Items deleted", res)
}

// BulkSetVisibility sets the visibility of many items
// @Summary Bulk set item visibility
// @Tags items
// @Accept json
// @Produce json
// @Param request body BulkVisibilityRequest true "Item IDs and visibility"
// @Success 200 {object} utils.APIResponse{data=service.BulkResult}
// @Success 207 {object} utils.APIResponse{data=service.BulkResult}
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Router /api/v1/items/bulk-visibility [post]
func (h *MenuHandler) BulkSetVisibility(c *gin.Context) {
	var req BulkVisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must list item ids and a visibility", err)
		return
	}
	res := h.menuService.BulkSetVisibility(c.Request.Context(), req.IDs, req.Visible)
	h.respondBulk(c, "Item visibility updated", res)
}

func (h *MenuHandler) respondBulk(c *gin.Context, message string, res *service.BulkResult) {
	h.logger.WithFields(map[string]interface{}{
		"requested": res.Requested,
		"succeeded": res.Succeeded,
		"failed":    res.Failed,
	}).Info(message)

	if res.OK() {
		utils.SuccessResponse(c, message+" successfully", res)
		return
	}
	utils.MultiStatusResponse(c, message+" with failures", res)
}

// ListTrash returns soft deleted records
// @Summary List trash
// @Tags trash
// @Produce json
// @Param barId query int false "Bar ID"
// @Success 200 {object} utils.APIResponse{data=[]models.TrashEntry}
// @Router /api/v1/trash [get]
func (h *MenuHandler) ListTrash(c *gin.Context) {
	barID, err := utils.GetOptionalUintQuery(c, "barId")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid barId", err)
		return
	}
	entries, err := h.menuService.ListTrash(c.Request.Context(), barID)
	if err != nil {
		handleError(c, h.logger, "Failed to list trash", err)
		return
	}
	utils.SuccessResponse(c, "Trash retrieved successfully", entries)
}

// RestoreTrash restores a soft deleted record
// @Summary Restore from trash
// @Tags trash
// @Produce json
// @Param id path int true "Trash entry ID"
// @Success 200 {object} utils.APIResponse
// @Router /api/v1/trash/{id}/restore [post]
func (h *MenuHandler) RestoreTrash(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid trash entry ID", err)
		return
	}
	if err := h.menuService.RestoreTrash(c.Request.Context(), id); err != nil {
		handleError(c, h.logger, "Failed to restore trash entry", err)
		return
	}
	utils.SuccessResponse(c, "Entry restored successfully", nil)
}

// ListSeals returns the seal catalog, with a bar's colors when barId is set
// @Summary List seals
// @Tags seals
// @Produce json
// @Param barId query int false "Bar ID"
// @Success 200 {object} utils.APIResponse{data=[]models.Seal}
// @Router /api/v1/seals [get]
func (h *MenuHandler) ListSeals(c *gin.Context) {
	barID, err := utils.GetOptionalUintQuery(c, "barId")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid barId", err)
		return
	}
	seals, err := h.menuService.ListSeals(c.Request.Context(), barID)
	if err != nil {
		handleError(c, h.logger, "Failed to list seals", err)
		return
	}
	utils.SuccessResponse(c, "Seals retrieved successfully", seals)
}

// WineValues lists the values used for a wine attribute
// @Summary List wine attribute values
// @Tags seals
// @Produce json
// @Param attribute path string true "Attribute" Enums(pais, uva, tipo, regiao)
// @Param barId query int false "Bar ID"
// @Success 200 {object} utils.APIResponse{data=[]string}
// @Router /api/v1/seals/wine/{attribute} [get]
func (h *MenuHandler) WineValues(c *gin.Context) {
	barID, err := utils.GetOptionalUintQuery(c, "barId")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid barId", err)
		return
	}
	values, err := h.menuService.WineValues(c.Request.Context(), barID, c.Param("attribute"))
	if err != nil {
		handleError(c, h.logger, "Failed to list wine values", err)
		return
	}
	utils.SuccessResponse(c, "Wine values retrieved successfully", values)
}
