package handler

import (
	"net/http"

	"cardapio-admin-svc/internal/models"
	"cardapio-admin-svc/internal/service"
	"cardapio-admin-svc/pkg/logger"
	"cardapio-admin-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

// EventHandler handles events and operational details
type EventHandler struct {
	eventService service.EventService
	logger       *logger.Logger
}

// NewEventHandler creates a new EventHandler instance
func NewEventHandler(eventService service.EventService, logger *logger.Logger) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		logger:       logger,
	}
}

// ListEvents returns the events of a bar
// @Summary List events
// @Tags events
// @Produce json
// @Param barId query int false "Bar ID"
// @Success 200 {object} utils.APIResponse{data=[]service.EventView}
// @Router /api/v1/events [get]
func (h *EventHandler) ListEvents(c *gin.Context) {
	barID, err := utils.GetOptionalUintQuery(c, "barId")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid barId", err)
		return
	}
	events, err := h.eventService.ListEvents(c.Request.Context(), barID)
	if err != nil {
		handleError(c, h.logger, "Failed to list events", err)
		return
	}
	utils.SuccessResponse(c, "Events retrieved successfully", events)
}

// GetEvent returns one event
// @Summary Get event
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} utils.APIResponse{data=service.EventView}
// @Failure 404 {object} utils.APIResponse "Event not found"
// @Router /api/v1/events/{id} [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid event ID", err)
		return
	}
	event, err := h.eventService.GetEvent(c.Request.Context(), id)
	if err != nil {
		handleError(c, h.logger, "Failed to get event", err)
		return
	}
	utils.SuccessResponse(c, "Event retrieved successfully", event)
}

// CreateEvent creates an event
// @Summary Create event
// @Tags events
// @Accept json
// @Produce json
// @Param request body models.Event true "Event"
// @Success 201 {object} utils.APIResponse{data=models.Event}
// @Failure 400 {object} utils.APIResponse "Missing required field"
// @Router /api/v1/events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var event models.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}
	created, err := h.eventService.CreateEvent(c.Request.Context(), &event)
	if err != nil {
		handleError(c, h.logger, "Failed to create event", err)
		return
	}
	utils.CreatedResponse(c, "Event created successfully", created)
}

// UpdateEvent replaces an event
// @Summary Update event
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param request body models.Event true "Event"
// @Success 200 {object} utils.APIResponse{data=models.Event}
// @Router /api/v1/events/{id} [put]
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid event ID", err)
		return
	}
	var event models.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}
	event.ID = id
	updated, err := h.eventService.UpdateEvent(c.Request.Context(), &event)
	if err != nil {
		handleError(c, h.logger, "Failed to update event", err)
		return
	}
	utils.SuccessResponse(c, "Event updated successfully", updated)
}

// DeleteEvent deletes an event
// @Summary Delete event
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} utils.APIResponse
// @Router /api/v1/events/{id} [delete]
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid event ID", err)
		return
	}
	if err := h.eventService.DeleteEvent(c.Request.Context(), id); err != nil {
		handleError(c, h.logger, "Failed to delete event", err)
		return
	}
	utils.SuccessResponse(c, "Event deleted successfully", nil)
}

// UploadImage stores an event flyer and returns its URL
// @Summary Upload event image
// @Tags events
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image"
// @Success 201 {object} utils.APIResponse{data=map[string]string}
// @Router /api/v1/events/upload-image [post]
func (h *EventHandler) UploadImage(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, "File is required", err)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		utils.BadRequestResponse(c, "Failed to read file", err)
		return
	}
	defer file.Close()

	url, err := h.eventService.UploadEventImage(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		handleError(c, h.logger, "Failed to upload event image", err)
		return
	}
	utils.CreatedResponse(c, "Event image uploaded successfully", gin.H{"url": url})
}

// ListOperationalDetails returns the operational details of a bar
// @Summary List operational details
// @Tags operational-details
// @Produce json
// @Param barId query int false "Bar ID"
// @Success 200 {object} utils.APIResponse{data=[]models.OperationalDetail}
// @Router /api/v1/operational-details [get]
func (h *EventHandler) ListOperationalDetails(c *gin.Context) {
	barID, err := utils.GetOptionalUintQuery(c, "barId")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid barId", err)
		return
	}
	details, err := h.eventService.ListOperationalDetails(c.Request.Context(), barID)
	if err != nil {
		handleError(c, h.logger, "Failed to list operational details", err)
		return
	}
	utils.SuccessResponse(c, "Operational details retrieved successfully", details)
}

// CreateOperationalDetail creates an operational detail
// @Summary Create operational detail
// @Tags operational-details
// @Accept json
// @Produce json
// @Param request body models.OperationalDetail true "Operational detail"
// @Success 201 {object} utils.APIResponse{data=models.OperationalDetail}
// @Router /api/v1/operational-details [post]
func (h *EventHandler) CreateOperationalDetail(c *gin.Context) {
	var d models.OperationalDetail
	if err := c.ShouldBindJSON(&d); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}
	created, err := h.eventService.CreateOperationalDetail(c.Request.Context(), &d)
	if err != nil {
		handleError(c, h.logger, "Failed to create operational detail", err)
		return
	}
	utils.CreatedResponse(c, "Operational detail created successfully", created)
}

// UpdateOperationalDetail replaces an operational detail
// @Summary Update operational detail
// @Tags operational-details
// @Accept json
// @Produce json
// @Param id path int true "Operational detail ID"
// @Param request body models.OperationalDetail true "Operational detail"
// @Success 200 {object} utils.APIResponse{data=models.OperationalDetail}
// @Router /api/v1/operational-details/{id} [put]
func (h *EventHandler) UpdateOperationalDetail(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid operational detail ID", err)
		return
	}
	var d models.OperationalDetail
	if err := c.ShouldBindJSON(&d); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}
	d.ID = id
	updated, err := h.eventService.UpdateOperationalDetail(c.Request.Context(), &d)
	if err != nil {
		handleError(c, h.logger, "Failed to update operational detail", err)
		return
	}
	utils.SuccessResponse(c, "Operational detail updated successfully", updated)
}

// DeleteOperationalDetail deletes an operational detail
// @Summary Delete operational detail
// @Tags operational-details
// @Produce json
// @Param id path int true "Operational detail ID"
// @Success 200 {object} utils.APIResponse
// @Router /api/v1/operational-details/{id} [delete]
func (h *EventHandler) DeleteOperationalDetail(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid operational detail ID", err)
		return
	}
	if err := h.eventService.DeleteOperationalDetail(c.Request.Context(), id); err != nil {
		handleError(c, h.logger, "Failed to delete operational detail", err)
		return
	}
	utils.SuccessResponse(c, "Operational detail deleted successfully", nil)
}
