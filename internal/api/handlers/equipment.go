package handlers

import (
	"net/http"

	"gearguard-backend/internal/database/models"
	apperrors "gearguard-backend/internal/errors"
	"gearguard-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EquipmentHandler handles HTTP requests for the equipment registry
type EquipmentHandler struct {
	service service.EquipmentServiceInterface
}

// NewEquipmentHandler creates a new equipment handler
func NewEquipmentHandler(service service.EquipmentServiceInterface) *EquipmentHandler {
	return &EquipmentHandler{service: service}
}

// List handles GET /equipment
func (h *EquipmentHandler) List(c *gin.Context) {
	var status *models.EquipmentStatus
	if raw := c.Query("status"); raw != "" {
		s := models.EquipmentStatus(raw)
		status = &s
	}
	var location *string
	if raw := c.Query("location"); raw != "" {
		location = &raw
	}

	equipment, err := h.service.List(status, location)
	if err != nil {
		respondAppError(c, err)
		return
	}
	respond(c, http.StatusOK, equipment, "Equipment retrieved successfully")
}

// GetByID handles GET /equipment/:id
func (h *EquipmentHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	equipment, err := h.service.GetByID(id)
	if err != nil {
		respondAppError(c, err)
		return
	}
	respond(c, http.StatusOK, equipment, "Equipment retrieved successfully")
}

// Create handles POST /equipment
func (h *EquipmentHandler) Create(c *gin.Context) {
	var req service.CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	equipment, err := h.service.Create(&req)
	if err != nil {
		respondAppError(c, err)
		return
	}
	respond(c, http.StatusCreated, equipment, "Equipment created successfully")
}

// Update handles PUT and PATCH /equipment/:id
func (h *EquipmentHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req service.UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	equipment, err := h.service.Update(id, &req)
	if err != nil {
		respondAppError(c, err)
		return
	}
	respond(c, http.StatusOK, equipment, "Equipment updated successfully")
}

// Scrap handles PATCH /equipment/:id/scrap
func (h *EquipmentHandler) Scrap(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	equipment, err := h.service.Scrap(id)
	if err != nil {
		respondAppError(c, err)
		return
	}
	respond(c, http.StatusOK, equipment, "Equipment scrapped successfully")
}

// Delete handles DELETE /equipment/:id
func (h *EquipmentHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.service.Delete(id); err != nil {
		respondAppError(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "Equipment deleted successfully")
}

// GetRequests handles GET /equipment/:id/requests
func (h *EquipmentHandler) GetRequests(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	result, err := h.service.GetRequests(id)
	if err != nil {
		respondAppError(c, err)
		return
	}
	respond(c, http.StatusOK, result, "Equipment requests retrieved successfully")
}

// parseIDParam parses the :id path parameter as a UUID and writes a 400
// envelope when it is malformed
func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondAppError(c, apperrors.NewValidationError("id", "must be a valid UUID"))
		return uuid.Nil, false
	}
	return id, true
}
