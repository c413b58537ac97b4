package handlers

import (
	"net/http"

	"gearguard-backend/internal/database/models"
	"gearguard-backend/internal/repository"
	"gearguard-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestHandler handles HTTP requests for the maintenance request ledger
type RequestHandler struct {
	service service.RequestServiceInterface
}

// NewRequestHandler creates a new request handler
func NewRequestHandler(service service.RequestServiceInterface) *RequestHandler {
	return &RequestHandler{service: service}
}

// List handles GET /requests
func (h *RequestHandler) List(c *gin.Context) {
	filter := repository.RequestFilter{}
	if raw := c.Query("status"); raw != "" {
		status := models.RequestStatus(raw)
		filter.Status = &status
	}
	if raw := c.Query("priority"); raw != "" {
		priority := models.RequestPriority(raw)
		filter.Priority = &priority
	}
	if raw := c.Query("type"); raw != "" {
		requestType := models.RequestType(raw)
		filter.Type = &requestType
	}
	if raw := c.Query("team"); raw != "" {
		teamID, err := uuid.Parse(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "team must be a valid UUID")
			return
		}
		filter.AssignedTeamID = &teamID
	}
	if raw := c.Query("equipment"); raw != "" {
		equipmentID, err := uuid.Parse(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "equipment must be a valid UUID")
			return
		}
		filter.EquipmentID = &equipmentID
	}

	requests, err := h.service.List(filter)
	if err != nil {
		respondAppError(c, err)
		return
	}
	respond(c, http.StatusOK, requests, "Requests retrieved successfully")
}

// GetByID handles GET /requests/:id
func (h *RequestHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	request, err := h.service.GetByID(id)
	if err != nil {
		respondAppError(c, err)
		return
	}
	respond(c, http.StatusOK, request, "Request retrieved successfully")
}

// Create handles POST /requests
func (h *RequestHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	var req service.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	request, err := h.service.Create(actor, &req)
	if err != nil {
		respondAppError(c, err)
		return
	}
	respond(c, http.StatusCreated, request, "Request created successfully")
}

// Update handles PUT and PATCH /requests/:id
func (h *RequestHandler) Update(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req service.UpdateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	request, err := h.service.Update(actor, id, &req)
	if err != nil {
		respondAppError(c, err)
		return
	}
	respond(c, http.StatusOK, request, "Request updated successfully")
}

// UpdateStatus handles PATCH /requests/:id/status
func (h *RequestHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req service.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	request, err := h.service.UpdateStatus(id, &req)
	if err != nil {
		respondAppError(c, err)
		return
	}
	respond(c, http.StatusOK, request, "Request status updated successfully")
}

// Delete handles DELETE /requests/:id
func (h *RequestHandler) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.service.Delete(actor, id); err != nil {
		respondAppError(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "Request deleted successfully")
}

// Kanban handles GET /requests/kanban
func (h *RequestHandler) Kanban(c *gin.Context) {
	board, err := h.service.Kanban()
	if err != nil {
		respondAppError(c, err)
		return
	}
	respond(c, http.StatusOK, board, "Kanban board retrieved successfully")
}

// Preventive handles GET /requests/preventive
func (h *RequestHandler) Preventive(c *gin.Context) {
	requests, err := h.service.Preventive(c.Query("month"), c.Query("year"))
	if err != nil {
		respondAppError(c, err)
		return
	}
	respond(c, http.StatusOK, requests, "Preventive requests retrieved successfully")
}
