package handlers

import (
	"net/http"

	apperrors "gearguard-backend/internal/errors"
	"gearguard-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TeamHandler handles HTTP requests for maintenance teams
type TeamHandler struct {
	service service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(service service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{service: service}
}

// List handles GET /teams
func (h *TeamHandler) List(c *gin.Context) {
	teams, err := h.service.List()
	if err != nil {
		respondAppError(c, err)
		return
	}
	respond(c, http.StatusOK, teams, "Teams retrieved successfully")
}

// GetByID handles GET /teams/:id
func (h *TeamHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	team, err := h.service.GetByID(id)
	if err != nil {
		respondAppError(c, err)
		return
	}
	respond(c, http.StatusOK, team, "Team retrieved successfully")
}

// Create handles POST /teams
func (h *TeamHandler) Create(c *gin.Context) {
	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	team, err := h.service.Create(&req)
	if err != nil {
		respondAppError(c, err)
		return
	}
	respond(c, http.StatusCreated, team, "Team created successfully")
}

// Update handles PUT and PATCH /teams/:id
func (h *TeamHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req service.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	team, err := h.service.Update(id, &req)
	if err != nil {
		respondAppError(c, err)
		return
	}
	respond(c, http.StatusOK, team, "Team updated successfully")
}

// Delete handles DELETE /teams/:id
func (h *TeamHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.service.Delete(id); err != nil {
		respondAppError(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "Team deleted successfully")
}

// AddTechnician handles POST /teams/:id/technicians
func (h *TeamHandler) AddTechnician(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req service.TechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	team, err := h.service.AddTechnician(id, &req)
	if err != nil {
		respondAppError(c, err)
		return
	}
	respond(c, http.StatusOK, team, "Technician added successfully")
}

// RemoveTechnician handles DELETE /teams/:id/technicians/:technicianId
func (h *TeamHandler) RemoveTechnician(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	userID, err := uuid.Parse(c.Param("technicianId"))
	if err != nil {
		respondAppError(c, apperrors.NewValidationError("technicianId", "must be a valid UUID"))
		return
	}
	team, err := h.service.RemoveTechnician(id, userID)
	if err != nil {
		respondAppError(c, err)
		return
	}
	respond(c, http.StatusOK, team, "Technician removed successfully")
}
