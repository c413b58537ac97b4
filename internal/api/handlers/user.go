package handlers

import (
	"net/http"

	"gearguard-backend/internal/database/models"
	"gearguard-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for user profiles
type UserHandler struct {
	service service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(service service.UserServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// Me handles GET /users/me
func (h *UserHandler) Me(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	user, err := h.service.GetByID(actor.ID)
	if err != nil {
		respondAppError(c, err)
		return
	}
	respond(c, http.StatusOK, user, "Profile retrieved successfully")
}

// UpdateProfile handles PATCH /users/update
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.service.UpdateProfile(actor.ID, &req)
	if err != nil {
		respondAppError(c, err)
		return
	}
	respond(c, http.StatusOK, user, "Profile updated successfully")
}

// ChangePassword handles POST /users/change-password
func (h *UserHandler) ChangePassword(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	var req service.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.service.ChangePassword(actor.ID, &req); err != nil {
		respondAppError(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "Password changed successfully")
}

// List handles GET /users
func (h *UserHandler) List(c *gin.Context) {
	var role *models.UserRole
	if raw := c.Query("role"); raw != "" {
		r := models.UserRole(raw)
		role = &r
	}
	users, err := h.service.List(role)
	if err != nil {
		respondAppError(c, err)
		return
	}
	respond(c, http.StatusOK, users, "Users retrieved successfully")
}

// ListTechnicians handles GET /users/technicians
func (h *UserHandler) ListTechnicians(c *gin.Context) {
	technicians, err := h.service.ListTechnicians()
	if err != nil {
		respondAppError(c, err)
		return
	}
	respond(c, http.StatusOK, technicians, "Technicians retrieved successfully")
}
