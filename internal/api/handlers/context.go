package handlers

import (
	"gearguard-backend/internal/auth"
	"gearguard-backend/internal/database/models"
	"gearguard-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// currentActor rebuilds the caller identity from the context keys set by the
// auth middleware
func currentActor(c *gin.Context) (service.Actor, bool) {
	idValue, exists := c.Get(auth.ContextUserIDKey)
	if !exists {
		return service.Actor{}, false
	}
	id, ok := idValue.(uuid.UUID)
	if !ok {
		return service.Actor{}, false
	}

	roleValue, exists := c.Get(auth.ContextRoleKey)
	if !exists {
		return service.Actor{}, false
	}
	role, ok := roleValue.(models.UserRole)
	if !ok {
		return service.Actor{}, false
	}

	return service.Actor{ID: id, Role: role}, true
}
