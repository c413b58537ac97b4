package service

import (
	"gearguard-backend/internal/database/models"

	"github.com/google/uuid"
)

// Actor is the resolved identity performing an operation. Handlers build it
// from the session middleware; services never see credential material.
type Actor struct {
	ID   uuid.UUID
	Role models.UserRole
}

// IsManager reports whether the actor holds the MANAGER role
func (a Actor) IsManager() bool {
	return a.Role == models.UserRoleManager
}
