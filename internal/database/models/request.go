package models

import (
	"time"

	"github.com/google/uuid"
)

// MaintenanceRequest is a repair (CORRECTIVE) or preventive-maintenance
// (PREVENTIVE) ticket against a piece of equipment.
//
// Type, EquipmentID and RequestedByID are fixed at creation. AssignedTeamID is
// a snapshot of the equipment's assigned team taken when the request is
// created. DurationMinutes is set when a transition puts the request into
// REPAIRED and is deliberately not cleared by later transitions. ScheduledDate
// is present exactly for PREVENTIVE requests.
type MaintenanceRequest struct {
	BaseModel
	Title           string          `json:"title" gorm:"not null;size:100" validate:"required,max=100"`
	Description     string          `json:"description" gorm:"not null" validate:"required"`
	Type            RequestType     `json:"type" gorm:"type:varchar(20);not null"`
	Status          RequestStatus   `json:"status" gorm:"type:varchar(20);not null;default:'NEW';index"`
	Priority        RequestPriority `json:"priority" gorm:"type:varchar(20);not null;default:'MEDIUM'"`
	EquipmentID     uuid.UUID       `json:"equipment" gorm:"type:uuid;not null;index"`
	AssignedTeamID  *uuid.UUID      `json:"assignedTeam" gorm:"type:uuid;index"`
	RequestedByID   uuid.UUID       `json:"requestedBy" gorm:"type:uuid;not null;index"`
	DurationMinutes *int            `json:"duration"`
	ScheduledDate   *time.Time      `json:"scheduledDate" gorm:"index"`
}

// TableName returns the table name for MaintenanceRequest
func (MaintenanceRequest) TableName() string {
	return "maintenance_requests"
}

// IsPending reports whether the request still needs work (NEW or IN_PROGRESS)
func (r *MaintenanceRequest) IsPending() bool {
	return r.Status == RequestStatusNew || r.Status == RequestStatusInProgress
}
