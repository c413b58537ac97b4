package models

import (
	"github.com/google/uuid"
)

// Equipment represents an inventoried piece of equipment.
// AssignedTeamID is a plain column, not a constrained foreign key: teams can be
// hard-deleted and the reference is resolved (or reported unresolved) at read time.
type Equipment struct {
	BaseModel
	Name           string          `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	SerialNumber   string          `json:"serialNumber" gorm:"uniqueIndex;not null;size:100" validate:"required,max=100"`
	Location       string          `json:"location" gorm:"not null;size:200" validate:"required,max=200"`
	Status         EquipmentStatus `json:"status" gorm:"type:varchar(20);not null;default:'ACTIVE'"`
	AssignedTeamID *uuid.UUID      `json:"assignedTeam" gorm:"type:uuid;index"`
}

// TableName returns the table name for Equipment
func (Equipment) TableName() string {
	return "equipment"
}

// IsScrapped reports whether the equipment is in its terminal state
func (e *Equipment) IsScrapped() bool {
	return e.Status == EquipmentStatusScrapped
}
