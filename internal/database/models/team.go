package models

import (
	"github.com/google/uuid"
)

// MaintenanceTeam represents a roster of technicians
type MaintenanceTeam struct {
	BaseModel
	Name string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,max=100"`
}

// TableName returns the table name for MaintenanceTeam
func (MaintenanceTeam) TableName() string {
	return "maintenance_teams"
}

// TeamTechnician is the explicit membership row between a team and a technician.
// The composite primary key makes duplicate membership impossible at the store
// level; the service still checks first so callers get a conflict error instead
// of a driver error.
type TeamTechnician struct {
	TeamID uuid.UUID `json:"teamId" gorm:"type:uuid;primaryKey"`
	UserID uuid.UUID `json:"userId" gorm:"type:uuid;primaryKey"`
}

// TableName returns the table name for TeamTechnician
func (TeamTechnician) TableName() string {
	return "team_technicians"
}
