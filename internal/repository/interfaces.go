package repository

import (
	"time"

	"gearguard-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByIDs(ids []uuid.UUID) (map[uuid.UUID]models.User, error)
	List(role *models.UserRole) ([]models.User, error)
	Update(user *models.User) error
}

// EquipmentRepositoryInterface defines the interface for equipment repository operations
type EquipmentRepositoryInterface interface {
	Create(equipment *models.Equipment) error
	GetByID(id uuid.UUID) (*models.Equipment, error)
	GetBySerialNumber(serialNumber string) (*models.Equipment, error)
	GetByIDs(ids []uuid.UUID) (map[uuid.UUID]models.Equipment, error)
	List(status *models.EquipmentStatus, location *string) ([]models.Equipment, error)
	Update(equipment *models.Equipment) error
	Delete(id uuid.UUID) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.MaintenanceTeam) error
	GetByID(id uuid.UUID) (*models.MaintenanceTeam, error)
	GetByName(name string) (*models.MaintenanceTeam, error)
	GetByIDs(ids []uuid.UUID) (map[uuid.UUID]models.MaintenanceTeam, error)
	GetAll() ([]models.MaintenanceTeam, error)
	Update(team *models.MaintenanceTeam) error
	Delete(id uuid.UUID) error
	AddTechnician(teamID, userID uuid.UUID) error
	RemoveTechnician(teamID, userID uuid.UUID) error
	IsTechnician(teamID, userID uuid.UUID) (bool, error)
	GetTechnicians(teamID uuid.UUID) ([]models.User, error)
}

// RequestRepositoryInterface defines the interface for request repository operations
type RequestRepositoryInterface interface {
	Create(request *models.MaintenanceRequest) error
	GetByID(id uuid.UUID) (*models.MaintenanceRequest, error)
	List(filter RequestFilter) ([]models.MaintenanceRequest, error)
	ListByEquipment(equipmentID uuid.UUID) ([]models.MaintenanceRequest, error)
	CountPendingByEquipment(equipmentID uuid.UUID) (int64, error)
	ListPreventive(from, to *time.Time) ([]models.MaintenanceRequest, error)
	Update(request *models.MaintenanceRequest) error
	Delete(id uuid.UUID) error
}
