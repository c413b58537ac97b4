package service

import (
	"gearguard-backend/internal/database/models"
	"gearguard-backend/internal/repository"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// EquipmentServiceInterface defines the interface for the equipment service
type EquipmentServiceInterface interface {
	List(status *models.EquipmentStatus, location *string) ([]EquipmentResponse, error)
	GetByID(id uuid.UUID) (*EquipmentResponse, error)
	Create(req *CreateEquipmentRequest) (*EquipmentResponse, error)
	Update(id uuid.UUID, req *UpdateEquipmentRequest) (*EquipmentResponse, error)
	Scrap(id uuid.UUID) (*EquipmentResponse, error)
	Delete(id uuid.UUID) error
	GetRequests(id uuid.UUID) (*EquipmentRequestsResponse, error)
}

// TeamServiceInterface defines the interface for the team service
type TeamServiceInterface interface {
	List() ([]TeamResponse, error)
	GetByID(id uuid.UUID) (*TeamResponse, error)
	Create(req *CreateTeamRequest) (*TeamResponse, error)
	Update(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error)
	Delete(id uuid.UUID) error
	AddTechnician(teamID uuid.UUID, req *TechnicianRequest) (*TeamResponse, error)
	RemoveTechnician(teamID, userID uuid.UUID) (*TeamResponse, error)
}

// RequestServiceInterface defines the interface for the maintenance request service
type RequestServiceInterface interface {
	Create(actor Actor, req *CreateRequestRequest) (*RequestResponse, error)
	List(filter repository.RequestFilter) ([]RequestResponse, error)
	GetByID(id uuid.UUID) (*RequestResponse, error)
	Update(actor Actor, id uuid.UUID, req *UpdateRequestRequest) (*RequestResponse, error)
	UpdateStatus(id uuid.UUID, req *UpdateStatusRequest) (*RequestResponse, error)
	Delete(actor Actor, id uuid.UUID) error
	Kanban() (KanbanBoard, error)
	Preventive(month, year string) ([]RequestResponse, error)
}

// UserServiceInterface defines the interface for the user profile service
type UserServiceInterface interface {
	GetByID(id uuid.UUID) (*UserSummary, error)
	UpdateProfile(id uuid.UUID, req *UpdateProfileRequest) (*UserSummary, error)
	ChangePassword(id uuid.UUID, req *ChangePasswordRequest) error
	List(role *models.UserRole) ([]UserSummary, error)
	ListTechnicians() ([]UserSummary, error)
}
