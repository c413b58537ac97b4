package service

import (
	"errors"
	"fmt"

	"gearguard-backend/internal/database/models"
	apperrors "gearguard-backend/internal/errors"
	"gearguard-backend/internal/logger"
	"gearguard-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EquipmentService handles business logic for the equipment registry
type EquipmentService struct {
	repo        repository.EquipmentRepositoryInterface
	requestRepo repository.RequestRepositoryInterface
	projector   *Projector
	validator   *validator.Validate
}

// NewEquipmentService creates a new equipment service
func NewEquipmentService(repo repository.EquipmentRepositoryInterface, requestRepo repository.RequestRepositoryInterface, projector *Projector, validator *validator.Validate) *EquipmentService {
	return &EquipmentService{
		repo:        repo,
		requestRepo: requestRepo,
		projector:   projector,
		validator:   validator,
	}
}

// CreateEquipmentRequest represents the request to create an equipment record
type CreateEquipmentRequest struct {
	Name           string     `json:"name" validate:"required,max=200"`
	SerialNumber   string     `json:"serialNumber" validate:"required,max=100"`
	Location       string     `json:"location" validate:"required,max=200"`
	AssignedTeamID *uuid.UUID `json:"assignedTeam"`
}

// UpdateEquipmentRequest represents a partial update of an equipment record.
// Nil fields are left untouched.
type UpdateEquipmentRequest struct {
	Name           *string    `json:"name" validate:"omitempty,min=1,max=200"`
	SerialNumber   *string    `json:"serialNumber" validate:"omitempty,min=1,max=100"`
	Location       *string    `json:"location" validate:"omitempty,min=1,max=200"`
	AssignedTeamID *uuid.UUID `json:"assignedTeam"`
	ClearTeam      bool       `json:"clearTeam"`
}

// EquipmentRequestsResponse bundles an equipment record with its request
// history and pending-work counters
type EquipmentRequestsResponse struct {
	Equipment    *EquipmentResponse `json:"equipment"`
	Requests     []RequestResponse  `json:"requests"`
	PendingCount int64              `json:"pendingCount"`
	TotalCount   int                `json:"totalCount"`
}

// List retrieves equipment with optional status/location filters
func (s *EquipmentService) List(status *models.EquipmentStatus, location *string) ([]EquipmentResponse, error) {
	if status != nil && !status.IsValid() {
		return nil, apperrors.NewValidationError("status", "must be one of ACTIVE, SCRAPPED")
	}
	records, err := s.repo.List(status, location)
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}
	return s.projector.EquipmentResponses(records)
}

// GetByID retrieves one equipment record
func (s *EquipmentService) GetByID(id uuid.UUID) (*EquipmentResponse, error) {
	equipment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEquipmentNotFound
		}
		return nil, fmt.Errorf("failed to get equipment: %w", err)
	}
	return s.projector.EquipmentResponse(equipment)
}

// Create creates an equipment record after checking serial-number uniqueness
func (s *EquipmentService) Create(req *CreateEquipmentRequest) (*EquipmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", "name, serial number and location are required")
	}

	existing, err := s.repo.GetBySerialNumber(req.SerialNumber)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check serial number: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrSerialNumberExists
	}

	equipment := &models.Equipment{
		Name:           req.Name,
		SerialNumber:   req.SerialNumber,
		Location:       req.Location,
		Status:         models.EquipmentStatusActive,
		AssignedTeamID: req.AssignedTeamID,
	}
	if err := s.repo.Create(equipment); err != nil {
		return nil, fmt.Errorf("failed to create equipment: %w", err)
	}

	return s.projector.EquipmentResponse(equipment)
}

// Update applies a partial update. A changed serial number is re-checked for
// uniqueness against all other equipment.
func (s *EquipmentService) Update(id uuid.UUID, req *UpdateEquipmentRequest) (*EquipmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", "supplied fields must not be empty")
	}

	equipment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEquipmentNotFound
		}
		return nil, fmt.Errorf("failed to get equipment: %w", err)
	}

	if req.SerialNumber != nil && *req.SerialNumber != equipment.SerialNumber {
		existing, err := s.repo.GetBySerialNumber(*req.SerialNumber)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check serial number: %w", err)
		}
		if existing != nil {
			return nil, apperrors.ErrSerialNumberExists
		}
		equipment.SerialNumber = *req.SerialNumber
	}
	if req.Name != nil {
		equipment.Name = *req.Name
	}
	if req.Location != nil {
		equipment.Location = *req.Location
	}
	if req.AssignedTeamID != nil {
		equipment.AssignedTeamID = req.AssignedTeamID
	} else if req.ClearTeam {
		equipment.AssignedTeamID = nil
	}

	if err := s.repo.Update(equipment); err != nil {
		return nil, fmt.Errorf("failed to update equipment: %w", err)
	}

	return s.projector.EquipmentResponse(equipment)
}

// Scrap irreversibly marks the equipment SCRAPPED
func (s *EquipmentService) Scrap(id uuid.UUID) (*EquipmentResponse, error) {
	equipment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEquipmentNotFound
		}
		return nil, fmt.Errorf("failed to get equipment: %w", err)
	}

	if equipment.IsScrapped() {
		return nil, apperrors.ErrEquipmentAlreadyScrapped
	}

	equipment.Status = models.EquipmentStatusScrapped
	if err := s.repo.Update(equipment); err != nil {
		return nil, fmt.Errorf("failed to scrap equipment: %w", err)
	}
	logger.New().WithFields(map[string]interface{}{
		"equipment_id": equipment.ID,
		"serial":       equipment.SerialNumber,
	}).Info("Equipment scrapped")

	return s.projector.EquipmentResponse(equipment)
}

// Delete hard-removes the equipment record. Existing requests keep their
// reference and render it as unresolved.
func (s *EquipmentService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEquipmentNotFound
		}
		return fmt.Errorf("failed to get equipment: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete equipment: %w", err)
	}
	return nil
}

// GetRequests retrieves the request history for one equipment record together
// with the pending (NEW or IN_PROGRESS) count
func (s *EquipmentService) GetRequests(id uuid.UUID) (*EquipmentRequestsResponse, error) {
	equipment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEquipmentNotFound
		}
		return nil, fmt.Errorf("failed to get equipment: %w", err)
	}

	requests, err := s.requestRepo.ListByEquipment(id)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	pendingCount, err := s.requestRepo.CountPendingByEquipment(id)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending requests: %w", err)
	}

	equipmentResp, err := s.projector.EquipmentResponse(equipment)
	if err != nil {
		return nil, err
	}
	requestResps, err := s.projector.RequestResponses(requests)
	if err != nil {
		return nil, err
	}

	return &EquipmentRequestsResponse{
		Equipment:    equipmentResp,
		Requests:     requestResps,
		PendingCount: pendingCount,
		TotalCount:   len(requests),
	}, nil
}
