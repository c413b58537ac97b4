package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"gearguard-backend/internal/database/models"
	apperrors "gearguard-backend/internal/errors"
	"gearguard-backend/internal/logger"
	"gearguard-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RequestService handles business logic for the maintenance request ledger
type RequestService struct {
	repo          repository.RequestRepositoryInterface
	equipmentRepo repository.EquipmentRepositoryInterface
	projector     *Projector
	validator     *validator.Validate
}

// NewRequestService creates a new request service
func NewRequestService(repo repository.RequestRepositoryInterface, equipmentRepo repository.EquipmentRepositoryInterface, projector *Projector, validator *validator.Validate) *RequestService {
	return &RequestService{
		repo:          repo,
		equipmentRepo: equipmentRepo,
		projector:     projector,
		validator:     validator,
	}
}

// CreateRequestRequest represents the request to open a maintenance request
type CreateRequestRequest struct {
	Title         string                  `json:"title" validate:"required,max=100"`
	Description   string                  `json:"description" validate:"required"`
	Type          models.RequestType      `json:"type" validate:"required"`
	Priority      *models.RequestPriority `json:"priority"`
	EquipmentID   uuid.UUID               `json:"equipment" validate:"required"`
	ScheduledDate *time.Time              `json:"scheduledDate"`
}

// UpdateRequestRequest represents a partial update of a maintenance request.
// Nil fields are left untouched. Status changes go through UpdateStatus.
type UpdateRequestRequest struct {
	Title         *string                 `json:"title" validate:"omitempty,min=1,max=100"`
	Description   *string                 `json:"description" validate:"omitempty,min=1"`
	Priority      *models.RequestPriority `json:"priority"`
	ScheduledDate *time.Time              `json:"scheduledDate"`
}

// UpdateStatusRequest moves a request through the workflow. Duration is the
// repair time in minutes and is required when the target status is REPAIRED.
type UpdateStatusRequest struct {
	Status   models.RequestStatus `json:"status" validate:"required"`
	Duration *int                 `json:"duration" validate:"omitempty,min=1"`
}

// KanbanBoard maps each workflow status to its request list. All four
// statuses are always present, even when empty.
type KanbanBoard map[models.RequestStatus][]RequestResponse

// Create opens a maintenance request. The assigned team is snapshotted from
// the equipment at creation time; a later reassignment of the equipment does
// not move existing requests.
func (s *RequestService) Create(actor Actor, req *CreateRequestRequest) (*RequestResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", "title, description, type and equipment are required")
	}
	if !req.Type.IsValid() {
		return nil, apperrors.NewValidationError("type", "must be one of CORRECTIVE, PREVENTIVE")
	}
	if req.Priority != nil && !req.Priority.IsValid() {
		return nil, apperrors.NewValidationError("priority", "must be one of LOW, MEDIUM, HIGH")
	}

	equipment, err := s.equipmentRepo.GetByID(req.EquipmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEquipmentNotFound
		}
		return nil, fmt.Errorf("failed to get equipment: %w", err)
	}
	if equipment.IsScrapped() {
		return nil, apperrors.ErrEquipmentScrapped
	}

	priority := models.RequestPriorityMedium
	if req.Priority != nil {
		priority = *req.Priority
	}

	// Scheduled dates only apply to preventive work
	scheduledDate := req.ScheduledDate
	if req.Type == models.RequestTypeCorrective {
		scheduledDate = nil
	} else if scheduledDate == nil {
		return nil, apperrors.NewValidationError("scheduledDate", "scheduledDate is required for PREVENTIVE requests")
	}

	request := &models.MaintenanceRequest{
		Title:          req.Title,
		Description:    req.Description,
		Type:           req.Type,
		Status:         models.RequestStatusNew,
		Priority:       priority,
		EquipmentID:    equipment.ID,
		AssignedTeamID: equipment.AssignedTeamID,
		RequestedByID:  actor.ID,
		ScheduledDate:  scheduledDate,
	}
	if err := s.repo.Create(request); err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return s.projector.RequestResponse(request)
}

// List retrieves maintenance requests with optional filters
func (s *RequestService) List(filter repository.RequestFilter) ([]RequestResponse, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, apperrors.NewValidationError("status", "must be one of NEW, IN_PROGRESS, REPAIRED, SCRAP")
	}
	if filter.Priority != nil && !filter.Priority.IsValid() {
		return nil, apperrors.NewValidationError("priority", "must be one of LOW, MEDIUM, HIGH")
	}
	if filter.Type != nil && !filter.Type.IsValid() {
		return nil, apperrors.NewValidationError("type", "must be one of CORRECTIVE, PREVENTIVE")
	}
	requests, err := s.repo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	return s.projector.RequestResponses(requests)
}

// GetByID retrieves one maintenance request
func (s *RequestService) GetByID(id uuid.UUID) (*RequestResponse, error) {
	request, err := s.getRequest(id)
	if err != nil {
		return nil, err
	}
	return s.projector.RequestResponse(request)
}

// Update applies a partial update. Only the requester or a manager may
// modify a request.
func (s *RequestService) Update(actor Actor, id uuid.UUID, req *UpdateRequestRequest) (*RequestResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", "supplied fields must not be empty")
	}
	if req.Priority != nil && !req.Priority.IsValid() {
		return nil, apperrors.NewValidationError("priority", "must be one of LOW, MEDIUM, HIGH")
	}

	request, err := s.getRequest(id)
	if err != nil {
		return nil, err
	}
	if request.RequestedByID != actor.ID && !actor.IsManager() {
		return nil, apperrors.ErrNotRequestOwner
	}

	if req.Title != nil {
		request.Title = *req.Title
	}
	if req.Description != nil {
		request.Description = *req.Description
	}
	if req.Priority != nil {
		request.Priority = *req.Priority
	}
	if req.ScheduledDate != nil && request.Type == models.RequestTypePreventive {
		request.ScheduledDate = req.ScheduledDate
	}

	if err := s.repo.Update(request); err != nil {
		return nil, fmt.Errorf("failed to update request: %w", err)
	}
	return s.projector.RequestResponse(request)
}

// UpdateStatus moves a request to a new workflow status. Moving to REPAIRED
// requires a duration; the recorded duration is kept if the request later
// leaves REPAIRED.
func (s *RequestService) UpdateStatus(id uuid.UUID, req *UpdateStatusRequest) (*RequestResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("status", "status is required")
	}
	if !req.Status.IsValid() {
		return nil, apperrors.NewValidationError("status", "must be one of NEW, IN_PROGRESS, REPAIRED, SCRAP")
	}

	request, err := s.getRequest(id)
	if err != nil {
		return nil, err
	}

	if req.Status == models.RequestStatusRepaired && req.Duration == nil {
		return nil, apperrors.NewValidationError("duration", "duration is required to mark a request REPAIRED")
	}

	previous := request.Status
	request.Status = req.Status
	if req.Status == models.RequestStatusRepaired {
		request.DurationMinutes = req.Duration
	}

	if err := s.repo.Update(request); err != nil {
		return nil, fmt.Errorf("failed to update request status: %w", err)
	}
	logger.New().WithFields(map[string]interface{}{
		"request_id": request.ID,
		"from":       previous,
		"to":         request.Status,
	}).Info("Request status updated")
	return s.projector.RequestResponse(request)
}

// Delete removes a maintenance request. Only the requester or a manager may
// delete it.
func (s *RequestService) Delete(actor Actor, id uuid.UUID) error {
	request, err := s.getRequest(id)
	if err != nil {
		return err
	}
	if request.RequestedByID != actor.ID && !actor.IsManager() {
		return apperrors.ErrNotRequestOwner
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete request: %w", err)
	}
	return nil
}

// Kanban groups all requests by status. Every status gets a bucket even
// when empty.
func (s *RequestService) Kanban() (KanbanBoard, error) {
	requests, err := s.repo.List(repository.RequestFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	responses, err := s.projector.RequestResponses(requests)
	if err != nil {
		return nil, err
	}

	board := make(KanbanBoard, len(models.AllRequestStatuses))
	for _, status := range models.AllRequestStatuses {
		board[status] = []RequestResponse{}
	}
	for _, resp := range responses {
		board[resp.Status] = append(board[resp.Status], resp)
	}
	return board, nil
}

// Preventive retrieves preventive requests ordered by scheduled date. When
// both month and year are given the result is limited to that calendar month.
func (s *RequestService) Preventive(month, year string) ([]RequestResponse, error) {
	var from, to *time.Time
	if month != "" && year != "" {
		m, err := strconv.Atoi(month)
		if err != nil || m < 1 || m > 12 {
			return nil, apperrors.NewValidationError("month", "must be a number between 1 and 12")
		}
		y, err := strconv.Atoi(year)
		if err != nil || y < 1 {
			return nil, apperrors.NewValidationError("year", "must be a valid year")
		}
		start := time.Date(y, time.Month(m), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0)
		from, to = &start, &end
	}

	requests, err := s.repo.ListPreventive(from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list preventive requests: %w", err)
	}
	return s.projector.RequestResponses(requests)
}

func (s *RequestService) getRequest(id uuid.UUID) (*models.MaintenanceRequest, error) {
	request, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get request: %w", err)
	}
	return request, nil
}
