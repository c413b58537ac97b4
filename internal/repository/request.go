package repository

import (
	"time"

	"gearguard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RequestFilter holds the optional exact-match filters for listing requests.
// Nil fields are not applied.
type RequestFilter struct {
	Status         *models.RequestStatus
	Priority       *models.RequestPriority
	Type           *models.RequestType
	AssignedTeamID *uuid.UUID
	EquipmentID    *uuid.UUID
}

// RequestRepository handles database operations for maintenance requests
type RequestRepository struct {
	db *gorm.DB
}

// NewRequestRepository creates a new request repository
func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

// Create creates a new maintenance request
func (r *RequestRepository) Create(request *models.MaintenanceRequest) error {
	return r.db.Create(request).Error
}

// GetByID retrieves a maintenance request by ID
func (r *RequestRepository) GetByID(id uuid.UUID) (*models.MaintenanceRequest, error) {
	var request models.MaintenanceRequest
	err := r.db.First(&request, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// List retrieves requests matching the filter, ordered newest-created-first
func (r *RequestRepository) List(filter RequestFilter) ([]models.MaintenanceRequest, error) {
	var requests []models.MaintenanceRequest
	query := r.db.Order("created_at DESC")
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", *filter.Priority)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}
	if filter.AssignedTeamID != nil {
		query = query.Where("assigned_team_id = ?", *filter.AssignedTeamID)
	}
	if filter.EquipmentID != nil {
		query = query.Where("equipment_id = ?", *filter.EquipmentID)
	}
	err := query.Find(&requests).Error
	return requests, err
}

// ListByEquipment retrieves all requests for one equipment record, newest first
func (r *RequestRepository) ListByEquipment(equipmentID uuid.UUID) ([]models.MaintenanceRequest, error) {
	var requests []models.MaintenanceRequest
	err := r.db.
		Where("equipment_id = ?", equipmentID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

// CountPendingByEquipment counts requests for the equipment whose status is
// NEW or IN_PROGRESS
func (r *RequestRepository) CountPendingByEquipment(equipmentID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.MaintenanceRequest{}).
		Where("equipment_id = ? AND status IN ?", equipmentID,
			[]models.RequestStatus{models.RequestStatusNew, models.RequestStatusInProgress}).
		Count(&count).Error
	return count, err
}

// ListPreventive retrieves PREVENTIVE requests ordered by scheduled date
// ascending. When from/to are non-nil the scheduled date must fall within
// [from, to).
func (r *RequestRepository) ListPreventive(from, to *time.Time) ([]models.MaintenanceRequest, error) {
	var requests []models.MaintenanceRequest
	query := r.db.
		Where("type = ?", models.RequestTypePreventive).
		Order("scheduled_date ASC")
	if from != nil && to != nil {
		query = query.Where("scheduled_date >= ? AND scheduled_date < ?", *from, *to)
	}
	err := query.Find(&requests).Error
	return requests, err
}

// Update updates a maintenance request
func (r *RequestRepository) Update(request *models.MaintenanceRequest) error {
	return r.db.Save(request).Error
}

// Delete hard-removes a maintenance request
func (r *RequestRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.MaintenanceRequest{}, "id = ?", id).Error
}
