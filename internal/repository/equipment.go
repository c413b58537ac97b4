package repository

import (
	"gearguard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EquipmentRepository handles database operations for equipment records
type EquipmentRepository struct {
	db *gorm.DB
}

// NewEquipmentRepository creates a new equipment repository
func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

// Create creates a new equipment record
func (r *EquipmentRepository) Create(equipment *models.Equipment) error {
	return r.db.Create(equipment).Error
}

// GetByID retrieves an equipment record by ID
func (r *EquipmentRepository) GetByID(id uuid.UUID) (*models.Equipment, error) {
	var equipment models.Equipment
	err := r.db.First(&equipment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &equipment, nil
}

// GetBySerialNumber retrieves an equipment record by serial number
func (r *EquipmentRepository) GetBySerialNumber(serialNumber string) (*models.Equipment, error) {
	var equipment models.Equipment
	err := r.db.First(&equipment, "serial_number = ?", serialNumber).Error
	if err != nil {
		return nil, err
	}
	return &equipment, nil
}

// GetByIDs retrieves the equipment for a set of ids, keyed by id. Ids with no
// matching row are simply absent from the result.
func (r *EquipmentRepository) GetByIDs(ids []uuid.UUID) (map[uuid.UUID]models.Equipment, error) {
	result := make(map[uuid.UUID]models.Equipment, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var records []models.Equipment
	if err := r.db.Where("id IN ?", ids).Find(&records).Error; err != nil {
		return nil, err
	}
	for _, e := range records {
		result[e.ID] = e
	}
	return result, nil
}

// List retrieves all equipment ordered newest first, with optional exact-match
// filters on status and location
func (r *EquipmentRepository) List(status *models.EquipmentStatus, location *string) ([]models.Equipment, error) {
	var records []models.Equipment
	query := r.db.Order("created_at DESC")
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	if location != nil {
		query = query.Where("location = ?", *location)
	}
	err := query.Find(&records).Error
	return records, err
}

// Update updates an equipment record
func (r *EquipmentRepository) Update(equipment *models.Equipment) error {
	return r.db.Save(equipment).Error
}

// Delete hard-removes an equipment record. Requests referencing it keep their
// equipment id; the projection layer reports the reference as unresolved.
func (r *EquipmentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Equipment{}, "id = ?", id).Error
}
