package testutils

import (
	"time"

	"gearguard-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. The password is "password123".
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Username:     "user" + id.String()[:8],
		Email:        "user-" + id.String()[:8] + "@test.com",
		FullName:     "Jane Doe",
		Role:         models.UserRoleUser,
		PasswordHash: string(hash),
	}
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// Technician creates a test user holding the TECHNICIAN role
func (f *UserFactory) Technician() *models.User {
	return f.WithRole(models.UserRoleTechnician)
}

// Manager creates a test user holding the MANAGER role
func (f *UserFactory) Manager() *models.User {
	return f.WithRole(models.UserRoleManager)
}

// EquipmentFactory provides methods to create test Equipment data
type EquipmentFactory struct{}

// NewEquipmentFactory creates a new EquipmentFactory
func NewEquipmentFactory() *EquipmentFactory {
	return &EquipmentFactory{}
}

// Create creates test Equipment with default values
func (f *EquipmentFactory) Create() *models.Equipment {
	id := uuid.New()
	return &models.Equipment{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:         "CNC Mill",
		SerialNumber: "SN-" + id.String()[:8],
		Location:     "Shop Floor A",
		Status:       models.EquipmentStatusActive,
	}
}

// WithTeam sets the assigned team for the equipment
func (f *EquipmentFactory) WithTeam(teamID uuid.UUID) *models.Equipment {
	equipment := f.Create()
	equipment.AssignedTeamID = &teamID
	return equipment
}

// Scrapped creates test Equipment already marked SCRAPPED
func (f *EquipmentFactory) Scrapped() *models.Equipment {
	equipment := f.Create()
	equipment.Status = models.EquipmentStatusScrapped
	return equipment
}

// TeamFactory provides methods to create test MaintenanceTeam data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test MaintenanceTeam with default values
func (f *TeamFactory) Create() *models.MaintenanceTeam {
	id := uuid.New()
	return &models.MaintenanceTeam{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Mechanics " + id.String()[:8],
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.MaintenanceTeam {
	team := f.Create()
	team.Name = name
	return team
}

// RequestFactory provides methods to create test MaintenanceRequest data
type RequestFactory struct{}

// NewRequestFactory creates a new RequestFactory
func NewRequestFactory() *RequestFactory {
	return &RequestFactory{}
}

// Create creates a test MaintenanceRequest with default values
func (f *RequestFactory) Create() *models.MaintenanceRequest {
	return &models.MaintenanceRequest{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:         "Spindle vibration",
		Description:   "Excessive vibration at high RPM",
		Type:          models.RequestTypeCorrective,
		Status:        models.RequestStatusNew,
		Priority:      models.RequestPriorityMedium,
		EquipmentID:   uuid.New(),
		RequestedByID: uuid.New(),
	}
}

// ForEquipment sets the equipment reference for the request
func (f *RequestFactory) ForEquipment(equipmentID uuid.UUID) *models.MaintenanceRequest {
	request := f.Create()
	request.EquipmentID = equipmentID
	return request
}

// Preventive creates a PREVENTIVE request scheduled at the given date
func (f *RequestFactory) Preventive(scheduledDate time.Time) *models.MaintenanceRequest {
	request := f.Create()
	request.Type = models.RequestTypePreventive
	request.ScheduledDate = &scheduledDate
	return request
}

// WithStatus sets the workflow status for the request
func (f *RequestFactory) WithStatus(status models.RequestStatus) *models.MaintenanceRequest {
	request := f.Create()
	request.Status = status
	return request
}
