package service

import (
	"fmt"
	"time"

	"gearguard-backend/internal/database/models"
	"gearguard-backend/internal/repository"

	"github.com/google/uuid"
)

// EquipmentSummary is the reference view of an equipment record embedded in
// request reads
type EquipmentSummary struct {
	ID           uuid.UUID              `json:"id"`
	Name         string                 `json:"name"`
	SerialNumber string                 `json:"serialNumber"`
	Location     string                 `json:"location"`
	Status       models.EquipmentStatus `json:"status"`
}

// TeamSummary is the reference view of a team embedded in equipment and
// request reads
type TeamSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// UserSummary is the reference view of a user embedded in team and request reads
type UserSummary struct {
	ID       uuid.UUID       `json:"id"`
	FullName string          `json:"fullName"`
	Email    string          `json:"email"`
	Role     models.UserRole `json:"role"`
}

// EquipmentResponse is the read view of an equipment record with its team
// reference resolved
type EquipmentResponse struct {
	ID           uuid.UUID              `json:"id"`
	Name         string                 `json:"name"`
	SerialNumber string                 `json:"serialNumber"`
	Location     string                 `json:"location"`
	Status       models.EquipmentStatus `json:"status"`
	AssignedTeam *TeamSummary           `json:"assignedTeam"`
	CreatedAt    time.Time              `json:"createdAt"`
	UpdatedAt    time.Time              `json:"updatedAt"`
}

// TeamResponse is the read view of a team with its roster resolved
type TeamResponse struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Technicians []UserSummary `json:"technicians"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// RequestResponse is the read view of a maintenance request with its
// equipment, team and requester references resolved
type RequestResponse struct {
	ID            uuid.UUID              `json:"id"`
	Title         string                 `json:"title"`
	Description   string                 `json:"description"`
	Type          models.RequestType     `json:"type"`
	Status        models.RequestStatus   `json:"status"`
	Priority      models.RequestPriority `json:"priority"`
	Equipment     *EquipmentSummary      `json:"equipment"`
	AssignedTeam  *TeamSummary           `json:"assignedTeam"`
	RequestedBy   *UserSummary           `json:"requestedBy"`
	Duration      *int                   `json:"duration"`
	ScheduledDate *time.Time             `json:"scheduledDate"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
}

// Projector resolves reference ids to summary views at read time. A reference
// whose target no longer exists resolves to nil rather than failing the read:
// hard deletes do not cascade, so dangling ids are an accepted state.
type Projector struct {
	equipmentRepo repository.EquipmentRepositoryInterface
	teamRepo      repository.TeamRepositoryInterface
	userRepo      repository.UserRepositoryInterface
}

// NewProjector creates a new projector
func NewProjector(equipmentRepo repository.EquipmentRepositoryInterface, teamRepo repository.TeamRepositoryInterface, userRepo repository.UserRepositoryInterface) *Projector {
	return &Projector{
		equipmentRepo: equipmentRepo,
		teamRepo:      teamRepo,
		userRepo:      userRepo,
	}
}

func equipmentSummary(e *models.Equipment) *EquipmentSummary {
	if e == nil {
		return nil
	}
	return &EquipmentSummary{
		ID:           e.ID,
		Name:         e.Name,
		SerialNumber: e.SerialNumber,
		Location:     e.Location,
		Status:       e.Status,
	}
}

func teamSummary(t *models.MaintenanceTeam) *TeamSummary {
	if t == nil {
		return nil
	}
	return &TeamSummary{ID: t.ID, Name: t.Name}
}

func userSummary(u *models.User) *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Role:     u.Role,
	}
}

// EquipmentResponse builds the read view for one equipment record
func (p *Projector) EquipmentResponse(equipment *models.Equipment) (*EquipmentResponse, error) {
	responses, err := p.EquipmentResponses([]models.Equipment{*equipment})
	if err != nil {
		return nil, err
	}
	return &responses[0], nil
}

// EquipmentResponses builds read views for a batch of equipment records,
// resolving assigned teams in one query
func (p *Projector) EquipmentResponses(records []models.Equipment) ([]EquipmentResponse, error) {
	teamIDs := make([]uuid.UUID, 0, len(records))
	for _, e := range records {
		if e.AssignedTeamID != nil {
			teamIDs = append(teamIDs, *e.AssignedTeamID)
		}
	}
	teams, err := p.teamRepo.GetByIDs(teamIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve teams: %w", err)
	}

	responses := make([]EquipmentResponse, len(records))
	for i, e := range records {
		resp := EquipmentResponse{
			ID:           e.ID,
			Name:         e.Name,
			SerialNumber: e.SerialNumber,
			Location:     e.Location,
			Status:       e.Status,
			CreatedAt:    e.CreatedAt,
			UpdatedAt:    e.UpdatedAt,
		}
		if e.AssignedTeamID != nil {
			if team, ok := teams[*e.AssignedTeamID]; ok {
				resp.AssignedTeam = teamSummary(&team)
			}
		}
		responses[i] = resp
	}
	return responses, nil
}

// TeamResponse builds the read view for one team, resolving its roster
func (p *Projector) TeamResponse(team *models.MaintenanceTeam) (*TeamResponse, error) {
	technicians, err := p.teamRepo.GetTechnicians(team.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve technicians: %w", err)
	}
	summaries := make([]UserSummary, len(technicians))
	for i, u := range technicians {
		summaries[i] = *userSummary(&u)
	}
	return &TeamResponse{
		ID:          team.ID,
		Name:        team.Name,
		Technicians: summaries,
		CreatedAt:   team.CreatedAt,
		UpdatedAt:   team.UpdatedAt,
	}, nil
}

// RequestResponse builds the read view for one maintenance request
func (p *Projector) RequestResponse(request *models.MaintenanceRequest) (*RequestResponse, error) {
	responses, err := p.RequestResponses([]models.MaintenanceRequest{*request})
	if err != nil {
		return nil, err
	}
	return &responses[0], nil
}

// RequestResponses builds read views for a batch of requests, resolving
// equipment, teams and requesters in one query each
func (p *Projector) RequestResponses(requests []models.MaintenanceRequest) ([]RequestResponse, error) {
	equipmentIDs := make([]uuid.UUID, 0, len(requests))
	teamIDs := make([]uuid.UUID, 0, len(requests))
	userIDs := make([]uuid.UUID, 0, len(requests))
	for _, req := range requests {
		equipmentIDs = append(equipmentIDs, req.EquipmentID)
		if req.AssignedTeamID != nil {
			teamIDs = append(teamIDs, *req.AssignedTeamID)
		}
		userIDs = append(userIDs, req.RequestedByID)
	}

	equipment, err := p.equipmentRepo.GetByIDs(equipmentIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve equipment: %w", err)
	}
	teams, err := p.teamRepo.GetByIDs(teamIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve teams: %w", err)
	}
	users, err := p.userRepo.GetByIDs(userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve users: %w", err)
	}

	responses := make([]RequestResponse, len(requests))
	for i, req := range requests {
		resp := RequestResponse{
			ID:            req.ID,
			Title:         req.Title,
			Description:   req.Description,
			Type:          req.Type,
			Status:        req.Status,
			Priority:      req.Priority,
			Duration:      req.DurationMinutes,
			ScheduledDate: req.ScheduledDate,
			CreatedAt:     req.CreatedAt,
			UpdatedAt:     req.UpdatedAt,
		}
		if e, ok := equipment[req.EquipmentID]; ok {
			resp.Equipment = equipmentSummary(&e)
		}
		if req.AssignedTeamID != nil {
			if t, ok := teams[*req.AssignedTeamID]; ok {
				resp.AssignedTeam = teamSummary(&t)
			}
		}
		if u, ok := users[req.RequestedByID]; ok {
			resp.RequestedBy = userSummary(&u)
		}
		responses[i] = resp
	}
	return responses, nil
}
