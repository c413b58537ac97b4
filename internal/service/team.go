package service

import (
	"errors"
	"fmt"

	"gearguard-backend/internal/database/models"
	apperrors "gearguard-backend/internal/errors"
	"gearguard-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamService handles business logic for maintenance teams and their rosters
type TeamService struct {
	repo      repository.TeamRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	projector *Projector
	validator *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, userRepo repository.UserRepositoryInterface, projector *Projector, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:      repo,
		userRepo:  userRepo,
		projector: projector,
		validator: validator,
	}
}

// CreateTeamRequest represents the request to create a maintenance team.
// Technicians is an optional initial roster.
type CreateTeamRequest struct {
	Name        string      `json:"name" validate:"required,max=100"`
	Technicians []uuid.UUID `json:"technicians"`
}

// UpdateTeamRequest represents a rename of a maintenance team
type UpdateTeamRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// TechnicianRequest identifies a technician for roster operations
type TechnicianRequest struct {
	UserID uuid.UUID `json:"technicianId" validate:"required"`
}

// List retrieves all maintenance teams with their rosters
func (s *TeamService) List() ([]TeamResponse, error) {
	teams, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	responses := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		resp, err := s.projector.TeamResponse(&teams[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

// GetByID retrieves one maintenance team with its roster
func (s *TeamService) GetByID(id uuid.UUID) (*TeamResponse, error) {
	team, err := s.getTeam(id)
	if err != nil {
		return nil, err
	}
	return s.projector.TeamResponse(team)
}

// Create creates a maintenance team after checking name uniqueness. An
// optional initial roster is attached; every entry must be an existing user
// holding the TECHNICIAN role.
func (s *TeamService) Create(req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("name", "team name is required")
	}

	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check team name: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrTeamNameExists
	}

	for _, userID := range req.Technicians {
		if _, err := s.technician(userID); err != nil {
			return nil, err
		}
	}

	team := &models.MaintenanceTeam{Name: req.Name}
	if err := s.repo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	seen := make(map[uuid.UUID]bool, len(req.Technicians))
	for _, userID := range req.Technicians {
		if seen[userID] {
			continue
		}
		seen[userID] = true
		if err := s.repo.AddTechnician(team.ID, userID); err != nil {
			return nil, fmt.Errorf("failed to add technician: %w", err)
		}
	}
	return s.projector.TeamResponse(team)
}

// Update renames a maintenance team. The new name is checked for uniqueness
// against all other teams.
func (s *TeamService) Update(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("name", "team name is required")
	}

	team, err := s.getTeam(id)
	if err != nil {
		return nil, err
	}

	if req.Name != team.Name {
		existing, err := s.repo.GetByName(req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check team name: %w", err)
		}
		if existing != nil {
			return nil, apperrors.ErrTeamNameExists
		}
	}

	team.Name = req.Name
	if err := s.repo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	return s.projector.TeamResponse(team)
}

// Delete removes a maintenance team and its roster rows. Equipment and
// requests referencing the team keep the dangling reference.
func (s *TeamService) Delete(id uuid.UUID) error {
	if _, err := s.getTeam(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

// AddTechnician adds a user to the team roster. The user must exist and hold
// the TECHNICIAN role.
func (s *TeamService) AddTechnician(teamID uuid.UUID, req *TechnicianRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("technicianId", "technician id is required")
	}

	team, err := s.getTeam(teamID)
	if err != nil {
		return nil, err
	}

	if _, err := s.technician(req.UserID); err != nil {
		return nil, err
	}

	isMember, err := s.repo.IsTechnician(teamID, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check roster: %w", err)
	}
	if isMember {
		return nil, apperrors.ErrTechnicianAlreadyInTeam
	}

	if err := s.repo.AddTechnician(teamID, req.UserID); err != nil {
		return nil, fmt.Errorf("failed to add technician: %w", err)
	}
	return s.projector.TeamResponse(team)
}

// RemoveTechnician removes a user from the team roster
func (s *TeamService) RemoveTechnician(teamID, userID uuid.UUID) (*TeamResponse, error) {
	team, err := s.getTeam(teamID)
	if err != nil {
		return nil, err
	}

	isMember, err := s.repo.IsTechnician(teamID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check roster: %w", err)
	}
	if !isMember {
		return nil, apperrors.ErrTechnicianNotInTeam
	}

	if err := s.repo.RemoveTechnician(teamID, userID); err != nil {
		return nil, fmt.Errorf("failed to remove technician: %w", err)
	}
	return s.projector.TeamResponse(team)
}

func (s *TeamService) technician(id uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user.Role != models.UserRoleTechnician {
		return nil, apperrors.NewValidationError("technicianId", "user must have TECHNICIAN role")
	}
	return user, nil
}

func (s *TeamService) getTeam(id uuid.UUID) (*models.MaintenanceTeam, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}
