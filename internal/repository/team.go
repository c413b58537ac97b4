package repository

import (
	"gearguard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for maintenance teams and their
// technician rosters
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.MaintenanceTeam) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.MaintenanceTeam, error) {
	var team models.MaintenanceTeam
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByName retrieves a team by name
func (r *TeamRepository) GetByName(name string) (*models.MaintenanceTeam, error) {
	var team models.MaintenanceTeam
	err := r.db.First(&team, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByIDs retrieves the teams for a set of ids, keyed by id. Ids with no
// matching row are simply absent from the result.
func (r *TeamRepository) GetByIDs(ids []uuid.UUID) (map[uuid.UUID]models.MaintenanceTeam, error) {
	result := make(map[uuid.UUID]models.MaintenanceTeam, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var teams []models.MaintenanceTeam
	if err := r.db.Where("id IN ?", ids).Find(&teams).Error; err != nil {
		return nil, err
	}
	for _, t := range teams {
		result[t.ID] = t
	}
	return result, nil
}

// GetAll retrieves all teams ordered newest first
func (r *TeamRepository) GetAll() ([]models.MaintenanceTeam, error) {
	var teams []models.MaintenanceTeam
	err := r.db.Order("created_at DESC").Find(&teams).Error
	return teams, err
}

// Update updates a team
func (r *TeamRepository) Update(team *models.MaintenanceTeam) error {
	return r.db.Save(team).Error
}

// Delete hard-removes a team and its membership rows. Equipment and requests
// referencing the team keep their team id; the projection layer reports the
// reference as unresolved.
func (r *TeamRepository) Delete(id uuid.UUID) error {
	if err := r.db.Delete(&models.TeamTechnician{}, "team_id = ?", id).Error; err != nil {
		return err
	}
	return r.db.Delete(&models.MaintenanceTeam{}, "id = ?", id).Error
}

// AddTechnician appends a membership row
func (r *TeamRepository) AddTechnician(teamID, userID uuid.UUID) error {
	return r.db.Create(&models.TeamTechnician{TeamID: teamID, UserID: userID}).Error
}

// RemoveTechnician removes a membership row
func (r *TeamRepository) RemoveTechnician(teamID, userID uuid.UUID) error {
	return r.db.Delete(&models.TeamTechnician{}, "team_id = ? AND user_id = ?", teamID, userID).Error
}

// IsTechnician reports whether the user is currently on the team roster
func (r *TeamRepository) IsTechnician(teamID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.TeamTechnician{}).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Count(&count).Error
	return count > 0, err
}

// GetTechnicians retrieves the users on a team roster
func (r *TeamRepository) GetTechnicians(teamID uuid.UUID) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Joins("JOIN team_technicians ON team_technicians.user_id = users.id").
		Where("team_technicians.team_id = ?", teamID).
		Order("users.full_name").
		Find(&users).Error
	return users, err
}
