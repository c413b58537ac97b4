package service_test

import (
	"testing"

	"gearguard-backend/internal/database/models"
	apperrors "gearguard-backend/internal/errors"
	"gearguard-backend/internal/mocks"
	"gearguard-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type TeamServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockTeamRepo      *mocks.MockTeamRepositoryInterface
	mockUserRepo      *mocks.MockUserRepositoryInterface
	mockEquipmentRepo *mocks.MockEquipmentRepositoryInterface
	teamService       *service.TeamService
}

func (suite *TeamServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockEquipmentRepo = mocks.NewMockEquipmentRepositoryInterface(suite.ctrl)
	projector := service.NewProjector(suite.mockEquipmentRepo, suite.mockTeamRepo, suite.mockUserRepo)
	suite.teamService = service.NewTeamService(suite.mockTeamRepo, suite.mockUserRepo, projector, validator.New())
}

func (suite *TeamServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamServiceTestSuite) TestCreateTeam_Success() {
	suite.mockTeamRepo.EXPECT().GetByName("Mechanics").Return(nil, gorm.ErrRecordNotFound)
	suite.mockTeamRepo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockTeamRepo.EXPECT().GetTechnicians(gomock.Any()).Return(nil, nil)

	resp, err := suite.teamService.Create(&service.CreateTeamRequest{Name: "Mechanics"})

	suite.NoError(err)
	suite.Equal("Mechanics", resp.Name)
	suite.Empty(resp.Technicians)
}

func (suite *TeamServiceTestSuite) TestCreateTeam_WithInitialRoster() {
	techID := uuid.New()
	technician := &models.User{
		BaseModel: models.BaseModel{ID: techID},
		FullName:  "Sam Rivera",
		Role:      models.UserRoleTechnician,
	}

	suite.mockTeamRepo.EXPECT().GetByName("Mechanics").Return(nil, gorm.ErrRecordNotFound)
	suite.mockUserRepo.EXPECT().GetByID(techID).Return(technician, nil)
	suite.mockTeamRepo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockTeamRepo.EXPECT().AddTechnician(gomock.Any(), techID).Return(nil)
	suite.mockTeamRepo.EXPECT().GetTechnicians(gomock.Any()).Return([]models.User{*technician}, nil)

	resp, err := suite.teamService.Create(&service.CreateTeamRequest{
		Name:        "Mechanics",
		Technicians: []uuid.UUID{techID},
	})

	suite.NoError(err)
	suite.Len(resp.Technicians, 1)
	suite.Equal("Sam Rivera", resp.Technicians[0].FullName)
}

func (suite *TeamServiceTestSuite) TestCreateTeam_RosterRejectsNonTechnician() {
	userID := uuid.New()
	user := &models.User{BaseModel: models.BaseModel{ID: userID}, Role: models.UserRoleUser}

	suite.mockTeamRepo.EXPECT().GetByName("Mechanics").Return(nil, gorm.ErrRecordNotFound)
	suite.mockUserRepo.EXPECT().GetByID(userID).Return(user, nil)

	resp, err := suite.teamService.Create(&service.CreateTeamRequest{
		Name:        "Mechanics",
		Technicians: []uuid.UUID{userID},
	})

	suite.Nil(resp)
	suite.True(apperrors.IsValidation(err))
	suite.Contains(err.Error(), "TECHNICIAN")
}

func (suite *TeamServiceTestSuite) TestCreateTeam_DuplicateName() {
	suite.mockTeamRepo.EXPECT().GetByName("Mechanics").Return(&models.MaintenanceTeam{Name: "Mechanics"}, nil)

	resp, err := suite.teamService.Create(&service.CreateTeamRequest{Name: "Mechanics"})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrTeamNameExists)
	suite.True(apperrors.IsConflict(err))
}

func (suite *TeamServiceTestSuite) TestCreateTeam_MissingName() {
	resp, err := suite.teamService.Create(&service.CreateTeamRequest{})

	suite.Nil(resp)
	suite.True(apperrors.IsValidation(err))
}

func (suite *TeamServiceTestSuite) TestUpdateTeam_RenameConflict() {
	id := uuid.New()
	team := &models.MaintenanceTeam{BaseModel: models.BaseModel{ID: id}, Name: "Mechanics"}
	suite.mockTeamRepo.EXPECT().GetByID(id).Return(team, nil)
	suite.mockTeamRepo.EXPECT().GetByName("Electricians").Return(&models.MaintenanceTeam{Name: "Electricians"}, nil)

	resp, err := suite.teamService.Update(id, &service.UpdateTeamRequest{Name: "Electricians"})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrTeamNameExists)
}

func (suite *TeamServiceTestSuite) TestUpdateTeam_SameNameSkipsCheck() {
	id := uuid.New()
	team := &models.MaintenanceTeam{BaseModel: models.BaseModel{ID: id}, Name: "Mechanics"}
	suite.mockTeamRepo.EXPECT().GetByID(id).Return(team, nil)
	suite.mockTeamRepo.EXPECT().Update(gomock.Any()).Return(nil)
	suite.mockTeamRepo.EXPECT().GetTechnicians(id).Return(nil, nil)

	resp, err := suite.teamService.Update(id, &service.UpdateTeamRequest{Name: "Mechanics"})

	suite.NoError(err)
	suite.Equal("Mechanics", resp.Name)
}

func (suite *TeamServiceTestSuite) TestAddTechnician_Success() {
	teamID := uuid.New()
	userID := uuid.New()
	team := &models.MaintenanceTeam{BaseModel: models.BaseModel{ID: teamID}, Name: "Mechanics"}
	technician := &models.User{
		BaseModel: models.BaseModel{ID: userID},
		FullName:  "Sam Rivera",
		Role:      models.UserRoleTechnician,
	}

	suite.mockTeamRepo.EXPECT().GetByID(teamID).Return(team, nil)
	suite.mockUserRepo.EXPECT().GetByID(userID).Return(technician, nil)
	suite.mockTeamRepo.EXPECT().IsTechnician(teamID, userID).Return(false, nil)
	suite.mockTeamRepo.EXPECT().AddTechnician(teamID, userID).Return(nil)
	suite.mockTeamRepo.EXPECT().GetTechnicians(teamID).Return([]models.User{*technician}, nil)

	resp, err := suite.teamService.AddTechnician(teamID, &service.TechnicianRequest{UserID: userID})

	suite.NoError(err)
	suite.Len(resp.Technicians, 1)
	suite.Equal("Sam Rivera", resp.Technicians[0].FullName)
}

func (suite *TeamServiceTestSuite) TestAddTechnician_WrongRole() {
	teamID := uuid.New()
	userID := uuid.New()
	team := &models.MaintenanceTeam{BaseModel: models.BaseModel{ID: teamID}, Name: "Mechanics"}
	user := &models.User{BaseModel: models.BaseModel{ID: userID}, Role: models.UserRoleUser}

	suite.mockTeamRepo.EXPECT().GetByID(teamID).Return(team, nil)
	suite.mockUserRepo.EXPECT().GetByID(userID).Return(user, nil)

	resp, err := suite.teamService.AddTechnician(teamID, &service.TechnicianRequest{UserID: userID})

	suite.Nil(resp)
	suite.True(apperrors.IsValidation(err))
	suite.Contains(err.Error(), "TECHNICIAN")
}

func (suite *TeamServiceTestSuite) TestAddTechnician_AlreadyInTeam() {
	teamID := uuid.New()
	userID := uuid.New()
	team := &models.MaintenanceTeam{BaseModel: models.BaseModel{ID: teamID}, Name: "Mechanics"}
	technician := &models.User{BaseModel: models.BaseModel{ID: userID}, Role: models.UserRoleTechnician}

	suite.mockTeamRepo.EXPECT().GetByID(teamID).Return(team, nil)
	suite.mockUserRepo.EXPECT().GetByID(userID).Return(technician, nil)
	suite.mockTeamRepo.EXPECT().IsTechnician(teamID, userID).Return(true, nil)

	resp, err := suite.teamService.AddTechnician(teamID, &service.TechnicianRequest{UserID: userID})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrTechnicianAlreadyInTeam)
}

func (suite *TeamServiceTestSuite) TestAddTechnician_UserNotFound() {
	teamID := uuid.New()
	userID := uuid.New()
	team := &models.MaintenanceTeam{BaseModel: models.BaseModel{ID: teamID}, Name: "Mechanics"}

	suite.mockTeamRepo.EXPECT().GetByID(teamID).Return(team, nil)
	suite.mockUserRepo.EXPECT().GetByID(userID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.teamService.AddTechnician(teamID, &service.TechnicianRequest{UserID: userID})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

func (suite *TeamServiceTestSuite) TestRemoveTechnician_NotInTeam() {
	teamID := uuid.New()
	userID := uuid.New()
	team := &models.MaintenanceTeam{BaseModel: models.BaseModel{ID: teamID}, Name: "Mechanics"}

	suite.mockTeamRepo.EXPECT().GetByID(teamID).Return(team, nil)
	suite.mockTeamRepo.EXPECT().IsTechnician(teamID, userID).Return(false, nil)

	resp, err := suite.teamService.RemoveTechnician(teamID, userID)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrTechnicianNotInTeam)
}

func (suite *TeamServiceTestSuite) TestDeleteTeam_NotFound() {
	id := uuid.New()
	suite.mockTeamRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	err := suite.teamService.Delete(id)

	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
}

func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
