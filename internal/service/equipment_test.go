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

type EquipmentServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockEquipmentRepo *mocks.MockEquipmentRepositoryInterface
	mockTeamRepo      *mocks.MockTeamRepositoryInterface
	mockUserRepo      *mocks.MockUserRepositoryInterface
	mockRequestRepo   *mocks.MockRequestRepositoryInterface
	equipmentService  *service.EquipmentService
}

func (suite *EquipmentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockEquipmentRepo = mocks.NewMockEquipmentRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockRequestRepo = mocks.NewMockRequestRepositoryInterface(suite.ctrl)
	projector := service.NewProjector(suite.mockEquipmentRepo, suite.mockTeamRepo, suite.mockUserRepo)
	suite.equipmentService = service.NewEquipmentService(suite.mockEquipmentRepo, suite.mockRequestRepo, projector, validator.New())
}

func (suite *EquipmentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// allowTeamResolution stubs the batch team lookup the projector performs on
// every equipment read
func (suite *EquipmentServiceTestSuite) allowTeamResolution(teams map[uuid.UUID]models.MaintenanceTeam) {
	suite.mockTeamRepo.EXPECT().GetByIDs(gomock.Any()).Return(teams, nil).AnyTimes()
}

func (suite *EquipmentServiceTestSuite) TestCreateEquipment_Success() {
	suite.allowTeamResolution(nil)
	suite.mockEquipmentRepo.EXPECT().GetBySerialNumber("SN-1001").Return(nil, gorm.ErrRecordNotFound)
	suite.mockEquipmentRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(e *models.Equipment) error {
		suite.Equal("Lathe", e.Name)
		suite.Equal(models.EquipmentStatusActive, e.Status)
		return nil
	})

	resp, err := suite.equipmentService.Create(&service.CreateEquipmentRequest{
		Name:         "Lathe",
		SerialNumber: "SN-1001",
		Location:     "Shop Floor B",
	})

	suite.NoError(err)
	suite.Equal("Lathe", resp.Name)
	suite.Equal(models.EquipmentStatusActive, resp.Status)
	suite.Nil(resp.AssignedTeam)
}

func (suite *EquipmentServiceTestSuite) TestCreateEquipment_DuplicateSerial() {
	existing := &models.Equipment{SerialNumber: "SN-1001"}
	suite.mockEquipmentRepo.EXPECT().GetBySerialNumber("SN-1001").Return(existing, nil)

	resp, err := suite.equipmentService.Create(&service.CreateEquipmentRequest{
		Name:         "Lathe",
		SerialNumber: "SN-1001",
		Location:     "Shop Floor B",
	})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrSerialNumberExists)
	suite.True(apperrors.IsConflict(err))
}

func (suite *EquipmentServiceTestSuite) TestCreateEquipment_MissingFields() {
	resp, err := suite.equipmentService.Create(&service.CreateEquipmentRequest{Name: "Lathe"})

	suite.Nil(resp)
	suite.True(apperrors.IsValidation(err))
}

func (suite *EquipmentServiceTestSuite) TestCreateEquipment_WithAssignedTeam() {
	teamID := uuid.New()
	suite.allowTeamResolution(map[uuid.UUID]models.MaintenanceTeam{
		teamID: {BaseModel: models.BaseModel{ID: teamID}, Name: "Mechanics"},
	})
	suite.mockEquipmentRepo.EXPECT().GetBySerialNumber("SN-2001").Return(nil, gorm.ErrRecordNotFound)
	suite.mockEquipmentRepo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.equipmentService.Create(&service.CreateEquipmentRequest{
		Name:           "Press",
		SerialNumber:   "SN-2001",
		Location:       "Shop Floor A",
		AssignedTeamID: &teamID,
	})

	suite.NoError(err)
	suite.NotNil(resp.AssignedTeam)
	suite.Equal("Mechanics", resp.AssignedTeam.Name)
}

func (suite *EquipmentServiceTestSuite) TestUpdateEquipment_ChangedSerialConflict() {
	id := uuid.New()
	current := &models.Equipment{
		BaseModel:    models.BaseModel{ID: id},
		Name:         "Lathe",
		SerialNumber: "SN-1001",
		Location:     "Shop Floor B",
		Status:       models.EquipmentStatusActive,
	}
	newSerial := "SN-9999"
	suite.mockEquipmentRepo.EXPECT().GetByID(id).Return(current, nil)
	suite.mockEquipmentRepo.EXPECT().GetBySerialNumber(newSerial).Return(&models.Equipment{}, nil)

	resp, err := suite.equipmentService.Update(id, &service.UpdateEquipmentRequest{SerialNumber: &newSerial})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrSerialNumberExists)
}

func (suite *EquipmentServiceTestSuite) TestUpdateEquipment_SameSerialSkipsCheck() {
	id := uuid.New()
	current := &models.Equipment{
		BaseModel:    models.BaseModel{ID: id},
		Name:         "Lathe",
		SerialNumber: "SN-1001",
		Location:     "Shop Floor B",
		Status:       models.EquipmentStatusActive,
	}
	sameSerial := "SN-1001"
	newName := "Lathe Mk II"
	suite.allowTeamResolution(nil)
	suite.mockEquipmentRepo.EXPECT().GetByID(id).Return(current, nil)
	suite.mockEquipmentRepo.EXPECT().Update(gomock.Any()).Return(nil)

	resp, err := suite.equipmentService.Update(id, &service.UpdateEquipmentRequest{
		Name:         &newName,
		SerialNumber: &sameSerial,
	})

	suite.NoError(err)
	suite.Equal("Lathe Mk II", resp.Name)
	suite.Equal("SN-1001", resp.SerialNumber)
}

func (suite *EquipmentServiceTestSuite) TestScrap_Success() {
	id := uuid.New()
	current := &models.Equipment{
		BaseModel:    models.BaseModel{ID: id},
		Name:         "Lathe",
		SerialNumber: "SN-1001",
		Location:     "Shop Floor B",
		Status:       models.EquipmentStatusActive,
	}
	suite.allowTeamResolution(nil)
	suite.mockEquipmentRepo.EXPECT().GetByID(id).Return(current, nil)
	suite.mockEquipmentRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(e *models.Equipment) error {
		suite.Equal(models.EquipmentStatusScrapped, e.Status)
		return nil
	})

	resp, err := suite.equipmentService.Scrap(id)

	suite.NoError(err)
	suite.Equal(models.EquipmentStatusScrapped, resp.Status)
}

func (suite *EquipmentServiceTestSuite) TestScrap_AlreadyScrapped() {
	id := uuid.New()
	current := &models.Equipment{
		BaseModel: models.BaseModel{ID: id},
		Status:    models.EquipmentStatusScrapped,
	}
	suite.mockEquipmentRepo.EXPECT().GetByID(id).Return(current, nil)

	resp, err := suite.equipmentService.Scrap(id)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrEquipmentAlreadyScrapped)
	suite.True(apperrors.IsConflict(err))
}

func (suite *EquipmentServiceTestSuite) TestScrap_NotFound() {
	id := uuid.New()
	suite.mockEquipmentRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.equipmentService.Scrap(id)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrEquipmentNotFound)
	suite.True(apperrors.IsNotFound(err))
}

func (suite *EquipmentServiceTestSuite) TestList_InvalidStatus() {
	bad := models.EquipmentStatus("BROKEN")

	resp, err := suite.equipmentService.List(&bad, nil)

	suite.Nil(resp)
	suite.True(apperrors.IsValidation(err))
}

func (suite *EquipmentServiceTestSuite) TestGetRequests_CountsPendingWork() {
	id := uuid.New()
	userID := uuid.New()
	current := &models.Equipment{
		BaseModel:    models.BaseModel{ID: id},
		Name:         "Lathe",
		SerialNumber: "SN-1001",
		Location:     "Shop Floor B",
		Status:       models.EquipmentStatusActive,
	}
	requests := []models.MaintenanceRequest{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Status: models.RequestStatusNew, EquipmentID: id, RequestedByID: userID},
		{BaseModel: models.BaseModel{ID: uuid.New()}, Status: models.RequestStatusInProgress, EquipmentID: id, RequestedByID: userID},
		{BaseModel: models.BaseModel{ID: uuid.New()}, Status: models.RequestStatusRepaired, EquipmentID: id, RequestedByID: userID},
	}

	suite.allowTeamResolution(nil)
	suite.mockEquipmentRepo.EXPECT().GetByID(id).Return(current, nil)
	suite.mockRequestRepo.EXPECT().ListByEquipment(id).Return(requests, nil)
	suite.mockRequestRepo.EXPECT().CountPendingByEquipment(id).Return(int64(2), nil)
	suite.mockEquipmentRepo.EXPECT().GetByIDs(gomock.Any()).Return(map[uuid.UUID]models.Equipment{id: *current}, nil)
	suite.mockUserRepo.EXPECT().GetByIDs(gomock.Any()).Return(nil, nil)

	resp, err := suite.equipmentService.GetRequests(id)

	suite.NoError(err)
	suite.Equal(int64(2), resp.PendingCount)
	suite.Equal(3, resp.TotalCount)
	suite.Len(resp.Requests, 3)
	// dangling requester reference renders as nil, not an error
	suite.Nil(resp.Requests[0].RequestedBy)
	suite.NotNil(resp.Requests[0].Equipment)
}

func TestEquipmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EquipmentServiceTestSuite))
}
