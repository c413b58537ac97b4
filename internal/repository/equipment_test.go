//go:build integration
// +build integration

package repository

import (
	"testing"

	"gearguard-backend/internal/database/models"
	"gearguard-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// EquipmentRepositoryTestSuite tests the EquipmentRepository
type EquipmentRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *EquipmentRepository
	factory       *testutils.EquipmentFactory
}

func (suite *EquipmentRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewEquipmentRepository(suite.baseTestSuite.DB)
	suite.factory = testutils.NewEquipmentFactory()
}

func (suite *EquipmentRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *EquipmentRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *EquipmentRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *EquipmentRepositoryTestSuite) TestCreate() {
	equipment := suite.factory.Create()

	err := suite.repo.Create(equipment)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, equipment.ID)
	suite.NotZero(equipment.CreatedAt)
	suite.Equal(models.EquipmentStatusActive, equipment.Status)
}

func (suite *EquipmentRepositoryTestSuite) TestCreateDuplicateSerialNumber() {
	first := suite.factory.Create()
	first.SerialNumber = "SN-DUP"
	suite.NoError(suite.repo.Create(first))

	second := suite.factory.Create()
	second.SerialNumber = "SN-DUP"

	err := suite.repo.Create(second)

	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

func (suite *EquipmentRepositoryTestSuite) TestGetBySerialNumber() {
	equipment := suite.factory.Create()
	suite.NoError(suite.repo.Create(equipment))

	found, err := suite.repo.GetBySerialNumber(equipment.SerialNumber)

	suite.NoError(err)
	suite.Equal(equipment.ID, found.ID)
}

func (suite *EquipmentRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(uuid.New())

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *EquipmentRepositoryTestSuite) TestListFilters() {
	active := suite.factory.Create()
	active.Location = "Hall B"
	suite.NoError(suite.repo.Create(active))

	scrapped := suite.factory.Scrapped()
	scrapped.Location = "Hall B"
	suite.NoError(suite.repo.Create(scrapped))

	other := suite.factory.Create()
	other.Location = "Yard"
	suite.NoError(suite.repo.Create(other))

	status := models.EquipmentStatusActive
	location := "Hall B"

	result, err := suite.repo.List(&status, &location)

	suite.NoError(err)
	suite.Len(result, 1)
	suite.Equal(active.ID, result[0].ID)

	all, err := suite.repo.List(nil, nil)
	suite.NoError(err)
	suite.Len(all, 3)
}

func (suite *EquipmentRepositoryTestSuite) TestGetByIDs() {
	first := suite.factory.Create()
	suite.NoError(suite.repo.Create(first))
	second := suite.factory.Create()
	suite.NoError(suite.repo.Create(second))

	found, err := suite.repo.GetByIDs([]uuid.UUID{first.ID, uuid.New()})

	suite.NoError(err)
	suite.Len(found, 1)
	suite.Equal(first.SerialNumber, found[first.ID].SerialNumber)
}

func (suite *EquipmentRepositoryTestSuite) TestUpdate() {
	equipment := suite.factory.Create()
	suite.NoError(suite.repo.Create(equipment))

	teamID := uuid.New()
	equipment.AssignedTeamID = &teamID
	equipment.Location = "Hall C"

	suite.NoError(suite.repo.Update(equipment))

	found, err := suite.repo.GetByID(equipment.ID)
	suite.NoError(err)
	suite.Equal("Hall C", found.Location)
	suite.NotNil(found.AssignedTeamID)
	suite.Equal(teamID, *found.AssignedTeamID)
}

func (suite *EquipmentRepositoryTestSuite) TestDelete() {
	equipment := suite.factory.Create()
	suite.NoError(suite.repo.Create(equipment))

	suite.NoError(suite.repo.Delete(equipment.ID))

	_, err := suite.repo.GetByID(equipment.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestEquipmentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(EquipmentRepositoryTestSuite))
}
