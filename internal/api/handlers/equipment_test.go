package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gearguard-backend/internal/api/handlers"
	"gearguard-backend/internal/database/models"
	apperrors "gearguard-backend/internal/errors"
	"gearguard-backend/internal/mocks"
	"gearguard-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// EquipmentHandlerTestSuite defines the test suite for EquipmentHandler
type EquipmentHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockEquipmentSv *mocks.MockEquipmentServiceInterface
	handler         *handlers.EquipmentHandler
	router          *gin.Engine
}

func (suite *EquipmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockEquipmentSv = mocks.NewMockEquipmentServiceInterface(suite.ctrl)
	suite.handler = handlers.NewEquipmentHandler(suite.mockEquipmentSv)

	suite.router = gin.New()
	suite.router.GET("/equipment", suite.handler.List)
	suite.router.GET("/equipment/:id", suite.handler.GetByID)
	suite.router.GET("/equipment/:id/requests", suite.handler.GetRequests)
	suite.router.POST("/equipment", suite.handler.Create)
	suite.router.PATCH("/equipment/:id", suite.handler.Update)
	suite.router.PATCH("/equipment/:id/scrap", suite.handler.Scrap)
	suite.router.DELETE("/equipment/:id", suite.handler.Delete)
}

func (suite *EquipmentHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *EquipmentHandlerTestSuite) TestList_StatusFilter() {
	suite.mockEquipmentSv.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(status *models.EquipmentStatus, location *string) ([]service.EquipmentResponse, error) {
			assert.NotNil(suite.T(), status)
			assert.Equal(suite.T(), models.EquipmentStatusActive, *status)
			assert.Nil(suite.T(), location)
			return []service.EquipmentResponse{{ID: uuid.New(), Name: "Forklift 3"}}, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/equipment?status=ACTIVE", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got handlers.Envelope
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.True(suite.T(), got.Success)
	assert.Equal(suite.T(), "Equipment retrieved successfully", got.Message)
}

func (suite *EquipmentHandlerTestSuite) TestCreate_Success() {
	suite.mockEquipmentSv.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(req *service.CreateEquipmentRequest) (*service.EquipmentResponse, error) {
			assert.Equal(suite.T(), "CNC Mill", req.Name)
			assert.Equal(suite.T(), "SN-1001", req.SerialNumber)
			return &service.EquipmentResponse{ID: uuid.New(), Name: req.Name, SerialNumber: req.SerialNumber}, nil
		})

	body := jsonBody(suite.T(), gin.H{
		"name":         "CNC Mill",
		"serialNumber": "SN-1001",
		"location":     "Hall B",
	})
	req := httptest.NewRequest(http.MethodPost, "/equipment", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
}

func (suite *EquipmentHandlerTestSuite) TestCreate_DuplicateSerial() {
	suite.mockEquipmentSv.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrSerialNumberExists)

	body := jsonBody(suite.T(), gin.H{
		"name":         "CNC Mill",
		"serialNumber": "SN-1001",
		"location":     "Hall B",
	})
	req := httptest.NewRequest(http.MethodPost, "/equipment", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)

	var got handlers.ErrorEnvelope
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.False(suite.T(), got.Success)
	assert.Equal(suite.T(), http.StatusConflict, got.StatusCode)
}

func (suite *EquipmentHandlerTestSuite) TestGetByID_NotFound() {
	id := uuid.New()
	suite.mockEquipmentSv.EXPECT().GetByID(id).Return(nil, apperrors.ErrEquipmentNotFound)

	req := httptest.NewRequest(http.MethodGet, "/equipment/"+id.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *EquipmentHandlerTestSuite) TestGetByID_BadUUID() {
	req := httptest.NewRequest(http.MethodGet, "/equipment/42", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *EquipmentHandlerTestSuite) TestScrap_AlreadyScrapped() {
	id := uuid.New()
	suite.mockEquipmentSv.EXPECT().Scrap(id).Return(nil, apperrors.ErrEquipmentAlreadyScrapped)

	req := httptest.NewRequest(http.MethodPatch, "/equipment/"+id.String()+"/scrap", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *EquipmentHandlerTestSuite) TestGetRequests_Success() {
	id := uuid.New()
	suite.mockEquipmentSv.EXPECT().GetRequests(id).Return(&service.EquipmentRequestsResponse{
		Equipment:    &service.EquipmentResponse{ID: id, Name: "Forklift 3"},
		Requests:     []service.RequestResponse{},
		PendingCount: 2,
		TotalCount:   5,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/equipment/"+id.String()+"/requests", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got struct {
		Data service.EquipmentRequestsResponse `json:"data"`
	}
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), int64(2), got.Data.PendingCount)
	assert.Equal(suite.T(), 5, got.Data.TotalCount)
}

func (suite *EquipmentHandlerTestSuite) TestDelete_Success() {
	id := uuid.New()
	suite.mockEquipmentSv.EXPECT().Delete(id).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/equipment/"+id.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func TestEquipmentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EquipmentHandlerTestSuite))
}
