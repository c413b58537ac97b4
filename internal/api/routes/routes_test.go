//go:build integration
// +build integration

package routes

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"testing"

	"gearguard-backend/internal/auth"
	"gearguard-backend/internal/service"
	"gearguard-backend/internal/testutils"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

// TestMain ensures Docker cleanup after the API tests
func TestMain(m *testing.M) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("API tests interrupted, cleaning up Docker containers")
		testutils.CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()

	testutils.CleanupSharedContainer()
	os.Exit(code)
}

// APITestSuite exercises the full HTTP stack against a real database
type APITestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	http          *testutils.HTTPTestSuite
}

type envelope struct {
	StatusCode int             `json:"statusCode"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	Success    bool            `json:"success"`
}

func (suite *APITestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.http = testutils.SetupHTTPTest()
	router, err := SetupRoutes(suite.baseTestSuite.DB, suite.baseTestSuite.Config, logrus.StandardLogger())
	suite.Require().NoError(err)
	suite.http.Router = router
}

func (suite *APITestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *APITestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *APITestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// register creates an account through the API and returns the access and
// refresh token cookie values
func (suite *APITestSuite) register(username, email, role string) (string, string) {
	w := suite.http.MakeRequest(http.MethodPost, "/api/v1/auth/register", map[string]interface{}{
		"username": username,
		"email":    email,
		"fullName": "Test " + username,
		"password": "password123",
		"role":     role,
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var access, refresh string
	for _, cookie := range w.Result().Cookies() {
		switch cookie.Name {
		case auth.AccessTokenCookie:
			access = cookie.Value
		case auth.RefreshTokenCookie:
			refresh = cookie.Value
		}
	}
	suite.Require().NotEmpty(access)
	suite.Require().NotEmpty(refresh)
	return access, refresh
}

func (suite *APITestSuite) authed(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func (suite *APITestSuite) decode(body []byte) envelope {
	var env envelope
	suite.Require().NoError(json.Unmarshal(body, &env))
	return env
}

func (suite *APITestSuite) TestHealth() {
	w := suite.http.MakeRequest(http.MethodGet, "/health", nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *APITestSuite) TestUnknownRoute() {
	w := suite.http.MakeRequest(http.MethodGet, "/api/v1/nothing-here", nil)
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Body.String(), "Route not found")
}

func (suite *APITestSuite) TestEquipmentRequiresAuth() {
	w := suite.http.MakeRequest(http.MethodGet, "/api/v1/equipment", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *APITestSuite) TestEquipmentWriteIsManagerOnly() {
	_, _ = suite.register("manager1", "manager1@test.com", "MANAGER")
	userToken, _ := suite.register("user1", "user1@test.com", "USER")

	w := suite.http.MakeRequestWithHeaders(http.MethodPost, "/api/v1/equipment", map[string]interface{}{
		"name":         "CNC Mill",
		"serialNumber": "SN-API-1",
		"location":     "Hall B",
	}, suite.authed(userToken))

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *APITestSuite) TestRequestLifecycle() {
	managerToken, _ := suite.register("manager2", "manager2@test.com", "MANAGER")
	userToken, _ := suite.register("user2", "user2@test.com", "USER")

	// manager registers equipment
	w := suite.http.MakeRequestWithHeaders(http.MethodPost, "/api/v1/equipment", map[string]interface{}{
		"name":         "CNC Mill",
		"serialNumber": "SN-API-2",
		"location":     "Hall B",
	}, suite.authed(managerToken))
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var equipment service.EquipmentResponse
	env := suite.decode(w.Body.Bytes())
	suite.Require().NoError(json.Unmarshal(env.Data, &equipment))

	// any authenticated user can open a request
	w = suite.http.MakeRequestWithHeaders(http.MethodPost, "/api/v1/requests", map[string]interface{}{
		"title":       "Spindle vibration",
		"description": "Excessive vibration at high RPM",
		"type":        "CORRECTIVE",
		"equipment":   equipment.ID,
	}, suite.authed(userToken))
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var request service.RequestResponse
	env = suite.decode(w.Body.Bytes())
	suite.Require().NoError(json.Unmarshal(env.Data, &request))
	suite.Require().NotNil(request.Equipment)
	suite.Equal(equipment.ID, request.Equipment.ID)
	suite.NotNil(request.RequestedBy)

	// plain users cannot move status
	w = suite.http.MakeRequestWithHeaders(http.MethodPatch,
		"/api/v1/requests/"+request.ID.String()+"/status",
		map[string]interface{}{"status": "IN_PROGRESS"}, suite.authed(userToken))
	suite.Equal(http.StatusForbidden, w.Code)

	// managers can
	w = suite.http.MakeRequestWithHeaders(http.MethodPatch,
		"/api/v1/requests/"+request.ID.String()+"/status",
		map[string]interface{}{"status": "REPAIRED", "duration": 45}, suite.authed(managerToken))
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	// scrapping the equipment blocks new requests
	w = suite.http.MakeRequestWithHeaders(http.MethodPatch,
		"/api/v1/equipment/"+equipment.ID.String()+"/scrap", nil, suite.authed(managerToken))
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	w = suite.http.MakeRequestWithHeaders(http.MethodPost, "/api/v1/requests", map[string]interface{}{
		"title":       "One more",
		"description": "Should be rejected",
		"type":        "CORRECTIVE",
		"equipment":   equipment.ID,
	}, suite.authed(userToken))
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *APITestSuite) TestKanbanBoard() {
	userToken, _ := suite.register("user3", "user3@test.com", "USER")

	w := suite.http.MakeRequestWithHeaders(http.MethodGet, "/api/v1/requests/kanban", nil, suite.authed(userToken))
	suite.Require().Equal(http.StatusOK, w.Code)

	var board service.KanbanBoard
	env := suite.decode(w.Body.Bytes())
	suite.Require().NoError(json.Unmarshal(env.Data, &board))
	suite.Len(board, 4)
	for _, requests := range board {
		suite.NotNil(requests)
	}
}

func (suite *APITestSuite) TestRefreshRotatesCookies() {
	_, refreshToken := suite.register("user4", "user4@test.com", "USER")

	w := suite.http.MakeRequestWithHeaders(http.MethodPost, "/api/v1/auth/refresh", nil, map[string]string{
		"Cookie": auth.RefreshTokenCookie + "=" + refreshToken,
	})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var rotated string
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == auth.RefreshTokenCookie {
			rotated = cookie.Value
		}
	}
	suite.NotEmpty(rotated)
	suite.NotEqual(refreshToken, rotated)

	// the old token is single use
	w = suite.http.MakeRequestWithHeaders(http.MethodPost, "/api/v1/auth/refresh", nil, map[string]string{
		"Cookie": auth.RefreshTokenCookie + "=" + refreshToken,
	})
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}
