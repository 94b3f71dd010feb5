//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"coworking-booking/internal/domain/user"
	"coworking-booking/internal/handler/api"
	resdto "coworking-booking/internal/handler/dto/response"
	"coworking-booking/internal/usecase/commands"
	"coworking-booking/internal/usecase/queries"
	"coworking-booking/tests/common/builder"
	"coworking-booking/tests/common/httptest"
	"coworking-booking/tests/common/testutil"
	commandsmock "coworking-booking/tests/mock/commands"
	queriesmock "coworking-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SpaceHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSpaceCommands
	mockQueries  *queriesmock.MockSpaceQueries
	handler      *api.SpaceHandler
}

func (s *SpaceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSpaceCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSpaceQueries(s.mockCtrl)
	s.handler = api.NewSpaceHandler(s.mockCommands, s.mockQueries)

	// Admin-gated writes; reads stay public
	adminMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleAdmin)
		c.Next()
	}

	s.router.GET("/spaces", s.handler.ListSpaces)
	s.router.GET("/spaces/:id", s.handler.GetSpace)
	s.router.POST("/spaces", adminMiddleware, s.handler.CreateSpace)
	s.router.PATCH("/spaces/:id", adminMiddleware, s.handler.UpdateSpace)
	s.router.DELETE("/spaces/:id", adminMiddleware, s.handler.DeleteSpace)
}

func (s *SpaceHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSpaceHandlerSuite(t *testing.T) {
	suite.Run(t, new(SpaceHandlerTestSuite))
}

// ================================================================================
// TestListSpaces
// ================================================================================

func (s *SpaceHandlerTestSuite) TestListSpaces() {
	items := []*queries.SpaceView{
		builder.NewSpaceBuilder().WithName("Ebisu Annex").BuildView(),
		builder.NewSpaceBuilder().WithName("Shibuya Hub").BuildView(),
	}

	s.Run("success: returns spaces with defaults", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), 0, 0).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/spaces", nil, "")

		var response []resdto.SpaceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("Ebisu Annex", response[0].Name)
	})

	s.Run("success: passes pagination through", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), 10, 20).
			Return(items[:1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/spaces?limit=10&offset=20", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 500 on query failure", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), 0, 0).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/spaces", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestGetSpace
// ================================================================================

func (s *SpaceHandlerTestSuite) TestGetSpace() {
	spaceID := uuid.New()
	url := "/spaces/" + spaceID.String()

	returnView := builder.NewSpaceBuilder().BuildView()
	returnView.ID = spaceID

	s.Run("success: returns 200 OK with SpaceResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), spaceID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.SpaceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(spaceID, response.ID)
		s.Equal(returnView.RoomCount, response.RoomCount)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/spaces/invalid-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid space ID")
	})

	s.Run("error: 404 Not Found for missing space", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), spaceID).
			Return(nil, queries.ErrSpaceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Space not found")
	})
}

// ================================================================================
// TestCreateSpace
// ================================================================================

func (s *SpaceHandlerTestSuite) TestCreateSpace() {
	url := "/spaces"

	reqBody := builder.NewSpaceBuilder().BuildCreateRequestDTO()
	returnView := builder.NewSpaceBuilder().BuildView()

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody.ToInput()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.SpaceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.Name, response.Name)
		s.Equal("09:00", response.OpenTime)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: name", mutate: testutil.Field("name", nil)},
			{name: "missing field: address", mutate: testutil.Field("address", nil)},
			{name: "missing field: tel", mutate: testutil.Field("tel", nil)},
			{name: "missing field: open_time", mutate: testutil.Field("open_time", nil)},
			{name: "missing field: close_time", mutate: testutil.Field("close_time", nil)},
			{name: "name too long", mutate: testutil.Field("name", strings.Repeat("a", 101))},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "malformed operating hours",
				commandsError:  commands.ErrInvalidTimeFormat,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "HH:mm",
			},
			{
				name:           "open not before close",
				commandsError:  commands.ErrInvalidTimeRange,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "before closing",
			},
			{
				name:           "invalid attributes",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid space attributes",
			},
			{
				name:           "duplicate name",
				commandsError:  commands.ErrSpaceNameTaken,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already exists",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestUpdateSpace
// ================================================================================

func (s *SpaceHandlerTestSuite) TestUpdateSpace() {
	spaceID := uuid.New()
	url := "/spaces/" + spaceID.String()

	closeTime := "22:00"
	reqBody := map[string]any{"close_time": closeTime}
	returnView := builder.NewSpaceBuilder().BuildView()
	returnView.ID = spaceID
	returnView.CloseTime = closeTime

	s.Run("success: returns 200 OK with merged space", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), spaceID, gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")

		var response resdto.SpaceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(closeTime, response.CloseTime)
	})

	s.Run("error: 404 Not Found for missing space", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), spaceID, gomock.Any()).
			Return(nil, commands.ErrSpaceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Space not found")
	})

	s.Run("error: 409 Conflict on rename collision", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), spaceID, gomock.Any()).
			Return(nil, commands.ErrSpaceNameTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already exists")
	})
}

// ================================================================================
// TestDeleteSpace
// ================================================================================

func (s *SpaceHandlerTestSuite) TestDeleteSpace() {
	spaceID := uuid.New()
	url := "/spaces/" + spaceID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), spaceID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found for missing space", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), spaceID).
			Return(commands.ErrSpaceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Space not found")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})
}
