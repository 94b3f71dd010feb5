//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"coworking-booking/internal/domain/user"
	"coworking-booking/internal/handler/api"
	resdto "coworking-booking/internal/handler/dto/response"
	"coworking-booking/internal/usecase/commands"
	"coworking-booking/internal/usecase/queries"
	"coworking-booking/tests/common/builder"
	"coworking-booking/tests/common/httptest"
	commandsmock "coworking-booking/tests/mock/commands"
	queriesmock "coworking-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockCommands     *commandsmock.MockRoomCommands
	mockQueries      *queriesmock.MockRoomQueries
	mockReservations *queriesmock.MockReservationQueries
	handler          *api.RoomHandler
}

func (s *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRoomCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRoomQueries(s.mockCtrl)
	s.mockReservations = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewRoomHandler(s.mockCommands, s.mockQueries, s.mockReservations)

	authMiddleware := func(role user.Role) gin.HandlerFunc {
		return func(c *gin.Context) {
			if c.GetHeader("Authorization") == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
				return
			}
			c.Set("user_id", uuid.New())
			c.Set("user_role", role)
			c.Next()
		}
	}

	s.router.GET("/spaces/:id/rooms", s.handler.ListRoomsBySpace)
	s.router.GET("/rooms/:id", s.handler.GetRoom)
	s.router.GET("/rooms/:id/reservations", authMiddleware(user.RoleMember), s.handler.ListRoomReservations)
	s.router.POST("/rooms", authMiddleware(user.RoleAdmin), s.handler.CreateRoom)
	s.router.PATCH("/rooms/:id", authMiddleware(user.RoleAdmin), s.handler.UpdateRoom)
	s.router.DELETE("/rooms/:id", authMiddleware(user.RoleAdmin), s.handler.DeleteRoom)
}

func (s *RoomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

// ================================================================================
// TestListRoomsBySpace
// ================================================================================

func (s *RoomHandlerTestSuite) TestListRoomsBySpace() {
	spaceID := uuid.New()
	url := "/spaces/" + spaceID.String() + "/rooms"

	items := []*queries.RoomView{
		{ID: uuid.New(), Name: "Focus Room", SpaceID: spaceID, SpaceName: "Shibuya Hub", Capacity: 6},
		{ID: uuid.New(), Name: "Quiet Room", SpaceID: spaceID, SpaceName: "Shibuya Hub", Capacity: 2},
	}

	s.Run("success: returns rooms of the space", func() {
		s.mockQueries.EXPECT().ListBySpace(gomock.Any(), spaceID).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("Focus Room", response[0].Name)
	})

	s.Run("error: 400 Bad Request for invalid space UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/spaces/invalid-uuid/rooms", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid space ID")
	})
}

// ================================================================================
// TestGetRoom
// ================================================================================

func (s *RoomHandlerTestSuite) TestGetRoom() {
	roomID := uuid.New()
	url := "/rooms/" + roomID.String()

	returnView := &queries.RoomView{ID: roomID, Name: "Focus Room", SpaceName: "Shibuya Hub", Capacity: 6}

	s.Run("success: returns 200 OK with RoomResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), roomID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(roomID, response.ID)
		s.Equal(6, response.Capacity)
	})

	s.Run("error: 404 Not Found for missing room", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), roomID).
			Return(nil, queries.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})
}

// ================================================================================
// TestListRoomReservations
// ================================================================================

func (s *RoomHandlerTestSuite) TestListRoomReservations() {
	roomID := uuid.New()
	baseURL := "/rooms/" + roomID.String() + "/reservations"

	items := []*queries.ReservationListItem{
		builder.NewReservationBuilder().WithSlot("10:00", "12:00").BuildListItem(),
		builder.NewReservationBuilder().WithSlot("13:00", "14:00").BuildListItem(),
	}

	s.Run("success: returns the day's bookings ordered by start", func() {
		date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		s.mockReservations.EXPECT().ListForRoomOnDate(gomock.Any(), roomID, date).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+"?date=2026-09-01", nil, "bearer-token")

		var response []resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("10:00", response[0].StartTime)
	})

	s.Run("error: 400 Bad Request when date is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "date must be YYYY-MM-DD")
	})

	s.Run("error: 400 Bad Request for malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+"?date=09-01-2026", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "date must be YYYY-MM-DD")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+"?date=2026-09-01", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})
}

// ================================================================================
// TestCreateRoom
// ================================================================================

func (s *RoomHandlerTestSuite) TestCreateRoom() {
	url := "/rooms"
	spaceID := uuid.New()

	reqBody := map[string]any{"name": "Focus Room", "space_id": spaceID.String(), "capacity": 6}
	returnView := &queries.RoomView{ID: uuid.New(), Name: "Focus Room", SpaceID: spaceID, SpaceName: "Shibuya Hub", Capacity: 6}

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), commands.CreateRoomInput{Name: "Focus Room", SpaceID: spaceID, Capacity: 6}).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("Focus Room", response.Name)
		s.Equal("Shibuya Hub", response.SpaceName)
	})

	s.Run("error: 400 Bad Request for capacity below minimum", func() {
		body := map[string]any{"name": "Focus Room", "space_id": spaceID.String(), "capacity": 0}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 Not Found for unknown parent space", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrSpaceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Space not found")
	})

	s.Run("error: 409 Conflict on duplicate name", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrRoomNameTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already exists")
	})
}

// ================================================================================
// TestUpdateRoom
// ================================================================================

func (s *RoomHandlerTestSuite) TestUpdateRoom() {
	roomID := uuid.New()
	url := "/rooms/" + roomID.String()

	reqBody := map[string]any{"capacity": 10}
	returnView := &queries.RoomView{ID: roomID, Name: "Focus Room", SpaceName: "Shibuya Hub", Capacity: 10}

	s.Run("success: returns 200 OK with merged room", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), roomID, gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")

		var response resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(10, response.Capacity)
	})

	s.Run("error: 404 Not Found for missing room", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), roomID, gomock.Any()).
			Return(nil, commands.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})
}

// ================================================================================
// TestDeleteRoom
// ================================================================================

func (s *RoomHandlerTestSuite) TestDeleteRoom() {
	roomID := uuid.New()
	url := "/rooms/" + roomID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), roomID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found for missing room", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), roomID).
			Return(commands.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})

	s.Run("error: 500 on storage failure", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), roomID).
			Return(errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
