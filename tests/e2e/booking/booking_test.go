//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"

	"coworking-booking/internal/handler/dto/request"
	"coworking-booking/internal/handler/dto/response"
	"coworking-booking/tests/common/authtest"
	"coworking-booking/tests/common/dbtest"
	"coworking-booking/tests/common/httptest"
	"coworking-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL     = "/api/reservations"
	roomReservationsURL = "/api/rooms/%s/reservations?date=%s"
	spacesURL           = "/api/spaces"

	testDate = "2026-09-01"

	nineAM = 9 * 3600
	sixPM  = 18 * 3600
)

type BookingSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *BookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.T(), s.Config.JWT)
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func createReservation(roomID uuid.UUID, start, end string, partySize int) request.CreateReservationRequest {
	return request.CreateReservationRequest{
		RoomID:    roomID,
		Date:      testDate,
		StartTime: start,
		EndTime:   end,
		PartySize: partySize,
	}
}

// =============================================================================
// TestReservationLifecycle
// =============================================================================

func (s *BookingSuite) TestReservationLifecycle() {
	s.Run("Normal case: member books, reads, updates, and cancels a slot", func() {
		t := s.T()

		spaceID := dbtest.CreateTestSpace(t, s.DB, "Shibuya Hub", nineAM, sixPM)
		roomID := dbtest.CreateTestRoom(t, s.DB, spaceID, "Focus Room", 6)
		_, token := s.jwt.MemberToken(t)

		// Create
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			createReservation(roomID, "10:00", "12:00", 2), token)
		require.Equal(t, http.StatusCreated, w.Code, "booking should succeed: %s", w.Body.String())

		var created response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.NotEqual(t, uuid.Nil, created.ID)

		expected := &response.ReservationResponse{
			RoomID:    roomID,
			RoomName:  "Focus Room",
			SpaceID:   spaceID,
			SpaceName: "Shibuya Hub",
			Date:      testDate,
			StartTime: "10:00",
			EndTime:   "12:00",
			PartySize: 2,
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.ReservationResponse{}, "ID", "UserID", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, &created, opts...); diff != "" {
			t.Errorf("reservation response mismatch (-want +got):\n%s", diff)
		}

		// Read back
		detailURL := reservationsURL + "/" + created.ID.String()
		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, detailURL, nil, token)
		require.Equal(t, http.StatusOK, dw.Code)

		// Update: shift one hour later
		uw := httptest.PerformRequest(t, s.Router, http.MethodPatch, detailURL,
			map[string]any{"start_time": "11:00", "end_time": "13:00"}, token)
		require.Equal(t, http.StatusOK, uw.Code, "shifting own slot should succeed: %s", uw.Body.String())

		var updated response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, uw.Body, &updated))
		require.Equal(t, "11:00", updated.StartTime)
		require.Equal(t, "13:00", updated.EndTime)

		// Cancel
		cw := httptest.PerformRequest(t, s.Router, http.MethodDelete, detailURL, nil, token)
		require.Equal(t, http.StatusNoContent, cw.Code)

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, detailURL, nil, token)
		require.Equal(t, http.StatusNotFound, gw.Code)
	})

	s.Run("Error case: unauthenticated requests are rejected", func() {
		t := s.T()

		spaceID := dbtest.CreateTestSpace(t, s.DB, "Shibuya Hub", nineAM, sixPM)
		roomID := dbtest.CreateTestRoom(t, s.DB, spaceID, "Focus Room", 6)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			createReservation(roomID, "10:00", "12:00", 2), "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Error case: member cannot touch another member's reservation", func() {
		t := s.T()

		spaceID := dbtest.CreateTestSpace(t, s.DB, "Shibuya Hub", nineAM, sixPM)
		roomID := dbtest.CreateTestRoom(t, s.DB, spaceID, "Focus Room", 6)
		_, aliceToken := s.jwt.MemberToken(t)
		_, bobToken := s.jwt.MemberToken(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			createReservation(roomID, "10:00", "12:00", 2), aliceToken)
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		detailURL := reservationsURL + "/" + created.ID.String()

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, detailURL, nil, bobToken)
		require.Equal(t, http.StatusForbidden, gw.Code)

		dw := httptest.PerformRequest(t, s.Router, http.MethodDelete, detailURL, nil, bobToken)
		require.Equal(t, http.StatusForbidden, dw.Code)

		// Admin may cancel on the member's behalf
		_, adminToken := s.jwt.AdminToken(t)
		aw := httptest.PerformRequest(t, s.Router, http.MethodDelete, detailURL, nil, adminToken)
		require.Equal(t, http.StatusNoContent, aw.Code)
	})
}

// =============================================================================
// TestBookingDay - a full day at one room
// =============================================================================

func (s *BookingSuite) TestBookingDay() {
	s.Run("Normal case: the day's bookings play out against one room", func() {
		t := s.T()

		spaceID := dbtest.CreateTestSpace(t, s.DB, "Shibuya Hub", nineAM, sixPM)
		roomID := dbtest.CreateTestRoom(t, s.DB, spaceID, "Focus Room", 6)
		_, aliceToken := s.jwt.MemberToken(t)
		_, bobToken := s.jwt.MemberToken(t)

		// Before opening hours
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			createReservation(roomID, "08:00", "10:00", 2), aliceToken)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, "slot before opening must be rejected")

		// Alice books 10:00-12:00
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			createReservation(roomID, "10:00", "12:00", 2), aliceToken)
		require.Equal(t, http.StatusCreated, w.Code)

		// Bob overlaps
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			createReservation(roomID, "11:00", "13:00", 3), bobToken)
		require.Equal(t, http.StatusConflict, w.Code, "overlapping slot must conflict")

		// Capacity is checked before the overlap
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			createReservation(roomID, "11:00", "13:00", 10), bobToken)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, "oversized party fails on capacity, not conflict")

		// Back-to-back is fine
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			createReservation(roomID, "12:00", "14:00", 3), bobToken)
		require.Equal(t, http.StatusCreated, w.Code, "back-to-back slot should succeed: %s", w.Body.String())

		// The room's schedule shows both bookings in start order
		listURL := fmt.Sprintf(roomReservationsURL, roomID, testDate)
		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, listURL, nil, aliceToken)
		require.Equal(t, http.StatusOK, lw.Code)

		var items []response.ReservationListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &items))
		require.Len(t, items, 2)
		require.Equal(t, "10:00", items[0].StartTime)
		require.Equal(t, "12:00", items[1].StartTime)
	})

	s.Run("Error case: member reservation quota is enforced", func() {
		t := s.T()

		spaceID := dbtest.CreateTestSpace(t, s.DB, "Shibuya Hub", nineAM, sixPM)
		roomID := dbtest.CreateTestRoom(t, s.DB, spaceID, "Focus Room", 6)
		_, token := s.jwt.MemberToken(t)

		slots := [][2]string{{"09:00", "10:00"}, {"10:00", "11:00"}, {"11:00", "12:00"}}
		for _, slot := range slots {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
				createReservation(roomID, slot[0], slot[1], 1), token)
			require.Equal(t, http.StatusCreated, w.Code)
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			createReservation(roomID, "13:00", "14:00", 1), token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, "fourth active booking must hit the quota")
	})
}

// =============================================================================
// TestSpaceAdministration
// =============================================================================

func (s *BookingSuite) TestSpaceAdministration() {
	s.Run("Normal case: admin registers a space and deleting it cascades", func() {
		t := s.T()

		_, adminToken := s.jwt.AdminToken(t)
		_, memberToken := s.jwt.MemberToken(t)

		// Register a space
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, spacesURL, request.CreateSpaceRequest{
			Name:      "Kanda Base",
			Address:   "2-4-6 Kanda, Chiyoda, Tokyo",
			Tel:       "03-9876-5432",
			OpenTime:  "08:00",
			CloseTime: "20:00",
		}, adminToken)
		require.Equal(t, http.StatusCreated, w.Code, "space registration should succeed: %s", w.Body.String())

		var space response.SpaceResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &space))

		// Add a room
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/rooms", request.CreateRoomRequest{
			Name:     "Workshop Room",
			SpaceID:  space.ID,
			Capacity: 12,
		}, adminToken)
		require.Equal(t, http.StatusCreated, w.Code)

		var room response.RoomResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &room))

		// A member books it
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			createReservation(room.ID, "10:00", "12:00", 8), memberToken)
		require.Equal(t, http.StatusCreated, w.Code)

		// Member cannot delete the space
		spaceURL := spacesURL + "/" + space.ID.String()
		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, spaceURL, nil, memberToken)
		require.Equal(t, http.StatusForbidden, w.Code)

		// Admin deletes it; rooms and reservations go with it
		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, spaceURL, nil, adminToken)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, spaceURL, nil, "")
		require.Equal(t, http.StatusNotFound, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/rooms/"+room.ID.String(), nil, "")
		require.Equal(t, http.StatusNotFound, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil, memberToken)
		require.Equal(t, http.StatusOK, w.Code)
		var remaining []response.ReservationListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &remaining))
		require.Empty(t, remaining, "reservations must not survive their space")
	})

	s.Run("Error case: duplicate space name is rejected", func() {
		t := s.T()

		_, adminToken := s.jwt.AdminToken(t)
		dbtest.CreateTestSpace(t, s.DB, "Kanda Base", nineAM, sixPM)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, spacesURL, request.CreateSpaceRequest{
			Name:      "Kanda Base",
			Address:   "Somewhere else",
			Tel:       "03-1111-2222",
			OpenTime:  "09:00",
			CloseTime: "18:00",
		}, adminToken)
		require.Equal(t, http.StatusConflict, w.Code)
	})
}
