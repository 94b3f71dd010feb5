package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "coworking-booking/internal/handler/dto/request"
	resdto "coworking-booking/internal/handler/dto/response"
	"coworking-booking/internal/handler/httperr"
	"coworking-booking/internal/handler/middleware"
	"coworking-booking/internal/usecase/commands"
	"coworking-booking/internal/usecase/queries"
	"coworking-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	commands commands.ReservationCommands
	queries  queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, qs queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary Create reservation
// @Description Book a room slot for the authenticated user
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Body
// @Failure 401 {object} httperr.Body
// @Failure 404 {object} httperr.Body
// @Failure 409 {object} httperr.Body
// @Failure 422 {object} httperr.Body
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		httperr.Abort(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, http.StatusBadRequest, nil, "Invalid request format")
		return
	}

	view, err := h.commands.Create(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		respondReservationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary Get reservation
// @Description Get reservation by ID (owner or admin)
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Body
// @Failure 401 {object} httperr.Body
// @Failure 403 {object} httperr.Body
// @Failure 404 {object} httperr.Body
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		httperr.Abort(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Abort(c, http.StatusBadRequest, nil, "Invalid reservation ID format")
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrReservationNotFound):
			httperr.Abort(c, http.StatusNotFound, err, "Reservation not found")
		case errors.Is(err, queries.ErrUnauthorized):
			httperr.Abort(c, http.StatusForbidden, err, "Not allowed to view this reservation")
		default:
			httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List own reservations
// @Description List all reservations of the authenticated user
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationListResponse
// @Failure 401 {object} httperr.Body
// @Router /reservations [get]
func (h *ReservationHandler) GetUserReservations(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		httperr.Abort(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	items, err := h.queries.ListByUser(c.Request.Context(), actor.ID)
	if err != nil {
		httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	response := make([]*resdto.ReservationListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromReservationListItem(item)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Update reservation
// @Description Change a reservation; omitted fields keep their stored values
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateReservationRequest true "Fields to change"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Body
// @Failure 401 {object} httperr.Body
// @Failure 403 {object} httperr.Body
// @Failure 404 {object} httperr.Body
// @Failure 409 {object} httperr.Body
// @Failure 422 {object} httperr.Body
// @Router /reservations/{id} [patch]
func (h *ReservationHandler) UpdateReservation(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		httperr.Abort(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Abort(c, http.StatusBadRequest, nil, "Invalid reservation ID format")
		return
	}

	var req reqdto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, http.StatusBadRequest, nil, "Invalid request format")
		return
	}

	view, err := h.commands.Update(c.Request.Context(), actor, id, req.ToInput())
	if err != nil {
		respondReservationError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Delete reservation
// @Description Cancel a reservation (owner or admin)
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204
// @Failure 400 {object} httperr.Body
// @Failure 401 {object} httperr.Body
// @Failure 403 {object} httperr.Body
// @Failure 404 {object} httperr.Body
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) DeleteReservation(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		httperr.Abort(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Abort(c, http.StatusBadRequest, nil, "Invalid reservation ID format")
		return
	}

	if err := h.commands.Delete(c.Request.Context(), actor, id); err != nil {
		respondReservationError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// respondReservationError maps every rejection kind of the booking pipeline
// to its own status code so clients can tell them apart.
func respondReservationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrInvalidTimeFormat):
		httperr.Abort(c, http.StatusBadRequest, err, "Times must be in HH:mm format")
	case errors.Is(err, commands.ErrInvalidTimeRange):
		httperr.Abort(c, http.StatusBadRequest, err, "Start time must be before end time")
	case errors.Is(err, commands.ErrInvalidDate):
		httperr.Abort(c, http.StatusBadRequest, err, "Date must be in YYYY-MM-DD format")
	case errors.Is(err, commands.ErrUnauthorized):
		httperr.Abort(c, http.StatusForbidden, err, "Not allowed to modify this reservation")
	case errors.Is(err, commands.ErrRoomNotFound):
		httperr.Abort(c, http.StatusNotFound, err, "Room not found")
	case errors.Is(err, commands.ErrSpaceNotFound):
		httperr.Abort(c, http.StatusNotFound, err, "Space not found")
	case errors.Is(err, commands.ErrReservationNotFound):
		httperr.Abort(c, http.StatusNotFound, err, "Reservation not found")
	case errors.Is(err, commands.ErrSlotConflict):
		httperr.Abort(c, http.StatusConflict, err, "Room is already booked for this slot")
	case errors.Is(err, commands.ErrCapacityExceeded):
		httperr.Abort(c, http.StatusUnprocessableEntity, err, "Party size exceeds room capacity")
	case errors.Is(err, commands.ErrOutsideOperatingHours):
		httperr.Abort(c, http.StatusUnprocessableEntity, err, "Slot is outside the space's operating hours")
	case errors.Is(err, commands.ErrQuotaExceeded):
		httperr.Abort(c, http.StatusUnprocessableEntity, err, "Reservation limit reached")
	default:
		httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
	}
}

func currentActor(c *gin.Context) (shared.Actor, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return shared.Actor{}, false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		return shared.Actor{}, false
	}
	return shared.Actor{ID: userID, Role: role}, true
}

func parseDateParam(c *gin.Context, key string) (time.Time, bool) {
	raw := c.Query(key)
	if raw == "" {
		return time.Time{}, false
	}
	d, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
