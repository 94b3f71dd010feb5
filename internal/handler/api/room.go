package api

import (
	"errors"
	"net/http"

	reqdto "coworking-booking/internal/handler/dto/request"
	resdto "coworking-booking/internal/handler/dto/response"
	"coworking-booking/internal/handler/httperr"
	"coworking-booking/internal/usecase/commands"
	"coworking-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	commands     commands.RoomCommands
	queries      queries.RoomQueries
	reservations queries.ReservationQueries
}

func NewRoomHandler(cmds commands.RoomCommands, qs queries.RoomQueries, rqs queries.ReservationQueries) *RoomHandler {
	return &RoomHandler{
		commands:     cmds,
		queries:      qs,
		reservations: rqs,
	}
}

// @Summary List rooms in a space
// @Tags rooms
// @Produce json
// @Param id path string true "Space ID"
// @Success 200 {array} resdto.RoomResponse
// @Failure 400 {object} httperr.Body
// @Router /spaces/{id}/rooms [get]
func (h *RoomHandler) ListRoomsBySpace(c *gin.Context) {
	spaceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Abort(c, http.StatusBadRequest, nil, "Invalid space ID format")
		return
	}

	views, err := h.queries.ListBySpace(c.Request.Context(), spaceID)
	if err != nil {
		httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	response := make([]*resdto.RoomResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromRoomView(v)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Body
// @Failure 404 {object} httperr.Body
// @Router /rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Abort(c, http.StatusBadRequest, nil, "Invalid room ID format")
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrRoomNotFound):
			httperr.Abort(c, http.StatusNotFound, err, "Room not found")
		default:
			httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary List room reservations for a date
// @Description Committed bookings for the room on the given date, ordered by start time
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} resdto.ReservationListResponse
// @Failure 400 {object} httperr.Body
// @Failure 401 {object} httperr.Body
// @Router /rooms/{id}/reservations [get]
func (h *RoomHandler) ListRoomReservations(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Abort(c, http.StatusBadRequest, nil, "Invalid room ID format")
		return
	}

	date, ok := parseDateParam(c, "date")
	if !ok {
		httperr.Abort(c, http.StatusBadRequest, nil, "Query parameter date must be YYYY-MM-DD")
		return
	}

	items, err := h.reservations.ListForRoomOnDate(c.Request.Context(), roomID, date)
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

// @Summary Create room
// @Description Add a room to a space (admin only)
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomRequest true "Room request"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Body
// @Failure 401 {object} httperr.Body
// @Failure 403 {object} httperr.Body
// @Failure 404 {object} httperr.Body
// @Failure 409 {object} httperr.Body
// @Router /rooms [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req reqdto.CreateRoomRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.Abort(c, http.StatusBadRequest, nil, "Invalid request format")
		return
	}

	view, err := h.commands.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		respondRoomError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRoomView(view))
}

// @Summary Update room
// @Description Change a room; omitted fields keep their stored values (admin only)
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.UpdateRoomRequest true "Fields to change"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Body
// @Failure 401 {object} httperr.Body
// @Failure 403 {object} httperr.Body
// @Failure 404 {object} httperr.Body
// @Failure 409 {object} httperr.Body
// @Router /rooms/{id} [patch]
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Abort(c, http.StatusBadRequest, nil, "Invalid room ID format")
		return
	}

	var req reqdto.UpdateRoomRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.Abort(c, http.StatusBadRequest, nil, "Invalid request format")
		return
	}

	view, err := h.commands.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		respondRoomError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary Delete room
// @Description Remove a room and its reservations (admin only)
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 204
// @Failure 400 {object} httperr.Body
// @Failure 401 {object} httperr.Body
// @Failure 403 {object} httperr.Body
// @Failure 404 {object} httperr.Body
// @Router /rooms/{id} [delete]
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Abort(c, http.StatusBadRequest, nil, "Invalid room ID format")
		return
	}

	if err := h.commands.Delete(c.Request.Context(), id); err != nil {
		respondRoomError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondRoomError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.Abort(c, http.StatusBadRequest, err, "Invalid room attributes")
	case errors.Is(err, commands.ErrSpaceNotFound):
		httperr.Abort(c, http.StatusNotFound, err, "Space not found")
	case errors.Is(err, commands.ErrRoomNotFound):
		httperr.Abort(c, http.StatusNotFound, err, "Room not found")
	case errors.Is(err, commands.ErrRoomNameTaken):
		httperr.Abort(c, http.StatusConflict, err, "A room with this name already exists")
	default:
		httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
	}
}
