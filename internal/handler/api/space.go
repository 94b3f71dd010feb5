package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "coworking-booking/internal/handler/dto/request"
	resdto "coworking-booking/internal/handler/dto/response"
	"coworking-booking/internal/handler/httperr"
	"coworking-booking/internal/usecase/commands"
	"coworking-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SpaceHandler struct {
	commands commands.SpaceCommands
	queries  queries.SpaceQueries
}

func NewSpaceHandler(cmds commands.SpaceCommands, qs queries.SpaceQueries) *SpaceHandler {
	return &SpaceHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary List spaces
// @Description List coworking spaces with pagination
// @Tags spaces
// @Produce json
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Offset"
// @Success 200 {array} resdto.SpaceResponse
// @Router /spaces [get]
func (h *SpaceHandler) ListSpaces(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	views, err := h.queries.List(c.Request.Context(), limit, offset)
	if err != nil {
		httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	response := make([]*resdto.SpaceResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromSpaceView(v)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get space
// @Description Get a space with its room count
// @Tags spaces
// @Produce json
// @Param id path string true "Space ID"
// @Success 200 {object} resdto.SpaceResponse
// @Failure 400 {object} httperr.Body
// @Failure 404 {object} httperr.Body
// @Router /spaces/{id} [get]
func (h *SpaceHandler) GetSpace(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Abort(c, http.StatusBadRequest, nil, "Invalid space ID format")
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrSpaceNotFound):
			httperr.Abort(c, http.StatusNotFound, err, "Space not found")
		default:
			httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSpaceView(view))
}

// @Summary Create space
// @Description Register a coworking space (admin only)
// @Tags spaces
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSpaceRequest true "Space request"
// @Success 201 {object} resdto.SpaceResponse
// @Failure 400 {object} httperr.Body
// @Failure 401 {object} httperr.Body
// @Failure 403 {object} httperr.Body
// @Failure 409 {object} httperr.Body
// @Router /spaces [post]
func (h *SpaceHandler) CreateSpace(c *gin.Context) {
	var req reqdto.CreateSpaceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.Abort(c, http.StatusBadRequest, nil, "Invalid request format")
		return
	}

	view, err := h.commands.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		respondSpaceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSpaceView(view))
}

// @Summary Update space
// @Description Change a space; omitted fields keep their stored values (admin only)
// @Tags spaces
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Space ID"
// @Param request body reqdto.UpdateSpaceRequest true "Fields to change"
// @Success 200 {object} resdto.SpaceResponse
// @Failure 400 {object} httperr.Body
// @Failure 401 {object} httperr.Body
// @Failure 403 {object} httperr.Body
// @Failure 404 {object} httperr.Body
// @Failure 409 {object} httperr.Body
// @Router /spaces/{id} [patch]
func (h *SpaceHandler) UpdateSpace(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Abort(c, http.StatusBadRequest, nil, "Invalid space ID format")
		return
	}

	var req reqdto.UpdateSpaceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.Abort(c, http.StatusBadRequest, nil, "Invalid request format")
		return
	}

	view, err := h.commands.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		respondSpaceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSpaceView(view))
}

// @Summary Delete space
// @Description Remove a space and everything under it: reservations, then rooms, then the space (admin only)
// @Tags spaces
// @Produce json
// @Security BearerAuth
// @Param id path string true "Space ID"
// @Success 204
// @Failure 400 {object} httperr.Body
// @Failure 401 {object} httperr.Body
// @Failure 403 {object} httperr.Body
// @Failure 404 {object} httperr.Body
// @Router /spaces/{id} [delete]
func (h *SpaceHandler) DeleteSpace(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Abort(c, http.StatusBadRequest, nil, "Invalid space ID format")
		return
	}

	if err := h.commands.Delete(c.Request.Context(), id); err != nil {
		respondSpaceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondSpaceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrInvalidTimeFormat):
		httperr.Abort(c, http.StatusBadRequest, err, "Operating hours must be in HH:mm format")
	case errors.Is(err, commands.ErrInvalidTimeRange):
		httperr.Abort(c, http.StatusBadRequest, err, "Opening time must be before closing time")
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.Abort(c, http.StatusBadRequest, err, "Invalid space attributes")
	case errors.Is(err, commands.ErrSpaceNotFound):
		httperr.Abort(c, http.StatusNotFound, err, "Space not found")
	case errors.Is(err, commands.ErrSpaceNameTaken):
		httperr.Abort(c, http.StatusConflict, err, "A space with this name already exists")
	default:
		httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
	}
}
