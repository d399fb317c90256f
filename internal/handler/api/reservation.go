package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"resort-booking/internal/domain/reservation"
	"resort-booking/internal/domain/user"
	reqdto "resort-booking/internal/handler/dto/request"
	resdto "resort-booking/internal/handler/dto/response"
	"resort-booking/internal/handler/middleware"
	"resort-booking/internal/usecase/commands"
	"resort-booking/internal/usecase/queries"
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: cmds,
		reservationQueries:  q,
	}
}

// @Summary Create reservation
// @Description Book a stay for a walk-in or phone guest
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.reservationCommands.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	view, err := h.reservationQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List reservations
// @Description Page through reservations newest-first with a keyset cursor
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param after query string false "Cursor from the previous page"
// @Param limit query int false "Page size (default 20, max 200)"
// @Param status query string false "Filter by status"
// @Param accommodation_id query string false "Filter by accommodation"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 400 {object} map[string]string
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	filter, cursor, limit, ok := h.parseListParams(c)
	if !ok {
		return
	}

	items, next, err := h.reservationQueries.List(c.Request.Context(), filter, cursor, limit)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidCursor):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid pagination cursor",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationPage(items, next))
}

// @Summary Confirm reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations/{id}/confirm [post]
func (h *ReservationHandler) Confirm(c *gin.Context) {
	h.lifecycle(c, h.reservationCommands.Confirm)
}

// @Summary Check in reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations/{id}/check-in [post]
func (h *ReservationHandler) CheckIn(c *gin.Context) {
	h.lifecycle(c, h.reservationCommands.CheckIn)
}

// @Summary Cancel reservation
// @Description Cancel up to a day before the stay; managers and admins may override the cutoff
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	staffOverride := false
	if role, ok := middleware.GetUserRole(c); ok {
		staffOverride = role == user.RoleManager || role == user.RoleAdmin
	}

	view, err := h.reservationCommands.Cancel(c.Request.Context(), id, staffOverride)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Mark reservation as no-show
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations/{id}/no-show [post]
func (h *ReservationHandler) NoShow(c *gin.Context) {
	h.lifecycle(c, h.reservationCommands.MarkNoShow)
}

// @Summary Reschedule reservation
// @Description Move an active reservation to a new date or slot
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.RescheduleReservationRequest true "New stay selection"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations/{id}/reschedule [post]
func (h *ReservationHandler) Reschedule(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req reqdto.RescheduleReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.reservationCommands.Reschedule(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

func (h *ReservationHandler) lifecycle(c *gin.Context, op func(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error)) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	view, err := op(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

func (h *ReservationHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

func (h *ReservationHandler) parseListParams(c *gin.Context) (queries.ReservationFilter, *queries.Cursor, int, bool) {
	var filter queries.ReservationFilter

	if statusStr := c.Query("status"); statusStr != "" {
		if _, err := reservation.NewStatus(statusStr); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid status filter",
			})
			return filter, nil, 0, false
		}
		filter.Status = &statusStr
	}

	if idStr := c.Query("accommodation_id"); idStr != "" {
		id, err := uuid.Parse(idStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid accommodation ID format",
			})
			return filter, nil, 0, false
		}
		filter.AccommodationID = &id
	}

	if fromStr := c.Query("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid 'from' parameter",
			})
			return filter, nil, 0, false
		}
		filter.From = &from
	}
	if toStr := c.Query("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid 'to' parameter",
			})
			return filter, nil, 0, false
		}
		filter.To = &to
	}

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid limit parameter",
			})
			return filter, nil, 0, false
		}
		limit = parsed
	}

	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	return filter, cursor, limit, true
}

func (h *ReservationHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrReservationNotFound), errors.Is(err, queries.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Reservation not found",
		})
	case errors.Is(err, commands.ErrAccommodationNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Accommodation not found",
		})
	case errors.Is(err, commands.ErrRateTableMissing):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No rate table is configured",
		})
	case errors.Is(err, commands.ErrReservationConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": "The selected dates are unavailable",
		})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Domain validation failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
