package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "resort-booking/internal/handler/dto/request"
	resdto "resort-booking/internal/handler/dto/response"
	"resort-booking/internal/usecase/commands"
	"resort-booking/internal/usecase/queries"
)

type BlockedRangeHandler struct {
	blockedCommands commands.BlockedRangeCommands
	blockedQueries  queries.BlockedRangeQueries
}

func NewBlockedRangeHandler(cmds commands.BlockedRangeCommands, q queries.BlockedRangeQueries) *BlockedRangeHandler {
	return &BlockedRangeHandler{
		blockedCommands: cmds,
		blockedQueries:  q,
	}
}

// @Summary List blocked ranges
// @Description List blocked ranges overlapping a period; the calendar asks one month at a time
// @Tags blocked-ranges
// @Produce json
// @Param from query string true "Period start (RFC 3339)"
// @Param to query string true "Period end (RFC 3339)"
// @Param accommodation_id query string false "Filter to one accommodation plus resort-wide blocks"
// @Success 200 {array} resdto.BlockedRangeResponse
// @Failure 400 {object} map[string]string
// @Router /blocked-ranges [get]
func (h *BlockedRangeHandler) List(c *gin.Context) {
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid or missing 'from' parameter",
		})
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid or missing 'to' parameter",
		})
		return
	}
	if !from.Before(to) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "'from' must be before 'to'",
		})
		return
	}

	var accommodationID *uuid.UUID
	if idStr := c.Query("accommodation_id"); idStr != "" {
		id, err := uuid.Parse(idStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid accommodation ID format",
			})
			return
		}
		accommodationID = &id
	}

	views, err := h.blockedQueries.ListWithin(c.Request.Context(), from, to, accommodationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBlockedRangeViews(views))
}

// @Summary Create blocked range
// @Description Manually block an accommodation or the whole resort for a period
// @Tags blocked-ranges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBlockedRangeRequest true "Block request"
// @Success 201 {object} resdto.BlockedRangeResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /blocked-ranges [post]
func (h *BlockedRangeHandler) Create(c *gin.Context) {
	var req reqdto.CreateBlockedRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.blockedCommands.Block(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrAccommodationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Accommodation not found",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Blocked range start must be before end",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBlockedRangeView(view))
}

// @Summary Delete blocked range
// @Description Remove a manual block; reservation-sourced blocks are released through the reservation lifecycle
// @Tags blocked-ranges
// @Security BearerAuth
// @Param id path string true "Blocked range ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /blocked-ranges/{id} [delete]
func (h *BlockedRangeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid blocked range ID format",
		})
		return
	}

	if err := h.blockedCommands.Unblock(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrBlockedRangeNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Blocked range not found",
			})
		case errors.Is(err, commands.ErrReservationManagedRange):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Blocked range is managed by its reservation",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
