package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "resort-booking/internal/handler/dto/request"
	resdto "resort-booking/internal/handler/dto/response"
	"resort-booking/internal/usecase/commands"
	"resort-booking/internal/usecase/queries"
)

type RateHandler struct {
	rateCommands commands.RateCommands
	rateQueries  queries.RateQueries
}

func NewRateHandler(cmds commands.RateCommands, q queries.RateQueries) *RateHandler {
	return &RateHandler{
		rateCommands: cmds,
		rateQueries:  q,
	}
}

// @Summary Get current entrance rates
// @Tags rates
// @Produce json
// @Success 200 {object} resdto.RateTableResponse
// @Failure 404 {object} map[string]string
// @Router /rates [get]
func (h *RateHandler) Current(c *gin.Context) {
	view, err := h.rateQueries.Current(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrRateTableMissing):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No rate table is configured",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRateTableView(view))
}

// @Summary Update entrance rates
// @Description Publish a new fee revision (manager or admin)
// @Tags rates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateRatesRequest true "Rates request"
// @Success 200 {object} resdto.RateTableResponse
// @Failure 400 {object} map[string]string
// @Router /rates [put]
func (h *RateHandler) Update(c *gin.Context) {
	var req reqdto.UpdateRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.rateCommands.Update(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidRates):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Rates cannot be negative",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRateTableView(view))
}
