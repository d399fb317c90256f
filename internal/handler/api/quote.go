package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "resort-booking/internal/handler/dto/request"
	resdto "resort-booking/internal/handler/dto/response"
	"resort-booking/internal/usecase/queries"
)

type QuoteHandler struct {
	quoteQueries queries.QuoteQueries
}

func NewQuoteHandler(q queries.QuoteQueries) *QuoteHandler {
	return &QuoteHandler{
		quoteQueries: q,
	}
}

// @Summary Resolve a booking quote
// @Description Price the current booking-form state; an unavailable date comes back as available=false, not an error
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /quotes [post]
func (h *QuoteHandler) Resolve(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.quoteQueries.Resolve(c.Request.Context(), queries.QuoteRequest{
		AccommodationID:      req.AccommodationID,
		Date:                 req.Date,
		TourMode:             req.TourMode,
		CheckIn:              req.CheckIn,
		GuestCount:           req.GuestCount,
		AdultCount:           req.AdultCount,
		ChildCount:           req.ChildCount,
		PwdSeniorCount:       req.PwdSeniorCount,
		ExcludeReservationID: req.ExcludeReservationID,
	})
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrAccommodationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Accommodation not found",
			})
		case errors.Is(err, queries.ErrRateTableMissing):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No rate table is configured",
			})
		case errors.Is(err, queries.ErrInvalidQuoteRequest):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid quote request",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}
