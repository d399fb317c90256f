package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "resort-booking/internal/handler/dto/request"
	resdto "resort-booking/internal/handler/dto/response"
	"resort-booking/internal/usecase/commands"
	"resort-booking/internal/usecase/queries"
)

type AccommodationHandler struct {
	accommodationCommands commands.AccommodationCommands
	accommodationQueries  queries.AccommodationQueries
}

func NewAccommodationHandler(cmds commands.AccommodationCommands, q queries.AccommodationQueries) *AccommodationHandler {
	return &AccommodationHandler{
		accommodationCommands: cmds,
		accommodationQueries:  q,
	}
}

// @Summary List accommodation types
// @Tags accommodations
// @Produce json
// @Success 200 {array} resdto.AccommodationTypeResponse
// @Router /accommodation-types [get]
func (h *AccommodationHandler) ListTypes(c *gin.Context) {
	views, err := h.accommodationQueries.ListTypes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromAccommodationTypeViews(views))
}

// @Summary Create accommodation type
// @Tags accommodations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAccommodationTypeRequest true "Type request"
// @Success 201 {object} resdto.AccommodationTypeResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /accommodation-types [post]
func (h *AccommodationHandler) CreateType(c *gin.Context) {
	var req reqdto.CreateAccommodationTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.accommodationCommands.CreateType(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAccommodationTypeView(view))
}

// @Summary List accommodations
// @Tags accommodations
// @Produce json
// @Param include_archived query bool false "Include archived accommodations"
// @Param type_id query string false "Filter by accommodation type"
// @Success 200 {array} resdto.AccommodationResponse
// @Router /accommodations [get]
func (h *AccommodationHandler) List(c *gin.Context) {
	if typeIDStr := c.Query("type_id"); typeIDStr != "" {
		typeID, err := uuid.Parse(typeIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid type ID format",
			})
			return
		}
		views, err := h.accommodationQueries.ListByType(c.Request.Context(), typeID)
		if err != nil {
			h.writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, resdto.FromAccommodationViews(views))
		return
	}

	includeArchived := c.Query("include_archived") == "true"
	views, err := h.accommodationQueries.List(c.Request.Context(), includeArchived)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromAccommodationViews(views))
}

// @Summary Get accommodation
// @Tags accommodations
// @Produce json
// @Param id path string true "Accommodation ID"
// @Success 200 {object} resdto.AccommodationResponse
// @Failure 404 {object} map[string]string
// @Router /accommodations/{id} [get]
func (h *AccommodationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid accommodation ID format",
		})
		return
	}

	view, err := h.accommodationQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAccommodationView(view))
}

// @Summary Create accommodation
// @Tags accommodations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAccommodationRequest true "Accommodation request"
// @Success 201 {object} resdto.AccommodationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /accommodations [post]
func (h *AccommodationHandler) Create(c *gin.Context) {
	var req reqdto.CreateAccommodationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.accommodationCommands.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAccommodationView(view))
}

// @Summary Update accommodation
// @Tags accommodations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Accommodation ID"
// @Param request body reqdto.UpdateAccommodationRequest true "Fields to update"
// @Success 200 {object} resdto.AccommodationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /accommodations/{id} [patch]
func (h *AccommodationHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid accommodation ID format",
		})
		return
	}

	var req reqdto.UpdateAccommodationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.accommodationCommands.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAccommodationView(view))
}

// @Summary Archive accommodation
// @Tags accommodations
// @Security BearerAuth
// @Param id path string true "Accommodation ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /accommodations/{id} [delete]
func (h *AccommodationHandler) Archive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid accommodation ID format",
		})
		return
	}

	if err := h.accommodationCommands.Archive(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AccommodationHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrAccommodationNotFound), errors.Is(err, queries.ErrAccommodationNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Accommodation not found",
		})
	case errors.Is(err, commands.ErrAccommodationTypeNotFound), errors.Is(err, queries.ErrAccommodationTypeNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Accommodation type not found",
		})
	case errors.Is(err, commands.ErrSlugTaken):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Slug is already in use",
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
