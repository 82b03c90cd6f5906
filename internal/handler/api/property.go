package api

import (
	"errors"
	"net/http"
	"time"

	"havenstay/internal/domain/booking"
	reqdto "havenstay/internal/handler/dto/request"
	resdto "havenstay/internal/handler/dto/response"
	"havenstay/internal/pkg/errs"
	"havenstay/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PropertyHandler struct {
	propertyQueries queries.PropertyQueries
	stayQueries     queries.StayQueries
}

func NewPropertyHandler(propertyQueries queries.PropertyQueries, stayQueries queries.StayQueries) *PropertyHandler {
	return &PropertyHandler{
		propertyQueries: propertyQueries,
		stayQueries:     stayQueries,
	}
}

// @Summary Get property
// @Description Get a property with its rate configuration
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} resdto.PropertyResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /properties/{id} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid property ID format",
		})
		return
	}

	view, err := h.propertyQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPropertyNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Property not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPropertyView(view))
}

// @Summary Quote a stay
// @Description Price a stay for the given dates and guest count
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Param guests query int false "Guest count" default(1)
// @Success 200 {object} resdto.PriceBreakdownResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /properties/{id}/quote [get]
func (h *PropertyHandler) QuoteStay(c *gin.Context) {
	id, checkIn, checkOut, query, ok := h.bindStayQuery(c)
	if !ok {
		return
	}

	breakdown, err := h.stayQueries.Quote(c.Request.Context(), id, checkIn, checkOut, query.Guests)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPropertyNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Property not found",
			})
		case errors.Is(err, booking.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Check-out must be after check-in",
			})
		case errors.Is(err, booking.ErrInvalidGuestCount):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Guest count must be at least 1",
			})
		case errors.Is(err, booking.ErrUnsupportedCurrency):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Property is configured with an unsupported currency",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPriceBreakdown(breakdown))
}

// @Summary Check availability
// @Description Check whether a date range is free, listing any blocked dates
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /properties/{id}/availability [get]
func (h *PropertyHandler) CheckAvailability(c *gin.Context) {
	id, checkIn, checkOut, _, ok := h.bindStayQuery(c)
	if !ok {
		return
	}

	availability, err := h.stayQueries.Availability(c.Request.Context(), id, checkIn, checkOut)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPropertyNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Property not found",
			})
		case errors.Is(err, booking.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Check-out must be after check-in",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailability(availability))
}

// bindStayQuery parses the property ID and the shared stay query parameters,
// writing the error response itself on failure.
func (h *PropertyHandler) bindStayQuery(c *gin.Context) (uuid.UUID, time.Time, time.Time, reqdto.StayQuery, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid property ID format",
		})
		return uuid.Nil, time.Time{}, time.Time{}, reqdto.StayQuery{}, false
	}

	var query reqdto.StayQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "check_in and check_out query parameters are required",
		})
		return uuid.Nil, time.Time{}, time.Time{}, reqdto.StayQuery{}, false
	}

	checkIn, checkOut, err := query.ParseDates()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Dates must be in YYYY-MM-DD format",
		})
		return uuid.Nil, time.Time{}, time.Time{}, reqdto.StayQuery{}, false
	}

	return id, checkIn, checkOut, query, true
}
