package api

import (
	"errors"
	"net/http"

	"havenstay/internal/domain/booking"
	"havenstay/internal/domain/user"
	reqdto "havenstay/internal/handler/dto/request"
	resdto "havenstay/internal/handler/dto/response"
	"havenstay/internal/handler/middleware"
	"havenstay/internal/pkg/errs"
	"havenstay/internal/usecase/commands"
	"havenstay/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Book a stay at a property for the authenticated guest
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params := commands.CreateBookingParams{
		PropertyID: req.PropertyID,
		GuestID:    userID,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Guests:     req.Guests,
		Note:       req.GetNote(),
	}

	view, err := h.bookingCommands.CreateBooking(c.Request.Context(), params)
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
		case errors.Is(err, commands.ErrCapacityExceeded):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Guest count exceeds property capacity",
			})
		case errors.Is(err, booking.ErrMinimumStayNotMet):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Stay is shorter than the property minimum",
			})
		case errors.Is(err, errs.ErrDateRangeConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Requested dates are no longer available",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Description Get a booking by ID or by its HAV reference
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID or reference (HAV-YYYYMMDD-NNNN)"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.lookupBooking(c)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidReference):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid booking ID format",
			})
		case errors.Is(err, errs.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	// Guests only see their own bookings. 404 rather than 403 so the
	// endpoint does not confirm that a foreign booking exists.
	if view.GuestID != userID && !h.isPrivileged(c) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description List all bookings of the authenticated guest
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.bookingQueries.ListByGuest(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.BookingListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromBookingListItem(item)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Cancel booking
// @Description Cancel an active booking owned by the authenticated guest
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/cancel [patch]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	if err := h.bookingCommands.CancelBooking(c.Request.Context(), bookingID, userID); err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, booking.ErrBookingCanceled):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking is already canceled",
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

// lookupBooking resolves the path parameter as a UUID first, then as a
// booking reference.
func (h *BookingHandler) lookupBooking(c *gin.Context) (*queries.BookingView, error) {
	idStr := c.Param("id")

	if id, err := uuid.Parse(idStr); err == nil {
		return h.bookingQueries.GetByID(c.Request.Context(), id)
	}

	ref, err := booking.ParseReference(idStr)
	if err != nil {
		return nil, err
	}
	return h.bookingQueries.GetByReference(c.Request.Context(), ref)
}

func (h *BookingHandler) isPrivileged(c *gin.Context) bool {
	role, ok := middleware.GetUserRole(c)
	return ok && (role == user.RoleAdmin || role == user.RoleHost)
}
