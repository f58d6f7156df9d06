package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"hotel-booking-api/internal/domain/booking"
	reqdto "hotel-booking-api/internal/handler/dto/request"
	resdto "hotel-booking-api/internal/handler/dto/response"
	"hotel-booking-api/internal/usecase/commands"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminBookingHandler is the staff back-office surface. Routes behind
// it require authentication; creation goes through the same command as
// the public endpoint so staff bookings obey identical admission rules.
type AdminBookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewAdminBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *AdminBookingHandler {
	return &AdminBookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary List bookings
// @Description Search bookings with filters
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Booking status"
// @Param guest_name query string false "Guest name (partial match)"
// @Param guest_email query string false "Guest email"
// @Param room_number query string false "Room number"
// @Param check_in_from query string false "Check-in from (YYYY-MM-DD)"
// @Param check_in_to query string false "Check-in to (YYYY-MM-DD)"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/bookings [get]
func (h *AdminBookingHandler) ListBookings(c *gin.Context) {
	filters, err := parseSearchFilters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	views, err := h.bookingQueries.Search(c.Request.Context(), filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to search bookings",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Get booking (staff)
// @Description Get any booking by ID
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/bookings/{id} [get]
func (h *AdminBookingHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Update booking status
// @Description Move a booking through its lifecycle
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "Status update"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/bookings/{id}/status [patch]
func (h *AdminBookingHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	var req reqdto.UpdateBookingStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err = h.bookingCommands.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		var transitionErr *booking.TransitionError
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, booking.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid booking status",
			})
		case errors.As(err, &transitionErr):
			c.JSON(http.StatusConflict, gin.H{
				"error": transitionErr.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to update booking status",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": req.Status,
	})
}

func parseSearchFilters(c *gin.Context) (queries.BookingSearchFilters, error) {
	filters := queries.BookingSearchFilters{
		Status:     c.Query("status"),
		GuestName:  c.Query("guest_name"),
		GuestEmail: c.Query("guest_email"),
		RoomNumber: c.Query("room_number"),
	}

	if raw := c.Query("check_in_from"); raw != "" {
		t, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return filters, errors.New("invalid check_in_from date, expected YYYY-MM-DD")
		}
		filters.CheckInFrom = &t
	}
	if raw := c.Query("check_in_to"); raw != "" {
		t, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return filters, errors.New("invalid check_in_to date, expected YYYY-MM-DD")
		}
		filters.CheckInTo = &t
	}
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return filters, errors.New("invalid limit value")
		}
		filters.Limit = n
	}
	if raw := c.Query("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return filters, errors.New("invalid offset value")
		}
		filters.Offset = n
	}

	return filters, nil
}
