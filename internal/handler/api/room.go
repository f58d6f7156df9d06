package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"hotel-booking-api/internal/domain/booking"
	resdto "hotel-booking-api/internal/handler/dto/response"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomQueries queries.RoomQueries
}

func NewRoomHandler(roomQueries queries.RoomQueries) *RoomHandler {
	return &RoomHandler{roomQueries: roomQueries}
}

// @Summary Search available rooms
// @Description List bookable room instances for a stay
// @Tags rooms
// @Produce json
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Param guests query int false "Guest count" default(1)
// @Success 200 {array} resdto.AvailableRoomResponse
// @Failure 400 {object} map[string]string
// @Router /rooms/available [get]
func (h *RoomHandler) SearchAvailable(c *gin.Context) {
	checkIn, err := time.Parse(time.DateOnly, c.Query("check_in"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid check_in date, expected YYYY-MM-DD",
		})
		return
	}
	checkOut, err := time.Parse(time.DateOnly, c.Query("check_out"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid check_out date, expected YYYY-MM-DD",
		})
		return
	}

	guests := 1
	if raw := c.Query("guests"); raw != "" {
		guests, err = strconv.Atoi(raw)
		if err != nil || guests < 1 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid guests value",
			})
			return
		}
	}

	views, err := h.roomQueries.SearchAvailable(c.Request.Context(), checkIn, checkOut, guests)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Check-out date must be after check-in date",
			})
		case errors.Is(err, booking.ErrPastCheckIn):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Check-in date cannot be in the past",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to search available rooms",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailableRoomViews(views))
}
