package api

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"hotel-booking-api/internal/pkg/config"
	"hotel-booking-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// CronHandler exposes scheduled jobs to an external scheduler. Callers
// authenticate with the shared cron secret, not a staff token.
type CronHandler struct {
	reminderCommands commands.ReminderCommands
	secret           string
}

func NewCronHandler(reminderCommands commands.ReminderCommands, cfg config.CronConfig) *CronHandler {
	return &CronHandler{
		reminderCommands: reminderCommands,
		secret:           cfg.Secret,
	}
}

// @Summary Send check-in reminders
// @Description Notify guests whose stay starts tomorrow
// @Tags cron
// @Produce json
// @Param Authorization header string true "Bearer cron secret"
// @Success 200 {object} map[string]int
// @Failure 401 {object} map[string]string
// @Router /cron/reminders [post]
func (h *CronHandler) SendReminders(c *gin.Context) {
	if !h.authorized(c) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid cron secret",
		})
		return
	}

	result, err := h.reminderCommands.SendCheckInReminders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to run reminder sweep",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bookings_found": result.BookingsFound,
		"emails_sent":    result.EmailsSent,
		"messages_sent":  result.MessagesSent,
	})
}

func (h *CronHandler) authorized(c *gin.Context) bool {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return false
	}
	token := strings.TrimSpace(authHeader[len("Bearer "):])
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.secret)) == 1
}
