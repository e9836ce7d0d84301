package handler

import (
	"travelmate/internal/service"
	"travelmate/pkg/jwt"
	"travelmate/pkg/response"

	"github.com/gin-gonic/gin"
)

// MiscHandler serves the small cross-cutting endpoints: badge counts and
// destination weather.
type MiscHandler struct {
	notifications *service.NotificationService
	weather       *service.WeatherService
}

func NewMiscHandler(notifications *service.NotificationService, weather *service.WeatherService) *MiscHandler {
	return &MiscHandler{notifications: notifications, weather: weather}
}

// NotificationCounts returns the caller's pending badges.
func (h *MiscHandler) NotificationCounts(c *gin.Context) {
	counts, err := h.notifications.Counts(jwt.CurrentUserID(c))
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Success(c, counts)
}

// Weather geocodes ?city= and returns its current conditions.
func (h *MiscHandler) Weather(c *gin.Context) {
	lookup, err := h.weather.Lookup(c.Request.Context(), c.Query("city"))
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Success(c, lookup)
}
