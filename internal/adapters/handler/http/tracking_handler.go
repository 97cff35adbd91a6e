package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Stepka365/gym-tracker/internal/core/domain"
	"github.com/Stepka365/gym-tracker/internal/core/services"
	"github.com/Stepka365/gym-tracker/internal/metrics"
)

type TrackingHandler struct {
	svc *services.TrackingService
}

func NewTrackingHandler(svc *services.TrackingService) *TrackingHandler {
	return &TrackingHandler{svc: svc}
}

type createTrackingRequest struct {
	Date string `form:"date" binding:"required"`
}

func (h *TrackingHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/create_tracking", h.Create)
}

// Create godoc
// @Summary  Simulate and persist one day of check-in/check-out events
// @Tags     tracking
// @Produce  json
// @Param    date query string true "Day to simulate (YYYY-MM-DD)"
// @Success  200 {array} domain.Event
// @Failure  400 {object} map[string]string
// @Router   /create_tracking [get]
func (h *TrackingHandler) Create(c *gin.Context) {
	var req createTrackingRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	events, err := h.svc.Generate(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, domain.ErrScheduleNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	metrics.RecordTrackingDay()
	c.JSON(http.StatusOK, events)
}
