package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Stepka365/gym-tracker/internal/core/domain"
	"github.com/Stepka365/gym-tracker/internal/core/services"
	"github.com/Stepka365/gym-tracker/internal/metrics"
)

type LoadHandler struct {
	svc *services.LoadService
}

func NewLoadHandler(svc *services.LoadService) *LoadHandler {
	return &LoadHandler{svc: svc}
}

type processVisitorsRequest struct {
	Date string `form:"date" binding:"required"`
	Time string `form:"time" binding:"required,timeslot"`
	Gym  string `form:"gym" binding:"required"`
}

func (h *LoadHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/process_visitors", h.ProcessVisitors)
}

// ProcessVisitors godoc
// @Summary  Aggregate a day's load at one time slot and persist it
// @Tags     load
// @Produce  json
// @Param    date query string true "Day to aggregate (YYYY-MM-DD)"
// @Param    time query string true "Time slot (HH:MM or HH:MM:SS)"
// @Param    gym  query string true "Gym name"
// @Success  200 {object} domain.ProcessedData "null when the time falls outside operating hours"
// @Failure  400 {object} map[string]string
// @Failure  404 {object} map[string]string
// @Router   /process_visitors [get]
func (h *LoadHandler) ProcessVisitors(c *gin.Context) {
	var req processVisitorsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	at, err := domain.ParseClock(req.Time)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, err := h.svc.Aggregate(c.Request.Context(), req.Gym, date, at)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnsupportedGym):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrDayNotTracked):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}
	if data == nil {
		// Outside [opening, closing): nothing aggregated, nothing stored.
		c.JSON(http.StatusOK, nil)
		return
	}

	metrics.RecordAggregation(req.Gym)
	c.JSON(http.StatusOK, data)
}
