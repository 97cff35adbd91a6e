package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Stepka365/gym-tracker/internal/core/domain"
	"github.com/Stepka365/gym-tracker/internal/core/services"
)

type ReportHandler struct {
	svc *services.ReportService
}

func NewReportHandler(svc *services.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

type dateRangeRequest struct {
	Date1 string `form:"date1" binding:"required"`
	Date2 string `form:"date2" binding:"required"`
	Gym   string `form:"gym" binding:"required"`
}

type dateTimeRequest struct {
	Date string `form:"date" binding:"required"`
	Time string `form:"time" binding:"required,timeslot"`
	Gym  string `form:"gym" binding:"required"`
}

func (h *ReportHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/get_processed_dates", h.Dates)
	r.GET("/get_processed_datetime", h.Point)
	r.GET("/get_daily_list", h.Series)
}

func (h *ReportHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidDateRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrGymNotProcessed),
		errors.Is(err, domain.ErrDateNotProcessed),
		errors.Is(err, domain.ErrSlotNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// Dates godoc
// @Summary  Per-day load documents over a date range
// @Description  Equal dates return that single day. Otherwise date2 is an
// @Description  exclusive upper bound and absent days are skipped.
// @Tags     reports
// @Produce  json
// @Param    date1 query string true "Range start (YYYY-MM-DD)"
// @Param    date2 query string true "Range end (YYYY-MM-DD)"
// @Param    gym   query string true "Gym name"
// @Success  200 {array} object
// @Failure  400 {object} map[string]string
// @Failure  404 {object} map[string]string
// @Router   /get_processed_dates [get]
func (h *ReportHandler) Dates(c *gin.Context) {
	var req dateRangeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	from, err := domain.ParseDate(req.Date1)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	to, err := domain.ParseDate(req.Date2)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	days, err := h.svc.Dates(c.Request.Context(), req.Gym, from, to)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, days)
}

// Point godoc
// @Summary  The stored count for one date and time slot
// @Description  Answers null for times the schedule clamp would move,
// @Description  since the aggregator can never have produced them.
// @Tags     reports
// @Produce  json
// @Param    date query string true "Day (YYYY-MM-DD)"
// @Param    time query string true "Time slot (HH:MM)"
// @Param    gym  query string true "Gym name"
// @Success  200 {object} domain.SlotCount
// @Failure  400 {object} map[string]string
// @Failure  404 {object} map[string]string
// @Router   /get_processed_datetime [get]
func (h *ReportHandler) Point(c *gin.Context) {
	var req dateTimeRequest
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

	count, err := h.svc.Point(c.Request.Context(), req.Gym, date, at)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if count == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, count)
}

// Series godoc
// @Summary  Chart series of slot counts at or before a time
// @Tags     reports
// @Produce  json
// @Param    date query string true "Day (YYYY-MM-DD)"
// @Param    time query string true "Cutoff time slot (HH:MM)"
// @Param    gym  query string true "Gym name"
// @Success  200 {object} domain.ChartSeries
// @Failure  400 {object} map[string]string
// @Failure  404 {object} map[string]string
// @Router   /get_daily_list [get]
func (h *ReportHandler) Series(c *gin.Context) {
	var req dateTimeRequest
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

	series, err := h.svc.Series(c.Request.Context(), req.Gym, date, at)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, series)
}
