package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Stepka365/gym-tracker/internal/core/services"
)

type ConfigHandler struct {
	svc *services.ScheduleService
}

func NewConfigHandler(svc *services.ScheduleService) *ConfigHandler {
	return &ConfigHandler{svc: svc}
}

func (h *ConfigHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/get_config/", h.GetConfig)
}

// GetConfig godoc
// @Summary  Return the weekday opening/closing schedule
// @Tags     config
// @Produce  json
// @Success  200 {object} domain.GymConfig
// @Failure  500 {object} map[string]string
// @Router   /get_config/ [get]
func (h *ConfigHandler) GetConfig(c *gin.Context) {
	cfg, err := h.svc.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cfg)
}
