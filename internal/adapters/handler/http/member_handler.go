package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Stepka365/gym-tracker/internal/core/domain"
	"github.com/Stepka365/gym-tracker/internal/core/services"
	"github.com/Stepka365/gym-tracker/internal/metrics"
)

type MemberHandler struct {
	svc *services.MemberService
}

func NewMemberHandler(svc *services.MemberService) *MemberHandler {
	return &MemberHandler{svc: svc}
}

type listMembersRequest struct {
	Phone string `form:"phone"`
}

type registerMemberRequest struct {
	Phone    string `form:"phone" binding:"required"`
	Duration int    `form:"duration" binding:"required,gte=1"`
}

func (h *MemberHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/users/", h.List)
	r.GET("/add_user/", h.Register)
}

// List godoc
// @Summary  List members, optionally filtered by exact phone match
// @Tags     members
// @Produce  json
// @Param    phone query string false "Exact phone to filter by"
// @Success  200 {array} domain.Member "null when a phone filter matches nothing"
// @Router   /users/ [get]
func (h *MemberHandler) List(c *gin.Context) {
	var req listMembersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	members, err := h.svc.List(c.Request.Context(), req.Phone)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	// A filter that matches nobody answers null, not an empty array. The
	// reporting clients tell "no match" from "query failed" by that.
	if req.Phone != "" && len(members) == 0 {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, members)
}

// Register godoc
// @Summary  Register a member with a membership of duration*30 days
// @Tags     members
// @Produce  json
// @Param    phone    query string true "Member phone"
// @Param    duration query int    true "Membership duration in months"
// @Success  200
// @Failure  400 {object} map[string]string
// @Router   /add_user/ [get]
func (h *MemberHandler) Register(c *gin.Context) {
	var req registerMemberRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.svc.Register(c.Request.Context(), req.Phone, req.Duration); err != nil {
		if errors.Is(err, domain.ErrEmptyRegistry) {
			// Ids derive from the existing registry; an empty one is a
			// deployment fault, not a client mistake.
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	metrics.RecordRegistration()
	c.JSON(http.StatusOK, nil)
}
