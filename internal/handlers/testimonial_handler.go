package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/aanjanaji/physio-api/internal/audit"
	"github.com/aanjanaji/physio-api/internal/httpresp"
	"github.com/aanjanaji/physio-api/internal/models"
	"github.com/aanjanaji/physio-api/internal/store"
)

type TestimonialHandler struct {
	store *store.Store
	audit *audit.Dispatcher
}

func NewTestimonialHandler(st *store.Store, audit *audit.Dispatcher) *TestimonialHandler {
	return &TestimonialHandler{
		store: st,
		audit: audit,
	}
}

// --------- Requests ---------

type CreateTestimonialRequest struct {
	Name       string `json:"name" binding:"required"`
	Occupation string `json:"occupation" binding:"required"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	Review     string `json:"review" binding:"required"`
}

// --------- Handlers ---------

func (h *TestimonialHandler) Create(c *gin.Context) {
	var req CreateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	testimonial := h.store.CreateTestimonial(models.Testimonial{
		Name:       req.Name,
		Occupation: req.Occupation,
		Rating:     req.Rating,
		Review:     req.Review,
	})

	h.audit.Dispatch(audit.Event{
		Action:   "testimonial_created",
		Entity:   "testimonial",
		EntityID: &testimonial.ID,
	})

	httpresp.OK(c, testimonial)
}

func (h *TestimonialHandler) ListApproved(c *gin.Context) {
	httpresp.OK(c, h.store.ListApprovedTestimonials())
}

func (h *TestimonialHandler) ListAll(c *gin.Context) {
	httpresp.OK(c, h.store.ListTestimonials())
}
