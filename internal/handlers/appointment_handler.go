package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aanjanaji/physio-api/internal/audit"
	domain "github.com/aanjanaji/physio-api/internal/domain/appointment"
	"github.com/aanjanaji/physio-api/internal/httperr"
	"github.com/aanjanaji/physio-api/internal/httpresp"
	"github.com/aanjanaji/physio-api/internal/models"
	"github.com/aanjanaji/physio-api/internal/store"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	store *store.Store
	audit *audit.Dispatcher
}

func NewAppointmentHandler(st *store.Store, audit *audit.Dispatcher) *AppointmentHandler {
	return &AppointmentHandler{
		store: st,
		audit: audit,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	FirstName     string `json:"firstName" binding:"required"`
	LastName      string `json:"lastName" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"required"`
	Service       string `json:"service" binding:"required"`
	PreferredDate string `json:"preferredDate" binding:"required"`
	PreferredTime string `json:"preferredTime" binding:"required"`
	Therapist     string `json:"therapist"`
	Notes         string `json:"notes"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	appointment := h.store.CreateAppointment(models.Appointment{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		Service:       req.Service,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		Therapist:     req.Therapist,
		Notes:         req.Notes,
	})

	h.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &appointment.ID,
	})

	httpresp.OK(c, appointment)
}

func (h *AppointmentHandler) List(c *gin.Context) {
	httpresp.OK(c, h.store.ListAppointments())
}

func (h *AppointmentHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}

	appointment, err := h.store.GetAppointment(id)
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}

	httpresp.OK(c, appointment)
}

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}

	var req UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	appointment, err := h.store.UpdateAppointmentStatus(id, domain.Status(req.Status))
	if err != nil {
		var be httperr.BusinessError
		switch {
		case errors.Is(err, store.ErrNotFound):
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		case errors.As(err, &be):
			httperr.BadRequest(c, be.Code, "Invalid appointment status.")
		default:
			httperr.Internal(c, "failed_to_update_appointment", "Failed to update appointment.")
		}
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "appointment_status_updated",
		Entity:   "appointment",
		EntityID: &appointment.ID,
	})

	httpresp.OK(c, appointment)
}
