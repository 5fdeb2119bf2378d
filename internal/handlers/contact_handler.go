package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aanjanaji/physio-api/internal/audit"
	"github.com/aanjanaji/physio-api/internal/httperr"
	"github.com/aanjanaji/physio-api/internal/httpresp"
	"github.com/aanjanaji/physio-api/internal/models"
	"github.com/aanjanaji/physio-api/internal/store"
)

type ContactHandler struct {
	store *store.Store
	audit *audit.Dispatcher
}

func NewContactHandler(st *store.Store, audit *audit.Dispatcher) *ContactHandler {
	return &ContactHandler{
		store: st,
		audit: audit,
	}
}

// --------- Requests ---------

type CreateContactMessageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// --------- Handlers ---------

func (h *ContactHandler) Create(c *gin.Context) {
	var req CreateContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	message := h.store.CreateContactMessage(models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})

	h.audit.Dispatch(audit.Event{
		Action:   "contact_message_created",
		Entity:   "contact_message",
		EntityID: &message.ID,
	})

	httpresp.OK(c, message)
}

func (h *ContactHandler) List(c *gin.Context) {
	httpresp.OK(c, h.store.ListContactMessages())
}

func (h *ContactHandler) MarkRead(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.NotFound(c, "contact_message_not_found", "Contact message not found.")
		return
	}

	message, err := h.store.MarkContactMessageRead(id)
	if err != nil {
		httperr.NotFound(c, "contact_message_not_found", "Contact message not found.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "contact_message_read",
		Entity:   "contact_message",
		EntityID: &message.ID,
	})

	httpresp.OK(c, message)
}
