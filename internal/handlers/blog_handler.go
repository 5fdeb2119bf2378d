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

type BlogHandler struct {
	store *store.Store
	audit *audit.Dispatcher
}

func NewBlogHandler(st *store.Store, audit *audit.Dispatcher) *BlogHandler {
	return &BlogHandler{
		store: st,
		audit: audit,
	}
}

// --------- Requests ---------

type CreateBlogPostRequest struct {
	Title    string `json:"title" binding:"required"`
	Excerpt  string `json:"excerpt" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category" binding:"required"`
	ImageURL string `json:"imageUrl" binding:"required"`
}

// --------- Handlers ---------

func (h *BlogHandler) List(c *gin.Context) {
	httpresp.OK(c, h.store.ListBlogPosts())
}

func (h *BlogHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.NotFound(c, "blog_post_not_found", "Blog post not found.")
		return
	}

	post, err := h.store.GetBlogPost(id)
	if err != nil {
		httperr.NotFound(c, "blog_post_not_found", "Blog post not found.")
		return
	}

	httpresp.OK(c, post)
}

func (h *BlogHandler) Create(c *gin.Context) {
	var req CreateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	post := h.store.CreateBlogPost(models.BlogPost{
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Category: req.Category,
		ImageURL: req.ImageURL,
	})

	h.audit.Dispatch(audit.Event{
		Action:   "blog_post_created",
		Entity:   "blog_post",
		EntityID: &post.ID,
	})

	httpresp.Created(c, post)
}
