package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/aanjanaji/physio-api/internal/audit"
	"github.com/aanjanaji/physio-api/internal/config"
	"github.com/aanjanaji/physio-api/internal/handlers"
	"github.com/aanjanaji/physio-api/internal/middleware"
	"github.com/aanjanaji/physio-api/internal/store"
	ucauth "github.com/aanjanaji/physio-api/internal/usecase/auth"
)

func RegisterRoutes(r *gin.Engine, st *store.Store, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	auditLogger := audit.New()
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — AUTH
	// ======================================================
	signupUC := ucauth.NewSignup(st, auditDispatcher)
	loginUC := ucauth.NewLogin(st, auditDispatcher, cfg.JWTSecret, cfg.AdminEmail)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(signupUC, loginUC)
	meHandler := handlers.NewMeHandler(st)
	appointmentHandler := handlers.NewAppointmentHandler(st, auditDispatcher)
	testimonialHandler := handlers.NewTestimonialHandler(st, auditDispatcher)
	blogHandler := handlers.NewBlogHandler(st, auditDispatcher)
	contactHandler := handlers.NewContactHandler(st, auditDispatcher)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/appointments", appointmentHandler.Create)
		api.POST("/testimonials", testimonialHandler.Create)
		api.GET("/testimonials", testimonialHandler.ListApproved)
		api.GET("/blog-posts", blogHandler.List)
		api.GET("/blog-posts/:id", blogHandler.GetByID)
		api.POST("/contact", contactHandler.Create)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/auth/me", meHandler.GetMe)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/appointments", appointmentHandler.List)
				admin.GET("/appointments/:id", appointmentHandler.GetByID)
				admin.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)

				admin.GET("/testimonials/all", testimonialHandler.ListAll)

				admin.POST("/blog-posts", blogHandler.Create)

				admin.GET("/contact-messages", contactHandler.List)
				admin.PATCH("/contact-messages/:id/read", contactHandler.MarkRead)
			}
		}
	}
}
