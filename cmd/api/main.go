package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/aanjanaji/physio-api/internal/config"
	"github.com/aanjanaji/physio-api/internal/middleware"
	"github.com/aanjanaji/physio-api/internal/routes"
	"github.com/aanjanaji/physio-api/internal/store"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()

	st := store.New()
	if err := store.Seed(st, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("failed to seed store: %v", err)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestIDMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, st, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
