package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clientbook/internal/config"
	"github.com/BruksfildServices01/clientbook/internal/handlers"
	"github.com/BruksfildServices01/clientbook/internal/middleware"
	ucClient "github.com/BruksfildServices01/clientbook/internal/usecase/client"
)

func RegisterRoutes(r *gin.Engine, uc *ucClient.Set, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins...))
	r.Use(middleware.RequestIDMiddleware())

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	clientHandler := handlers.NewClientHandler(uc)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	if cfg.AuthEnabled() {
		api.Use(middleware.AuthMiddleware(cfg))
	}
	{
		api.POST("/clients", clientHandler.Create)
		api.GET("/clients", clientHandler.List)
		api.GET("/clients/:id", clientHandler.Get)
		api.PATCH("/clients/:id", clientHandler.Update)
		api.DELETE("/clients/:id", clientHandler.Delete)

		api.POST("/clients/:id/phones", clientHandler.AddPhone)
		api.DELETE("/clients/:id/phones/:phone", clientHandler.DeletePhone)
	}
}
