package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clientbook/internal/audit"
	"github.com/BruksfildServices01/clientbook/internal/config"
	dbpkg "github.com/BruksfildServices01/clientbook/internal/db"
	"github.com/BruksfildServices01/clientbook/internal/infra/repository"
	"github.com/BruksfildServices01/clientbook/internal/logging"
	"github.com/BruksfildServices01/clientbook/internal/routes"
	ucClient "github.com/BruksfildServices01/clientbook/internal/usecase/client"
)

func main() {

	cfg := config.Load()
	logging.Init(cfg.LogLevel)

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		logging.Fatalf("%v", err)
	}
	defer dbpkg.Close(db)

	dispatcher := audit.NewDispatcher(audit.New())
	defer dispatcher.Close()

	uc := ucClient.NewSet(repository.NewClientGormRepository(db), dispatcher)
	if err := uc.Schema.Execute(context.Background(), false); err != nil {
		logging.Fatalf("failed to prepare schema: %v", err)
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, uc, cfg)

	if !cfg.AuthEnabled() {
		logging.Infof("JWT_SECRET not set, /api is unauthenticated")
	}

	logging.Infof("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		logging.Fatalf("failed to start server: %v", err)
	}
}
