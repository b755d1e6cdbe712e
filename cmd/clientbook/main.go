package main

import (
	"context"
	"os"

	"github.com/BruksfildServices01/clientbook/internal/audit"
	"github.com/BruksfildServices01/clientbook/internal/config"
	dbpkg "github.com/BruksfildServices01/clientbook/internal/db"
	"github.com/BruksfildServices01/clientbook/internal/demo"
	"github.com/BruksfildServices01/clientbook/internal/infra/repository"
	"github.com/BruksfildServices01/clientbook/internal/logging"
	ucClient "github.com/BruksfildServices01/clientbook/internal/usecase/client"
)

func main() {
	cfg := config.Load()
	logging.Init(cfg.LogLevel)

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		logging.Fatalf("%v", err)
	}

	dispatcher := audit.NewDispatcher(audit.New())
	uc := ucClient.NewSet(repository.NewClientGormRepository(db), dispatcher)

	runErr := demo.Run(context.Background(), uc, os.Stdout)

	dispatcher.Close()
	if err := dbpkg.Close(db); err != nil {
		logging.Errorf("close database: %v", err)
	}

	if runErr != nil {
		logging.Fatalf("demo failed: %v", runErr)
	}
}
