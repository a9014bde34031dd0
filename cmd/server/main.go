package main

import (
	"errors"
	"log"
	"os"

	"github.com/Andhika-Putra/dashboard-app/internal/api"
	"github.com/Andhika-Putra/dashboard-app/internal/config"
	"github.com/Andhika-Putra/dashboard-app/internal/dataset"
	"github.com/Andhika-Putra/dashboard-app/internal/logger"
	"github.com/Andhika-Putra/dashboard-app/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Init(cfg.Debug); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	records, err := dataset.Load(cfg.DataPath)
	if err != nil {
		if errors.Is(err, dataset.ErrDataNotFound) {
			logger.Errorf("Dataset file %q was not found. Place day.csv in the working directory or set DASHBOARD_DATA_PATH.", cfg.DataPath)
		} else {
			logger.Errorf("Failed to load dataset: %v", err)
		}
		os.Exit(1)
	}

	svc := service.NewDashboardService(records)
	router := api.SetupRouter(cfg, svc)

	logger.Infof("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		logger.Errorf("Server failed: %v", err)
		os.Exit(1)
	}
}
