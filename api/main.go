package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/fleetflow/analytics-api/internal/analytics"
	"github.com/fleetflow/analytics-api/internal/config"
	"github.com/fleetflow/analytics-api/internal/db"
	api "github.com/fleetflow/analytics-api/internal/http"
	"github.com/fleetflow/analytics-api/internal/http/handlers"
	rl "github.com/fleetflow/analytics-api/internal/http/rate_limiter"
	"github.com/fleetflow/analytics-api/internal/repo"
)

// @title FleetFlow Analytics API
// @version 1.0
// @description ROI calculations, fuel efficiency, and fleet reporting.
// @host localhost:8000
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("❌ Invalid configuration:", err)
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Could not connect to database:", err)
	}
	defer database.Close()

	svc := analytics.NewService(
		repo.NewPostgresVehicleRepository(database),
		repo.NewPostgresDriverRepository(database),
		repo.NewPostgresTripRepository(database),
		repo.NewPostgresMaintenanceRepository(database),
		repo.NewPostgresExpenseRepository(database),
	)
	handlers.SetAnalyticsService(svc)
	handlers.SetPort(cfg.Port)

	rl.SetLimits(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go rl.StartVisitorCleanupLoop()

	r := api.NewRouter(cfg.FrontendURL)
	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Printf("✅ FleetFlow Analytics API running on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}
