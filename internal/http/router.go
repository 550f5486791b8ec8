package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/fleetflow/analytics-api/internal/http/handlers"
)

// NewRouter builds the analytics API surface. Only the configured frontend
// origin may call cross-origin, matching the operational deployment.
func NewRouter(frontendURL string) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))
	r.Use(RateLimitMiddleware)

	r.Route("/analytics", func(r chi.Router) {
		r.Get("/summary", handlers.GetSummaryHandler)
		r.Get("/fuel-efficiency", handlers.GetFuelEfficiencyHandler)
		r.Get("/dead-stock", handlers.GetDeadStockHandler)
		r.Get("/vehicle-roi/{id}", handlers.GetVehicleROIHandler)
		r.Get("/all-roi", handlers.GetAllROIHandler)
		r.Get("/export", handlers.ExportAuditCSVHandler)
		r.Get("/export-pdf", handlers.ExportAuditPDFHandler)
		r.Get("/export-payroll", handlers.ExportPayrollCSVHandler)
	})
	r.Get("/health", handlers.HealthHandler)

	return r
}
