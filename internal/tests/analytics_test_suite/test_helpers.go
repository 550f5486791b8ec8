package analytics_test_suite

import (
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/fleetflow/analytics-api/internal/analytics"
	api "github.com/fleetflow/analytics-api/internal/http"
	handler "github.com/fleetflow/analytics-api/internal/http/handlers"
	rl "github.com/fleetflow/analytics-api/internal/http/rate_limiter"
	"github.com/fleetflow/analytics-api/internal/models"
	"github.com/fleetflow/analytics-api/internal/repo"
)

var (
	vehicleRepo     *repo.InMemoryVehicleRepository
	driverRepo      *repo.InMemoryDriverRepository
	tripRepo        *repo.InMemoryTripRepository
	maintenanceRepo *repo.InMemoryMaintenanceRepository
	expenseRepo     *repo.InMemoryExpenseRepository
)

func init() {
	setupTestRepos()
}

func setupTestRepos() {
	vehicleRepo = repo.NewInMemoryVehicleRepository()
	driverRepo = repo.NewInMemoryDriverRepository()
	tripRepo = repo.NewInMemoryTripRepository()
	maintenanceRepo = repo.NewInMemoryMaintenanceRepository()
	expenseRepo = repo.NewInMemoryExpenseRepository()

	svc := analytics.NewService(vehicleRepo, driverRepo, tripRepo, maintenanceRepo, expenseRepo)
	handler.SetAnalyticsService(svc)
	handler.SetPort(8000)

	// Generous limits so suites never trip the per-IP throttle.
	rl.SetLimits(10000, 10000)
	rl.CleanupAllVisitors()
}

func clearAllFixtures() {
	vehicleRepo.Clear()
	driverRepo.Clear()
	tripRepo.Clear()
	maintenanceRepo.Clear()
	expenseRepo.Clear()
}

func newRouter() http.Handler {
	// CORS origin is irrelevant for same-origin test requests.
	return api.NewRouter("http://localhost:5173")
}

func doGet(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// seedProfitableVehicle seeds vehicle 1 with the canonical ROI fixture:
// 300000 revenue, 50000 maintenance, 20000 fuel on a 1000000 acquisition.
func seedProfitableVehicle() {
	vehicleRepo.Add(models.Vehicle{
		ID:              1,
		NameModel:       "Tata Prima 4928",
		LicensePlate:    "MH-12-9087",
		Status:          models.VehicleOnTrip,
		Odometer:        15000,
		AcquisitionCost: 1000000,
	})

	end := time.Now().Add(-24 * time.Hour)
	tripRepo.Add(models.Trip{ID: 1, VehicleID: 1, Status: models.TripCompleted, Revenue: 300000, EndDate: &end})
	maintenanceRepo.Add(models.MaintenanceLog{ID: 1, VehicleID: 1, Cost: 50000, Date: end})
	expenseRepo.Add(models.Expense{ID: 1, VehicleID: 1, FuelLiters: 500, FuelCost: 20000, Date: end})
}

func intPtr(i int) *int { return &i }
