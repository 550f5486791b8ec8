package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fleetflow/analytics-api/internal/models"
)

type PostgresTripRepository struct {
	db *sql.DB
}

func NewPostgresTripRepository(db *sql.DB) *PostgresTripRepository {
	return &PostgresTripRepository{db: db}
}

func (r *PostgresTripRepository) CountByStatus(status models.TripStatus) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM trips WHERE status = $1`, string(status)).Scan(&count)
	return count, err
}

func (r *PostgresTripRepository) CountByVehicle(vehicleID int, status models.TripStatus) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM trips WHERE "vehicleId" = $1 AND status = $2`, vehicleID, string(status)).Scan(&count)
	return count, err
}

func (r *PostgresTripRepository) SumRevenueByStatus(status models.TripStatus) (float64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var sum float64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(revenue), 0) FROM trips WHERE status = $1`, string(status)).Scan(&sum)
	return sum, err
}

func (r *PostgresTripRepository) SumRevenueByVehicle(vehicleID int, status models.TripStatus) (float64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var sum float64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(revenue), 0) FROM trips WHERE "vehicleId" = $1 AND status = $2`, vehicleID, string(status)).Scan(&sum)
	return sum, err
}

func (r *PostgresTripRepository) LastCompletedByVehicle(vehicleID int) (models.Trip, bool, error) {
	query := `SELECT id, "vehicleId", "driverId", "cargoWeight", status, revenue, "startDate", "endDate"
		FROM trips
		WHERE "vehicleId" = $1 AND status = $2 AND "endDate" IS NOT NULL
		ORDER BY "endDate" DESC
		LIMIT 1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var t models.Trip
	err := r.db.QueryRowContext(ctx, query, vehicleID, string(models.TripCompleted)).
		Scan(&t.ID, &t.VehicleID, &t.DriverID, &t.CargoWeight, &t.Status, &t.Revenue, &t.StartDate, &t.EndDate)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Trip{}, false, nil
	}
	if err != nil {
		return models.Trip{}, false, err
	}
	return t, true, nil
}

func (r *PostgresTripRepository) GetByVehicle(vehicleID int) ([]models.Trip, error) {
	query := `SELECT id, "vehicleId", "driverId", "cargoWeight", status, revenue, "startDate", "endDate" FROM trips WHERE "vehicleId" = $1 ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, vehicleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []models.Trip
	for rows.Next() {
		var t models.Trip
		if err := rows.Scan(&t.ID, &t.VehicleID, &t.DriverID, &t.CargoWeight, &t.Status, &t.Revenue, &t.StartDate, &t.EndDate); err != nil {
			return nil, err
		}
		trips = append(trips, t)
	}
	return trips, rows.Err()
}

func (r *PostgresTripRepository) CountByDriver(driverID int) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM trips WHERE "driverId" = $1`, driverID).Scan(&count)
	return count, err
}

func (r *PostgresTripRepository) CountByDriverAndStatus(driverID int, status models.TripStatus) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM trips WHERE "driverId" = $1 AND status = $2`, driverID, string(status)).Scan(&count)
	return count, err
}

func (r *PostgresTripRepository) SumRevenueByDriver(driverID int, status models.TripStatus) (float64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var sum float64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(revenue), 0) FROM trips WHERE "driverId" = $1 AND status = $2`, driverID, string(status)).Scan(&sum)
	return sum, err
}
