package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fleetflow/analytics-api/internal/models"
)

type PostgresVehicleRepository struct {
	db *sql.DB
}

func NewPostgresVehicleRepository(db *sql.DB) *PostgresVehicleRepository {
	return &PostgresVehicleRepository{db: db}
}

func (r *PostgresVehicleRepository) GetAll() ([]models.Vehicle, error) {
	query := `SELECT id, "nameModel", "licensePlate", "maxCapacityKg", odometer, status, "acquisitionCost" FROM vehicles ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []models.Vehicle
	for rows.Next() {
		var v models.Vehicle
		if err := rows.Scan(&v.ID, &v.NameModel, &v.LicensePlate, &v.MaxCapacityKg, &v.Odometer, &v.Status, &v.AcquisitionCost); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

func (r *PostgresVehicleRepository) GetByID(id int) (models.Vehicle, error) {
	query := `SELECT id, "nameModel", "licensePlate", "maxCapacityKg", odometer, status, "acquisitionCost" FROM vehicles WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var v models.Vehicle
	err := r.db.QueryRowContext(ctx, query, id).Scan(&v.ID, &v.NameModel, &v.LicensePlate, &v.MaxCapacityKg, &v.Odometer, &v.Status, &v.AcquisitionCost)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Vehicle{}, ErrVehicleNotFound
	}
	return v, err
}

func (r *PostgresVehicleRepository) Count() (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM vehicles`).Scan(&count)
	return count, err
}

func (r *PostgresVehicleRepository) CountByStatus(status models.VehicleStatus) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM vehicles WHERE status = $1`, string(status)).Scan(&count)
	return count, err
}
