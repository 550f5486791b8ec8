package repo

import (
	"context"
	"database/sql"
	"time"
)

type PostgresMaintenanceRepository struct {
	db *sql.DB
}

func NewPostgresMaintenanceRepository(db *sql.DB) *PostgresMaintenanceRepository {
	return &PostgresMaintenanceRepository{db: db}
}

func (r *PostgresMaintenanceRepository) SumCost() (float64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var sum float64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(cost), 0) FROM maintenance_logs`).Scan(&sum)
	return sum, err
}

func (r *PostgresMaintenanceRepository) SumCostByVehicle(vehicleID int) (float64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var sum float64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(cost), 0) FROM maintenance_logs WHERE "vehicleId" = $1`, vehicleID).Scan(&sum)
	return sum, err
}
