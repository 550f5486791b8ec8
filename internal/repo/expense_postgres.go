package repo

import (
	"context"
	"database/sql"
	"time"
)

type PostgresExpenseRepository struct {
	db *sql.DB
}

func NewPostgresExpenseRepository(db *sql.DB) *PostgresExpenseRepository {
	return &PostgresExpenseRepository{db: db}
}

func (r *PostgresExpenseRepository) SumFuelCost() (float64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var sum float64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM("fuelCost"), 0) FROM expenses`).Scan(&sum)
	return sum, err
}

func (r *PostgresExpenseRepository) SumFuelCostByVehicle(vehicleID int) (float64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var sum float64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM("fuelCost"), 0) FROM expenses WHERE "vehicleId" = $1`, vehicleID).Scan(&sum)
	return sum, err
}

func (r *PostgresExpenseRepository) SumFuelLitersByVehicle(vehicleID int) (float64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var sum float64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM("fuelLiters"), 0) FROM expenses WHERE "vehicleId" = $1`, vehicleID).Scan(&sum)
	return sum, err
}
