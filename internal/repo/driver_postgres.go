package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fleetflow/analytics-api/internal/models"
)

type PostgresDriverRepository struct {
	db *sql.DB
}

func NewPostgresDriverRepository(db *sql.DB) *PostgresDriverRepository {
	return &PostgresDriverRepository{db: db}
}

func (r *PostgresDriverRepository) GetAll() ([]models.Driver, error) {
	query := `SELECT id, name, "licenseExpiryDate", status, "safetyScore" FROM drivers ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drivers []models.Driver
	for rows.Next() {
		var d models.Driver
		if err := rows.Scan(&d.ID, &d.Name, &d.LicenseExpiryDate, &d.Status, &d.SafetyScore); err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}
	return drivers, rows.Err()
}

func (r *PostgresDriverRepository) GetByID(id int) (models.Driver, error) {
	query := `SELECT id, name, "licenseExpiryDate", status, "safetyScore" FROM drivers WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var d models.Driver
	err := r.db.QueryRowContext(ctx, query, id).Scan(&d.ID, &d.Name, &d.LicenseExpiryDate, &d.Status, &d.SafetyScore)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Driver{}, ErrDriverNotFound
	}
	return d, err
}

func (r *PostgresDriverRepository) Count() (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM drivers`).Scan(&count)
	return count, err
}

func (r *PostgresDriverRepository) CountByStatus(status string) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM drivers WHERE status = $1`, status).Scan(&count)
	return count, err
}

func (r *PostgresDriverRepository) AverageSafetyScore() (float64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var avg float64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(AVG("safetyScore"), 0) FROM drivers`).Scan(&avg)
	return avg, err
}
