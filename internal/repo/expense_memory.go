package repo

import "github.com/fleetflow/analytics-api/internal/models"

// InMemoryExpenseRepository is an in-memory implementation of ExpenseRepository.
type InMemoryExpenseRepository struct {
	expenses []models.Expense
}

// NewInMemoryExpenseRepository creates a new instance of InMemoryExpenseRepository.
func NewInMemoryExpenseRepository() *InMemoryExpenseRepository {
	return &InMemoryExpenseRepository{expenses: []models.Expense{}}
}

// Add seeds an expense.
func (r *InMemoryExpenseRepository) Add(e models.Expense) {
	r.expenses = append(r.expenses, e)
}

func (r *InMemoryExpenseRepository) Clear() {
	r.expenses = []models.Expense{}
}

func (r *InMemoryExpenseRepository) SumFuelCost() (float64, error) {
	var sum float64
	for _, e := range r.expenses {
		sum += e.FuelCost
	}
	return sum, nil
}

func (r *InMemoryExpenseRepository) SumFuelCostByVehicle(vehicleID int) (float64, error) {
	var sum float64
	for _, e := range r.expenses {
		if e.VehicleID == vehicleID {
			sum += e.FuelCost
		}
	}
	return sum, nil
}

func (r *InMemoryExpenseRepository) SumFuelLitersByVehicle(vehicleID int) (float64, error) {
	var sum float64
	for _, e := range r.expenses {
		if e.VehicleID == vehicleID {
			sum += e.FuelLiters
		}
	}
	return sum, nil
}
