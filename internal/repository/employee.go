package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/jackc/pgx/v5"
)

// CreateEmployee inserts a new employee and returns the id assigned by the database.
func (r *Repository) CreateEmployee(ctx context.Context, input models.EmployeeInput) (int, error) {
	defer observe(r.metrics, "create_employee")()

	query := `
		INSERT INTO employees (name, position, department, store_location)
		VALUES ($1, $2, $3, $4)
		RETURNING id;
	`

	var identifier int

	err := r.db.QueryRow(ctx, query, input.Name, input.Position, input.Department, input.StoreLocation).
		Scan(&identifier)
	if err != nil {
		return 0, fmt.Errorf("failed to save employee: %w", err)
	}

	r.metrics.EmployeesCreated.Inc()

	return identifier, nil
}

// ListEmployees returns every stored employee ordered by id.
func (r *Repository) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	defer observe(r.metrics, "list_employees")()

	query := `SELECT id, name, position, department, store_location FROM employees ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]models.Employee, 0)
	for rows.Next() {
		var employee models.Employee
		if err = rows.Scan(
			&employee.ID, &employee.Name, &employee.Position, &employee.Department, &employee.StoreLocation,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, employee)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employee rows: %w", err)
	}

	return employees, nil
}

// GetEmployeeByID retrieves an employee from the database by their ID.
func (r *Repository) GetEmployeeByID(ctx context.Context, identifier int) (models.Employee, error) {
	var result models.Employee

	defer observe(r.metrics, "get_employee_by_id")()

	query := `SELECT id, name, position, department, store_location FROM employees WHERE id=$1`

	err := r.db.QueryRow(ctx, query, identifier).Scan(
		&result.ID, &result.Name, &result.Position, &result.Department, &result.StoreLocation)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Employee{}, fmt.Errorf("failed to get employee by id: %w", ErrEmployeeNotFound)
		}
		return models.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return result, nil
}

// UpdateEmployee overwrites every non-id field of an employee.
func (r *Repository) UpdateEmployee(
	ctx context.Context,
	identifier int,
	input models.EmployeeInput,
) (bool, error) {
	defer observe(r.metrics, "update_employee")()

	query := `
		UPDATE employees
		SET name = $2, position = $3, department = $4, store_location = $5
		WHERE id = $1;
	`

	tag, err := r.db.Exec(
		ctx, query, identifier, input.Name, input.Position, input.Department, input.StoreLocation)
	if err != nil {
		return false, fmt.Errorf("failed to update employee data: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// DeleteEmployee removes an employee permanently.
func (r *Repository) DeleteEmployee(ctx context.Context, identifier int) (bool, error) {
	defer observe(r.metrics, "delete_employee")()

	tag, err := r.db.Exec(ctx, `DELETE FROM employees WHERE id = $1;`, identifier)
	if err != nil {
		return false, fmt.Errorf("failed to delete employee: %w", err)
	}

	deleted := tag.RowsAffected() > 0
	if deleted {
		r.metrics.EmployeesDeleted.Inc()
	}

	return deleted, nil
}
