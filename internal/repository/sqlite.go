package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/UnknownOlympus/hestia/internal/models"
)

// SQLiteRepository is the single-file implementation of EmployeeRepoIface.
type SQLiteRepository struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

func NewSQLiteRepository(db *sql.DB, metrics *metrics.Metrics) EmployeeRepoIface {
	return &SQLiteRepository{db: db, metrics: metrics}
}

func (r *SQLiteRepository) CreateEmployee(ctx context.Context, input models.EmployeeInput) (int, error) {
	defer observe(r.metrics, "create_employee")()

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO employees (name, position, department, store_location) VALUES (?, ?, ?, ?)`,
		input.Name, input.Position, input.Department, input.StoreLocation,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save employee: %w", err)
	}

	identifier, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read assigned employee id: %w", err)
	}

	r.metrics.EmployeesCreated.Inc()

	return int(identifier), nil
}

func (r *SQLiteRepository) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	defer observe(r.metrics, "list_employees")()

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, position, department, store_location FROM employees ORDER BY id`)
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

func (r *SQLiteRepository) GetEmployeeByID(ctx context.Context, identifier int) (models.Employee, error) {
	var result models.Employee

	defer observe(r.metrics, "get_employee_by_id")()

	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, position, department, store_location FROM employees WHERE id = ?`, identifier,
	).Scan(&result.ID, &result.Name, &result.Position, &result.Department, &result.StoreLocation)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Employee{}, fmt.Errorf("failed to get employee by id: %w", ErrEmployeeNotFound)
		}
		return models.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return result, nil
}

func (r *SQLiteRepository) UpdateEmployee(
	ctx context.Context,
	identifier int,
	input models.EmployeeInput,
) (bool, error) {
	defer observe(r.metrics, "update_employee")()

	res, err := r.db.ExecContext(ctx,
		`UPDATE employees SET name = ?, position = ?, department = ?, store_location = ? WHERE id = ?`,
		input.Name, input.Position, input.Department, input.StoreLocation, identifier,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update employee data: %w", err)
	}

	return affected(res)
}

func (r *SQLiteRepository) DeleteEmployee(ctx context.Context, identifier int) (bool, error) {
	defer observe(r.metrics, "delete_employee")()

	res, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, identifier)
	if err != nil {
		return false, fmt.Errorf("failed to delete employee: %w", err)
	}

	deleted, err := affected(res)
	if deleted {
		r.metrics.EmployeesDeleted.Inc()
	}

	return deleted, err
}

func affected(res sql.Result) (bool, error) {
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return rows > 0, nil
}
