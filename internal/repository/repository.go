package repository

import (
	"context"
	"errors"
	"time"

	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/UnknownOlympus/hestia/internal/models"
)

// ErrEmployeeNotFound is returned when a lookup by id matches no row.
var ErrEmployeeNotFound = errors.New("employee not found")

// EmployeeRepoIface represents the interface for interacting with employee data in the repository.
//
// UpdateEmployee and DeleteEmployee report whether a row matched; an unmatched id is not an error.
type EmployeeRepoIface interface {
	CreateEmployee(ctx context.Context, input models.EmployeeInput) (int, error)
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	GetEmployeeByID(ctx context.Context, identifier int) (models.Employee, error)
	UpdateEmployee(ctx context.Context, identifier int, input models.EmployeeInput) (bool, error)
	DeleteEmployee(ctx context.Context, identifier int) (bool, error)
}

// Repository is the PostgreSQL implementation of EmployeeRepoIface.
type Repository struct {
	db      Database
	metrics *metrics.Metrics
}

func NewEmployeeRepository(db Database, metrics *metrics.Metrics) EmployeeRepoIface {
	return &Repository{db: db, metrics: metrics}
}

// observe starts a timer for the given query type; call the returned func when the query is done.
func observe(m *metrics.Metrics, queryType string) func() {
	startTime := time.Now()

	return func() {
		duration := time.Since(startTime).Seconds()
		m.DBQueryDuration.WithLabelValues(queryType).Observe(duration)
	}
}
