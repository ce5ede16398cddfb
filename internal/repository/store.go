package repository

import (
	"context"
	"fmt"

	"github.com/UnknownOlympus/hestia/internal/config"
	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/jackc/pgx/v5/stdlib"
)

// Store bundles the configured employee repository with the lifecycle of its backing database.
type Store struct {
	EmployeeRepoIface

	driver  string
	applied int
	ping    func(ctx context.Context) error
	close   func()
}

// Open connects to the backend selected by cfg.Driver, applies the schema and returns the store.
func Open(ctx context.Context, cfg config.StorageConfig, appMetrics *metrics.Metrics) (*Store, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		sqlDB, err := NewSQLiteDatabase(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}

		applied, err := Migrate(ctx, sqlDB, cfg.Driver)
		if err != nil {
			_ = sqlDB.Close()
			return nil, err
		}

		// SQLite allows one writer; a single shared connection serializes statements.
		sqlDB.SetMaxOpenConns(1)

		return &Store{
			EmployeeRepoIface: NewSQLiteRepository(sqlDB, appMetrics),
			driver:            cfg.Driver,
			applied:           applied,
			ping:              sqlDB.PingContext,
			close:             func() { _ = sqlDB.Close() },
		}, nil

	case config.DriverPostgres:
		dbpool, err := NewDatabase(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}

		sqlDB := stdlib.OpenDBFromPool(dbpool)
		applied, err := Migrate(ctx, sqlDB, cfg.Driver)
		_ = sqlDB.Close()
		if err != nil {
			dbpool.Close()
			return nil, err
		}

		return &Store{
			EmployeeRepoIface: NewEmployeeRepository(dbpool, appMetrics),
			driver:            cfg.Driver,
			applied:           applied,
			ping:              dbpool.Ping,
			close:             dbpool.Close,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownDriver, cfg.Driver)
	}
}

// Driver reports which backend the store uses.
func (s *Store) Driver() string {
	return s.driver
}

// AppliedMigrations reports how many schema migrations Open applied; zero when the schema was current.
func (s *Store) AppliedMigrations() int {
	return s.applied
}

func (s *Store) Ping(ctx context.Context) error {
	return s.ping(ctx)
}

func (s *Store) Close() {
	s.close()
}
