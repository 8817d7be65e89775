package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	MaxConns int
}

func (c Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.DBName)
}

const (
	connectAttempts = 10
	connectWait     = 2 * time.Second
)

var sleep = time.Sleep

func NewPostgresDB(cfg Config, log *zap.Logger) (*sql.DB, error) {
	db, err := connectWithRetry(func() (*sql.DB, error) {
		return sql.Open("postgres", cfg.DSN())
	}, connectAttempts, connectWait, log)
	if err != nil {
		return nil, err
	}

	maxConns := cfg.MaxConns
	if maxConns <= 0 {
		maxConns = 25
	}
	db.SetMaxOpenConns(maxConns)
	db.SetMaxIdleConns(maxConns)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// connectWithRetry closes every handle whose ping failed and does not wait
// after the last attempt.
func connectWithRetry(open func() (*sql.DB, error), attempts int, wait time.Duration, log *zap.Logger) (*sql.DB, error) {
	var err error
	for i := 1; i <= attempts; i++ {
		log.Info("connecting to database", zap.Int("attempt", i), zap.Int("max_attempts", attempts))

		var db *sql.DB
		db, err = open()
		if err == nil {
			err = db.Ping()
			if err == nil {
				log.Info("database connected")
				return db, nil
			}
			db.Close()
		}

		if i == attempts {
			break
		}
		log.Warn("database not ready yet, retrying", zap.Duration("wait", wait), zap.Error(err))
		sleep(wait)
	}
	return nil, fmt.Errorf("connect database: %w", err)
}

// Migrate creates the ledger schema when it is missing. Child lists owned by
// a single entity (expenses, booking payments, status history, advances) are
// JSONB columns on the owner so one row lock covers the whole document.
func Migrate(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	for i, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration step %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migrations: %w", err)
	}
	return nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS companies (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		contact_email TEXT NOT NULL DEFAULT '',
		outstanding_amount NUMERIC(18,2) NOT NULL DEFAULT 0 CHECK (outstanding_amount >= 0),
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS drivers (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		license_number TEXT NOT NULL DEFAULT '',
		advances JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id UUID PRIMARY KEY,
		customer_id UUID NOT NULL,
		company_id UUID REFERENCES companies(id),
		pickup_location TEXT NOT NULL,
		drop_location TEXT NOT NULL,
		start_at TIMESTAMPTZ NOT NULL,
		end_at TIMESTAMPTZ,
		vehicle_id UUID,
		driver_id UUID REFERENCES drivers(id),
		tariff_rate NUMERIC(18,2) NOT NULL DEFAULT 0,
		total_amount NUMERIC(18,2) NOT NULL DEFAULT 0,
		advance_received NUMERIC(18,2) NOT NULL DEFAULT 0,
		balance NUMERIC(18,2) NOT NULL DEFAULT 0,
		status TEXT NOT NULL,
		billed BOOLEAN NOT NULL DEFAULT FALSE,
		expenses JSONB NOT NULL DEFAULT '[]',
		payments JSONB NOT NULL DEFAULT '[]',
		status_history JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS driver_payments (
		id UUID PRIMARY KEY,
		booking_id UUID NOT NULL,
		driver_id UUID NOT NULL,
		mode TEXT NOT NULL,
		amount NUMERIC(18,2) NOT NULL,
		fuel_quantity NUMERIC,
		fuel_rate NUMERIC,
		computed_amount NUMERIC(18,2),
		distance_km NUMERIC,
		mileage NUMERIC,
		description TEXT NOT NULL DEFAULT '',
		settled BOOLEAN NOT NULL DEFAULT FALSE,
		settled_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS driver_payments_booking_idx ON driver_payments (booking_id)`,
	`CREATE INDEX IF NOT EXISTS driver_payments_driver_idx ON driver_payments (driver_id)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id UUID PRIMARY KEY,
		entity_type TEXT NOT NULL,
		entity_id UUID NOT NULL,
		type TEXT NOT NULL,
		amount NUMERIC(18,2) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		related_advance_id UUID,
		date TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS payments_entity_idx ON payments (entity_type, entity_id)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS payments_related_advance_idx ON payments (related_advance_id) WHERE related_advance_id IS NOT NULL`,
	`CREATE TABLE IF NOT EXISTS fuel_entries (
		id UUID PRIMARY KEY,
		vehicle_id UUID NOT NULL,
		booking_id UUID,
		added_by_type TEXT NOT NULL,
		fill_date TIMESTAMPTZ NOT NULL,
		total_trip_km NUMERIC NOT NULL DEFAULT 0,
		vehicle_fuel_average NUMERIC NOT NULL DEFAULT 0,
		fuel_quantity NUMERIC NOT NULL DEFAULT 0,
		fuel_rate NUMERIC NOT NULL DEFAULT 0,
		total_amount NUMERIC(18,2) NOT NULL DEFAULT 0,
		comment TEXT NOT NULL DEFAULT '',
		include_in_finance BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS fuel_entries_vehicle_idx ON fuel_entries (vehicle_id)`,
	`CREATE INDEX IF NOT EXISTS fuel_entries_booking_idx ON fuel_entries (booking_id)`,
}
