package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/srgjo27/fleet_ledger/internal/core/domain"
	"github.com/srgjo27/fleet_ledger/internal/core/ports"
)

const driverPaymentColumns = `id, booking_id, driver_id, mode, amount, fuel_quantity, fuel_rate,
	computed_amount, distance_km, mileage, description, settled, settled_at, created_at, updated_at`

type DriverPaymentRepository struct {
	db *sql.DB
}

func NewDriverPaymentRepository(db *sql.DB) *DriverPaymentRepository {
	return &DriverPaymentRepository{db: db}
}

func (r *DriverPaymentRepository) CreateDriverPayment(ctx context.Context, p *domain.DriverPayment) error {
	query := `
	INSERT INTO driver_payments (` + driverPaymentColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.BookingID,
		p.DriverID,
		p.Mode,
		p.Amount,
		p.FuelQuantity,
		p.FuelRate,
		p.ComputedAmount,
		p.DistanceKm,
		p.Mileage,
		p.Description,
		p.Settled,
		nullTime(p.SettledAt),
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert driver payment: %w", err)
	}

	return nil
}

// UpdateDriverPayment only matches a payment that belongs to bookingID; a
// payment id under another booking reads as not found.
func (r *DriverPaymentRepository) UpdateDriverPayment(ctx context.Context, bookingID, paymentID uuid.UUID, fn ports.DriverPaymentMutation) (*domain.DriverPayment, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, `
	SELECT `+driverPaymentColumns+`
	FROM driver_payments
	WHERE id = $1 AND booking_id = $2
	FOR UPDATE
	`, paymentID, bookingID)

	p, err := scanDriverPayment(row)
	if err != nil {
		return nil, err
	}

	if err := fn(p); err != nil {
		return nil, err
	}

	query := `
	UPDATE driver_payments
	SET mode = $2,
		amount = $3,
		fuel_quantity = $4,
		fuel_rate = $5,
		computed_amount = $6,
		distance_km = $7,
		mileage = $8,
		description = $9,
		settled = $10,
		settled_at = $11,
		updated_at = $12
	WHERE id = $1
	`

	_, err = tx.ExecContext(ctx, query,
		p.ID,
		p.Mode,
		p.Amount,
		p.FuelQuantity,
		p.FuelRate,
		p.ComputedAmount,
		p.DistanceKm,
		p.Mileage,
		p.Description,
		p.Settled,
		nullTime(p.SettledAt),
		p.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update driver payment %s: %w", paymentID, err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return p, nil
}

func (r *DriverPaymentRepository) DeleteDriverPayment(ctx context.Context, bookingID, paymentID uuid.UUID) (*domain.DriverPayment, error) {
	row := r.db.QueryRowContext(ctx, `
	DELETE FROM driver_payments
	WHERE id = $1 AND booking_id = $2
	RETURNING `+driverPaymentColumns, paymentID, bookingID)

	return scanDriverPayment(row)
}

func (r *DriverPaymentRepository) ListDriverPaymentsByBooking(ctx context.Context, bookingID uuid.UUID) ([]domain.DriverPayment, error) {
	return r.list(ctx, `SELECT `+driverPaymentColumns+` FROM driver_payments WHERE booking_id = $1 ORDER BY created_at, id`, bookingID)
}

func (r *DriverPaymentRepository) ListDriverPaymentsByDriver(ctx context.Context, driverID uuid.UUID) ([]domain.DriverPayment, error) {
	return r.list(ctx, `SELECT `+driverPaymentColumns+` FROM driver_payments WHERE driver_id = $1 ORDER BY created_at, id`, driverID)
}

func (r *DriverPaymentRepository) list(ctx context.Context, query string, arg uuid.UUID) ([]domain.DriverPayment, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	payments := []domain.DriverPayment{}
	for rows.Next() {
		p, err := scanDriverPayment(rows)
		if err != nil {
			return nil, err
		}

		payments = append(payments, *p)
	}

	return payments, rows.Err()
}

func scanDriverPayment(row rowScanner) (*domain.DriverPayment, error) {
	var p domain.DriverPayment
	var settledAt sql.NullTime

	err := row.Scan(
		&p.ID,
		&p.BookingID,
		&p.DriverID,
		&p.Mode,
		&p.Amount,
		&p.FuelQuantity,
		&p.FuelRate,
		&p.ComputedAmount,
		&p.DistanceKm,
		&p.Mileage,
		&p.Description,
		&p.Settled,
		&settledAt,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDriverPaymentNotFound
		}
		return nil, err
	}

	p.SettledAt = timePtr(settledAt)
	return &p, nil
}

var _ ports.DriverPaymentRepository = (*DriverPaymentRepository)(nil)
