package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/fleet_ledger/internal/core/domain"
	"github.com/srgjo27/fleet_ledger/internal/core/ports"
)

const bookingColumns = `id, customer_id, company_id, pickup_location, drop_location, start_at, end_at,
	vehicle_id, driver_id, tariff_rate, total_amount, advance_received, balance, status, billed,
	expenses, payments, status_history, created_at, updated_at`

type BookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) CreateBooking(ctx context.Context, booking *domain.Booking) error {
	expenses, err := encodeList(booking.Expenses)
	if err != nil {
		return err
	}
	payments, err := encodeList(booking.Payments)
	if err != nil {
		return err
	}
	history, err := encodeList(booking.StatusHistory)
	if err != nil {
		return err
	}

	query := `
	INSERT INTO bookings (` + bookingColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	`

	_, err = r.db.ExecContext(ctx, query,
		booking.ID,
		booking.CustomerID,
		nullUUID(booking.CompanyID),
		booking.PickupLocation,
		booking.DropLocation,
		booking.StartAt,
		nullTime(booking.EndAt),
		nullUUID(booking.VehicleID),
		nullUUID(booking.DriverID),
		booking.TariffRate,
		booking.TotalAmount,
		booking.AdvanceReceived,
		booking.Balance,
		booking.Status,
		booking.Billed,
		expenses,
		payments,
		history,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetBooking(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, bookingID)
	return scanBooking(row)
}

// UpdateBooking locks the row for the duration of fn so concurrent appends
// to the same booking serialize.
func (r *BookingRepository) UpdateBooking(ctx context.Context, bookingID uuid.UUID, fn ports.BookingMutation) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1 FOR UPDATE`, bookingID)
	booking, err := scanBooking(row)
	if err != nil {
		return nil, err
	}

	if err := fn(booking); err != nil {
		return nil, err
	}
	booking.UpdatedAt = time.Now()

	expenses, err := encodeList(booking.Expenses)
	if err != nil {
		return nil, err
	}
	payments, err := encodeList(booking.Payments)
	if err != nil {
		return nil, err
	}
	history, err := encodeList(booking.StatusHistory)
	if err != nil {
		return nil, err
	}

	query := `
	UPDATE bookings
	SET balance = $2,
		status = $3,
		billed = $4,
		expenses = $5,
		payments = $6,
		status_history = $7,
		updated_at = $8
	WHERE id = $1
	`

	_, err = tx.ExecContext(ctx, query,
		booking.ID,
		booking.Balance,
		booking.Status,
		booking.Billed,
		expenses,
		payments,
		history,
		booking.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update booking %s: %w", bookingID, err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return booking, nil
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var companyID, vehicleID, driverID uuid.NullUUID
	var endAt sql.NullTime
	var expenses, payments, history []byte

	err := row.Scan(
		&b.ID,
		&b.CustomerID,
		&companyID,
		&b.PickupLocation,
		&b.DropLocation,
		&b.StartAt,
		&endAt,
		&vehicleID,
		&driverID,
		&b.TariffRate,
		&b.TotalAmount,
		&b.AdvanceReceived,
		&b.Balance,
		&b.Status,
		&b.Billed,
		&expenses,
		&payments,
		&history,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}

	b.CompanyID = uuidPtr(companyID)
	b.VehicleID = uuidPtr(vehicleID)
	b.DriverID = uuidPtr(driverID)
	b.EndAt = timePtr(endAt)

	b.Expenses = []domain.Expense{}
	b.Payments = []domain.BookingPayment{}
	if err := decodeList(expenses, &b.Expenses); err != nil {
		return nil, err
	}
	if err := decodeList(payments, &b.Payments); err != nil {
		return nil, err
	}
	if err := decodeList(history, &b.StatusHistory); err != nil {
		return nil, err
	}

	return &b, nil
}

var _ ports.BookingRepository = (*BookingRepository)(nil)
