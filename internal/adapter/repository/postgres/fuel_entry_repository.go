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

const fuelEntryColumns = `id, vehicle_id, booking_id, added_by_type, fill_date, total_trip_km,
	vehicle_fuel_average, fuel_quantity, fuel_rate, total_amount, comment, include_in_finance,
	created_at, updated_at`

type FuelEntryRepository struct {
	db *sql.DB
}

func NewFuelEntryRepository(db *sql.DB) *FuelEntryRepository {
	return &FuelEntryRepository{db: db}
}

func (r *FuelEntryRepository) CreateFuelEntry(ctx context.Context, f *domain.FuelEntry) error {
	query := `
	INSERT INTO fuel_entries (` + fuelEntryColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.ExecContext(ctx, query,
		f.ID,
		f.VehicleID,
		nullUUID(f.BookingID),
		f.AddedByType,
		f.FillDate,
		f.TotalTripKm,
		f.VehicleFuelAverage,
		f.FuelQuantity,
		f.FuelRate,
		f.TotalAmount,
		f.Comment,
		f.IncludeInFinance,
		f.CreatedAt,
		f.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert fuel entry: %w", err)
	}

	return nil
}

func (r *FuelEntryRepository) GetFuelEntry(ctx context.Context, entryID uuid.UUID) (*domain.FuelEntry, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+fuelEntryColumns+` FROM fuel_entries WHERE id = $1`, entryID)
	return scanFuelEntry(row)
}

func (r *FuelEntryRepository) UpdateFuelEntry(ctx context.Context, entryID uuid.UUID, fn ports.FuelEntryMutation) (*domain.FuelEntry, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, `SELECT `+fuelEntryColumns+` FROM fuel_entries WHERE id = $1 FOR UPDATE`, entryID)
	f, err := scanFuelEntry(row)
	if err != nil {
		return nil, err
	}

	if err := fn(f); err != nil {
		return nil, err
	}

	query := `
	UPDATE fuel_entries
	SET booking_id = $2,
		added_by_type = $3,
		fill_date = $4,
		total_trip_km = $5,
		vehicle_fuel_average = $6,
		fuel_quantity = $7,
		fuel_rate = $8,
		total_amount = $9,
		comment = $10,
		include_in_finance = $11,
		updated_at = $12
	WHERE id = $1
	`

	_, err = tx.ExecContext(ctx, query,
		f.ID,
		nullUUID(f.BookingID),
		f.AddedByType,
		f.FillDate,
		f.TotalTripKm,
		f.VehicleFuelAverage,
		f.FuelQuantity,
		f.FuelRate,
		f.TotalAmount,
		f.Comment,
		f.IncludeInFinance,
		f.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update fuel entry %s: %w", entryID, err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return f, nil
}

func (r *FuelEntryRepository) ListFuelEntriesByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]domain.FuelEntry, error) {
	return r.list(ctx, `SELECT `+fuelEntryColumns+` FROM fuel_entries WHERE vehicle_id = $1 ORDER BY fill_date, id`, vehicleID)
}

func (r *FuelEntryRepository) ListFuelEntriesByBooking(ctx context.Context, bookingID uuid.UUID) ([]domain.FuelEntry, error) {
	return r.list(ctx, `SELECT `+fuelEntryColumns+` FROM fuel_entries WHERE booking_id = $1 ORDER BY fill_date, id`, bookingID)
}

func (r *FuelEntryRepository) list(ctx context.Context, query string, arg uuid.UUID) ([]domain.FuelEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	entries := []domain.FuelEntry{}
	for rows.Next() {
		f, err := scanFuelEntry(rows)
		if err != nil {
			return nil, err
		}

		entries = append(entries, *f)
	}

	return entries, rows.Err()
}

func scanFuelEntry(row rowScanner) (*domain.FuelEntry, error) {
	var f domain.FuelEntry
	var bookingID uuid.NullUUID

	err := row.Scan(
		&f.ID,
		&f.VehicleID,
		&bookingID,
		&f.AddedByType,
		&f.FillDate,
		&f.TotalTripKm,
		&f.VehicleFuelAverage,
		&f.FuelQuantity,
		&f.FuelRate,
		&f.TotalAmount,
		&f.Comment,
		&f.IncludeInFinance,
		&f.CreatedAt,
		&f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFuelEntryNotFound
		}
		return nil, err
	}

	f.BookingID = uuidPtr(bookingID)
	return &f, nil
}

var _ ports.FuelEntryRepository = (*FuelEntryRepository)(nil)
