package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/srgjo27/fleet_ledger/internal/adapter/repository/postgres"
	"github.com/srgjo27/fleet_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fuelEntryCols = []string{
	"id", "vehicle_id", "booking_id", "added_by_type", "fill_date", "total_trip_km",
	"vehicle_fuel_average", "fuel_quantity", "fuel_rate", "total_amount", "comment", "include_in_finance",
	"created_at", "updated_at",
}

func TestListFuelEntriesByBooking(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := postgres.NewFuelEntryRepository(db)
	bookingID := uuid.New()
	vehicleID := uuid.New()
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT (.+) FROM fuel_entries WHERE booking_id = \$1 ORDER BY fill_date, id`).
		WithArgs(bookingID).
		WillReturnRows(sqlmock.NewRows(fuelEntryCols).
			AddRow(uuid.NewString(), vehicleID.String(), bookingID.String(), "driver", now,
				"320", "12.5", "25.6", "95", "2432", "", true, now, now).
			AddRow(uuid.NewString(), vehicleID.String(), bookingID.String(), "self", now.Add(time.Hour),
				"0", "0", "10", "100", "1000", "top-up", false, now, now))

	entries, err := repo.ListFuelEntriesByBooking(context.Background(), bookingID)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.FuelAddedByDriver, entries[0].AddedByType)
	if assert.NotNil(t, entries[0].BookingID) {
		assert.Equal(t, bookingID, *entries[0].BookingID)
	}
	assert.True(t, domain.FinanceTotal(entries).Equal(decimal.NewFromInt(2432)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetFuelEntry_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := postgres.NewFuelEntryRepository(db)
	entryID := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM fuel_entries WHERE id = \$1`).
		WithArgs(entryID).
		WillReturnRows(sqlmock.NewRows(fuelEntryCols))

	entry, err := repo.GetFuelEntry(context.Background(), entryID)

	assert.Nil(t, entry)
	assert.ErrorIs(t, err, domain.ErrFuelEntryNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
