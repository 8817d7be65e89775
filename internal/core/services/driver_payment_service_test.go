package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/srgjo27/fleet_ledger/internal/adapter/cache"
	"github.com/srgjo27/fleet_ledger/internal/core/domain"
	"github.com/srgjo27/fleet_ledger/internal/core/ports"
	"github.com/srgjo27/fleet_ledger/internal/core/ports/mocks"
	"github.com/srgjo27/fleet_ledger/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type driverPaymentDeps struct {
	bookings *mocks.BookingRepository
	drivers  *mocks.DriverRepository
	payments *mocks.DriverPaymentRepository
	cache    *mocks.StatementCache
	service  *services.DriverPaymentService
}

func newDriverPaymentDeps(t *testing.T) driverPaymentDeps {
	d := driverPaymentDeps{
		bookings: mocks.NewBookingRepository(t),
		drivers:  mocks.NewDriverRepository(t),
		payments: mocks.NewDriverPaymentRepository(t),
		cache:    mocks.NewStatementCache(t),
	}
	d.service = services.NewDriverPaymentService(d.bookings, d.drivers, d.payments, d.cache, zap.NewNop())
	return d
}

func mutateDriverPayment(existing *domain.DriverPayment) func(context.Context, uuid.UUID, uuid.UUID, ports.DriverPaymentMutation) (*domain.DriverPayment, error) {
	return func(_ context.Context, _, _ uuid.UUID, fn ports.DriverPaymentMutation) (*domain.DriverPayment, error) {
		p := existing.Clone()
		if err := fn(p); err != nil {
			return nil, err
		}
		return p, nil
	}
}

func dec(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func TestAddDriverPayment_FuelBasisDerivesQuantityFromDistance(t *testing.T) {
	mockBookingRepo := mocks.NewBookingRepository(t)
	mockDriverRepo := mocks.NewDriverRepository(t)
	mockPaymentRepo := mocks.NewDriverPaymentRepository(t)
	db, mockRedis := redismock.NewClientMock()

	service := services.NewDriverPaymentService(mockBookingRepo, mockDriverRepo, mockPaymentRepo,
		cache.NewRedisStatementCache(db, time.Minute), zap.NewNop())

	ctx := context.Background()
	booking := seedBooking(domain.BookingOngoing)
	driver := &domain.Driver{ID: uuid.New(), Name: "Ravi"}

	mockBookingRepo.On("GetBooking", ctx, booking.ID).Return(booking, nil)
	mockDriverRepo.On("GetDriver", ctx, driver.ID).Return(driver, nil)
	mockPaymentRepo.On("CreateDriverPayment", ctx, mock.AnythingOfType("*domain.DriverPayment")).Return(nil)
	mockRedis.ExpectIncr(cache.GenerationKey(driver.ID)).SetVal(1)

	payment, err := service.AddDriverPayment(ctx, booking.ID, services.AddDriverPaymentRequest{
		DriverID:   driver.ID,
		Mode:       "fuel-basis",
		DistanceKm: dec(250),
		Mileage:    dec(12.5),
		FuelRate:   dec(100),
	})

	require.NoError(t, err)
	assert.True(t, payment.FuelQuantity.Valid)
	assert.True(t, payment.FuelQuantity.Decimal.Equal(decimal.NewFromInt(20)))
	assert.True(t, payment.ComputedAmount.Decimal.Equal(decimal.NewFromInt(2000)))
	assert.True(t, payment.Amount.Equal(payment.ComputedAmount.Decimal))
	assert.False(t, payment.Settled)

	if err := mockRedis.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestAddDriverPayment_FuelBasisQuantityFallbacks(t *testing.T) {
	cases := []struct {
		name     string
		req      services.AddDriverPaymentRequest
		quantity decimal.Decimal
		amount   decimal.Decimal
	}{
		{
			name:     "explicit quantity",
			req:      services.AddDriverPaymentRequest{FuelQuantity: dec(15), FuelRate: dec(90)},
			quantity: decimal.NewFromInt(15),
			amount:   decimal.NewFromInt(1350),
		},
		{
			name:     "zero mileage falls back to quantity",
			req:      services.AddDriverPaymentRequest{DistanceKm: dec(100), Mileage: dec(0), FuelQuantity: dec(10), FuelRate: dec(50)},
			quantity: decimal.NewFromInt(10),
			amount:   decimal.NewFromInt(500),
		},
		{
			name:     "no quantity and no distance computes zero",
			req:      services.AddDriverPaymentRequest{FuelRate: dec(95)},
			quantity: decimal.Zero,
			amount:   decimal.Zero,
		},
		{
			name:     "amount is overwritten by computed value",
			req:      services.AddDriverPaymentRequest{Amount: dec(9999), FuelQuantity: dec(2.255), FuelRate: dec(10)},
			quantity: decimal.NewFromFloat(2.255),
			amount:   decimal.RequireFromString("22.55"),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDriverPaymentDeps(t)
			ctx := context.Background()
			booking := seedBooking(domain.BookingOngoing)
			driverID := uuid.New()

			d.bookings.On("GetBooking", ctx, booking.ID).Return(booking, nil)
			d.drivers.On("GetDriver", ctx, driverID).Return(&domain.Driver{ID: driverID}, nil)
			d.payments.On("CreateDriverPayment", ctx, mock.Anything).Return(nil)
			d.cache.On("InvalidateStatement", ctx, driverID).Return(nil)

			req := tc.req
			req.DriverID = driverID
			req.Mode = "fuel-basis"

			payment, err := d.service.AddDriverPayment(ctx, booking.ID, req)

			require.NoError(t, err)
			assert.True(t, payment.FuelQuantity.Decimal.Equal(tc.quantity), payment.FuelQuantity.Decimal.String())
			assert.True(t, payment.Amount.Equal(tc.amount), payment.Amount.String())
			assert.True(t, payment.ComputedAmount.Valid)
		})
	}
}

func TestAddDriverPayment_PerTripDropsFuelInputs(t *testing.T) {
	d := newDriverPaymentDeps(t)
	ctx := context.Background()
	booking := seedBooking(domain.BookingOngoing)
	driverID := uuid.New()

	d.bookings.On("GetBooking", ctx, booking.ID).Return(booking, nil)
	d.drivers.On("GetDriver", ctx, driverID).Return(&domain.Driver{ID: driverID}, nil)
	d.payments.On("CreateDriverPayment", ctx, mock.Anything).Return(nil)
	d.cache.On("InvalidateStatement", ctx, driverID).Return(nil)

	payment, err := d.service.AddDriverPayment(ctx, booking.ID, services.AddDriverPaymentRequest{
		DriverID: driverID,
		Mode:     "per-trip",
		Amount:   dec(800),
		FuelRate: dec(90),
	})

	require.NoError(t, err)
	assert.True(t, payment.Amount.Equal(decimal.NewFromInt(800)))
	assert.False(t, payment.FuelRate.Valid)
	assert.False(t, payment.ComputedAmount.Valid)
}

func TestAddDriverPayment_Fail_Validation(t *testing.T) {
	cases := []struct {
		name  string
		req   services.AddDriverPaymentRequest
		field string
	}{
		{"fuel-basis without rate", services.AddDriverPaymentRequest{Mode: "fuel-basis", FuelQuantity: dec(15)}, "fuelRate"},
		{"daily without amount", services.AddDriverPaymentRequest{Mode: "daily"}, "amount"},
		{"unknown mode", services.AddDriverPaymentRequest{Mode: "hourly", Amount: dec(10)}, "mode"},
		{"negative distance", services.AddDriverPaymentRequest{Mode: "fuel-basis", FuelRate: dec(1), DistanceKm: dec(-3)}, "distanceKm"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDriverPaymentDeps(t)
			req := tc.req
			req.DriverID = uuid.New()

			payment, err := d.service.AddDriverPayment(context.Background(), uuid.New(), req)

			assert.Nil(t, payment)
			require.True(t, domain.IsValidation(err), "%v", err)
			assert.Equal(t, tc.field, domain.FieldErrors(err)[0].Field)
		})
	}
}

func TestAddDriverPayment_Fail_UnknownBooking(t *testing.T) {
	d := newDriverPaymentDeps(t)
	ctx := context.Background()
	bookingID := uuid.New()

	d.bookings.On("GetBooking", ctx, bookingID).Return(nil, domain.ErrBookingNotFound)

	_, err := d.service.AddDriverPayment(ctx, bookingID, services.AddDriverPaymentRequest{
		DriverID: uuid.New(),
		Mode:     "daily",
		Amount:   dec(600),
	})

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	d.drivers.AssertNotCalled(t, "GetDriver", mock.Anything, mock.Anything)
	d.payments.AssertNotCalled(t, "CreateDriverPayment", mock.Anything, mock.Anything)
}

func TestAddDriverPayment_CacheFailureIsNotSurfaced(t *testing.T) {
	d := newDriverPaymentDeps(t)
	ctx := context.Background()
	booking := seedBooking(domain.BookingOngoing)
	driverID := uuid.New()

	d.bookings.On("GetBooking", ctx, booking.ID).Return(booking, nil)
	d.drivers.On("GetDriver", ctx, driverID).Return(&domain.Driver{ID: driverID}, nil)
	d.payments.On("CreateDriverPayment", ctx, mock.Anything).Return(nil)
	d.cache.On("InvalidateStatement", ctx, driverID).Return(errors.New("redis down"))

	payment, err := d.service.AddDriverPayment(ctx, booking.ID, services.AddDriverPaymentRequest{
		DriverID: driverID,
		Mode:     "daily",
		Amount:   dec(600),
	})

	require.NoError(t, err)
	assert.NotNil(t, payment)
}

func fuelBasisPayment(bookingID, driverID uuid.UUID) *domain.DriverPayment {
	return &domain.DriverPayment{
		ID:             uuid.New(),
		BookingID:      bookingID,
		DriverID:       driverID,
		Mode:           domain.ModeFuelBasis,
		Amount:         decimal.NewFromInt(1350),
		FuelQuantity:   decimal.NewNullDecimal(decimal.NewFromInt(15)),
		FuelRate:       decimal.NewNullDecimal(decimal.NewFromInt(90)),
		ComputedAmount: decimal.NewNullDecimal(decimal.NewFromInt(1350)),
		CreatedAt:      fixedNow,
		UpdatedAt:      fixedNow,
	}
}

func TestUpdateDriverPayment_RateOnlyRecomputes(t *testing.T) {
	d := newDriverPaymentDeps(t)
	ctx := context.Background()
	existing := fuelBasisPayment(uuid.New(), uuid.New())

	d.payments.On("UpdateDriverPayment", ctx, existing.BookingID, existing.ID, mock.Anything).Return(mutateDriverPayment(existing))
	d.cache.On("InvalidateStatement", ctx, existing.DriverID).Return(nil)

	payment, err := d.service.UpdateDriverPayment(ctx, existing.BookingID, existing.ID, services.UpdateDriverPaymentRequest{
		FuelRate: dec(100),
	})

	require.NoError(t, err)
	assert.True(t, payment.FuelQuantity.Decimal.Equal(decimal.NewFromInt(15)))
	assert.True(t, payment.ComputedAmount.Decimal.Equal(decimal.NewFromInt(1500)))
	assert.True(t, payment.Amount.Equal(decimal.NewFromInt(1500)))
}

func TestUpdateDriverPayment_SettleIsIdempotent(t *testing.T) {
	d := newDriverPaymentDeps(t)
	ctx := context.Background()
	existing := fuelBasisPayment(uuid.New(), uuid.New())
	firstSettle := fixedNow.Add(-time.Hour)
	existing.Settled = true
	existing.SettledAt = &firstSettle

	d.payments.On("UpdateDriverPayment", ctx, existing.BookingID, existing.ID, mock.Anything).Return(mutateDriverPayment(existing))
	d.cache.On("InvalidateStatement", ctx, existing.DriverID).Return(nil)

	payment, err := d.service.UpdateDriverPayment(ctx, existing.BookingID, existing.ID, services.UpdateDriverPaymentRequest{Settle: true})

	require.NoError(t, err)
	assert.True(t, payment.Settled)
	require.NotNil(t, payment.SettledAt)
	assert.Equal(t, firstSettle, *payment.SettledAt)
	assert.True(t, payment.Amount.Equal(decimal.NewFromInt(1350)))
}

func TestUpdateDriverPayment_Fail_SwitchToFuelBasisWithoutRate(t *testing.T) {
	d := newDriverPaymentDeps(t)
	ctx := context.Background()
	existing := &domain.DriverPayment{
		ID:        uuid.New(),
		BookingID: uuid.New(),
		DriverID:  uuid.New(),
		Mode:      domain.ModePerTrip,
		Amount:    decimal.NewFromInt(800),
	}
	mode := "fuel-basis"

	d.payments.On("UpdateDriverPayment", ctx, existing.BookingID, existing.ID, mock.Anything).Return(mutateDriverPayment(existing))

	payment, err := d.service.UpdateDriverPayment(ctx, existing.BookingID, existing.ID, services.UpdateDriverPaymentRequest{Mode: &mode})

	assert.Nil(t, payment)
	require.True(t, domain.IsValidation(err))
	assert.Equal(t, "fuelRate", domain.FieldErrors(err)[0].Field)
	d.cache.AssertNotCalled(t, "InvalidateStatement", mock.Anything, mock.Anything)
}

func TestDeleteDriverPayment_InvalidatesDriverStatement(t *testing.T) {
	d := newDriverPaymentDeps(t)
	ctx := context.Background()
	existing := fuelBasisPayment(uuid.New(), uuid.New())

	d.payments.On("DeleteDriverPayment", ctx, existing.BookingID, existing.ID).Return(existing, nil)
	d.cache.On("InvalidateStatement", ctx, existing.DriverID).Return(nil)

	err := d.service.DeleteDriverPayment(ctx, existing.BookingID, existing.ID)

	assert.NoError(t, err)
}

func TestDeleteDriverPayment_Fail_NotFound(t *testing.T) {
	d := newDriverPaymentDeps(t)
	ctx := context.Background()
	bookingID, paymentID := uuid.New(), uuid.New()

	d.payments.On("DeleteDriverPayment", ctx, bookingID, paymentID).Return(nil, domain.ErrDriverPaymentNotFound)

	err := d.service.DeleteDriverPayment(ctx, bookingID, paymentID)

	assert.True(t, domain.IsNotFound(err))
}

func TestDriverStatement_CacheHitSkipsRepositories(t *testing.T) {
	d := newDriverPaymentDeps(t)
	ctx := context.Background()
	driverID := uuid.New()
	cached := &domain.DriverStatement{DriverID: driverID, DriverName: "Ravi"}

	d.cache.On("Generation", ctx, driverID).Return(int64(4), nil)
	d.cache.On("GetStatement", ctx, driverID, int64(4)).Return(cached, true, nil)

	stmt, err := d.service.DriverStatement(ctx, driverID)

	require.NoError(t, err)
	assert.Same(t, cached, stmt)
	d.drivers.AssertNotCalled(t, "GetDriver", mock.Anything, mock.Anything)
}

func TestDriverStatement_BuildsAndCachesOnMiss(t *testing.T) {
	d := newDriverPaymentDeps(t)
	ctx := context.Background()

	driver := &domain.Driver{ID: uuid.New(), Name: "Ravi"}
	driver.AddAdvance(decimal.NewFromInt(300), "float", fixedNow)

	booking := seedBooking(domain.BookingCompleted)
	goneBookingID := uuid.New()

	settled := fuelBasisPayment(booking.ID, driver.ID)
	settled.Settle(fixedNow)
	open := fuelBasisPayment(booking.ID, driver.ID)
	orphan := fuelBasisPayment(goneBookingID, driver.ID)

	d.cache.On("Generation", ctx, driver.ID).Return(int64(7), nil)
	d.cache.On("GetStatement", ctx, driver.ID, int64(7)).Return(nil, false, errors.New("redis down"))
	d.drivers.On("GetDriver", ctx, driver.ID).Return(driver, nil)
	d.payments.On("ListDriverPaymentsByDriver", ctx, driver.ID).Return([]domain.DriverPayment{*settled, *open, *orphan}, nil)
	d.bookings.On("GetBooking", ctx, booking.ID).Return(booking, nil).Once()
	d.bookings.On("GetBooking", ctx, goneBookingID).Return(nil, domain.ErrBookingNotFound).Once()
	d.cache.On("SetStatement", ctx, mock.AnythingOfType("*domain.DriverStatement"), int64(7)).Return(nil)

	stmt, err := d.service.DriverStatement(ctx, driver.ID)

	require.NoError(t, err)
	require.Len(t, stmt.Payments, 3)
	assert.Equal(t, "Airport - Harbour", stmt.Payments[0].BookingRoute)
	assert.Equal(t, "Airport - Harbour", stmt.Payments[1].BookingRoute)
	assert.Empty(t, stmt.Payments[2].BookingRoute)
	assert.True(t, stmt.TotalAmount.Equal(decimal.NewFromInt(4050)))
	assert.True(t, stmt.SettledAmount.Equal(decimal.NewFromInt(1350)))
	assert.True(t, stmt.UnsettledAmount.Equal(decimal.NewFromInt(2700)))
	assert.True(t, stmt.PendingAdvances.Equal(decimal.NewFromInt(300)))
}

func TestListForBooking_Fail_UnknownBooking(t *testing.T) {
	d := newDriverPaymentDeps(t)
	ctx := context.Background()
	bookingID := uuid.New()

	d.bookings.On("GetBooking", ctx, bookingID).Return(nil, domain.ErrBookingNotFound)

	_, err := d.service.ListForBooking(ctx, bookingID)

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}
