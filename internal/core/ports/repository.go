package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/srgjo27/fleet_ledger/internal/core/domain"
)

// Mutation funcs passed to Update methods run inside the owning entity's
// read-modify-write. Returning an error discards the change.
type (
	BookingMutation       func(b *domain.Booking) error
	DriverMutation        func(d *domain.Driver) error
	CompanyMutation       func(c *domain.Company) error
	DriverPaymentMutation func(p *domain.DriverPayment) error
	FuelEntryMutation     func(f *domain.FuelEntry) error
)

type BookingRepository interface {
	CreateBooking(ctx context.Context, booking *domain.Booking) error
	GetBooking(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error)
	UpdateBooking(ctx context.Context, bookingID uuid.UUID, fn BookingMutation) (*domain.Booking, error)
}

type DriverRepository interface {
	CreateDriver(ctx context.Context, driver *domain.Driver) error
	GetDriver(ctx context.Context, driverID uuid.UUID) (*domain.Driver, error)
	UpdateDriver(ctx context.Context, driverID uuid.UUID, fn DriverMutation) (*domain.Driver, error)
}

type DriverPaymentRepository interface {
	CreateDriverPayment(ctx context.Context, payment *domain.DriverPayment) error
	UpdateDriverPayment(ctx context.Context, bookingID, paymentID uuid.UUID, fn DriverPaymentMutation) (*domain.DriverPayment, error)
	DeleteDriverPayment(ctx context.Context, bookingID, paymentID uuid.UUID) (*domain.DriverPayment, error)
	ListDriverPaymentsByBooking(ctx context.Context, bookingID uuid.UUID) ([]domain.DriverPayment, error)
	ListDriverPaymentsByDriver(ctx context.Context, driverID uuid.UUID) ([]domain.DriverPayment, error)
}

type CompanyRepository interface {
	CreateCompany(ctx context.Context, company *domain.Company) error
	GetCompany(ctx context.Context, companyID uuid.UUID) (*domain.Company, error)
	UpdateCompany(ctx context.Context, companyID uuid.UUID, fn CompanyMutation) (*domain.Company, error)
}

// PaymentRepository is the append-only entity-level payment ledger.
type PaymentRepository interface {
	CreatePayment(ctx context.Context, payment *domain.Payment) error
	ListPayments(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) ([]domain.Payment, error)
}

type FuelEntryRepository interface {
	CreateFuelEntry(ctx context.Context, entry *domain.FuelEntry) error
	GetFuelEntry(ctx context.Context, entryID uuid.UUID) (*domain.FuelEntry, error)
	UpdateFuelEntry(ctx context.Context, entryID uuid.UUID, fn FuelEntryMutation) (*domain.FuelEntry, error)
	ListFuelEntriesByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]domain.FuelEntry, error)
	ListFuelEntriesByBooking(ctx context.Context, bookingID uuid.UUID) ([]domain.FuelEntry, error)
}

// StatementCache holds rendered driver finance statements. Entries are
// keyed by a per-driver generation: readers take the generation before
// loading from storage and store under it, writers bump it after they
// commit, so a statement built from pre-write data is never served again.
type StatementCache interface {
	Generation(ctx context.Context, driverID uuid.UUID) (int64, error)
	GetStatement(ctx context.Context, driverID uuid.UUID, gen int64) (stmt *domain.DriverStatement, found bool, err error)
	SetStatement(ctx context.Context, stmt *domain.DriverStatement, gen int64) error
	InvalidateStatement(ctx context.Context, driverID uuid.UUID) error
}
