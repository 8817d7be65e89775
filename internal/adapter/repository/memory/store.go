package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/fleet_ledger/internal/core/domain"
	"github.com/srgjo27/fleet_ledger/internal/core/ports"
)

// Store keeps every entity in process memory. Update methods hold the lock
// across load, mutate and save, and mutate a copy so a failed mutation
// leaves the stored entity untouched.
type Store struct {
	mu sync.Mutex

	bookings  map[uuid.UUID]*domain.Booking
	drivers   map[uuid.UUID]*domain.Driver
	companies map[uuid.UUID]*domain.Company

	driverPayments     map[uuid.UUID]*domain.DriverPayment
	driverPaymentOrder []uuid.UUID

	payments []domain.Payment

	fuelEntries    map[uuid.UUID]*domain.FuelEntry
	fuelEntryOrder []uuid.UUID
}

func New() *Store {
	return &Store{
		bookings:       make(map[uuid.UUID]*domain.Booking),
		drivers:        make(map[uuid.UUID]*domain.Driver),
		companies:      make(map[uuid.UUID]*domain.Company),
		driverPayments: make(map[uuid.UUID]*domain.DriverPayment),
		fuelEntries:    make(map[uuid.UUID]*domain.FuelEntry),
	}
}

// Booking store

func (s *Store) CreateBooking(_ context.Context, booking *domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookings[booking.ID] = booking.Clone()
	return nil
}

func (s *Store) GetBooking(_ context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[bookingID]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return b.Clone(), nil
}

func (s *Store) UpdateBooking(_ context.Context, bookingID uuid.UUID, fn ports.BookingMutation) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.bookings[bookingID]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}

	next := current.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	next.UpdatedAt = time.Now()

	s.bookings[bookingID] = next
	return next.Clone(), nil
}

// Driver store

func (s *Store) CreateDriver(_ context.Context, driver *domain.Driver) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.drivers[driver.ID] = driver.Clone()
	return nil
}

func (s *Store) GetDriver(_ context.Context, driverID uuid.UUID) (*domain.Driver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drivers[driverID]
	if !ok {
		return nil, domain.ErrDriverNotFound
	}
	return d.Clone(), nil
}

func (s *Store) UpdateDriver(_ context.Context, driverID uuid.UUID, fn ports.DriverMutation) (*domain.Driver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.drivers[driverID]
	if !ok {
		return nil, domain.ErrDriverNotFound
	}

	next := current.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	next.UpdatedAt = time.Now()

	s.drivers[driverID] = next
	return next.Clone(), nil
}

// Driver payment store

func (s *Store) CreateDriverPayment(_ context.Context, payment *domain.DriverPayment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.driverPayments[payment.ID] = payment.Clone()
	s.driverPaymentOrder = append(s.driverPaymentOrder, payment.ID)
	return nil
}

func (s *Store) UpdateDriverPayment(_ context.Context, bookingID, paymentID uuid.UUID, fn ports.DriverPaymentMutation) (*domain.DriverPayment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.driverPayments[paymentID]
	if !ok || current.BookingID != bookingID {
		return nil, domain.ErrDriverPaymentNotFound
	}

	next := current.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}

	s.driverPayments[paymentID] = next
	return next.Clone(), nil
}

func (s *Store) DeleteDriverPayment(_ context.Context, bookingID, paymentID uuid.UUID) (*domain.DriverPayment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.driverPayments[paymentID]
	if !ok || current.BookingID != bookingID {
		return nil, domain.ErrDriverPaymentNotFound
	}

	delete(s.driverPayments, paymentID)
	s.driverPaymentOrder = slices.DeleteFunc(s.driverPaymentOrder, func(id uuid.UUID) bool {
		return id == paymentID
	})
	return current, nil
}

func (s *Store) ListDriverPaymentsByBooking(_ context.Context, bookingID uuid.UUID) ([]domain.DriverPayment, error) {
	return s.listDriverPayments(func(p *domain.DriverPayment) bool { return p.BookingID == bookingID }), nil
}

func (s *Store) ListDriverPaymentsByDriver(_ context.Context, driverID uuid.UUID) ([]domain.DriverPayment, error) {
	return s.listDriverPayments(func(p *domain.DriverPayment) bool { return p.DriverID == driverID }), nil
}

func (s *Store) listDriverPayments(match func(p *domain.DriverPayment) bool) []domain.DriverPayment {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]domain.DriverPayment, 0)
	for _, id := range s.driverPaymentOrder {
		if p := s.driverPayments[id]; match(p) {
			result = append(result, *p.Clone())
		}
	}
	return result
}

// Company store

func (s *Store) CreateCompany(_ context.Context, company *domain.Company) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := *company
	s.companies[company.ID] = &c
	return nil
}

func (s *Store) GetCompany(_ context.Context, companyID uuid.UUID) (*domain.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.companies[companyID]
	if !ok {
		return nil, domain.ErrCompanyNotFound
	}
	out := *c
	return &out, nil
}

func (s *Store) UpdateCompany(_ context.Context, companyID uuid.UUID, fn ports.CompanyMutation) (*domain.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.companies[companyID]
	if !ok {
		return nil, domain.ErrCompanyNotFound
	}

	next := *current
	if err := fn(&next); err != nil {
		return nil, err
	}
	next.UpdatedAt = time.Now()

	s.companies[companyID] = &next
	out := next
	return &out, nil
}

// Payment ledger

func (s *Store) CreatePayment(_ context.Context, payment *domain.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if payment.RelatedAdvanceID != nil {
		for _, p := range s.payments {
			if p.RelatedAdvanceID != nil && *p.RelatedAdvanceID == *payment.RelatedAdvanceID {
				return nil
			}
		}
	}

	s.payments = append(s.payments, *payment)
	return nil
}

func (s *Store) ListPayments(_ context.Context, entityType domain.EntityType, entityID uuid.UUID) ([]domain.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]domain.Payment, 0)
	for _, p := range s.payments {
		if p.EntityType == entityType && p.EntityID == entityID {
			result = append(result, p)
		}
	}
	return result, nil
}

// Fuel entry store

func (s *Store) CreateFuelEntry(_ context.Context, entry *domain.FuelEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fuelEntries[entry.ID] = entry.Clone()
	s.fuelEntryOrder = append(s.fuelEntryOrder, entry.ID)
	return nil
}

func (s *Store) GetFuelEntry(_ context.Context, entryID uuid.UUID) (*domain.FuelEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.fuelEntries[entryID]
	if !ok {
		return nil, domain.ErrFuelEntryNotFound
	}
	return f.Clone(), nil
}

func (s *Store) UpdateFuelEntry(_ context.Context, entryID uuid.UUID, fn ports.FuelEntryMutation) (*domain.FuelEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.fuelEntries[entryID]
	if !ok {
		return nil, domain.ErrFuelEntryNotFound
	}

	next := current.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}

	s.fuelEntries[entryID] = next
	return next.Clone(), nil
}

func (s *Store) ListFuelEntriesByVehicle(_ context.Context, vehicleID uuid.UUID) ([]domain.FuelEntry, error) {
	return s.listFuelEntries(func(f *domain.FuelEntry) bool { return f.VehicleID == vehicleID }), nil
}

func (s *Store) ListFuelEntriesByBooking(_ context.Context, bookingID uuid.UUID) ([]domain.FuelEntry, error) {
	return s.listFuelEntries(func(f *domain.FuelEntry) bool {
		return f.BookingID != nil && *f.BookingID == bookingID
	}), nil
}

func (s *Store) listFuelEntries(match func(f *domain.FuelEntry) bool) []domain.FuelEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]domain.FuelEntry, 0)
	for _, id := range s.fuelEntryOrder {
		if f := s.fuelEntries[id]; match(f) {
			result = append(result, *f.Clone())
		}
	}
	return result
}

var (
	_ ports.BookingRepository       = (*Store)(nil)
	_ ports.DriverRepository        = (*Store)(nil)
	_ ports.DriverPaymentRepository = (*Store)(nil)
	_ ports.CompanyRepository       = (*Store)(nil)
	_ ports.PaymentRepository       = (*Store)(nil)
	_ ports.FuelEntryRepository     = (*Store)(nil)
)
