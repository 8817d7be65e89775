package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/srgjo27/fleet_ledger/internal/core/domain"
	"github.com/srgjo27/fleet_ledger/internal/core/ports"
)

type CreateFuelEntryRequest struct {
	VehicleID          uuid.UUID       `json:"vehicleId" validate:"required"`
	BookingID          *uuid.UUID      `json:"bookingId"`
	AddedByType        string          `json:"addedByType" validate:"required,oneof=self driver"`
	FillDate           time.Time       `json:"fillDate" validate:"required"`
	TotalTripKm        decimal.Decimal `json:"totalTripKm" validate:"gte=0"`
	VehicleFuelAverage decimal.Decimal `json:"vehicleFuelAverage" validate:"gte=0"`
	FuelQuantity       decimal.Decimal `json:"fuelQuantity" validate:"gte=0"`
	FuelRate           decimal.Decimal `json:"fuelRate" validate:"gte=0"`
	Comment            string          `json:"comment"`
	IncludeInFinance   bool            `json:"includeInFinance"`
}

type UpdateFuelEntryRequest struct {
	BookingID          *uuid.UUID       `json:"bookingId"`
	AddedByType        *string          `json:"addedByType" validate:"omitempty,oneof=self driver"`
	FillDate           *time.Time       `json:"fillDate"`
	TotalTripKm        *decimal.Decimal `json:"totalTripKm" validate:"omitempty,gte=0"`
	VehicleFuelAverage *decimal.Decimal `json:"vehicleFuelAverage" validate:"omitempty,gte=0"`
	FuelQuantity       *decimal.Decimal `json:"fuelQuantity" validate:"omitempty,gte=0"`
	FuelRate           *decimal.Decimal `json:"fuelRate" validate:"omitempty,gte=0"`
	Comment            *string          `json:"comment"`
	IncludeInFinance   *bool            `json:"includeInFinance"`
}

func (r UpdateFuelEntryRequest) toUpdate() domain.FuelEntryUpdate {
	u := domain.FuelEntryUpdate{
		BookingID:          r.BookingID,
		FillDate:           r.FillDate,
		TotalTripKm:        r.TotalTripKm,
		VehicleFuelAverage: r.VehicleFuelAverage,
		FuelQuantity:       r.FuelQuantity,
		FuelRate:           r.FuelRate,
		Comment:            r.Comment,
		IncludeInFinance:   r.IncludeInFinance,
	}
	if r.AddedByType != nil {
		by := domain.FuelAddedBy(*r.AddedByType)
		u.AddedByType = &by
	}
	return u
}

type FuelService struct {
	fuelRepo ports.FuelEntryRepository
	log      *zap.Logger
	now      func() time.Time
}

func NewFuelService(fuelRepo ports.FuelEntryRepository, log *zap.Logger) *FuelService {
	return &FuelService{fuelRepo: fuelRepo, log: log, now: time.Now}
}

func (s *FuelService) CreateFuelEntry(ctx context.Context, req CreateFuelEntryRequest) (*domain.FuelEntry, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	now := s.now()
	entry := &domain.FuelEntry{
		ID:                 uuid.New(),
		VehicleID:          req.VehicleID,
		BookingID:          req.BookingID,
		AddedByType:        domain.FuelAddedBy(req.AddedByType),
		FillDate:           req.FillDate,
		TotalTripKm:        req.TotalTripKm,
		VehicleFuelAverage: req.VehicleFuelAverage,
		FuelQuantity:       req.FuelQuantity,
		FuelRate:           req.FuelRate,
		Comment:            req.Comment,
		IncludeInFinance:   req.IncludeInFinance,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	entry.Recompute()

	if err := s.fuelRepo.CreateFuelEntry(ctx, entry); err != nil {
		return nil, err
	}

	s.log.Info("fuel entry created",
		zap.Stringer("fuel_entry_id", entry.ID),
		zap.Stringer("vehicle_id", entry.VehicleID),
		zap.String("total_amount", entry.TotalAmount.String()),
	)
	return entry, nil
}

func (s *FuelService) UpdateFuelEntry(ctx context.Context, entryID uuid.UUID, req UpdateFuelEntryRequest) (*domain.FuelEntry, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	update := req.toUpdate()
	entry, err := s.fuelRepo.UpdateFuelEntry(ctx, entryID, func(f *domain.FuelEntry) error {
		f.Apply(update, s.now())
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("fuel entry updated",
		zap.Stringer("fuel_entry_id", entryID),
		zap.String("total_amount", entry.TotalAmount.String()),
	)
	return entry, nil
}

func (s *FuelService) GetFuelEntry(ctx context.Context, entryID uuid.UUID) (*domain.FuelEntry, error) {
	return s.fuelRepo.GetFuelEntry(ctx, entryID)
}

func (s *FuelService) ListForVehicle(ctx context.Context, vehicleID uuid.UUID) ([]domain.FuelEntry, error) {
	return s.fuelRepo.ListFuelEntriesByVehicle(ctx, vehicleID)
}

// ListForBooking returns the booking's fill-ups and the total of those
// flagged for finance.
func (s *FuelService) ListForBooking(ctx context.Context, bookingID uuid.UUID) ([]domain.FuelEntry, decimal.Decimal, error) {
	entries, err := s.fuelRepo.ListFuelEntriesByBooking(ctx, bookingID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	return entries, domain.FinanceTotal(entries), nil
}
