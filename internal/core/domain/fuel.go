package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type FuelAddedBy string

const (
	FuelAddedBySelf   FuelAddedBy = "self"
	FuelAddedByDriver FuelAddedBy = "driver"
)

func (a FuelAddedBy) Valid() bool {
	return a == FuelAddedBySelf || a == FuelAddedByDriver
}

type FuelEntry struct {
	ID                 uuid.UUID       `json:"id"`
	VehicleID          uuid.UUID       `json:"vehicleId"`
	BookingID          *uuid.UUID      `json:"bookingId,omitempty"`
	AddedByType        FuelAddedBy     `json:"addedByType"`
	FillDate           time.Time       `json:"fillDate"`
	TotalTripKm        decimal.Decimal `json:"totalTripKm"`
	VehicleFuelAverage decimal.Decimal `json:"vehicleFuelAverage"`
	FuelQuantity       decimal.Decimal `json:"fuelQuantity"`
	FuelRate           decimal.Decimal `json:"fuelRate"`
	TotalAmount        decimal.Decimal `json:"totalAmount"`
	Comment            string          `json:"comment,omitempty"`
	IncludeInFinance   bool            `json:"includeInFinance"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

// FuelEntryUpdate is a partial edit of a fuel entry.
type FuelEntryUpdate struct {
	BookingID          *uuid.UUID
	AddedByType        *FuelAddedBy
	FillDate           *time.Time
	TotalTripKm        *decimal.Decimal
	VehicleFuelAverage *decimal.Decimal
	FuelQuantity       *decimal.Decimal
	FuelRate           *decimal.Decimal
	Comment            *string
	IncludeInFinance   *bool
}

// Recompute must run after every mutation so TotalAmount never drifts from
// quantity times rate.
func (f *FuelEntry) Recompute() {
	f.TotalAmount = f.FuelQuantity.Mul(f.FuelRate).Round(2)
}

func (f *FuelEntry) Apply(u FuelEntryUpdate, now time.Time) {
	if u.BookingID != nil {
		id := *u.BookingID
		f.BookingID = &id
	}
	if u.AddedByType != nil {
		f.AddedByType = *u.AddedByType
	}
	if u.FillDate != nil {
		f.FillDate = *u.FillDate
	}
	if u.TotalTripKm != nil {
		f.TotalTripKm = *u.TotalTripKm
	}
	if u.VehicleFuelAverage != nil {
		f.VehicleFuelAverage = *u.VehicleFuelAverage
	}
	if u.FuelQuantity != nil {
		f.FuelQuantity = *u.FuelQuantity
	}
	if u.FuelRate != nil {
		f.FuelRate = *u.FuelRate
	}
	if u.Comment != nil {
		f.Comment = *u.Comment
	}
	if u.IncludeInFinance != nil {
		f.IncludeInFinance = *u.IncludeInFinance
	}

	f.Recompute()
	f.UpdatedAt = now
}

// SuggestedMileage is the vehicle's recorded km-per-unit figure, suitable as
// the explicit mileage input of a fuel-basis driver payment.
func (f *FuelEntry) SuggestedMileage() (decimal.Decimal, bool) {
	if !f.VehicleFuelAverage.IsPositive() {
		return decimal.Zero, false
	}
	return f.VehicleFuelAverage, true
}

// FinanceTotal sums the entries flagged for inclusion in finance reports.
func FinanceTotal(entries []FuelEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if e.IncludeInFinance {
			total = total.Add(e.TotalAmount)
		}
	}
	return total
}

func (f *FuelEntry) Clone() *FuelEntry {
	c := *f
	c.BookingID = cloneUUID(f.BookingID)
	return &c
}
