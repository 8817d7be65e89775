package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentMode string

const (
	ModePerTrip   PaymentMode = "per-trip"
	ModeDaily     PaymentMode = "daily"
	ModeFuelBasis PaymentMode = "fuel-basis"
)

func (m PaymentMode) Valid() bool {
	switch m {
	case ModePerTrip, ModeDaily, ModeFuelBasis:
		return true
	}
	return false
}

// DriverPayment is what a booking owes its driver. For fuel-basis payments
// Amount mirrors ComputedAmount.
type DriverPayment struct {
	ID             uuid.UUID           `json:"id"`
	BookingID      uuid.UUID           `json:"bookingId"`
	DriverID       uuid.UUID           `json:"driverId"`
	Mode           PaymentMode         `json:"mode"`
	Amount         decimal.Decimal     `json:"amount"`
	FuelQuantity   decimal.NullDecimal `json:"fuelQuantity"`
	FuelRate       decimal.NullDecimal `json:"fuelRate"`
	ComputedAmount decimal.NullDecimal `json:"computedAmount"`
	DistanceKm     decimal.NullDecimal `json:"distanceKm"`
	Mileage        decimal.NullDecimal `json:"mileage"`
	Description    string              `json:"description,omitempty"`
	Settled        bool                `json:"settled"`
	SettledAt      *time.Time          `json:"settledAt,omitempty"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

// DriverPaymentUpdate carries the fields of a partial edit. Nil leaves the
// stored value untouched.
type DriverPaymentUpdate struct {
	Mode         *PaymentMode
	Amount       *decimal.Decimal
	FuelQuantity *decimal.Decimal
	FuelRate     *decimal.Decimal
	DistanceKm   *decimal.Decimal
	Mileage      *decimal.Decimal
	Description  *string
	Settle       bool
}

// DeriveFuelQuantity picks distance over mileage when both are usable and
// falls back to the supplied quantity. derived reports which branch won.
func DeriveFuelQuantity(distanceKm, mileage, fuelQuantity decimal.NullDecimal) (qty decimal.Decimal, derived bool) {
	if distanceKm.Valid && mileage.Valid && mileage.Decimal.IsPositive() {
		return distanceKm.Decimal.Div(mileage.Decimal), true
	}
	if fuelQuantity.Valid {
		return fuelQuantity.Decimal, false
	}
	return decimal.Zero, false
}

// Recompute re-derives the payable amount from the mode inputs.
func (p *DriverPayment) Recompute() error {
	switch p.Mode {
	case ModePerTrip, ModeDaily:
		if p.Amount.IsNegative() {
			return NewValidationError("amount", "must not be negative")
		}
		p.FuelQuantity = decimal.NullDecimal{}
		p.FuelRate = decimal.NullDecimal{}
		p.DistanceKm = decimal.NullDecimal{}
		p.Mileage = decimal.NullDecimal{}
		p.ComputedAmount = decimal.NullDecimal{}
		return nil

	case ModeFuelBasis:
		if !p.FuelRate.Valid {
			return NewValidationError("fuelRate", "required for fuel-basis payments")
		}

		var errs ValidationErrors
		for _, in := range []struct {
			field string
			value decimal.NullDecimal
		}{
			{"fuelRate", p.FuelRate},
			{"fuelQuantity", p.FuelQuantity},
			{"distanceKm", p.DistanceKm},
			{"mileage", p.Mileage},
		} {
			if in.value.Valid && in.value.Decimal.IsNegative() {
				errs = append(errs, ValidationError{Field: in.field, Message: "must not be negative"})
			}
		}
		if len(errs) > 0 {
			return errs
		}

		qty, derived := DeriveFuelQuantity(p.DistanceKm, p.Mileage, p.FuelQuantity)
		if derived {
			p.FuelQuantity = decimal.NewNullDecimal(qty)
		}

		computed := qty.Mul(p.FuelRate.Decimal).Round(2)
		p.ComputedAmount = decimal.NewNullDecimal(computed)
		p.Amount = computed
		return nil
	}

	return NewValidationError("mode", fmt.Sprintf("unknown payment mode %q", p.Mode))
}

// Apply merges a partial edit, re-running the derivation whenever a mode or
// amount input is touched, and settles when asked.
func (p *DriverPayment) Apply(u DriverPaymentUpdate, now time.Time) error {
	recompute := false

	if u.Mode != nil {
		p.Mode = *u.Mode
		recompute = true
	}
	if u.Amount != nil {
		p.Amount = *u.Amount
		recompute = true
	}
	if u.FuelQuantity != nil {
		p.FuelQuantity = decimal.NewNullDecimal(*u.FuelQuantity)
		recompute = true
	}
	if u.FuelRate != nil {
		p.FuelRate = decimal.NewNullDecimal(*u.FuelRate)
		recompute = true
	}
	if u.DistanceKm != nil {
		p.DistanceKm = decimal.NewNullDecimal(*u.DistanceKm)
		recompute = true
	}
	if u.Mileage != nil {
		p.Mileage = decimal.NewNullDecimal(*u.Mileage)
		recompute = true
	}
	if u.Description != nil {
		p.Description = *u.Description
	}

	if recompute {
		if err := p.Recompute(); err != nil {
			return err
		}
	}

	if u.Settle {
		p.Settle(now)
	}

	p.UpdatedAt = now
	return nil
}

// Settle is idempotent: the first call stamps SettledAt, later calls do
// nothing.
func (p *DriverPayment) Settle(now time.Time) bool {
	if p.Settled {
		return false
	}
	at := now
	p.Settled = true
	p.SettledAt = &at
	return true
}

func (p *DriverPayment) Clone() *DriverPayment {
	c := *p
	if p.SettledAt != nil {
		at := *p.SettledAt
		c.SettledAt = &at
	}
	return &c
}
