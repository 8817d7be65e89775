package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Advance is cash handed to a driver ahead of settlement. Settled only ever
// moves from false to true.
type Advance struct {
	ID          uuid.UUID       `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Settled     bool            `json:"settled"`
	SettledAt   *time.Time      `json:"settledAt,omitempty"`
	Description string          `json:"description,omitempty"`
}

type Driver struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone,omitempty"`
	LicenseNumber string    `json:"licenseNumber,omitempty"`
	Advances      []Advance `json:"advances"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (d *Driver) AddAdvance(amount decimal.Decimal, description string, now time.Time) Advance {
	adv := Advance{
		ID:          uuid.New(),
		Amount:      amount,
		Date:        now,
		Description: description,
	}
	d.Advances = append(d.Advances, adv)
	return adv
}

// SettleAdvance marks the advance settled. It returns the advance and true
// only when this call performed the flip; repeated or unknown ids are a
// no-op.
func (d *Driver) SettleAdvance(advanceID uuid.UUID, now time.Time) (Advance, bool) {
	for i := range d.Advances {
		adv := &d.Advances[i]
		if adv.ID != advanceID {
			continue
		}
		if adv.Settled {
			return *adv, false
		}
		settledAt := now
		adv.Settled = true
		adv.SettledAt = &settledAt
		return *adv, true
	}
	return Advance{}, false
}

func (d *Driver) PendingAdvances() decimal.Decimal {
	total := decimal.Zero
	for _, adv := range d.Advances {
		if !adv.Settled {
			total = total.Add(adv.Amount)
		}
	}
	return total
}

func (d *Driver) Clone() *Driver {
	c := *d
	c.Advances = make([]Advance, len(d.Advances))
	for i, adv := range d.Advances {
		if adv.SettledAt != nil {
			at := *adv.SettledAt
			adv.SettledAt = &at
		}
		c.Advances[i] = adv
	}
	return &c
}
