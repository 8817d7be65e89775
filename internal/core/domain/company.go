package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Company carries a running outstanding counter. It is moved only by
// discrete payment events and is never reconciled against booking totals.
type Company struct {
	ID                uuid.UUID       `json:"id"`
	Name              string          `json:"name"`
	ContactEmail      string          `json:"contactEmail,omitempty"`
	OutstandingAmount decimal.Decimal `json:"outstandingAmount"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// ApplyPayment lowers the outstanding amount, floored at zero. Any excess
// over the current outstanding value is absorbed.
func (c *Company) ApplyPayment(amount decimal.Decimal) {
	c.OutstandingAmount = decimal.Max(decimal.Zero, c.OutstandingAmount.Sub(amount))
}

type EntityType string

const (
	EntityCustomer EntityType = "customer"
	EntityDriver   EntityType = "driver"
)

type PaymentType string

const (
	PaymentReceived PaymentType = "received"
	PaymentPaid     PaymentType = "paid"
)

// Payment is an entity-level accounting event between the business and a
// counterparty. It is distinct from BookingPayment, which only details cash
// collected on one trip.
type Payment struct {
	ID               uuid.UUID       `json:"id"`
	EntityType       EntityType      `json:"entityType"`
	EntityID         uuid.UUID       `json:"entityId"`
	Type             PaymentType     `json:"type"`
	Amount           decimal.Decimal `json:"amount"`
	Description      string          `json:"description,omitempty"`
	RelatedAdvanceID *uuid.UUID      `json:"relatedAdvanceId,omitempty"`
	Date             time.Time       `json:"date"`
}
