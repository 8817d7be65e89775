package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultChangedBy is recorded on status changes submitted without an actor.
const DefaultChangedBy = "System"

type ExpenseType string

const (
	ExpenseFuel    ExpenseType = "fuel"
	ExpenseToll    ExpenseType = "toll"
	ExpenseParking ExpenseType = "parking"
	ExpenseOther   ExpenseType = "other"
)

func (t ExpenseType) Valid() bool {
	switch t {
	case ExpenseFuel, ExpenseToll, ExpenseParking, ExpenseOther:
		return true
	}
	return false
}

type Expense struct {
	ID          uuid.UUID       `json:"id"`
	Type        ExpenseType     `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// BookingPayment is cash collected from the customer against one trip.
// PaidOn is the calendar date as submitted (YYYY-MM-DD).
type BookingPayment struct {
	ID          uuid.UUID       `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Comments    string          `json:"comments,omitempty"`
	CollectedBy string          `json:"collectedBy,omitempty"`
	PaidOn      string          `json:"paidOn"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type StatusChange struct {
	ID        uuid.UUID     `json:"id"`
	Status    BookingStatus `json:"status"`
	Timestamp time.Time     `json:"timestamp"`
	ChangedBy string        `json:"changedBy"`
}

type Booking struct {
	ID              uuid.UUID        `json:"id"`
	CustomerID      uuid.UUID        `json:"customerId"`
	CompanyID       *uuid.UUID       `json:"companyId,omitempty"`
	PickupLocation  string           `json:"pickupLocation"`
	DropLocation    string           `json:"dropLocation"`
	StartAt         time.Time        `json:"startAt"`
	EndAt           *time.Time       `json:"endAt,omitempty"`
	VehicleID       *uuid.UUID       `json:"vehicleId,omitempty"`
	DriverID        *uuid.UUID       `json:"driverId,omitempty"`
	TariffRate      decimal.Decimal  `json:"tariffRate"`
	TotalAmount     decimal.Decimal  `json:"totalAmount"`
	AdvanceReceived decimal.Decimal  `json:"advanceReceived"`
	Balance         decimal.Decimal  `json:"balance"`
	Status          BookingStatus    `json:"status"`
	Billed          bool             `json:"billed"`
	Expenses        []Expense        `json:"expenses"`
	Payments        []BookingPayment `json:"payments"`
	StatusHistory   []StatusChange   `json:"statusHistory"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// NewBooking returns a booking in the booked state with its first history
// entry and derived balance in place.
func NewBooking(b Booking, changedBy string, now time.Time) *Booking {
	b.ID = uuid.New()
	b.Expenses = []Expense{}
	b.Payments = []BookingPayment{}
	b.StatusHistory = nil
	b.CreatedAt = now
	b.UpdatedAt = now
	b.RecomputeBalance()
	b.ApplyStatus(BookingBooked, changedBy, now)

	return &b
}

// RecomputeBalance derives balance from the advance only. Payments and
// expenses never reduce it.
func (b *Booking) RecomputeBalance() {
	b.Balance = b.TotalAmount.Sub(b.AdvanceReceived)
}

func (b *Booking) ApplyStatus(status BookingStatus, changedBy string, at time.Time) {
	if changedBy == "" {
		changedBy = DefaultChangedBy
	}

	b.StatusHistory = append(b.StatusHistory, StatusChange{
		ID:        uuid.New(),
		Status:    status,
		Timestamp: at,
		ChangedBy: changedBy,
	})
	b.Status = status
}

func (b *Booking) AddExpense(e Expense) {
	b.Expenses = append(b.Expenses, e)
}

func (b *Booking) AddPayment(p BookingPayment) {
	b.Payments = append(b.Payments, p)
}

func (b *Booking) TotalExpenses() decimal.Decimal {
	total := decimal.Zero
	for _, e := range b.Expenses {
		total = total.Add(e.Amount)
	}
	return total
}

func (b *Booking) TotalPayments() decimal.Decimal {
	total := decimal.Zero
	for _, p := range b.Payments {
		total = total.Add(p.Amount)
	}
	return total
}

func (b *Booking) ExpensesByType() map[ExpenseType]decimal.Decimal {
	out := make(map[ExpenseType]decimal.Decimal)
	for _, e := range b.Expenses {
		out[e.Type] = out[e.Type].Add(e.Amount)
	}
	return out
}

// HistoryConsistent reports whether the current status matches the last
// recorded status change.
func (b *Booking) HistoryConsistent() bool {
	if len(b.StatusHistory) == 0 {
		return false
	}
	return b.StatusHistory[len(b.StatusHistory)-1].Status == b.Status
}

// Route is the label used when a booking is listed next to driver payments.
func (b *Booking) Route() string {
	return fmt.Sprintf("%s - %s", b.PickupLocation, b.DropLocation)
}

func (b *Booking) Clone() *Booking {
	c := *b
	c.Expenses = append([]Expense{}, b.Expenses...)
	c.Payments = append([]BookingPayment{}, b.Payments...)
	c.StatusHistory = append([]StatusChange{}, b.StatusHistory...)
	c.CompanyID = cloneUUID(b.CompanyID)
	c.VehicleID = cloneUUID(b.VehicleID)
	c.DriverID = cloneUUID(b.DriverID)
	if b.EndAt != nil {
		end := *b.EndAt
		c.EndAt = &end
	}
	return &c
}

func cloneUUID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
