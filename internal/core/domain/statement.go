package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DriverPaymentLine is a driver payment labelled with its booking route.
type DriverPaymentLine struct {
	DriverPayment
	BookingRoute string `json:"bookingRoute"`
}

// DriverStatement is the finance view of everything owed to one driver.
type DriverStatement struct {
	DriverID        uuid.UUID           `json:"driverId"`
	DriverName      string              `json:"driverName"`
	Payments        []DriverPaymentLine `json:"payments"`
	TotalAmount     decimal.Decimal     `json:"totalAmount"`
	SettledAmount   decimal.Decimal     `json:"settledAmount"`
	UnsettledAmount decimal.Decimal     `json:"unsettledAmount"`
	PendingAdvances decimal.Decimal     `json:"pendingAdvances"`
}

func NewDriverStatement(driver *Driver, lines []DriverPaymentLine) *DriverStatement {
	st := &DriverStatement{
		DriverID:        driver.ID,
		DriverName:      driver.Name,
		Payments:        lines,
		TotalAmount:     decimal.Zero,
		SettledAmount:   decimal.Zero,
		UnsettledAmount: decimal.Zero,
		PendingAdvances: driver.PendingAdvances(),
	}
	if st.Payments == nil {
		st.Payments = []DriverPaymentLine{}
	}

	for _, line := range lines {
		st.TotalAmount = st.TotalAmount.Add(line.Amount)
		if line.Settled {
			st.SettledAmount = st.SettledAmount.Add(line.Amount)
		} else {
			st.UnsettledAmount = st.UnsettledAmount.Add(line.Amount)
		}
	}

	return st
}
