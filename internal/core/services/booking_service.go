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

type CreateBookingRequest struct {
	CustomerID      uuid.UUID       `json:"customerId" validate:"required"`
	CompanyID       *uuid.UUID      `json:"companyId"`
	PickupLocation  string          `json:"pickupLocation" validate:"required"`
	DropLocation    string          `json:"dropLocation" validate:"required"`
	StartAt         time.Time       `json:"startAt" validate:"required"`
	EndAt           *time.Time      `json:"endAt"`
	VehicleID       *uuid.UUID      `json:"vehicleId"`
	DriverID        *uuid.UUID      `json:"driverId"`
	TariffRate      decimal.Decimal `json:"tariffRate" validate:"gte=0"`
	TotalAmount     decimal.Decimal `json:"totalAmount" validate:"gte=0"`
	AdvanceReceived decimal.Decimal `json:"advanceReceived" validate:"gte=0"`
	CreatedBy       string          `json:"createdBy"`
}

type UpdateStatusRequest struct {
	Status    string `json:"status" validate:"required"`
	ChangedBy string `json:"changedBy"`
}

type AddExpenseRequest struct {
	Type        string           `json:"type" validate:"required,oneof=fuel toll parking other"`
	Amount      *decimal.Decimal `json:"amount" validate:"required,gte=0"`
	Description string           `json:"description"`
}

type AddPaymentRequest struct {
	Amount      *decimal.Decimal `json:"amount" validate:"required,gte=0"`
	Comments    string           `json:"comments"`
	CollectedBy string           `json:"collectedBy"`
	PaidOn      string           `json:"paidOn" validate:"required,datetime=2006-01-02"`
}

// BookingSummary is a booking with its read-time ledger aggregates.
type BookingSummary struct {
	*domain.Booking
	TotalExpenses  decimal.Decimal                        `json:"totalExpenses"`
	TotalPayments  decimal.Decimal                        `json:"totalPayments"`
	ExpensesByType map[domain.ExpenseType]decimal.Decimal `json:"expensesByType"`
}

func Summarize(b *domain.Booking) *BookingSummary {
	return &BookingSummary{
		Booking:        b,
		TotalExpenses:  b.TotalExpenses(),
		TotalPayments:  b.TotalPayments(),
		ExpensesByType: b.ExpensesByType(),
	}
}

type BookingOption func(*BookingService)

// WithStrictTransitions enforces the lifecycle graph on status updates
// instead of accepting any recognised status.
func WithStrictTransitions() BookingOption {
	return func(s *BookingService) {
		s.transitions = domain.StrictTransitions
	}
}

func WithBookingClock(now func() time.Time) BookingOption {
	return func(s *BookingService) {
		s.now = now
	}
}

type BookingService struct {
	bookingRepo ports.BookingRepository
	log         *zap.Logger
	transitions domain.TransitionPolicy
	now         func() time.Time
}

func NewBookingService(bookingRepo ports.BookingRepository, log *zap.Logger, opts ...BookingOption) *BookingService {
	s := &BookingService{
		bookingRepo: bookingRepo,
		log:         log,
		transitions: domain.PermissiveTransitions,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *BookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	booking := domain.NewBooking(domain.Booking{
		CustomerID:      req.CustomerID,
		CompanyID:       req.CompanyID,
		PickupLocation:  req.PickupLocation,
		DropLocation:    req.DropLocation,
		StartAt:         req.StartAt,
		EndAt:           req.EndAt,
		VehicleID:       req.VehicleID,
		DriverID:        req.DriverID,
		TariffRate:      req.TariffRate,
		TotalAmount:     req.TotalAmount,
		AdvanceReceived: req.AdvanceReceived,
	}, req.CreatedBy, s.now())

	if err := s.bookingRepo.CreateBooking(ctx, booking); err != nil {
		s.log.Error("create booking failed", zap.Error(err))
		return nil, err
	}

	s.log.Info("booking created", zap.Stringer("booking_id", booking.ID))
	return booking, nil
}

func (s *BookingService) GetBooking(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	return s.bookingRepo.GetBooking(ctx, bookingID)
}

// UpdateStatus appends a status change and moves the booking to it. Driver
// payments and company balances are not touched.
func (s *BookingService) UpdateStatus(ctx context.Context, bookingID uuid.UUID, req UpdateStatusRequest) (*domain.Booking, error) {
	status, err := domain.ParseBookingStatus(req.Status)
	if err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.UpdateBooking(ctx, bookingID, func(b *domain.Booking) error {
		if err := s.transitions(b.Status, status); err != nil {
			return err
		}
		b.ApplyStatus(status, req.ChangedBy, s.now())
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("booking status updated",
		zap.Stringer("booking_id", bookingID),
		zap.String("status", string(status)),
	)
	return booking, nil
}

func (s *BookingService) AddExpense(ctx context.Context, bookingID uuid.UUID, req AddExpenseRequest) (*domain.Booking, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	expense := domain.Expense{
		ID:          uuid.New(),
		Type:        domain.ExpenseType(req.Type),
		Amount:      *req.Amount,
		Description: req.Description,
		CreatedAt:   s.now(),
	}

	booking, err := s.bookingRepo.UpdateBooking(ctx, bookingID, func(b *domain.Booking) error {
		b.AddExpense(expense)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("expense added",
		zap.Stringer("booking_id", bookingID),
		zap.Stringer("expense_id", expense.ID),
		zap.String("amount", expense.Amount.String()),
	)
	return booking, nil
}

func (s *BookingService) AddPayment(ctx context.Context, bookingID uuid.UUID, req AddPaymentRequest) (*domain.Booking, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	payment := domain.BookingPayment{
		ID:          uuid.New(),
		Amount:      *req.Amount,
		Comments:    req.Comments,
		CollectedBy: req.CollectedBy,
		PaidOn:      req.PaidOn,
		CreatedAt:   s.now(),
	}

	booking, err := s.bookingRepo.UpdateBooking(ctx, bookingID, func(b *domain.Booking) error {
		b.AddPayment(payment)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("booking payment added",
		zap.Stringer("booking_id", bookingID),
		zap.Stringer("payment_id", payment.ID),
		zap.String("amount", payment.Amount.String()),
	)
	return booking, nil
}

func (s *BookingService) ListPayments(ctx context.Context, bookingID uuid.UUID) ([]domain.BookingPayment, decimal.Decimal, error) {
	booking, err := s.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	return booking.Payments, booking.TotalPayments(), nil
}

func (s *BookingService) ListExpenses(ctx context.Context, bookingID uuid.UUID) ([]domain.Expense, decimal.Decimal, error) {
	booking, err := s.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	return booking.Expenses, booking.TotalExpenses(), nil
}

func (s *BookingService) SetBilled(ctx context.Context, bookingID uuid.UUID, billed bool) (*domain.Booking, error) {
	booking, err := s.bookingRepo.UpdateBooking(ctx, bookingID, func(b *domain.Booking) error {
		b.Billed = billed
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("booking billing toggled", zap.Stringer("booking_id", bookingID), zap.Bool("billed", billed))
	return booking, nil
}
