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

type AddDriverPaymentRequest struct {
	DriverID     uuid.UUID        `json:"driverId" validate:"required"`
	Mode         string           `json:"mode" validate:"required,oneof=per-trip daily fuel-basis"`
	Amount       *decimal.Decimal `json:"amount" validate:"required_unless=Mode fuel-basis,omitempty,gte=0"`
	FuelQuantity *decimal.Decimal `json:"fuelQuantity" validate:"omitempty,gte=0"`
	FuelRate     *decimal.Decimal `json:"fuelRate" validate:"required_if=Mode fuel-basis,omitempty,gte=0"`
	DistanceKm   *decimal.Decimal `json:"distanceKm" validate:"omitempty,gte=0"`
	Mileage      *decimal.Decimal `json:"mileage" validate:"omitempty,gte=0"`
	Description  string           `json:"description"`
}

type UpdateDriverPaymentRequest struct {
	Mode         *string          `json:"mode" validate:"omitempty,oneof=per-trip daily fuel-basis"`
	Amount       *decimal.Decimal `json:"amount" validate:"omitempty,gte=0"`
	FuelQuantity *decimal.Decimal `json:"fuelQuantity" validate:"omitempty,gte=0"`
	FuelRate     *decimal.Decimal `json:"fuelRate" validate:"omitempty,gte=0"`
	DistanceKm   *decimal.Decimal `json:"distanceKm" validate:"omitempty,gte=0"`
	Mileage      *decimal.Decimal `json:"mileage" validate:"omitempty,gte=0"`
	Description  *string          `json:"description"`
	Settle       bool             `json:"settle"`
}

func (r UpdateDriverPaymentRequest) toUpdate() domain.DriverPaymentUpdate {
	u := domain.DriverPaymentUpdate{
		Amount:       r.Amount,
		FuelQuantity: r.FuelQuantity,
		FuelRate:     r.FuelRate,
		DistanceKm:   r.DistanceKm,
		Mileage:      r.Mileage,
		Description:  r.Description,
		Settle:       r.Settle,
	}
	if r.Mode != nil {
		mode := domain.PaymentMode(*r.Mode)
		u.Mode = &mode
	}
	return u
}

type DriverPaymentService struct {
	bookingRepo ports.BookingRepository
	driverRepo  ports.DriverRepository
	paymentRepo ports.DriverPaymentRepository
	cache       ports.StatementCache
	log         *zap.Logger
	now         func() time.Time
}

func NewDriverPaymentService(
	bookingRepo ports.BookingRepository,
	driverRepo ports.DriverRepository,
	paymentRepo ports.DriverPaymentRepository,
	cache ports.StatementCache,
	log *zap.Logger,
) *DriverPaymentService {
	return &DriverPaymentService{
		bookingRepo: bookingRepo,
		driverRepo:  driverRepo,
		paymentRepo: paymentRepo,
		cache:       cache,
		log:         log,
		now:         time.Now,
	}
}

func (s *DriverPaymentService) AddDriverPayment(ctx context.Context, bookingID uuid.UUID, req AddDriverPaymentRequest) (*domain.DriverPayment, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	if _, err := s.bookingRepo.GetBooking(ctx, bookingID); err != nil {
		return nil, err
	}
	if _, err := s.driverRepo.GetDriver(ctx, req.DriverID); err != nil {
		return nil, err
	}

	now := s.now()
	payment := &domain.DriverPayment{
		ID:          uuid.New(),
		BookingID:   bookingID,
		DriverID:    req.DriverID,
		Mode:        domain.PaymentMode(req.Mode),
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.Amount != nil {
		payment.Amount = *req.Amount
	}
	if payment.Mode == domain.ModeFuelBasis {
		payment.FuelQuantity = nullable(req.FuelQuantity)
		payment.FuelRate = nullable(req.FuelRate)
		payment.DistanceKm = nullable(req.DistanceKm)
		payment.Mileage = nullable(req.Mileage)
	}

	if err := payment.Recompute(); err != nil {
		return nil, err
	}

	if err := s.paymentRepo.CreateDriverPayment(ctx, payment); err != nil {
		s.log.Error("create driver payment failed", zap.Stringer("booking_id", bookingID), zap.Error(err))
		return nil, err
	}

	s.invalidate(ctx, payment.DriverID)
	s.log.Info("driver payment added",
		zap.Stringer("booking_id", bookingID),
		zap.Stringer("payment_id", payment.ID),
		zap.String("mode", string(payment.Mode)),
		zap.String("amount", payment.Amount.String()),
	)
	return payment, nil
}

func (s *DriverPaymentService) UpdateDriverPayment(ctx context.Context, bookingID, paymentID uuid.UUID, req UpdateDriverPaymentRequest) (*domain.DriverPayment, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	update := req.toUpdate()
	payment, err := s.paymentRepo.UpdateDriverPayment(ctx, bookingID, paymentID, func(p *domain.DriverPayment) error {
		return p.Apply(update, s.now())
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, payment.DriverID)
	s.log.Info("driver payment updated",
		zap.Stringer("booking_id", bookingID),
		zap.Stringer("payment_id", paymentID),
		zap.Bool("settled", payment.Settled),
	)
	return payment, nil
}

func (s *DriverPaymentService) DeleteDriverPayment(ctx context.Context, bookingID, paymentID uuid.UUID) error {
	payment, err := s.paymentRepo.DeleteDriverPayment(ctx, bookingID, paymentID)
	if err != nil {
		return err
	}

	s.invalidate(ctx, payment.DriverID)
	s.log.Info("driver payment deleted", zap.Stringer("booking_id", bookingID), zap.Stringer("payment_id", paymentID))
	return nil
}

func (s *DriverPaymentService) ListForBooking(ctx context.Context, bookingID uuid.UUID) ([]domain.DriverPayment, error) {
	if _, err := s.bookingRepo.GetBooking(ctx, bookingID); err != nil {
		return nil, err
	}
	return s.paymentRepo.ListDriverPaymentsByBooking(ctx, bookingID)
}

// DriverStatement joins the driver's payments with booking route labels.
// The rendered statement is cached until the next write touching the driver
// bumps the driver's cache generation.
func (s *DriverPaymentService) DriverStatement(ctx context.Context, driverID uuid.UUID) (*domain.DriverStatement, error) {
	// The generation is read before storage so a write committed while the
	// statement is being built moves later reads to a fresh key.
	gen, err := s.cache.Generation(ctx, driverID)
	cacheable := err == nil
	if err != nil {
		s.log.Warn("statement cache bypassed", zap.Stringer("driver_id", driverID), zap.Error(err))
	}

	if cacheable {
		stmt, found, err := s.cache.GetStatement(ctx, driverID, gen)
		if err != nil {
			s.log.Warn("statement cache read failed", zap.Stringer("driver_id", driverID), zap.Error(err))
		} else if found {
			return stmt, nil
		}
	}

	driver, err := s.driverRepo.GetDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.ListDriverPaymentsByDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}

	routes := make(map[uuid.UUID]string)
	lines := make([]domain.DriverPaymentLine, 0, len(payments))
	for _, p := range payments {
		route, ok := routes[p.BookingID]
		if !ok {
			route, err = s.bookingRoute(ctx, p.BookingID)
			if err != nil {
				return nil, err
			}
			routes[p.BookingID] = route
		}
		lines = append(lines, domain.DriverPaymentLine{DriverPayment: p, BookingRoute: route})
	}

	stmt := domain.NewDriverStatement(driver, lines)
	if cacheable {
		if err := s.cache.SetStatement(ctx, stmt, gen); err != nil {
			s.log.Warn("statement cache write failed", zap.Stringer("driver_id", driverID), zap.Error(err))
		}
	}
	return stmt, nil
}

// bookingRoute labels a payment; a booking removed since leaves the label
// empty rather than failing the statement.
func (s *DriverPaymentService) bookingRoute(ctx context.Context, bookingID uuid.UUID) (string, error) {
	booking, err := s.bookingRepo.GetBooking(ctx, bookingID)
	if domain.IsNotFound(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return booking.Route(), nil
}

func (s *DriverPaymentService) invalidate(ctx context.Context, driverID uuid.UUID) {
	if err := s.cache.InvalidateStatement(ctx, driverID); err != nil {
		s.log.Warn("statement cache invalidation failed", zap.Stringer("driver_id", driverID), zap.Error(err))
	}
}

func nullable(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}
