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

type CreateDriverRequest struct {
	Name          string `json:"name" validate:"required"`
	Phone         string `json:"phone"`
	LicenseNumber string `json:"licenseNumber"`
}

type AddAdvanceRequest struct {
	Amount      *decimal.Decimal `json:"amount" validate:"required,gt=0"`
	Description string           `json:"description"`
}

type SettleAdvanceRequest struct {
	AdvanceID uuid.UUID `json:"advanceId" validate:"required"`
}

// AdvanceService tracks cash advances per driver and mirrors each first-time
// settlement into the entity payment ledger.
type AdvanceService struct {
	driverRepo  ports.DriverRepository
	paymentRepo ports.PaymentRepository
	cache       ports.StatementCache
	log         *zap.Logger
	now         func() time.Time
}

func NewAdvanceService(driverRepo ports.DriverRepository, paymentRepo ports.PaymentRepository, cache ports.StatementCache, log *zap.Logger) *AdvanceService {
	return &AdvanceService{
		driverRepo:  driverRepo,
		paymentRepo: paymentRepo,
		cache:       cache,
		log:         log,
		now:         time.Now,
	}
}

func (s *AdvanceService) CreateDriver(ctx context.Context, req CreateDriverRequest) (*domain.Driver, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	now := s.now()
	driver := &domain.Driver{
		ID:            uuid.New(),
		Name:          req.Name,
		Phone:         req.Phone,
		LicenseNumber: req.LicenseNumber,
		Advances:      []domain.Advance{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.driverRepo.CreateDriver(ctx, driver); err != nil {
		return nil, err
	}

	s.log.Info("driver created", zap.Stringer("driver_id", driver.ID))
	return driver, nil
}

func (s *AdvanceService) GetDriver(ctx context.Context, driverID uuid.UUID) (*domain.Driver, error) {
	return s.driverRepo.GetDriver(ctx, driverID)
}

func (s *AdvanceService) AddAdvance(ctx context.Context, driverID uuid.UUID, req AddAdvanceRequest) (*domain.Driver, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var added domain.Advance
	driver, err := s.driverRepo.UpdateDriver(ctx, driverID, func(d *domain.Driver) error {
		added = d.AddAdvance(*req.Amount, req.Description, s.now())
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, driverID)
	s.log.Info("advance added",
		zap.Stringer("driver_id", driverID),
		zap.Stringer("advance_id", added.ID),
		zap.String("amount", added.Amount.String()),
	)
	return driver, nil
}

// SettleAdvance flips the advance to settled and records the ledger payment.
// Repeating the call for a settled advance only writes the ledger payment if
// an earlier attempt failed to; an advance the driver does not have is a
// no-op.
func (s *AdvanceService) SettleAdvance(ctx context.Context, driverID uuid.UUID, req SettleAdvanceRequest) (*domain.Driver, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var (
		settled domain.Advance
		flipped bool
	)
	driver, err := s.driverRepo.UpdateDriver(ctx, driverID, func(d *domain.Driver) error {
		settled, flipped = d.SettleAdvance(req.AdvanceID, s.now())
		return nil
	})
	if err != nil {
		return nil, err
	}

	if flipped {
		s.invalidate(ctx, driverID)
	} else {
		if settled.ID == uuid.Nil {
			s.log.Info("advance settle was a no-op",
				zap.Stringer("driver_id", driverID),
				zap.Stringer("advance_id", req.AdvanceID),
			)
			return driver, nil
		}

		recorded, err := s.hasSettlementPayment(ctx, driverID, settled.ID)
		if err != nil {
			return nil, err
		}
		if recorded {
			s.log.Info("advance settle was a no-op",
				zap.Stringer("driver_id", driverID),
				zap.Stringer("advance_id", req.AdvanceID),
			)
			return driver, nil
		}
	}

	payment := settlementPayment(driverID, settled, s.now())
	// The driver write is already committed; the ledger entry is a separate
	// write and may be observed after it.
	if err := s.paymentRepo.CreatePayment(ctx, payment); err != nil {
		s.log.Error("advance settlement payment not recorded",
			zap.Stringer("driver_id", driverID),
			zap.Stringer("advance_id", settled.ID),
			zap.Error(err),
		)
		return nil, err
	}

	s.log.Info("advance settled",
		zap.Stringer("driver_id", driverID),
		zap.Stringer("advance_id", settled.ID),
		zap.Stringer("payment_id", payment.ID),
		zap.Bool("backfilled", !flipped),
	)
	return driver, nil
}

func (s *AdvanceService) hasSettlementPayment(ctx context.Context, driverID, advanceID uuid.UUID) (bool, error) {
	payments, err := s.paymentRepo.ListPayments(ctx, domain.EntityDriver, driverID)
	if err != nil {
		return false, err
	}
	for _, p := range payments {
		if p.RelatedAdvanceID != nil && *p.RelatedAdvanceID == advanceID {
			return true, nil
		}
	}
	return false, nil
}

// settlementPayment is dated at the settlement time, not the time it was
// written.
func settlementPayment(driverID uuid.UUID, adv domain.Advance, now time.Time) *domain.Payment {
	date := now
	if adv.SettledAt != nil {
		date = *adv.SettledAt
	}
	advanceID := adv.ID
	return &domain.Payment{
		ID:               uuid.New(),
		EntityType:       domain.EntityDriver,
		EntityID:         driverID,
		Type:             domain.PaymentPaid,
		Amount:           adv.Amount,
		Description:      adv.Description,
		RelatedAdvanceID: &advanceID,
		Date:             date,
	}
}

func (s *AdvanceService) invalidate(ctx context.Context, driverID uuid.UUID) {
	if err := s.cache.InvalidateStatement(ctx, driverID); err != nil {
		s.log.Warn("statement cache invalidation failed", zap.Stringer("driver_id", driverID), zap.Error(err))
	}
}
