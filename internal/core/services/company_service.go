package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/srgjo27/fleet_ledger/internal/core/domain"
	"github.com/srgjo27/fleet_ledger/internal/core/ports"
)

type CreateCompanyRequest struct {
	Name         string `json:"name" validate:"required"`
	ContactEmail string `json:"contactEmail" validate:"omitempty,email"`
}

type RecordPaymentRequest struct {
	Amount      *decimal.Decimal `json:"amount" validate:"required,gt=0"`
	Description string           `json:"description"`
}

type RecordPaymentResponse struct {
	Company *domain.Company `json:"company"`
	Payment *domain.Payment `json:"payment"`
}

type CompanyService struct {
	companyRepo ports.CompanyRepository
	paymentRepo ports.PaymentRepository
	log         *zap.Logger
	now         func() time.Time
}

func NewCompanyService(companyRepo ports.CompanyRepository, paymentRepo ports.PaymentRepository, log *zap.Logger) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
		paymentRepo: paymentRepo,
		log:         log,
		now:         time.Now,
	}
}

func (s *CompanyService) CreateCompany(ctx context.Context, req CreateCompanyRequest) (*domain.Company, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	now := s.now()
	company := &domain.Company{
		ID:                uuid.New(),
		Name:              req.Name,
		ContactEmail:      req.ContactEmail,
		OutstandingAmount: decimal.Zero,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.companyRepo.CreateCompany(ctx, company); err != nil {
		return nil, err
	}

	s.log.Info("company created", zap.Stringer("company_id", company.ID))
	return company, nil
}

func (s *CompanyService) GetCompany(ctx context.Context, companyID uuid.UUID) (*domain.Company, error) {
	return s.companyRepo.GetCompany(ctx, companyID)
}

// RecordPayment is the only writer of a company's outstanding amount. The
// counter is decremented first so an unknown company never gets a ledger
// entry. If the ledger write then fails, the response still carries the
// updated company and the error wraps domain.ErrLedgerNotRecorded; the
// payment must not be resubmitted.
func (s *CompanyService) RecordPayment(ctx context.Context, companyID uuid.UUID, req RecordPaymentRequest) (*RecordPaymentResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	amount := *req.Amount
	company, err := s.companyRepo.UpdateCompany(ctx, companyID, func(c *domain.Company) error {
		c.ApplyPayment(amount)
		return nil
	})
	if err != nil {
		return nil, err
	}

	payment := &domain.Payment{
		ID:          uuid.New(),
		EntityType:  domain.EntityCustomer,
		EntityID:    companyID,
		Type:        domain.PaymentReceived,
		Amount:      amount,
		Description: req.Description,
		Date:        s.now(),
	}
	if err := s.paymentRepo.CreatePayment(ctx, payment); err != nil {
		s.log.Error("company payment applied but not recorded",
			zap.Stringer("company_id", companyID),
			zap.String("amount", amount.String()),
			zap.String("outstanding", company.OutstandingAmount.String()),
			zap.Error(err),
		)
		return &RecordPaymentResponse{Company: company}, fmt.Errorf("%w: %w", domain.ErrLedgerNotRecorded, err)
	}

	s.log.Info("company payment recorded",
		zap.Stringer("company_id", companyID),
		zap.String("amount", amount.String()),
		zap.String("outstanding", company.OutstandingAmount.String()),
	)
	return &RecordPaymentResponse{Company: company, Payment: payment}, nil
}

func (s *CompanyService) ListPayments(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) ([]domain.Payment, error) {
	if entityType != domain.EntityCustomer && entityType != domain.EntityDriver {
		return nil, domain.NewValidationError("entityType", "must be one of [customer driver]")
	}
	return s.paymentRepo.ListPayments(ctx, entityType, entityID)
}
