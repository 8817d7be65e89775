package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/srgjo27/fleet_ledger/internal/core/domain"
	"github.com/srgjo27/fleet_ledger/internal/core/ports"
)

type PaymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// CreatePayment appends to the ledger. At most one entry exists per related
// advance; a second insert for the same advance is dropped.
func (r *PaymentRepository) CreatePayment(ctx context.Context, payment *domain.Payment) error {
	query := `
	INSERT INTO payments (id, entity_type, entity_id, type, amount, description, related_advance_id, date)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (related_advance_id) WHERE related_advance_id IS NOT NULL DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query,
		payment.ID,
		payment.EntityType,
		payment.EntityID,
		payment.Type,
		payment.Amount,
		payment.Description,
		nullUUID(payment.RelatedAdvanceID),
		payment.Date,
	)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}

	return nil
}

func (r *PaymentRepository) ListPayments(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) ([]domain.Payment, error) {
	query := `
	SELECT id, entity_type, entity_id, type, amount, description, related_advance_id, date
	FROM payments
	WHERE entity_type = $1 AND entity_id = $2
	ORDER BY date
	`

	rows, err := r.db.QueryContext(ctx, query, entityType, entityID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		var p domain.Payment
		var related uuid.NullUUID
		if err := rows.Scan(
			&p.ID,
			&p.EntityType,
			&p.EntityID,
			&p.Type,
			&p.Amount,
			&p.Description,
			&related,
			&p.Date,
		); err != nil {
			return nil, err
		}

		p.RelatedAdvanceID = uuidPtr(related)
		payments = append(payments, p)
	}

	return payments, rows.Err()
}

var _ ports.PaymentRepository = (*PaymentRepository)(nil)
