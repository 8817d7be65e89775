package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/fleet_ledger/internal/core/domain"
	"github.com/srgjo27/fleet_ledger/internal/core/ports"
)

const companyColumns = `id, name, contact_email, outstanding_amount, created_at, updated_at`

type CompanyRepository struct {
	db *sql.DB
}

func NewCompanyRepository(db *sql.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) CreateCompany(ctx context.Context, company *domain.Company) error {
	query := `
	INSERT INTO companies (` + companyColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		company.ID,
		company.Name,
		company.ContactEmail,
		company.OutstandingAmount,
		company.CreatedAt,
		company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert company: %w", err)
	}

	return nil
}

func (r *CompanyRepository) GetCompany(ctx context.Context, companyID uuid.UUID) (*domain.Company, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, companyID)
	return scanCompany(row)
}

// UpdateCompany holds the row lock while fn adjusts the outstanding counter,
// so concurrent payments against one company apply one after another.
func (r *CompanyRepository) UpdateCompany(ctx context.Context, companyID uuid.UUID, fn ports.CompanyMutation) (*domain.Company, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1 FOR UPDATE`, companyID)
	company, err := scanCompany(row)
	if err != nil {
		return nil, err
	}

	if err := fn(company); err != nil {
		return nil, err
	}
	company.UpdatedAt = time.Now()

	_, err = tx.ExecContext(ctx, `
	UPDATE companies
	SET name = $2, contact_email = $3, outstanding_amount = $4, updated_at = $5
	WHERE id = $1
	`, company.ID, company.Name, company.ContactEmail, company.OutstandingAmount, company.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to update company %s: %w", companyID, err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return company, nil
}

func scanCompany(row rowScanner) (*domain.Company, error) {
	var c domain.Company

	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.ContactEmail,
		&c.OutstandingAmount,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, err
	}

	return &c, nil
}

var _ ports.CompanyRepository = (*CompanyRepository)(nil)
