package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/srgjo27/fleet_ledger/internal/adapter/repository/postgres"
	"github.com/srgjo27/fleet_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var companyCols = []string{"id", "name", "contact_email", "outstanding_amount", "created_at", "updated_at"}

func TestUpdateCompany_LocksRowAndWritesOutstanding(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := postgres.NewCompanyRepository(db)
	ctx := context.Background()
	companyID := uuid.New()
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM companies WHERE id = \$1 FOR UPDATE`).
		WithArgs(companyID).
		WillReturnRows(sqlmock.NewRows(companyCols).
			AddRow(companyID.String(), "Acme Logistics", "ops@acme.test", "3000.00", now, now))
	mock.ExpectExec(`UPDATE companies`).
		WithArgs(companyID, "Acme Logistics", "ops@acme.test", "0", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	company, err := repo.UpdateCompany(ctx, companyID, func(c *domain.Company) error {
		c.ApplyPayment(decimal.NewFromInt(5000))
		return nil
	})

	require.NoError(t, err)
	assert.True(t, company.OutstandingAmount.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateCompany_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := postgres.NewCompanyRepository(db)
	companyID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM companies WHERE id = \$1 FOR UPDATE`).
		WithArgs(companyID).
		WillReturnRows(sqlmock.NewRows(companyCols))
	mock.ExpectRollback()

	company, err := repo.UpdateCompany(context.Background(), companyID, func(c *domain.Company) error {
		t.Fatal("mutation must not run for a missing company")
		return nil
	})

	assert.Nil(t, company)
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
	assert.True(t, domain.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateCompany_MutationErrorRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := postgres.NewCompanyRepository(db)
	companyID := uuid.New()
	now := time.Now()
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM companies WHERE id = \$1 FOR UPDATE`).
		WithArgs(companyID).
		WillReturnRows(sqlmock.NewRows(companyCols).
			AddRow(companyID.String(), "Acme", "", "10", now, now))
	mock.ExpectRollback()

	_, err = repo.UpdateCompany(context.Background(), companyID, func(c *domain.Company) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCompany_WrapsInsertError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := postgres.NewCompanyRepository(db)
	now := time.Now()
	company := &domain.Company{ID: uuid.New(), Name: "Acme", OutstandingAmount: decimal.Zero, CreatedAt: now, UpdatedAt: now}

	mock.ExpectExec(`INSERT INTO companies`).
		WillReturnError(errors.New("duplicate key"))

	err = repo.CreateCompany(context.Background(), company)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert company")
	assert.NoError(t, mock.ExpectationsWereMet())
}
