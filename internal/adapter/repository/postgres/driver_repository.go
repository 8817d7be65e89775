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

const driverColumns = `id, name, phone, license_number, advances, created_at, updated_at`

type DriverRepository struct {
	db *sql.DB
}

func NewDriverRepository(db *sql.DB) *DriverRepository {
	return &DriverRepository{db: db}
}

func (r *DriverRepository) CreateDriver(ctx context.Context, driver *domain.Driver) error {
	advances, err := encodeList(driver.Advances)
	if err != nil {
		return err
	}

	query := `
	INSERT INTO drivers (` + driverColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = r.db.ExecContext(ctx, query,
		driver.ID,
		driver.Name,
		driver.Phone,
		driver.LicenseNumber,
		advances,
		driver.CreatedAt,
		driver.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert driver: %w", err)
	}

	return nil
}

func (r *DriverRepository) GetDriver(ctx context.Context, driverID uuid.UUID) (*domain.Driver, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+driverColumns+` FROM drivers WHERE id = $1`, driverID)
	return scanDriver(row)
}

func (r *DriverRepository) UpdateDriver(ctx context.Context, driverID uuid.UUID, fn ports.DriverMutation) (*domain.Driver, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, `SELECT `+driverColumns+` FROM drivers WHERE id = $1 FOR UPDATE`, driverID)
	driver, err := scanDriver(row)
	if err != nil {
		return nil, err
	}

	if err := fn(driver); err != nil {
		return nil, err
	}
	driver.UpdatedAt = time.Now()

	advances, err := encodeList(driver.Advances)
	if err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx, `
	UPDATE drivers
	SET name = $2, phone = $3, license_number = $4, advances = $5, updated_at = $6
	WHERE id = $1
	`, driver.ID, driver.Name, driver.Phone, driver.LicenseNumber, advances, driver.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to update driver %s: %w", driverID, err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return driver, nil
}

func scanDriver(row rowScanner) (*domain.Driver, error) {
	var d domain.Driver
	var advances []byte

	err := row.Scan(
		&d.ID,
		&d.Name,
		&d.Phone,
		&d.LicenseNumber,
		&advances,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDriverNotFound
		}
		return nil, err
	}

	d.Advances = []domain.Advance{}
	if err := decodeList(advances, &d.Advances); err != nil {
		return nil, err
	}

	return &d, nil
}

var _ ports.DriverRepository = (*DriverRepository)(nil)
