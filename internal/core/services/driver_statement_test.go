package services_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/srgjo27/fleet_ledger/internal/adapter/repository/memory"
	"github.com/srgjo27/fleet_ledger/internal/core/domain"
	"github.com/srgjo27/fleet_ledger/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// generationCache keeps statements per (driver, generation) in memory.
type generationCache struct {
	mu         sync.Mutex
	gens       map[uuid.UUID]int64
	statements map[string]*domain.DriverStatement
	hits       int
}

func newGenerationCache() *generationCache {
	return &generationCache{
		gens:       make(map[uuid.UUID]int64),
		statements: make(map[string]*domain.DriverStatement),
	}
}

func (c *generationCache) key(driverID uuid.UUID, gen int64) string {
	return fmt.Sprintf("%s:%d", driverID, gen)
}

func (c *generationCache) Generation(_ context.Context, driverID uuid.UUID) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gens[driverID], nil
}

func (c *generationCache) GetStatement(_ context.Context, driverID uuid.UUID, gen int64) (*domain.DriverStatement, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stmt, ok := c.statements[c.key(driverID, gen)]
	if ok {
		c.hits++
	}
	return stmt, ok, nil
}

func (c *generationCache) SetStatement(_ context.Context, stmt *domain.DriverStatement, gen int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.statements[c.key(stmt.DriverID, gen)] = stmt
	return nil
}

func (c *generationCache) InvalidateStatement(_ context.Context, driverID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gens[driverID]++
	return nil
}

// interleavingStore runs afterList once, between the driver payment read
// and the return to the caller.
type interleavingStore struct {
	*memory.Store
	afterList func()
}

func (s *interleavingStore) ListDriverPaymentsByDriver(ctx context.Context, driverID uuid.UUID) ([]domain.DriverPayment, error) {
	payments, err := s.Store.ListDriverPaymentsByDriver(ctx, driverID)
	if hook := s.afterList; hook != nil {
		s.afterList = nil
		hook()
	}
	return payments, err
}

func TestDriverStatement_WriteDuringBuildIsNotServedStale(t *testing.T) {
	ctx := context.Background()
	store := &interleavingStore{Store: memory.New()}
	statements := newGenerationCache()
	service := services.NewDriverPaymentService(store, store, store, statements, zap.NewNop())

	booking := seedBooking(domain.BookingOngoing)
	require.NoError(t, store.CreateBooking(ctx, booking))
	driver := &domain.Driver{ID: uuid.New(), Name: "Ravi"}
	require.NoError(t, store.CreateDriver(ctx, driver))

	daily := func(amount float64) services.AddDriverPaymentRequest {
		return services.AddDriverPaymentRequest{DriverID: driver.ID, Mode: "daily", Amount: dec(amount)}
	}

	_, err := service.AddDriverPayment(ctx, booking.ID, daily(100))
	require.NoError(t, err)

	store.afterList = func() {
		_, err := service.AddDriverPayment(ctx, booking.ID, daily(250))
		require.NoError(t, err)
	}

	during, err := service.DriverStatement(ctx, driver.ID)
	require.NoError(t, err)
	assert.Len(t, during.Payments, 1)

	after, err := service.DriverStatement(ctx, driver.ID)
	require.NoError(t, err)
	assert.Len(t, after.Payments, 2)
	assert.True(t, after.TotalAmount.Equal(decimal.NewFromInt(350)), after.TotalAmount.String())

	cached, err := service.DriverStatement(ctx, driver.ID)
	require.NoError(t, err)
	assert.Len(t, cached.Payments, 2)
	assert.Equal(t, 1, statements.hits)
}

func TestDriverStatement_AdvanceWriteBumpsGeneration(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	statements := newGenerationCache()
	log := zap.NewNop()
	payments := services.NewDriverPaymentService(store, store, store, statements, log)
	advances := services.NewAdvanceService(store, store, statements, log)

	driver := &domain.Driver{ID: uuid.New(), Name: "Ravi"}
	require.NoError(t, store.CreateDriver(ctx, driver))

	before, err := payments.DriverStatement(ctx, driver.ID)
	require.NoError(t, err)
	assert.True(t, before.PendingAdvances.IsZero())

	_, err = advances.AddAdvance(ctx, driver.ID, services.AddAdvanceRequest{Amount: dec(400)})
	require.NoError(t, err)

	after, err := payments.DriverStatement(ctx, driver.ID)
	require.NoError(t, err)
	assert.True(t, after.PendingAdvances.Equal(decimal.NewFromInt(400)))
}

func TestDriverStatement_GenerationErrorBypassesCache(t *testing.T) {
	d := newDriverPaymentDeps(t)
	ctx := context.Background()
	driver := &domain.Driver{ID: uuid.New(), Name: "Ravi"}

	d.cache.On("Generation", ctx, driver.ID).Return(int64(0), errors.New("redis down"))
	d.drivers.On("GetDriver", ctx, driver.ID).Return(driver, nil)
	d.payments.On("ListDriverPaymentsByDriver", ctx, driver.ID).Return([]domain.DriverPayment{}, nil)

	stmt, err := d.service.DriverStatement(ctx, driver.ID)

	require.NoError(t, err)
	assert.Empty(t, stmt.Payments)
	d.cache.AssertNotCalled(t, "GetStatement", mock.Anything, mock.Anything, mock.Anything)
	d.cache.AssertNotCalled(t, "SetStatement", mock.Anything, mock.Anything, mock.Anything)
}
