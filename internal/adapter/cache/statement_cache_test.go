package cache_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/srgjo27/fleet_ledger/internal/adapter/cache"
	"github.com/srgjo27/fleet_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStatement() *domain.DriverStatement {
	return &domain.DriverStatement{
		DriverID:        uuid.New(),
		DriverName:      "Ravi",
		Payments:        []domain.DriverPaymentLine{},
		TotalAmount:     decimal.NewFromInt(1350),
		SettledAmount:   decimal.Zero,
		UnsettledAmount: decimal.NewFromInt(1350),
		PendingAdvances: decimal.NewFromInt(500),
	}
}

func TestGeneration_DefaultsToZero(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := cache.NewRedisStatementCache(db, time.Minute)
	driverID := uuid.New()

	mock.ExpectGet(cache.GenerationKey(driverID)).RedisNil()

	gen, err := c.Generation(context.Background(), driverID)

	require.NoError(t, err)
	assert.Equal(t, int64(0), gen)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGeneration_ReadsCounter(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := cache.NewRedisStatementCache(db, time.Minute)
	driverID := uuid.New()

	mock.ExpectGet(cache.GenerationKey(driverID)).SetVal("3")

	gen, err := c.Generation(context.Background(), driverID)

	require.NoError(t, err)
	assert.Equal(t, int64(3), gen)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetStatement_Miss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := cache.NewRedisStatementCache(db, time.Minute)
	driverID := uuid.New()

	mock.ExpectGet(cache.StatementKey(driverID, 2)).RedisNil()

	stmt, found, err := c.GetStatement(context.Background(), driverID, 2)

	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, stmt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetStatement_Hit(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := cache.NewRedisStatementCache(db, time.Minute)
	want := sampleStatement()

	data, err := json.Marshal(want)
	require.NoError(t, err)
	mock.ExpectGet(cache.StatementKey(want.DriverID, 5)).SetVal(string(data))

	got, found, err := c.GetStatement(context.Background(), want.DriverID, 5)

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, want.DriverName, got.DriverName)
	assert.True(t, got.TotalAmount.Equal(want.TotalAmount))
	assert.True(t, got.PendingAdvances.Equal(want.PendingAdvances))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetStatement_Error(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := cache.NewRedisStatementCache(db, time.Minute)
	driverID := uuid.New()

	mock.ExpectGet(cache.StatementKey(driverID, 0)).SetErr(errors.New("connection refused"))

	_, found, err := c.GetStatement(context.Background(), driverID, 0)

	assert.Error(t, err)
	assert.False(t, found)
}

func TestSetStatement(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := cache.NewRedisStatementCache(db, 5*time.Minute)
	stmt := sampleStatement()

	data, err := json.Marshal(stmt)
	require.NoError(t, err)
	mock.ExpectSet(cache.StatementKey(stmt.DriverID, 1), data, 5*time.Minute).SetVal("OK")

	require.NoError(t, c.SetStatement(context.Background(), stmt, 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvalidateStatement_BumpsGeneration(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := cache.NewRedisStatementCache(db, time.Minute)
	driverID := uuid.New()

	mock.ExpectIncr(cache.GenerationKey(driverID)).SetVal(1)

	require.NoError(t, c.InvalidateStatement(context.Background(), driverID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvalidateStatement_FailedBumpBypassesUntilRetried(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := cache.NewRedisStatementCache(db, time.Minute)
	ctx := context.Background()
	driverID := uuid.New()

	mock.ExpectIncr(cache.GenerationKey(driverID)).SetErr(errors.New("connection reset"))
	mock.ExpectIncr(cache.GenerationKey(driverID)).SetErr(errors.New("connection reset"))
	mock.ExpectIncr(cache.GenerationKey(driverID)).SetVal(4)
	mock.ExpectGet(cache.GenerationKey(driverID)).SetVal("4")
	mock.ExpectGet(cache.GenerationKey(driverID)).SetVal("4")

	assert.Error(t, c.InvalidateStatement(ctx, driverID))

	_, err := c.Generation(ctx, driverID)
	assert.Error(t, err)

	gen, err := c.Generation(ctx, driverID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), gen)

	gen, err = c.Generation(ctx, driverID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), gen)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKeys(t *testing.T) {
	id := uuid.MustParse("6f1c1a3e-8a59-4a5e-9f0b-1d2c3b4a5e6f")
	assert.Equal(t, "finance:driver:6f1c1a3e-8a59-4a5e-9f0b-1d2c3b4a5e6f:gen", cache.GenerationKey(id))
	assert.Equal(t, "finance:driver:6f1c1a3e-8a59-4a5e-9f0b-1d2c3b4a5e6f:payments:7", cache.StatementKey(id, 7))
}

func TestNoopStatementCache(t *testing.T) {
	var c cache.NoopStatementCache
	ctx := context.Background()

	gen, err := c.Generation(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Equal(t, int64(0), gen)

	stmt, found, err := c.GetStatement(ctx, uuid.New(), gen)
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, stmt)
	assert.NoError(t, c.SetStatement(ctx, sampleStatement(), gen))
	assert.NoError(t, c.InvalidateStatement(ctx, uuid.New()))
}
