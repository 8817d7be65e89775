package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/srgjo27/fleet_ledger/internal/core/domain"
	"github.com/srgjo27/fleet_ledger/internal/core/ports"
)

func GenerationKey(driverID uuid.UUID) string {
	return fmt.Sprintf("finance:driver:%s:gen", driverID.String())
}

func StatementKey(driverID uuid.UUID, gen int64) string {
	return fmt.Sprintf("finance:driver:%s:payments:%d", driverID.String(), gen)
}

// RedisStatementCache stores statements under generation-scoped keys. The
// generation key never expires; statement keys expire after ttl.
//
// A driver whose generation bump failed is remembered locally. Until a
// later bump succeeds, Generation reports an error for that driver so
// callers bypass the cache instead of reading a statement that predates
// the write.
type RedisStatementCache struct {
	client *redis.Client
	ttl    time.Duration

	mu    sync.Mutex
	stale map[uuid.UUID]struct{}
}

func NewRedisStatementCache(client *redis.Client, ttl time.Duration) *RedisStatementCache {
	return &RedisStatementCache{
		client: client,
		ttl:    ttl,
		stale:  make(map[uuid.UUID]struct{}),
	}
}

func (c *RedisStatementCache) Generation(ctx context.Context, driverID uuid.UUID) (int64, error) {
	if c.isStale(driverID) {
		if err := c.bump(ctx, driverID); err != nil {
			return 0, err
		}
	}

	gen, err := c.client.Get(ctx, GenerationKey(driverID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read statement generation: %w", err)
	}
	return gen, nil
}

func (c *RedisStatementCache) GetStatement(ctx context.Context, driverID uuid.UUID, gen int64) (*domain.DriverStatement, bool, error) {
	data, err := c.client.Get(ctx, StatementKey(driverID, gen)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read statement cache: %w", err)
	}

	var stmt domain.DriverStatement
	if err := json.Unmarshal(data, &stmt); err != nil {
		return nil, false, fmt.Errorf("decode cached statement: %w", err)
	}
	return &stmt, true, nil
}

func (c *RedisStatementCache) SetStatement(ctx context.Context, stmt *domain.DriverStatement, gen int64) error {
	data, err := json.Marshal(stmt)
	if err != nil {
		return fmt.Errorf("encode statement: %w", err)
	}

	if err := c.client.Set(ctx, StatementKey(stmt.DriverID, gen), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("write statement cache: %w", err)
	}
	return nil
}

// InvalidateStatement bumps the driver's generation. Statements stored
// under older generations are left to expire.
func (c *RedisStatementCache) InvalidateStatement(ctx context.Context, driverID uuid.UUID) error {
	if err := c.bump(ctx, driverID); err != nil {
		c.mu.Lock()
		c.stale[driverID] = struct{}{}
		c.mu.Unlock()
		return err
	}
	return nil
}

func (c *RedisStatementCache) bump(ctx context.Context, driverID uuid.UUID) error {
	if err := c.client.Incr(ctx, GenerationKey(driverID)).Err(); err != nil {
		return fmt.Errorf("bump statement generation: %w", err)
	}

	c.mu.Lock()
	delete(c.stale, driverID)
	c.mu.Unlock()
	return nil
}

func (c *RedisStatementCache) isStale(driverID uuid.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.stale[driverID]
	return ok
}

// NoopStatementCache is used when Redis is disabled; every read misses.
type NoopStatementCache struct{}

func (NoopStatementCache) Generation(context.Context, uuid.UUID) (int64, error) {
	return 0, nil
}

func (NoopStatementCache) GetStatement(context.Context, uuid.UUID, int64) (*domain.DriverStatement, bool, error) {
	return nil, false, nil
}

func (NoopStatementCache) SetStatement(context.Context, *domain.DriverStatement, int64) error {
	return nil
}

func (NoopStatementCache) InvalidateStatement(context.Context, uuid.UUID) error {
	return nil
}

var (
	_ ports.StatementCache = (*RedisStatementCache)(nil)
	_ ports.StatementCache = NoopStatementCache{}
)
