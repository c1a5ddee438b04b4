package dbmetrics

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type stubTx struct{ DBExecutor }

func (stubTx) Commit() error   { return nil }
func (stubTx) Rollback() error { return nil }

type stubDB struct{ DBExecutor }

func TestGetExecutor(t *testing.T) {
	fallback := stubDB{}
	ctx := context.Background()

	assert.False(t, IsInTransaction(ctx))
	assert.Equal(t, fallback, GetExecutor(ctx, fallback))

	tx := stubTx{}
	txCtx := WithTx(ctx, tx)
	assert.True(t, IsInTransaction(txCtx))
	assert.Equal(t, tx, GetExecutor(txCtx, fallback))
}

func TestOperation(t *testing.T) {
	assert.Equal(t, "select", operation("SELECT id FROM bookings"))
	assert.Equal(t, "insert", operation("  INSERT INTO desks (label) VALUES ($1)"))
	assert.Equal(t, "unknown", operation(""))
}

func TestObserve_NoMetrics(t *testing.T) {
	d := Wrap(nil, nil)
	assert.NotPanics(t, func() { d.observe("SELECT 1", time.Now(), sql.ErrNoRows) })
}
