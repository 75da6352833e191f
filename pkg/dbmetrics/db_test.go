package dbmetrics

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperation(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"SELECT id FROM yachts", "select"},
		{"  insert into bookings (id) values ($1)", "insert"},
		{"UPDATE yachts SET name = $1", "update"},
		{"DELETE FROM subscribers", "delete"},
		{"WITH x AS (SELECT 1) SELECT * FROM x", "select"},
		{"VACUUM", "other"},
		{"", "other"},
	}

	for _, tt := range tests {
		t.Run(tt.want+"/"+tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, Operation(tt.query))
		})
	}
}

type fakeTx struct {
	DBExecutor
}

func (fakeTx) Commit() error   { return nil }
func (fakeTx) Rollback() error { return nil }

func TestGetExecutor(t *testing.T) {
	db := Wrap(&sql.DB{}, nil)

	assert.False(t, IsInTransaction(context.Background()))
	assert.Same(t, db, GetExecutor(context.Background(), db))

	tx := &fakeTx{}
	ctx := WithTx(context.Background(), tx)
	assert.True(t, IsInTransaction(ctx))
	assert.Same(t, tx, GetExecutor(ctx, db))
}
