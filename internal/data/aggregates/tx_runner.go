package aggregates

import (
	"context"

	"github.com/yungbote/propdesk-backend/internal/domain/entity"
	"github.com/yungbote/propdesk-backend/internal/platform/dbctx"
	"gorm.io/gorm"
)

// TxRunner is the commit boundary: fn's writes are committed when it returns
// nil and rolled back otherwise. Each dispatcher step that must be durable on
// its own gets its own InTx call.
type TxRunner interface {
	InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error
}

type gormTxRunner struct {
	db *gorm.DB
}

// NewGormTxRunner returns a transaction runner backed by GORM transactions.
func NewGormTxRunner(db *gorm.DB) TxRunner {
	return &gormTxRunner{db: db}
}

func (r *gormTxRunner) InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	if fn == nil {
		return nil
	}
	if r == nil || r.db == nil {
		return entity.NewError(entity.CodeInternal, "aggregate.tx", "transaction runner has nil db", nil)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	// Don't open a transaction for a request that is already gone.
	if err := ctx.Err(); err != nil {
		return MapError("aggregate.tx", err)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(dbctx.Context{Ctx: ctx, Tx: tx})
	})
}
