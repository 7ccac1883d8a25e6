package dbctx

import (
	"context"

	"gorm.io/gorm"
)

// Context bundles a request context with an optional GORM transaction.
// A nil Tx means "use the repository's root handle".
type Context struct {
	Ctx context.Context
	Tx  *gorm.DB
}

// Handle returns the transaction when one is open, otherwise root, both
// bound to Ctx.
func (c Context) Handle(root *gorm.DB) *gorm.DB {
	ctx := c.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	if c.Tx != nil {
		return c.Tx.WithContext(ctx)
	}
	return root.WithContext(ctx)
}
