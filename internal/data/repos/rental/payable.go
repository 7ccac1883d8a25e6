package rental

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/propdesk-backend/internal/domain/entity"
	"github.com/yungbote/propdesk-backend/internal/platform/dbctx"
	"github.com/yungbote/propdesk-backend/internal/platform/logger"
	"github.com/yungbote/propdesk-backend/internal/platform/payments"
)

type payableTable[T any] struct {
	*table[T]
	processor payments.Processor
}

// NewPayableTable is NewTable for kinds whose schema carries payment hooks.
func NewPayableTable[T any](db *gorm.DB, baseLog *logger.Logger, schema *entity.Schema[T], processor payments.Processor) entity.PaymentTable {
	if schema.Payments == nil {
		panic(fmt.Sprintf("rental: %s schema has no payment hooks", schema.Kind))
	}
	return &payableTable[T]{table: newTable(db, baseLog, schema), processor: processor}
}

// InitiatePayment opens a processor account for the row and stores the
// account id on it.
func (t *payableTable[T]) InitiatePayment(dbc dbctx.Context, r entity.Row, token string) error {
	rr, err := t.unwrap(r)
	if err != nil {
		return err
	}
	if t.processor == nil {
		return entity.NewError(entity.CodeUndefinedOperation, "table.payment",
			fmt.Sprintf("no payment processor wired for %s", t.schema.Kind), nil)
	}
	hooks := t.schema.Payments
	acct, err := t.processor.OpenAccount(dbc, payments.AccountRequest{
		Kind:     t.schema.Kind,
		EntityID: rr.ID(),
		Role:     hooks.Role,
		Contact:  hooks.Contact(rr.model),
		Token:    token,
	})
	if err != nil {
		return err
	}
	hooks.Attach(rr.model, acct.ExternalID)
	if err := t.Save(dbc, r); err != nil {
		return err
	}
	t.log.Info("Payment account attached", "id", rr.ID(), "payment_account_id", acct.ExternalID)
	return nil
}
