package payments

import (
	"errors"

	"github.com/yungbote/propdesk-backend/internal/domain/entity"
	"github.com/yungbote/propdesk-backend/internal/platform/dbctx"
)

// ErrEmptyToken is returned when an account is requested without a token.
var ErrEmptyToken = errors.New("payment token is empty")

// AccountRequest asks a processor to open an account for one row.
type AccountRequest struct {
	Kind     entity.Kind
	EntityID uint
	Role     entity.PaymentRole
	// Contact is the email or address the processor files the account under.
	Contact string
	Token   string
}

type Account struct {
	ExternalID string
	Processor  string
}

// Processor opens payment processor accounts. Implementations that persist
// bookkeeping must write through dbc so it commits with the caller.
type Processor interface {
	OpenAccount(dbc dbctx.Context, req AccountRequest) (Account, error)
}
