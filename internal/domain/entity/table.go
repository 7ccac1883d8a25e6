package entity

import "github.com/yungbote/propdesk-backend/internal/platform/dbctx"

// Row is a persisted record of some kind, loaded for reading or mutation.
type Row interface {
	ID() uint
	Columns() []Column
	// AssignFrom overwrites fields in memory; Table.Save persists them.
	AssignFrom(fields map[string]any) error
}

// Table is the per-kind access collaborator the dispatcher routes to.
type Table interface {
	Kind() Kind
	RequiredFields() []string
	QueryAll(dbc dbctx.Context) ([]Row, error)
	// QueryByID returns (nil, nil) when no row has that id.
	QueryByID(dbc dbctx.Context, id uint) (Row, error)
	Construct(dbc dbctx.Context, fields map[string]any) (Row, error)
	Save(dbc dbctx.Context, row Row) error
}

// PaymentTable is implemented by tables whose rows can open a payment
// processor account.
type PaymentTable interface {
	Table
	InitiatePayment(dbc dbctx.Context, row Row, token string) error
}
