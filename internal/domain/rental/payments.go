package rental

import (
	"time"

	"github.com/yungbote/propdesk-backend/internal/domain/entity"
)

const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

// ContractPayment is one rent charge against a contract.
type ContractPayment struct {
	ID         uint      `gorm:"primaryKey;column:id" json:"id"`
	ContractID uint      `gorm:"not null;index;column:contract_id" json:"contract_id"`
	Amount     *float64  `gorm:"type:numeric(10,2);column:amount" json:"amount,omitempty"`
	Status     *string   `gorm:"column:status" json:"status,omitempty"`
	CreatedOn  time.Time `gorm:"not null;autoCreateTime;column:created_on" json:"created_on"`
	UpdatedOn  time.Time `gorm:"not null;autoUpdateTime;column:updated_on" json:"updated_on"`
}

func (ContractPayment) TableName() string { return "contract_payment" }

var ContractPaymentSchema = entity.NewSchema(entity.ContractPayment,
	func(m *ContractPayment) uint { return m.ID },
	entity.IDField(func(m *ContractPayment) *uint { return &m.ID }),
	entity.UintField("contract_id", func(m *ContractPayment) *uint { return &m.ContractID }).Require(),
	entity.NullableDecimalField("amount", func(m *ContractPayment) **float64 { return &m.Amount }),
	entity.NullableStringField("status", entity.TypeVarchar, func(m *ContractPayment) **string { return &m.Status }),
	entity.TimeField("created_on", func(m *ContractPayment) *time.Time { return &m.CreatedOn }),
	entity.TimeField("updated_on", func(m *ContractPayment) *time.Time { return &m.UpdatedOn }),
)

// TicketPayment is one payout against a ticket.
type TicketPayment struct {
	ID        uint      `gorm:"primaryKey;column:id" json:"id"`
	TicketID  uint      `gorm:"not null;index;column:ticket_id" json:"ticket_id"`
	Amount    *float64  `gorm:"type:numeric(10,2);column:amount" json:"amount,omitempty"`
	Status    *string   `gorm:"column:status" json:"status,omitempty"`
	CreatedOn time.Time `gorm:"not null;autoCreateTime;column:created_on" json:"created_on"`
	UpdatedOn time.Time `gorm:"not null;autoUpdateTime;column:updated_on" json:"updated_on"`
}

func (TicketPayment) TableName() string { return "ticket_payment" }

var TicketPaymentSchema = entity.NewSchema(entity.TicketPayment,
	func(m *TicketPayment) uint { return m.ID },
	entity.IDField(func(m *TicketPayment) *uint { return &m.ID }),
	entity.UintField("ticket_id", func(m *TicketPayment) *uint { return &m.TicketID }).Require(),
	entity.NullableDecimalField("amount", func(m *TicketPayment) **float64 { return &m.Amount }),
	entity.NullableStringField("status", entity.TypeVarchar, func(m *TicketPayment) **string { return &m.Status }),
	entity.TimeField("created_on", func(m *TicketPayment) *time.Time { return &m.CreatedOn }),
	entity.TimeField("updated_on", func(m *TicketPayment) *time.Time { return &m.UpdatedOn }),
)
