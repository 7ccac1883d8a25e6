package rental

import (
	"time"

	"github.com/yungbote/propdesk-backend/internal/domain/entity"
)

// Ticket is a maintenance request raised by a tenant and assigned to a
// contractor.
type Ticket struct {
	ID           uint      `gorm:"primaryKey;column:id" json:"id"`
	TenantID     uint      `gorm:"not null;index;column:tenant_id" json:"tenant_id"`
	ContractorID uint      `gorm:"not null;index;column:contractor_id" json:"contractor_id"`
	Amount       float64   `gorm:"type:numeric(10,2);not null;column:amount" json:"amount"`
	Description  *string   `gorm:"type:text;column:description" json:"description,omitempty"`
	CreatedOn    time.Time `gorm:"not null;autoCreateTime;column:created_on" json:"created_on"`
	UpdatedOn    time.Time `gorm:"not null;autoUpdateTime;column:updated_on" json:"updated_on"`
}

func (Ticket) TableName() string { return "ticket" }

var TicketSchema = entity.NewSchema(entity.Ticket,
	func(m *Ticket) uint { return m.ID },
	entity.IDField(func(m *Ticket) *uint { return &m.ID }),
	entity.UintField("tenant_id", func(m *Ticket) *uint { return &m.TenantID }).Require(),
	entity.UintField("contractor_id", func(m *Ticket) *uint { return &m.ContractorID }).Require(),
	entity.DecimalField("amount", func(m *Ticket) *float64 { return &m.Amount }).Require(),
	entity.NullableStringField("description", entity.TypeText, func(m *Ticket) **string { return &m.Description }),
	entity.TimeField("created_on", func(m *Ticket) *time.Time { return &m.CreatedOn }),
	entity.TimeField("updated_on", func(m *Ticket) *time.Time { return &m.UpdatedOn }),
)
