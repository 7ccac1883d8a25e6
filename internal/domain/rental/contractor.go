package rental

import (
	"time"

	"github.com/yungbote/propdesk-backend/internal/domain/entity"
)

// Contractor is paid for tickets, so its processor account is a payee
// account. Contractors are not scoped to a property.
type Contractor struct {
	ID               uint      `gorm:"primaryKey;column:id" json:"id"`
	Email            string    `gorm:"not null;index;column:email" json:"email"`
	Password         string    `gorm:"not null;column:password" json:"-"`
	PaymentAccountID *string   `gorm:"column:payment_account_id" json:"payment_account_id,omitempty"`
	CreatedOn        time.Time `gorm:"not null;autoCreateTime;column:created_on" json:"created_on"`
	UpdatedOn        time.Time `gorm:"not null;autoUpdateTime;column:updated_on" json:"updated_on"`
}

func (Contractor) TableName() string { return "contractor" }

var ContractorSchema = entity.NewSchema(entity.Contractor,
	func(m *Contractor) uint { return m.ID },
	entity.IDField(func(m *Contractor) *uint { return &m.ID }),
	entity.StringField("email", entity.TypeVarchar, func(m *Contractor) *string { return &m.Email }).Require(),
	entity.PasswordField("password", func(m *Contractor) *string { return &m.Password }).Require(),
	entity.NullableStringField("payment_account_id", entity.TypeVarchar, func(m *Contractor) **string { return &m.PaymentAccountID }).Locked(),
	entity.TimeField("created_on", func(m *Contractor) *time.Time { return &m.CreatedOn }),
	entity.TimeField("updated_on", func(m *Contractor) *time.Time { return &m.UpdatedOn }),
).WithPayments(entity.PaymentHooks[Contractor]{
	Role:    entity.RolePayee,
	Contact: func(m *Contractor) string { return m.Email },
	Attach:  func(m *Contractor, accountID string) { m.PaymentAccountID = &accountID },
})
