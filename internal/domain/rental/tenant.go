package rental

import (
	"time"

	"github.com/yungbote/propdesk-backend/internal/domain/entity"
)

// Tenant pays rent and ticket costs, so its processor account is a payer
// (customer) account.
type Tenant struct {
	ID               uint      `gorm:"primaryKey;column:id" json:"id"`
	Email            string    `gorm:"not null;index;column:email" json:"email"`
	Password         string    `gorm:"not null;column:password" json:"-"`
	PropertyID       uint      `gorm:"not null;index;column:property_id" json:"property_id"`
	PaymentAccountID *string   `gorm:"column:payment_account_id" json:"payment_account_id,omitempty"`
	CreatedOn        time.Time `gorm:"not null;autoCreateTime;column:created_on" json:"created_on"`
	UpdatedOn        time.Time `gorm:"not null;autoUpdateTime;column:updated_on" json:"updated_on"`
}

func (Tenant) TableName() string { return "tenant" }

var TenantSchema = entity.NewSchema(entity.Tenant,
	func(m *Tenant) uint { return m.ID },
	entity.IDField(func(m *Tenant) *uint { return &m.ID }),
	entity.StringField("email", entity.TypeVarchar, func(m *Tenant) *string { return &m.Email }).Require(),
	entity.PasswordField("password", func(m *Tenant) *string { return &m.Password }).Require(),
	entity.UintField("property_id", func(m *Tenant) *uint { return &m.PropertyID }).Require(),
	entity.NullableStringField("payment_account_id", entity.TypeVarchar, func(m *Tenant) **string { return &m.PaymentAccountID }).Locked(),
	entity.TimeField("created_on", func(m *Tenant) *time.Time { return &m.CreatedOn }),
	entity.TimeField("updated_on", func(m *Tenant) *time.Time { return &m.UpdatedOn }),
).WithPayments(entity.PaymentHooks[Tenant]{
	Role:    entity.RolePayer,
	Contact: func(m *Tenant) string { return m.Email },
	Attach:  func(m *Tenant, accountID string) { m.PaymentAccountID = &accountID },
})
