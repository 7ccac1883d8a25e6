package rental

import (
	"time"

	"github.com/yungbote/propdesk-backend/internal/domain/entity"
)

// Property is a building held by an owner. It receives rent, so its
// processor account is a payee account.
type Property struct {
	ID               uint      `gorm:"primaryKey;column:id" json:"id"`
	Address          string    `gorm:"not null;column:address" json:"address"`
	OwnerID          uint      `gorm:"not null;index;column:owner_id" json:"owner_id"`
	PaymentAccountID *string   `gorm:"column:payment_account_id" json:"payment_account_id,omitempty"`
	CreatedOn        time.Time `gorm:"not null;autoCreateTime;column:created_on" json:"created_on"`
	UpdatedOn        time.Time `gorm:"not null;autoUpdateTime;column:updated_on" json:"updated_on"`
}

func (Property) TableName() string { return "property" }

var PropertySchema = entity.NewSchema(entity.Property,
	func(m *Property) uint { return m.ID },
	entity.IDField(func(m *Property) *uint { return &m.ID }),
	entity.StringField("address", entity.TypeVarchar, func(m *Property) *string { return &m.Address }).Require(),
	entity.UintField("owner_id", func(m *Property) *uint { return &m.OwnerID }).Require(),
	entity.NullableStringField("payment_account_id", entity.TypeVarchar, func(m *Property) **string { return &m.PaymentAccountID }).Locked(),
	entity.TimeField("created_on", func(m *Property) *time.Time { return &m.CreatedOn }),
	entity.TimeField("updated_on", func(m *Property) *time.Time { return &m.UpdatedOn }),
).WithPayments(entity.PaymentHooks[Property]{
	Role:    entity.RolePayee,
	Contact: func(m *Property) string { return m.Address },
	Attach:  func(m *Property, accountID string) { m.PaymentAccountID = &accountID },
})
