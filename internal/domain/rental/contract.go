package rental

import (
	"time"

	"github.com/yungbote/propdesk-backend/internal/domain/entity"
)

// Contract is a lease of one unit to one tenant.
type Contract struct {
	ID        uint      `gorm:"primaryKey;column:id" json:"id"`
	UnitID    uint      `gorm:"not null;index;column:unit_id" json:"unit_id"`
	TenantID  uint      `gorm:"not null;index;column:tenant_id" json:"tenant_id"`
	Rent      float64   `gorm:"type:numeric(10,2);not null;column:rent" json:"rent"`
	CreatedOn time.Time `gorm:"not null;autoCreateTime;column:created_on" json:"created_on"`
	UpdatedOn time.Time `gorm:"not null;autoUpdateTime;column:updated_on" json:"updated_on"`
}

func (Contract) TableName() string { return "contract" }

var ContractSchema = entity.NewSchema(entity.Contract,
	func(m *Contract) uint { return m.ID },
	entity.IDField(func(m *Contract) *uint { return &m.ID }),
	entity.UintField("unit_id", func(m *Contract) *uint { return &m.UnitID }).Require(),
	entity.UintField("tenant_id", func(m *Contract) *uint { return &m.TenantID }).Require(),
	entity.DecimalField("rent", func(m *Contract) *float64 { return &m.Rent }).Require(),
	entity.TimeField("created_on", func(m *Contract) *time.Time { return &m.CreatedOn }),
	entity.TimeField("updated_on", func(m *Contract) *time.Time { return &m.UpdatedOn }),
)
