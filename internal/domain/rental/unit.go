package rental

import (
	"time"

	"github.com/yungbote/propdesk-backend/internal/domain/entity"
)

type Unit struct {
	ID         uint      `gorm:"primaryKey;column:id" json:"id"`
	PropertyID uint      `gorm:"not null;index;column:property_id" json:"property_id"`
	Label      *string   `gorm:"column:label" json:"label,omitempty"`
	CreatedOn  time.Time `gorm:"not null;autoCreateTime;column:created_on" json:"created_on"`
	UpdatedOn  time.Time `gorm:"not null;autoUpdateTime;column:updated_on" json:"updated_on"`
}

func (Unit) TableName() string { return "unit" }

var UnitSchema = entity.NewSchema(entity.Unit,
	func(m *Unit) uint { return m.ID },
	entity.IDField(func(m *Unit) *uint { return &m.ID }),
	entity.UintField("property_id", func(m *Unit) *uint { return &m.PropertyID }).Require(),
	entity.NullableStringField("label", entity.TypeVarchar, func(m *Unit) **string { return &m.Label }),
	entity.TimeField("created_on", func(m *Unit) *time.Time { return &m.CreatedOn }),
	entity.TimeField("updated_on", func(m *Unit) *time.Time { return &m.UpdatedOn }),
)
