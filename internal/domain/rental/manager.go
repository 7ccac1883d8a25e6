package rental

import (
	"time"

	"github.com/yungbote/propdesk-backend/internal/domain/entity"
)

type Manager struct {
	ID         uint      `gorm:"primaryKey;column:id" json:"id"`
	Email      string    `gorm:"not null;index;column:email" json:"email"`
	Password   string    `gorm:"not null;column:password" json:"-"`
	PropertyID uint      `gorm:"not null;index;column:property_id" json:"property_id"`
	CreatedOn  time.Time `gorm:"not null;autoCreateTime;column:created_on" json:"created_on"`
	UpdatedOn  time.Time `gorm:"not null;autoUpdateTime;column:updated_on" json:"updated_on"`
}

func (Manager) TableName() string { return "manager" }

var ManagerSchema = entity.NewSchema(entity.Manager,
	func(m *Manager) uint { return m.ID },
	entity.IDField(func(m *Manager) *uint { return &m.ID }),
	entity.StringField("email", entity.TypeVarchar, func(m *Manager) *string { return &m.Email }).Require(),
	entity.PasswordField("password", func(m *Manager) *string { return &m.Password }).Require(),
	entity.UintField("property_id", func(m *Manager) *uint { return &m.PropertyID }).Require(),
	entity.TimeField("created_on", func(m *Manager) *time.Time { return &m.CreatedOn }),
	entity.TimeField("updated_on", func(m *Manager) *time.Time { return &m.UpdatedOn }),
)
