package rental

import (
	"time"

	"github.com/yungbote/propdesk-backend/internal/domain/entity"
)

type Owner struct {
	ID        uint      `gorm:"primaryKey;column:id" json:"id"`
	Email     string    `gorm:"not null;index;column:email" json:"email"`
	Password  string    `gorm:"not null;column:password" json:"-"`
	CreatedOn time.Time `gorm:"not null;autoCreateTime;column:created_on" json:"created_on"`
	UpdatedOn time.Time `gorm:"not null;autoUpdateTime;column:updated_on" json:"updated_on"`
}

func (Owner) TableName() string { return "owner" }

var OwnerSchema = entity.NewSchema(entity.Owner,
	func(m *Owner) uint { return m.ID },
	entity.IDField(func(m *Owner) *uint { return &m.ID }),
	entity.StringField("email", entity.TypeVarchar, func(m *Owner) *string { return &m.Email }).Require(),
	entity.PasswordField("password", func(m *Owner) *string { return &m.Password }).Require(),
	entity.TimeField("created_on", func(m *Owner) *time.Time { return &m.CreatedOn }),
	entity.TimeField("updated_on", func(m *Owner) *time.Time { return &m.UpdatedOn }),
)
